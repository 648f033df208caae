package directory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// parseDirectory decodes the bulk CSV into employee records keyed by id.
// Fields are matched by header name, values are whitespace-trimmed, and
// rows with an empty employee_id are dropped.
func parseDirectory(data []byte) (map[string]types.EmployeeRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols["employee_id"]; !ok {
		return nil, fmt.Errorf("CSV header is missing employee_id column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	employees := make(map[string]types.EmployeeRecord)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		id := field(row, "employee_id")
		if id == "" {
			continue
		}

		employees[id] = types.EmployeeRecord{
			EmployeeID:   id,
			EmployeeName: field(row, "employee_name"),
			Department:   field(row, "department"),
			Designation:  field(row, "designation"),
			Email:        field(row, "email"),
		}
	}

	return employees, nil
}
