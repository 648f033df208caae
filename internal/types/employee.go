// Package types provides type definitions for structured data used throughout the pledge system.
package types

// EmployeeRecord represents one row of the employee directory.
// Records are decoded from the bulk CSV at load time and are immutable afterwards.
type EmployeeRecord struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`
	Email        string `json:"email,omitempty"`
}
