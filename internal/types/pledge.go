package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PledgeStatus values recorded in the ledger.
const (
	PledgeStatusCompleted = "completed"
)

// PledgeRecord is the durable row written once per successful submission.
// Rows are never updated or deleted by this service.
type PledgeRecord struct {
	PledgeID       string    `json:"pledge_id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	PledgeDate     time.Time `json:"pledge_date"`
	Status         string    `json:"status"`
	CertificateKey string    `json:"certificate_key"`
}

// SubmitPledgeRequest represents the request body for POST /pledge.
type SubmitPledgeRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required"`
	PledgeAccepted bool   `json:"pledge_accepted" validate:"required,eq=true"`
}

// Validate validates the SubmitPledgeRequest using the validator.
func (r *SubmitPledgeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SubmitPledgeResponse is the success body for POST /pledge. The certificate
// is always returned inline; CertificateURL is set when the artifact store
// accepted the upload and can issue a reference.
type SubmitPledgeResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	EmployeeName      string  `json:"employee_name"`
	EmployeeID        string  `json:"employee_id"`
	Department        string  `json:"department"`
	Designation       string  `json:"designation"`
	PledgeID          string  `json:"pledge_id"`
	CertificateURL    string  `json:"certificate_url,omitempty"`
	PDFBase64         string  `json:"pdf_base64,omitempty"`
	CertificateSizeKB float64 `json:"certificate_size_kb"`
}
