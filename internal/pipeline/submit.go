package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/certificate"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/clock"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/ledger"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/storage"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// presignTTL is how long issued certificate URLs stay valid.
const presignTTL = time.Hour

// DirectoryLookup resolves an employee id to its directory record.
type DirectoryLookup interface {
	Lookup(ctx context.Context, id string) (types.EmployeeRecord, error)
}

// Submitter runs the pledge submission pipeline:
// validate -> lookup -> render -> persist artifact -> ledger record -> respond.
// Artifact and ledger failures are absorbed; everything earlier is fatal
// for the request. No step is retried.
type Submitter struct {
	directory DirectoryLookup
	renderer  certificate.Renderer
	store     storage.ObjectStore
	ledger    ledger.Ledger
	clock     clock.Clock
	log       *logrus.Entry
}

// NewSubmitter wires the pipeline components together.
func NewSubmitter(dir DirectoryLookup, renderer certificate.Renderer, store storage.ObjectStore,
	led ledger.Ledger, clk clock.Clock, logger *logrus.Logger) *Submitter {
	if clk == nil {
		clk = clock.System{}
	}
	return &Submitter{
		directory: dir,
		renderer:  renderer,
		store:     store,
		ledger:    led,
		clock:     clk,
		log:       logger.WithField("component", "pipeline"),
	}
}

// Submit processes one pledge submission end to end.
func (s *Submitter) Submit(ctx context.Context, req types.SubmitPledgeRequest) (*types.SubmitPledgeResponse, error) {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)

	if err := req.Validate(); err != nil {
		return nil, asValidationError(err)
	}

	emp, err := s.directory.Lookup(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	pdf, err := s.renderer.Render(ctx, emp, now)
	if err != nil {
		return nil, err
	}

	log := s.log.WithField("employee_id", emp.EmployeeID)

	key := storage.CertificateKey(emp.EmployeeID, now)
	certificateURL := ""
	if err := s.store.Put(ctx, key, pdf, storage.ContentTypePDF); err != nil {
		log.WithError(&PersistenceError{Op: "artifact put", Cause: err}).
			Warn("certificate upload failed, returning inline document only")
	} else {
		url, err := s.store.PresignGet(ctx, key, presignTTL)
		if err != nil {
			log.WithError(&PersistenceError{Op: "artifact presign", Cause: err}).
				Warn("certificate URL could not be issued")
		} else {
			certificateURL = url
		}
	}

	pledgeID := uuid.New().String()
	rec := types.PledgeRecord{
		PledgeID:       pledgeID,
		EmployeeID:     emp.EmployeeID,
		EmployeeName:   emp.EmployeeName,
		Department:     emp.Department,
		Designation:    emp.Designation,
		PledgeDate:     now,
		Status:         types.PledgeStatusCompleted,
		CertificateKey: key,
	}
	if err := s.ledger.Record(ctx, rec); err != nil {
		log.WithError(&PersistenceError{Op: "ledger record", Cause: err}).
			Warn("pledge record write failed, certificate already issued")
	}

	log.WithField("pledge_id", pledgeID).Info("pledge processed")

	return &types.SubmitPledgeResponse{
		Success:           true,
		Message:           "Pledge submitted successfully",
		EmployeeName:      emp.EmployeeName,
		EmployeeID:        emp.EmployeeID,
		Department:        emp.Department,
		Designation:       emp.Designation,
		PledgeID:          pledgeID,
		CertificateURL:    certificateURL,
		PDFBase64:         base64.StdEncoding.EncodeToString(pdf),
		CertificateSizeKB: math.Round(float64(len(pdf))/1024*100) / 100,
	}, nil
}

// asValidationError maps validator field errors onto the pipeline's
// ValidationError with user-facing messages.
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "EmployeeID":
			return &ValidationError{Field: "employee_id", Message: "Employee ID is required"}
		case "PledgeAccepted":
			return &ValidationError{Field: "pledge_accepted", Message: "Pledge must be accepted"}
		}
	}
	return &ValidationError{Field: "request", Message: "Invalid request"}
}
