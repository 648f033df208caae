package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/certificate"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/clock"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/directory"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/ledger"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/storage"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

type stubDirectory struct {
	employees map[string]types.EmployeeRecord
	err       error
}

func (d *stubDirectory) Lookup(_ context.Context, id string) (types.EmployeeRecord, error) {
	if d.err != nil {
		return types.EmployeeRecord{}, d.err
	}
	rec, ok := d.employees[id]
	if !ok {
		return types.EmployeeRecord{}, &directory.NotFoundError{EmployeeID: id}
	}
	return rec, nil
}

type failingRenderer struct{}

func (failingRenderer) Render(context.Context, types.EmployeeRecord, time.Time) ([]byte, error) {
	return nil, &certificate.RenderError{Message: "template asset corrupted"}
}

type fixture struct {
	submitter *Submitter
	store     *storage.MemStore
	ledger    *ledger.MemLedger
	clock     *clock.Fixed
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := &stubDirectory{employees: map[string]types.EmployeeRecord{
		"E001": {EmployeeID: "E001", EmployeeName: "Jane Doe", Department: "Finance", Designation: "Analyst"},
	}}
	store := storage.NewMemStore()
	led := ledger.NewMemLedger()
	clk := clock.NewFixed(time.Date(2025, 11, 17, 10, 30, 45, 0, time.UTC))

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return &fixture{
		submitter: NewSubmitter(dir, certificate.NewVectorRenderer(), store, led, clk, logger),
		store:     store,
		ledger:    led,
		clock:     clk,
	}
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: true,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Jane Doe", resp.EmployeeName)
	assert.Equal(t, "E001", resp.EmployeeID)
	assert.Equal(t, "Finance", resp.Department)
	assert.Equal(t, "Analyst", resp.Designation)
	assert.NotEmpty(t, resp.PledgeID)
	assert.Equal(t, "memory://certificates/E001_20251117_103045.pdf", resp.CertificateURL)
	assert.Greater(t, resp.CertificateSizeKB, 0.0)

	pdf, err := base64.StdEncoding.DecodeString(resp.PDFBase64)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	stored, ok := f.store.Object("certificates/E001_20251117_103045.pdf")
	require.True(t, ok, "certificate must be persisted under the derived key")
	assert.Equal(t, pdf, stored)

	rec, err := f.ledger.Get(context.Background(), resp.PledgeID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "E001", rec.EmployeeID)
	assert.Equal(t, types.PledgeStatusCompleted, rec.Status)
	assert.Equal(t, "certificates/E001_20251117_103045.pdf", rec.CertificateKey)
}

func TestSubmit_MissingEmployeeID(t *testing.T) {
	f := newFixture(t)

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "",
		PledgeAccepted: true,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Employee ID is required", validationErr.Message)
	assert.Equal(t, 0, f.ledger.Len())
}

func TestSubmit_WhitespaceEmployeeID(t *testing.T) {
	f := newFixture(t)

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "   ",
		PledgeAccepted: true,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSubmit_PledgeNotAccepted(t *testing.T) {
	f := newFixture(t)

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: false,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Pledge must be accepted", validationErr.Message)
	assert.Equal(t, 0, f.ledger.Len())
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E999",
		PledgeAccepted: true,
	})

	var notFound *directory.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, f.ledger.Len(), "no ledger record may be written for an unknown employee")
}

func TestSubmit_StoreFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.store.PutErr = errors.New("bucket unavailable")

	resp, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: true,
	})
	require.NoError(t, err, "artifact storage failure must not fail the request")

	assert.True(t, resp.Success)
	assert.Empty(t, resp.CertificateURL)
	assert.NotEmpty(t, resp.PDFBase64, "inline document must still be returned")
	assert.Equal(t, 1, f.ledger.Len())
}

func TestSubmit_LedgerFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.ledger.RecordErr = errors.New("table unavailable")

	resp, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: true,
	})
	require.NoError(t, err, "ledger write failure must not fail the request")
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.PDFBase64)
}

func TestSubmit_RenderFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.submitter.renderer = failingRenderer{}

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: true,
	})

	var renderErr *certificate.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, 0, f.ledger.Len())
}

func TestSubmit_DirectoryRetrievalFailure(t *testing.T) {
	f := newFixture(t)
	f.submitter.directory = &stubDirectory{err: &directory.RetrievalError{Cause: errors.New("source down")}}

	_, err := f.submitter.Submit(context.Background(), types.SubmitPledgeRequest{
		EmployeeID:     "E001",
		PledgeAccepted: true,
	})

	var retrievalErr *directory.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
}
