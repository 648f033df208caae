package certificate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// VectorRenderer draws a bordered landscape A4 certificate programmatically:
// decorative frame, campaign headings, the employee's details and the fixed
// pledge clauses.
type VectorRenderer struct{}

// NewVectorRenderer creates the programmatic certificate renderer.
func NewVectorRenderer() *VectorRenderer { return &VectorRenderer{} }

// Render produces the certificate PDF for the employee.
func (r *VectorRenderer) Render(_ context.Context, emp types.EmployeeRecord, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()

	// Background wash
	pdf.SetFillColor(242, 242, 255)
	pdf.Rect(0, 0, w, h, "F")

	// Double frame
	pdf.SetDrawColor(102, 127, 229)
	pdf.SetLineWidth(2.8)
	pdf.Rect(10, 10, w-20, h-20, "D")
	pdf.SetDrawColor(128, 153, 255)
	pdf.SetLineWidth(1.1)
	pdf.Rect(14, 14, w-28, h-28, "D")

	// Corner marks
	const corner = 18.0
	pdf.SetDrawColor(153, 102, 204)
	pdf.SetLineWidth(1.8)
	for _, c := range [][2]float64{{18, 18}, {w - 18, 18}, {18, h - 18}, {w - 18, h - 18}} {
		x, y := c[0], c[1]
		dx, dy := corner, corner
		if x > w/2 {
			dx = -corner
		}
		if y > h/2 {
			dy = -corner
		}
		pdf.Line(x, y, x+dx, y)
		pdf.Line(x, y, x, y+dy)
	}

	// Headings
	pdf.SetTextColor(51, 51, 128)
	pdf.SetFont("Helvetica", "B", 36)
	r.centered(pdf, w, 38, "CERTIFICATE OF INTEGRITY")

	pdf.SetTextColor(204, 51, 51)
	pdf.SetFont("Helvetica", "B", 24)
	r.centered(pdf, w, 51, "Fraud Awareness Week")

	pdf.SetDrawColor(153, 102, 204)
	pdf.SetLineWidth(0.7)
	pdf.Line(w/2-70, 56, w/2+70, 56)

	// Employee block
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 14)
	r.centered(pdf, w, 70, "This certifies that")

	pdf.SetTextColor(25, 25, 128)
	pdf.SetFont("Helvetica", "B", 28)
	r.centered(pdf, w, 84, strings.ToUpper(emp.EmployeeName))

	pdf.SetTextColor(77, 77, 77)
	pdf.SetFont("Helvetica", "", 12)
	detail := fmt.Sprintf("Employee ID: %s | Department: %s", emp.EmployeeID, emp.Department)
	if emp.Designation != "" {
		detail += fmt.Sprintf(" | %s", emp.Designation)
	}
	r.centered(pdf, w, 95, detail)

	// Pledge clauses
	pdf.SetTextColor(51, 51, 51)
	pdf.SetFont("Helvetica", "", 13)
	y := 112.0
	r.centered(pdf, w, y, "has taken the Integrity Pledge and commits to:")
	y += 12
	pdf.SetFont("Helvetica", "B", 12)
	for _, clause := range pledgeClauses {
		r.centered(pdf, w, y, "- "+clause)
		y += 8.5
	}

	// Date and signature line
	pdf.SetTextColor(77, 77, 77)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(35, h-40, fmt.Sprintf("Date: %s", now.Format(issueDateLayout)))

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.35)
	pdf.Line(w-105, h-40, w-35, h-40)
	pdf.SetFont("Helvetica", "", 10)
	r.centeredAt(pdf, w-70, h-35, "Authorized Signature")

	// Footer
	pdf.SetTextColor(128, 128, 128)
	pdf.SetFont("Helvetica", "I", 10)
	r.centered(pdf, w, h-18, "Building Trust Through Integrity")
	r.centered(pdf, w, h-13, fmt.Sprintf("(c) %d Your Insurance Company. All Rights Reserved.", now.Year()))

	pdf.SetFont("Courier", "", 8)
	pdf.Text(17, h-7, fmt.Sprintf("Certificate ID: %s", ID(emp.EmployeeID, now)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write certificate PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// centered draws s horizontally centered on the page at baseline y.
func (r *VectorRenderer) centered(pdf *gofpdf.Fpdf, pageWidth, y float64, s string) {
	r.centeredAt(pdf, pageWidth/2, y, s)
}

// centeredAt draws s centered on x at baseline y.
func (r *VectorRenderer) centeredAt(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}
