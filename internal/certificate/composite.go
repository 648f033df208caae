package certificate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	_ "image/jpeg" // template images may be JPEG

	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/storage"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// CompositeConfig positions the employee name on the raster template.
// X and Y are relative to the template dimensions (0..1).
type CompositeConfig struct {
	TemplateKey string
	FontPath    string
	FontPoints  float64
	NameX       float64
	NameY       float64
}

// Composite rendering defaults, tuned to the campaign template artwork.
const (
	defaultNameX      = 0.52
	defaultNameY      = 0.70
	defaultFontPoints = 20
)

// CompositeRenderer overlays the employee name onto a fixed raster template
// fetched from the object store, then wraps the composited image as a
// single-page PDF.
type CompositeRenderer struct {
	store storage.ObjectStore
	cfg   CompositeConfig
}

// NewCompositeRenderer creates the template-compositing renderer. Zero-valued
// positioning fields fall back to the campaign defaults.
func NewCompositeRenderer(store storage.ObjectStore, cfg CompositeConfig) *CompositeRenderer {
	if cfg.NameX == 0 {
		cfg.NameX = defaultNameX
	}
	if cfg.NameY == 0 {
		cfg.NameY = defaultNameY
	}
	if cfg.FontPoints == 0 {
		cfg.FontPoints = defaultFontPoints
	}
	return &CompositeRenderer{store: store, cfg: cfg}
}

// Render fetches the template, draws the employee name at the configured
// relative position and returns the result as a PDF.
func (r *CompositeRenderer) Render(ctx context.Context, emp types.EmployeeRecord, now time.Time) ([]byte, error) {
	raw, err := r.store.Get(ctx, r.cfg.TemplateKey)
	if err != nil {
		return nil, &RenderError{Message: "failed to fetch certificate template", Cause: err}
	}

	tmpl, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &RenderError{Message: "failed to decode certificate template", Cause: err}
	}

	dc := gg.NewContextForImage(tmpl)
	if err := dc.LoadFontFace(r.cfg.FontPath, r.cfg.FontPoints); err != nil {
		return nil, &RenderError{Message: "failed to load certificate font", Cause: err}
	}

	bounds := tmpl.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	// Name sits to the right of the campaign hashtag, anchored left-middle.
	dc.SetRGB255(30, 70, 130)
	dc.DrawStringAnchored(strings.ToUpper(emp.EmployeeName), width*r.cfg.NameX, height*r.cfg.NameY, 0, 0.5)

	// Issue date and certificate id in the bottom-left corner.
	if err := dc.LoadFontFace(r.cfg.FontPath, r.cfg.FontPoints*0.55); err != nil {
		return nil, &RenderError{Message: "failed to load certificate font", Cause: err}
	}
	dc.SetRGB255(80, 80, 80)
	dc.DrawStringAnchored(fmt.Sprintf("%s | %s", now.Format(issueDateLayout), ID(emp.EmployeeID, now)),
		width*0.02, height*0.98, 0, 0.5)

	var img bytes.Buffer
	if err := png.Encode(&img, dc.Image()); err != nil {
		return nil, &RenderError{Message: "failed to encode composited image", Cause: err}
	}

	return imageToPDF(img.Bytes(), width, height)
}

// imageToPDF wraps a PNG as a single-page PDF sized to the image.
func imageToPDF(pngBytes []byte, width, height float64) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, bytes.NewReader(pngBytes))
	pdf.ImageOptions("certificate", 0, 0, width, height, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to write certificate PDF", Cause: err}
	}
	return buf.Bytes(), nil
}
