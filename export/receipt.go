package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"pagamentos/models"
)

// ReceiptContentType PDF MIME type
const ReceiptContentType = "application/pdf"

// Receipt texts
const (
	ReceiptTitle     = "Comprovante de Pagamento"
	ReceiptIssuedAt  = "Data de emissão"
	ReceiptSignature = "Assinatura"
	receiptDateFmt   = "02/01/2006 15:04"
)

// Layout in points, measured from the top edge unless noted.
const (
	logoSize          = 100.0
	logoTop           = 30.0
	titleBaseline     = 150.0
	firstLineBaseline = 190.0
	lineStep          = 25.0
	leftMargin        = 80.0
	totalGap          = 10.0
	totalAdvance      = 35.0
	issuedGap         = 20.0
	continuationTop   = 60.0

	// signature line, measured from the bottom edge
	signatureBottom   = 120.0
	signatureWidth    = 200.0
	signatureLabelGap = 15.0
	// content may not come closer than this to the signature line
	signatureClearance = 40.0
)

// ReceiptOptions receipt rendering settings
type ReceiptOptions struct {
	LogoPath string
	Location *time.Location
	PageSize string // fpdf size name, A4 when empty
	Compress bool
}

// ReceiptRenderer formats one payment as a printable PDF receipt.
type ReceiptRenderer struct {
	opts ReceiptOptions
}

// NewReceiptRenderer creates a receipt renderer
func NewReceiptRenderer(opts ReceiptOptions) *ReceiptRenderer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	return &ReceiptRenderer{opts: opts}
}

type textStyle struct {
	family string
	style  string
	size   float64
}

var (
	styleTitle  = textStyle{"Helvetica", "B", 16}
	styleBody   = textStyle{"Helvetica", "", 12}
	styleTotal  = textStyle{"Helvetica", "B", 12}
	styleIssued = textStyle{"Helvetica", "I", 10}
)

type placedText struct {
	page     int
	y        float64 // baseline
	text     string
	style    textStyle
	centered bool
}

type receiptLayout struct {
	pages int
	texts []placedText
}

// fieldLines "<Label>: <value>" for ID and every non-blank field except total.
func fieldLines(p *models.Payment) []string {
	var lines []string
	if p.ID != 0 {
		lines = append(lines, fmt.Sprintf("ID: %d", p.ID))
	}
	for _, f := range models.PaymentFields {
		if f.Key == models.FieldTotal {
			continue
		}
		if v := f.Get(p); strings.TrimSpace(v) != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", f.Label, v))
		}
	}
	return lines
}

// layoutReceipt places every text line. When a line would enter the band
// reserved above the signature, the rest continues on a new page; the
// signature goes on the last page.
func layoutReceipt(p *models.Payment, issued time.Time, pageHeight float64) receiptLayout {
	l := receiptLayout{pages: 1}
	limit := pageHeight - signatureBottom - signatureClearance

	place := func(y float64, text string, style textStyle) float64 {
		if y > limit {
			l.pages++
			y = continuationTop
		}
		l.texts = append(l.texts, placedText{page: l.pages, y: y, text: text, style: style})
		return y
	}

	l.texts = append(l.texts, placedText{page: 1, y: titleBaseline, text: ReceiptTitle, style: styleTitle, centered: true})

	y := firstLineBaseline
	for _, line := range fieldLines(p) {
		y = place(y, line, styleBody) + lineStep
	}

	if strings.TrimSpace(p.Total) != "" {
		y = place(y+totalGap, "Total: "+p.Total, styleTotal) - totalGap + totalAdvance
	}

	place(y+issuedGap, fmt.Sprintf("%s: %s", ReceiptIssuedAt, issued.Format(receiptDateFmt)), styleIssued)
	return l
}

// Render draws the receipt of p, stamped with now in the configured zone.
func (r *ReceiptRenderer) Render(p *models.Payment, now time.Time) ([]byte, error) {
	if p == nil {
		return nil, errors.New("render receipt: nil payment")
	}
	issued := now.In(r.opts.Location)

	pdf := fpdf.New("P", "pt", r.opts.PageSize, "")
	pdf.SetCompression(r.opts.Compress)
	pdf.SetCreationDate(issued)
	pdf.SetTitle(fmt.Sprintf("%s %d", ReceiptTitle, p.ID), true)
	pdf.SetCreator("pagamentos", true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	layout := layoutReceipt(p, issued, pageH)

	pdf.AddPage()
	r.drawLogo(pdf, pageW)

	page := 1
	for _, t := range layout.texts {
		for page < t.page {
			pdf.AddPage()
			page++
		}
		pdf.SetFont(t.style.family, t.style.style, t.style.size)
		text := tr(t.text)
		x := leftMargin
		if t.centered {
			x = (pageW - pdf.GetStringWidth(text)) / 2
		}
		pdf.Text(x, t.y, text)
	}
	for page < layout.pages {
		pdf.AddPage()
		page++
	}

	// signature block at a fixed anchor
	lineY := pageH - signatureBottom
	xStart := (pageW - signatureWidth) / 2
	pdf.Line(xStart, lineY, xStart+signatureWidth, lineY)
	pdf.SetFont(styleBody.family, styleBody.style, styleBody.size)
	label := tr(ReceiptSignature)
	pdf.Text((pageW-pdf.GetStringWidth(label))/2, lineY+signatureLabelGap, label)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt %d: %w", p.ID, err)
	}
	return buf.Bytes(), nil
}

// drawLogo embeds the configured logo; failures are logged and skipped.
func (r *ReceiptRenderer) drawLogo(pdf *fpdf.Fpdf, pageW float64) {
	if r.opts.LogoPath == "" {
		return
	}
	data, err := LoadLogo(r.opts.LogoPath, logoMaxPixels)
	if err != nil {
		slog.Warn("receipt logo skipped", "path", r.opts.LogoPath, "error", err)
		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(data))
	if pdf.Err() {
		slog.Warn("receipt logo skipped", "path", r.opts.LogoPath, "error", pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions("logo", (pageW-logoSize)/2, logoTop, logoSize, logoSize, false, opts, 0, "")
}
