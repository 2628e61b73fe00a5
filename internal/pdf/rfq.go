// Package pdf renders RFQ submissions into paginated PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"lightningcath-stock-api/internal/model"

	"github.com/jung-kurt/gofpdf"
)

const (
	margin = 20.0
	// pageBreakAt is the vertical bound: whenever the next block would start
	// below it, a new page begins first. Greedy, non-backtracking layout.
	pageBreakAt = 250.0
)

// Filename derives the document name from the company: whitespace collapsed
// to underscores, suffixed with the date.
func Filename(companyName string, now time.Time) string {
	company := strings.Join(strings.Fields(companyName), "_")
	return fmt.Sprintf("RFQ_%s_%s.pdf", company, now.Format("2006-01-02"))
}

// doc tracks the cursor while laying out blocks top to bottom.
type doc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (d *doc) breakPageIfNeeded() {
	if d.y > pageBreakAt {
		d.pdf.AddPage()
		d.y = margin
	}
}

func (d *doc) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Text(margin, d.y, d.tr(text))
	d.y += 8
}

func (d *doc) line(text string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Text(margin, d.y, d.tr(text))
	d.y += 6
}

func (d *doc) detail(text string) {
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.Text(margin+5, d.y, d.tr(text))
	d.y += 5
}

// Render produces the RFQ document. The caller serializes the returned bytes
// however it needs (direct download, base64 transport); both are encodings of
// this single render.
func Render(data model.RFQRecord, now time.Time) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetAutoPageBreak(false, 0)
	p.AliasNbPages("")

	tr := p.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := p.GetPageSize()

	footer := fmt.Sprintf("Generated on %s - Page ", now.Format("1/2/2006"))
	p.SetFooterFunc(func() {
		p.SetFont("Helvetica", "", 9)
		p.SetTextColor(150, 150, 150)
		label := fmt.Sprintf("%s%d of {nb}", footer, p.PageNo())
		w := p.GetStringWidth(label)
		p.Text(pageWidth-margin-w, pageHeight-10, label)
	})

	p.AddPage()
	d := &doc{pdf: p, tr: tr, y: margin}

	// Header
	p.SetFont("Helvetica", "B", 20)
	p.Text(margin, d.y, "Request for Quote (RFQ)")
	d.y += 10
	p.SetFont("Helvetica", "", 10)
	p.SetTextColor(100, 100, 100)
	p.Text(margin, d.y, "LightningCath - Minimally Invasive Medical Device Manufacturing")
	d.y += 15

	// Customer information
	d.heading("Customer Information")
	d.line("Company: " + data.CompanyName)
	d.line("Contact: " + data.ContactName)
	d.line("Email: " + data.Email)
	d.line("Phone: " + data.Phone)
	d.y += 4

	// Project details, only when at least one field is filled in
	if data.HasProjectDetails() {
		d.heading("Project Details")
		if data.ProjectName != "" {
			d.line("Project Name: " + data.ProjectName)
		}
		if data.Quantity != "" {
			d.line("Quantity: " + data.Quantity)
		}
		if data.TargetDate != "" {
			d.line("Target Date: " + data.TargetDate)
		}
		d.y += 4
	}

	// Selected materials
	d.breakPageIfNeeded()
	if len(data.SelectedMaterials) > 0 {
		d.heading("Selected Materials")
		for i, material := range data.SelectedMaterials {
			d.breakPageIfNeeded()
			d.line(fmt.Sprintf("%d. %s", i+1, material.Description))
			d.detail("Family: " + material.MaterialFamily)
			if material.Notes != "" {
				d.detail("Notes: " + material.Notes)
			}
			d.y += 3
		}
		d.y += 5
	}

	// Service requirements
	d.breakPageIfNeeded()
	if len(data.Services) > 0 {
		d.heading("Service Requirements")
		for i, svc := range data.Services {
			d.breakPageIfNeeded()
			d.line(fmt.Sprintf("%d. %s", i+1, svc.ServiceName))
			d.detail(svc.Description)
			d.y += 3
		}
		d.y += 5
	}

	// Technical specifications, only when at least one field is filled in
	if !data.Specifications.Empty() {
		d.breakPageIfNeeded()
		d.heading("Technical Specifications")
		specs := data.Specifications
		if specs.InnerDiameter != "" {
			d.line("Inner Diameter (ID): " + specs.InnerDiameter)
		}
		if specs.OuterDiameter != "" {
			d.line("Outer Diameter (OD): " + specs.OuterDiameter)
		}
		if specs.Length != "" {
			d.line("Length: " + specs.Length)
		}
		if specs.WallThickness != "" {
			d.line("Wall Thickness: " + specs.WallThickness)
		}
		if specs.Other != "" {
			d.line("Other: " + specs.Other)
		}
		d.y += 5
	}

	// Additional notes, reflow-wrapped to the page width
	if data.AdditionalNotes != "" {
		d.breakPageIfNeeded()
		d.heading("Additional Notes")
		p.SetFont("Helvetica", "", 11)
		p.SetTextColor(0, 0, 0)
		for _, ln := range p.SplitText(tr(data.AdditionalNotes), pageWidth-2*margin) {
			d.breakPageIfNeeded()
			p.Text(margin, d.y, ln)
			d.y += 6
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
