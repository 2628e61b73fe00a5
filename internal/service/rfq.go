package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"lightningcath-stock-api/internal/mailer"
	"lightningcath-stock-api/internal/model"
	"lightningcath-stock-api/internal/pdf"
	"lightningcath-stock-api/pkg/apierror"

	"go.uber.org/zap"
)

// RFQResult is what a submission returns. PDFBase64 is the transport
// encoding of the same bytes offered for download; the local copy survives
// even when dispatch fails.
type RFQResult struct {
	FileName      string `json:"file_name"`
	PDFBase64     string `json:"pdf_base64"`
	MaterialCount int    `json:"material_count"`
	ServiceCount  int    `json:"service_count"`
}

// RFQService runs the document/email pipeline: validate, render once,
// dispatch two notifications (vendor and customer).
type RFQService struct {
	mailer      mailer.Mailer
	vendorEmail string
	fromAddress string
	log         *zap.Logger

	// One submission in flight at a time; the concurrent-duplicate guard.
	busy atomic.Bool

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewRFQService creates the pipeline.
func NewRFQService(m mailer.Mailer, vendorEmail, fromAddress string, log *zap.Logger) *RFQService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RFQService{
		mailer:      m,
		vendorEmail: vendorEmail,
		fromAddress: fromAddress,
		log:         log,
		now:         time.Now,
	}
}

// Preview validates and renders the document without dispatching anything.
func (s *RFQService) Preview(record model.RFQRecord) (string, []byte, error) {
	if err := record.Validate(); err != nil {
		return "", nil, err
	}
	now := s.now()
	doc, err := pdf.Render(record, now)
	if err != nil {
		return "", nil, apierror.InternalError("failed to render RFQ document")
	}
	return pdf.Filename(record.CompanyName, now), doc, nil
}

// Submit validates, renders and dispatches the RFQ. Validation failure
// happens before any rendering or network call. Either notification failing
// fails the whole submission, but the rendered document is still returned so
// the caller can offer the local download.
func (s *RFQService) Submit(ctx context.Context, record model.RFQRecord) (*RFQResult, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if !s.busy.CompareAndSwap(false, true) {
		return nil, apierror.Conflict("an RFQ submission is already in progress")
	}
	defer s.busy.Store(false)

	now := s.now()
	doc, err := pdf.Render(record, now)
	if err != nil {
		return nil, apierror.InternalError("failed to render RFQ document")
	}

	result := &RFQResult{
		FileName:      pdf.Filename(record.CompanyName, now),
		PDFBase64:     base64.StdEncoding.EncodeToString(doc),
		MaterialCount: len(record.SelectedMaterials),
		ServiceCount:  len(record.Services),
	}

	attachment := mailer.Attachment{Filename: result.FileName, ContentB64: result.PDFBase64}

	vendorMsg := mailer.Message{
		From:        s.fromAddress,
		To:          s.vendorEmail,
		Subject:     "New RFQ from " + record.CompanyName,
		HTML:        vendorBody(record, result),
		Attachments: []mailer.Attachment{attachment},
	}
	customerMsg := mailer.Message{
		From:        s.fromAddress,
		To:          record.Email,
		Subject:     "RFQ Received - LightningCath",
		HTML:        customerBody(record, result),
		Attachments: []mailer.Attachment{attachment},
	}

	if err := s.mailer.Send(ctx, vendorMsg); err != nil {
		s.log.Error("vendor notification failed", zap.Error(err))
		return result, apierror.TransportFailure(
			fmt.Sprintf("failed to send RFQ; please contact %s directly", s.vendorEmail))
	}
	if err := s.mailer.Send(ctx, customerMsg); err != nil {
		s.log.Error("customer confirmation failed", zap.Error(err))
		return result, apierror.TransportFailure(
			fmt.Sprintf("failed to send RFQ confirmation; please contact %s directly", s.vendorEmail))
	}

	s.log.Info("RFQ submitted",
		zap.String("company", record.CompanyName),
		zap.Int("materials", result.MaterialCount),
		zap.Int("services", result.ServiceCount),
		zap.String("file", result.FileName))
	return result, nil
}

func vendorBody(r model.RFQRecord, res *RFQResult) string {
	var b strings.Builder
	b.WriteString("<h2>New Request for Quote</h2>")
	b.WriteString("<p>A new RFQ has been submitted through the LightningCath Stock Portal.</p>")
	b.WriteString("<h3>Customer Information:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Company:</strong> %s</li>", r.CompanyName)
	fmt.Fprintf(&b, "<li><strong>Contact:</strong> %s</li>", r.ContactName)
	fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", r.Email)
	fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", r.Phone)
	b.WriteString("</ul>")
	if r.ProjectName != "" {
		fmt.Fprintf(&b, "<p><strong>Project:</strong> %s</p>", r.ProjectName)
	}
	if r.Quantity != "" {
		fmt.Fprintf(&b, "<p><strong>Quantity:</strong> %s</p>", r.Quantity)
	}
	fmt.Fprintf(&b, "<p><strong>Materials Requested:</strong> %d item(s)</p>", res.MaterialCount)
	fmt.Fprintf(&b, "<p><strong>Services Required:</strong> %d service(s)</p>", res.ServiceCount)
	b.WriteString("<p>Please review the attached PDF for complete details.</p>")
	return b.String()
}

func customerBody(r model.RFQRecord, res *RFQResult) string {
	var b strings.Builder
	b.WriteString("<h2>Thank you for your RFQ submission!</h2>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", r.ContactName)
	fmt.Fprintf(&b, "<p>We have received your Request for Quote for <strong>%s</strong>.</p>", r.CompanyName)
	b.WriteString("<h3>What happens next?</h3><ul>")
	b.WriteString("<li>Our team will review your requirements</li>")
	b.WriteString("<li>We will respond within 1-2 business days</li>")
	b.WriteString("<li>You will receive a detailed quote via email</li>")
	b.WriteString("</ul><p>Your RFQ details:</p><ul>")
	fmt.Fprintf(&b, "<li><strong>Materials Selected:</strong> %d item(s)</li>", res.MaterialCount)
	fmt.Fprintf(&b, "<li><strong>Services Required:</strong> %d service(s)</li>", res.ServiceCount)
	if r.ProjectName != "" {
		fmt.Fprintf(&b, "<li><strong>Project:</strong> %s</li>", r.ProjectName)
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Best regards,<br/>The LightningCath Team</p>")
	return b.String()
}
