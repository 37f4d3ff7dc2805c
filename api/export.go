package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pagamentos/export"
	"pagamentos/metrics"
	"pagamentos/middleware"
	"pagamentos/models"
	"pagamentos/service"
)

// ReceiptMailer delivers a rendered receipt
type ReceiptMailer interface {
	SendReceiptEmail(toEmail string, p *models.Payment, pdf []byte) error
}

// ExportHandler spreadsheet and receipt downloads
type ExportHandler struct {
	payments *service.PaymentService
	receipts *export.ReceiptRenderer
	mailer   ReceiptMailer
	now      func() time.Time
}

// NewExportHandler creates the export handler
func NewExportHandler(payments *service.PaymentService, receipts *export.ReceiptRenderer, mailer ReceiptMailer) *ExportHandler {
	return &ExportHandler{
		payments: payments,
		receipts: receipts,
		mailer:   mailer,
		now:      time.Now,
	}
}

// EmailReceiptRequest receipt email recipient; the caller's own address when empty
type EmailReceiptRequest struct {
	Email string `json:"email" form:"email" binding:"omitempty,email" example:"tesouraria@example.com"`
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

// ExportExcel every payment as a spreadsheet
// @Summary Export payments to Excel
// @Description Downloads pagamentos.xlsx with a header row and one row per payment in ID order.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "pagamentos.xlsx"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Export failed"
// @Router /api/v1/payments/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	list, err := h.payments.List(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to export payments.")
		return
	}

	data, err := export.ToSpreadsheet(list)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to export payments.")
		return
	}

	metrics.Exports.WithLabelValues("xlsx").Inc()
	attachment(c, export.SpreadsheetFilename, export.SpreadsheetContentType, data)
}

func (h *ExportHandler) renderReceipt(c *gin.Context) (*models.Payment, []byte, bool) {
	id, ok := paymentID(c)
	if !ok {
		NotFound(c, msgPaymentNotFound)
		return nil, nil, false
	}

	p, err := h.payments.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to load payment.")
		return nil, nil, false
	}

	pdf, err := h.receipts.Render(p, h.now())
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to generate receipt.")
		return nil, nil, false
	}
	metrics.Exports.WithLabelValues("pdf").Inc()
	return p, pdf, true
}

// Receipt PDF receipt of one payment
// @Summary Download payment receipt
// @Description Renders comprovante_<id>.pdf for the payment.
// @Tags export
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {file} file "PDF receipt"
// @Failure 404 {object} Response "Not found"
// @Router /api/v1/payments/{id}/receipt [get]
func (h *ExportHandler) Receipt(c *gin.Context) {
	p, pdf, ok := h.renderReceipt(c)
	if !ok {
		return
	}
	attachment(c, service.ReceiptFilename(p.ID), export.ReceiptContentType, pdf)
}

// EmailReceipt mails the PDF receipt
// @Summary Email payment receipt
// @Description Sends the PDF receipt as an attachment to email, or to the signed-in user.
// @Tags export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body EmailReceiptRequest false "Recipient"
// @Success 200 {object} Response "Sent"
// @Failure 400 {object} Response "Invalid recipient"
// @Failure 404 {object} Response "Not found"
// @Failure 503 {object} Response "Email disabled"
// @Router /api/v1/payments/{id}/receipt/email [post]
func (h *ExportHandler) EmailReceipt(c *gin.Context) {
	var req EmailReceiptRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			BadRequest(c, "Invalid email address.")
			return
		}
	}
	to := req.Email
	if to == "" {
		to = middleware.CurrentActor(c).Email
	}
	if to == "" {
		BadRequest(c, "The Email field is required.")
		return
	}

	p, pdf, ok := h.renderReceipt(c)
	if !ok {
		return
	}

	if err := h.mailer.SendReceiptEmail(to, p, pdf); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) {
			Error(c, http.StatusServiceUnavailable, "Email delivery is not configured.")
			return
		}
		respondError(c, err, msgPaymentNotFound, "Failed to send receipt.")
		return
	}
	SuccessWithMessage(c, fmt.Sprintf("Receipt sent to %s.", to), nil)
}
