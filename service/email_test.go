package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pagamentos/config"
	"pagamentos/models"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateReceiptEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateReceiptEmailBody(&models.Payment{ID: 12, Club: "Leões <Sul>", Church: "Central", Total: "100"})
	assert.Contains(t, body, "#12")
	assert.Contains(t, body, "Leões &lt;Sul&gt;")
	assert.Contains(t, body, "Central")
	assert.Contains(t, body, "100")

	empty := s.generateReceiptEmailBody(&models.Payment{ID: 1})
	assert.Contains(t, empty, "Total: <strong>-</strong>")
}

func TestSendReceiptEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendReceiptEmail("x@example.com", &models.Payment{ID: 1}, []byte("%PDF"))
	assert.ErrorIs(t, err, ErrEmailDisabled)
}

func TestReceiptFilename(t *testing.T) {
	assert.Equal(t, "comprovante_7.pdf", ReceiptFilename(7))
}
