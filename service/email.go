package service

import (
	"errors"
	"fmt"
	"html"
	"io"

	"gopkg.in/gomail.v2"

	"pagamentos/config"
	"pagamentos/models"
)

// ErrEmailDisabled SMTP is not configured
var ErrEmailDisabled = errors.New("email service disabled, set PAGAMENTOS_EMAIL_ENABLED=true")

// EmailService sends mail over SMTP
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

type attachment struct {
	name string
	data []byte
}

// SendReceiptEmail mails the PDF receipt of p to toEmail.
func (s *EmailService) SendReceiptEmail(toEmail string, p *models.Payment, pdf []byte) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}

	subject := fmt.Sprintf("Comprovante de Pagamento #%d", p.ID)
	body := s.generateReceiptEmailBody(p)

	return s.sendEmail(toEmail, subject, body, attachment{
		name: ReceiptFilename(p.ID),
		data: pdf,
	})
}

// ReceiptFilename download name of a receipt
func ReceiptFilename(id uint) string {
	return fmt.Sprintf("comprovante_%d.pdf", id)
}

// generateReceiptEmailBody HTML body of the receipt mail
func (s *EmailService) generateReceiptEmailBody(p *models.Payment) string {
	total := p.Total
	if total == "" {
		total = "-"
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Comprovante de Pagamento</h1>
        </div>
        <div class="content">
            <p>Segue em anexo o comprovante <strong>#%d</strong>.</p>
            <p>Clube: <strong>%s</strong><br>Igreja: <strong>%s</strong><br>Total: <strong>%s</strong></p>
        </div>
        <div class="footer">
            <p>Esta mensagem foi enviada automaticamente, não responda.</p>
        </div>
    </div>
</body>
</html>
`, p.ID, html.EscapeString(p.Club), html.EscapeString(p.Church), html.EscapeString(total))
}

func (s *EmailService) sendEmail(to, subject, body string, attachments ...attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	for _, a := range attachments {
		data := a.data
		m.Attach(a.name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
