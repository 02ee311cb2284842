package email

import (
	"fmt"
	"net/smtp"

	"barangay-backend/internal/config"

	"github.com/sirupsen/logrus"
)

type EmailSender struct {
	config *config.Config
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{config: cfg}
}

// SendPickupNotice tells a resident their requested document is ready for
// pick-up. Falls back to logging when SMTP credentials are not configured.
func (s *EmailSender) SendPickupNotice(toEmail, documentName string) error {
	if s.config.SMTP.Email == "" || s.config.SMTP.Password == "" {
		logrus.Infof("SMTP credentials not set. Mocking pickup notice to %s for %s", toEmail, documentName)
		return nil
	}

	from := s.config.SMTP.Email
	password := s.config.SMTP.Password
	host := s.config.SMTP.Host
	port := s.config.SMTP.Port
	address := host + ":" + port

	subject := fmt.Sprintf("Subject: Your %s is ready for pick-up\n", documentName)
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h2>%s</h2>
				<p>Your requested document <strong>%s</strong> is now ready for pick-up.</p>
				<p>Please bring a valid ID and present your request QR code at the barangay hall.</p>
			</body>
		</html>
	`, s.config.App.BarangayName, documentName)

	message := []byte(subject + mime + body)

	auth := smtp.PlainAuth("", from, password, host)

	if err := smtp.SendMail(address, auth, from, []string{toEmail}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
