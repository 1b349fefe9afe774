// Package mailer - gửi email qua SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"movu_api/config"
)

// Mailer là interface gửi email, cho phép test inject implementation giả
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer gửi email qua SMTP server dùng gomail
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer tạo mới SMTPMailer từ config
func NewSMTPMailer(cfg *config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send gửi một email HTML tới địa chỉ nhận
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("lỗi gửi email tới %s: %w", to, err)
	}
	return nil
}

// ResetPasswordEmailBody dựng nội dung email đặt lại mật khẩu với link tới frontend
func ResetPasswordEmailBody(resetURL string) string {
	return fmt.Sprintf(`<p>Bạn (hoặc ai đó) vừa yêu cầu đặt lại mật khẩu cho tài khoản này.</p>
<p>Nhấn vào link bên dưới để đặt lại mật khẩu. Link có hiệu lực trong 1 giờ.</p>
<p><a href="%s" style="display:inline-block;padding:10px 20px;text-decoration:none;border-radius:5px;background-color:#007bff;color:#fff;">Đặt lại mật khẩu</a></p>
<p>Nếu bạn không yêu cầu, hãy bỏ qua email này.</p>`, resetURL)
}
