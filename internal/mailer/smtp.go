package mailer

import (
	"fmt"
	"log"
	"net/smtp"
)

// SMTPMailer sends signup OTP mail through a plain SMTP relay.
type SMTPMailer struct {
	host string
	port string
	from string
	pass string
}

func NewSMTPMailer(host, port, from, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, pass: pass}
}

func (m *SMTPMailer) SendOTP(email, code string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your OTP for SignUp\r\n\r\nYour OTP is: %s\r\n",
		m.from, email, code)

	auth := smtp.PlainAuth("", m.from, m.pass, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("sending otp mail: %w", err)
	}
	return nil
}

// LogMailer prints codes instead of mailing them. Used when SMTP is not
// configured (local development).
type LogMailer struct{}

func (LogMailer) SendOTP(email, code string) error {
	log.Printf("otp for %s: %s", email, code)
	return nil
}
