package storage

import (
	"fmt"
	"net/smtp"
	"strings"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	send     sendMailFunc
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, from: from, send: smtp.SendMail}
}

func (m *SMTPMailer) SendVerificationCode(to, firstName, code string) error {
	subject := "Verify your email"
	body := fmt.Sprintf("Hi %s,\r\n\r\nYour verification code is %s.\r\n", firstName, code)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return m.send(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}
