package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Client отправляет письма через SMTP без аутентификации
// (совместимо с Mailpit и большинством внутренних релеев)
type Client struct {
	addr string
	from string
}

// New создает новый SMTP клиент
func New(host, port, from string) *Client {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@serviceportal.local"
	}
	return &Client{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

// Send отправляет письмо одному получателю
func (c *Client) Send(to, subject, body string) error {
	msg := buildMessage(c.from, to, subject, body)
	if err := smtp.SendMail(c.addr, nil, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendMail, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
