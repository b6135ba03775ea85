package mail

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const subject = "Acad Co-Pilot 邮箱验证码"

// SMTPSender sends codes through an SMTP relay with PLAIN auth. Auth is
// skipped when Username is empty.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	CodeTTL  time.Duration
}

func (s *SMTPSender) Send(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	if err := smtp.SendMail(addr, auth, s.From, []string{email}, s.message(email, code)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// message renders a plain text RFC 5322 message.
func (s *SMTPSender) message(to, code string) []byte {
	minutes := int(s.CodeTTL / time.Minute)
	if minutes <= 0 {
		minutes = 10
	}

	var b strings.Builder
	b.WriteString("From: " + s.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.BEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "您的验证码是：%s\r\n", code)
	fmt.Fprintf(&b, "验证码 %d 分钟内有效，请勿告诉他人。\r\n", minutes)
	return []byte(b.String())
}
