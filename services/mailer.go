package services

import (
	"log"

	"github.com/Bhagwat-Patil/JobWebsite/configs"
	"gopkg.in/gomail.v2"
)

// Notifier ส่งเมลแจ้งเตือน — ปลายทางจริงคือ SMTP แต่ test ใช้ fake ได้
type Notifier interface {
	Notify(to, subject, body string) error
}

type SMTPNotifier struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPNotifier(cfg *configs.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (n *SMTPNotifier) Notify(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.host, n.port, n.user, n.pass)
	return d.DialAndSend(m)
}

// LogNotifier ใช้ตอน dev ที่ยังไม่ตั้ง SMTP — log อย่างเดียว
type LogNotifier struct{}

func (LogNotifier) Notify(to, subject, _ string) error {
	log.Printf("mail (not sent, SMTP unset): to=%s subject=%q", to, subject)
	return nil
}

// NewNotifier เลือก SMTP ถ้า config ครบ ไม่งั้น log-only
func NewNotifier(cfg *configs.Config) Notifier {
	if cfg.SMTPHost == "" {
		return LogNotifier{}
	}
	return NewSMTPNotifier(cfg)
}
