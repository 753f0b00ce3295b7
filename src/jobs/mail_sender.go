package jobs

import (
	"mergington-api/src/config"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPSender(conf config.SMTPConfig) *SMTPSender {
	return &SMTPSender{Host: conf.Host, Port: conf.Port, User: conf.User, Pass: conf.Pass, From: conf.From}
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender ใช้แทน SMTP เมื่อยังไม่ได้ตั้งค่า (เขียนลง log อย่างเดียว)
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(to, subject, _ string) error {
	s.logger.Info("mail not sent, SMTP disabled",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// NewMailSender เลือก SMTP ถ้าตั้งค่าครบ ไม่งั้นใช้ LogSender
func NewMailSender(conf config.SMTPConfig, logger *zap.Logger) MailSender {
	if conf.Enabled() {
		return NewSMTPSender(conf)
	}
	return NewLogSender(logger)
}
