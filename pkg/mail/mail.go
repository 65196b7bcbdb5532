package mail

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"context"
	"errors"
	"time"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NewSender 未开启邮件时返回只记录日志的实现
func NewSender(conf *config.Config) Sender {
	if !conf.Mail.Enabled {
		return logSender{}
	}
	return &SMTPSender{conf: conf.Mail}
}

type SMTPSender struct {
	conf *config.Mail
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if s.conf.Host == "" || s.conf.From == "" {
		return errors.New("mail: smtp host or sender not configured")
	}

	m := gomail.NewMsg()
	if err := m.From(s.conf.From); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	opts := []gomail.Option{
		gomail.WithPort(s.conf.Port),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.conf.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.conf.Username),
			gomail.WithPassword(s.conf.Password),
		)
	}
	if s.conf.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(s.conf.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}

type logSender struct{}

func (logSender) Send(ctx context.Context, msg *Message) error {
	log.L.Info("mail disabled, skip sending", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
