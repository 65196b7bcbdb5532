package inbox

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"Blackout/pkg/mail"
	"Blackout/pkg/rocketmq"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mq "github.com/apache/rocketmq-client-go/v2"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

// Notifier 卖家咨询通知，失败只记录日志
type Notifier interface {
	Notify(ctx context.Context, inq *Inquiry)
}

// BuildInquiryMail 咨询邮件
func BuildInquiryMail(inq *Inquiry) *mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", inq.SellerName)
	fmt.Fprintf(&b, "You have received a new inquiry about your item \"%s\".\n\n", inq.ItemTitle)
	fmt.Fprintf(&b, "From: %s (%s)", inq.BuyerName, inq.BuyerEmail)
	if inq.Phone != "" {
		fmt.Fprintf(&b, "\nPhone: %s", inq.Phone)
	}
	fmt.Fprintf(&b, "\n\nMessage:\n%s\n\n", inq.Message)
	b.WriteString("Please check your Messages page to respond.\n\n")
	b.WriteString("Best regards,\nBLACKOUT Marketplace Team\n")

	return &mail.Message{
		To:      inq.SellerEmail,
		Subject: "New inquiry about: " + inq.ItemTitle,
		Body:    b.String(),
	}
}

// NewNotifier async_mq 开启时投递到 RocketMQ，否则后台协程直接发信
// 返回的 cleanup 等待在途邮件发送完毕
func NewNotifier(conf *config.Config, sender mail.Sender) (Notifier, func(), error) {
	if conf.Mail.AsyncMQ {
		p, err := rocketmq.InitProducer(conf.RocketMQ)
		if err != nil {
			return nil, nil, err
		}
		n := &mqNotifier{producer: p, topic: conf.RocketMQ.InquiryTopic}
		return n, func() {
			if err := p.Shutdown(); err != nil {
				log.L.Warn("shutdown producer", zap.Error(err))
			}
		}, nil
	}

	n := &mailNotifier{sender: sender}
	return n, n.Wait, nil
}

type mailNotifier struct {
	sender mail.Sender
	wg     conc.WaitGroup
}

func (n *mailNotifier) Notify(ctx context.Context, inq *Inquiry) {
	msg := BuildInquiryMail(inq)
	// 请求结束后继续发送
	ctx = context.WithoutCancel(ctx)
	n.wg.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := n.sender.Send(ctx, msg); err != nil {
			log.L.Error("send inquiry mail", zap.String("to", msg.To), zap.Error(err))
		}
	})
}

// Wait 等待所有发送协程退出
func (n *mailNotifier) Wait() {
	if r := n.wg.WaitAndRecover(); r != nil {
		log.L.Error("inquiry mail panic", zap.String("panic", r.String()))
	}
}

type mqNotifier struct {
	producer mq.Producer
	topic    string
}

func (n *mqNotifier) Notify(ctx context.Context, inq *Inquiry) {
	body, err := json.Marshal(inq)
	if err != nil {
		log.L.Error("marshal inquiry", zap.Error(err))
		return
	}
	if err := rocketmq.SendSync(ctx, n.producer, n.topic, inq.SellerEmail, body); err != nil {
		log.L.Error("publish inquiry", zap.String("topic", n.topic), zap.Error(err))
	}
}
