package inbox

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"Blackout/pkg/mail"
	"Blackout/pkg/rocketmq"
	"context"
	"encoding/json"

	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

// Worker 消费咨询通知并发送邮件
type Worker struct {
	conf   *config.Config
	sender mail.Sender
}

func NewWorker(conf *config.Config, sender mail.Sender) *Worker {
	return &Worker{conf: conf, sender: sender}
}

// Run 阻塞直到 ctx 结束
func (w *Worker) Run(ctx context.Context) error {
	c, err := rocketmq.InitConsumer(w.conf.RocketMQ)
	if err != nil {
		return err
	}

	err = c.Subscribe(w.conf.RocketMQ.InquiryTopic, consumer.MessageSelector{}, w.consume)
	if err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return err
	}
	log.L.Info("notify worker started", zap.String("topic", w.conf.RocketMQ.InquiryTopic))

	<-ctx.Done()
	return c.Shutdown()
}

func (w *Worker) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, m := range msgs {
		var inq Inquiry
		if err := json.Unmarshal(m.Body, &inq); err != nil {
			log.L.Error("bad inquiry message", zap.String("msg_id", m.MsgId), zap.Error(err))
			continue
		}
		// 投递失败不重试
		if err := w.Handle(ctx, &inq); err != nil {
			log.L.Error("send inquiry mail", zap.String("msg_id", m.MsgId), zap.String("to", inq.SellerEmail), zap.Error(err))
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Handle 发送单条咨询邮件
func (w *Worker) Handle(ctx context.Context, inq *Inquiry) error {
	return w.sender.Send(ctx, BuildInquiryMail(inq))
}
