package rocketmq

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 创建并启动生产者
func InitProducer(cfg *config.RocketMQConfig) (rocketmq.Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, err
	}
	if err = p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))
	return p, nil
}

func InitConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	return rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
	)
}

// SendSync 同步发送，shardingKey 为空时不设置
func SendSync(ctx context.Context, p rocketmq.Producer, topic, shardingKey string, body []byte) error {
	msg := primitive.NewMessage(topic, body)
	if shardingKey != "" {
		msg.WithShardingKey(shardingKey)
	}

	res, err := p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}
