package socket

import (
	"context"
	"encoding/json"

	"Anonboard/pkg/log"
	"Anonboard/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bridge 多实例部署时经 redis pub/sub 打通各实例的广播组
// envelope 带 origin，订阅端跳过自己发布的，避免回声
type Bridge struct {
	rdb     *redis.Client
	channel string
	origin  string
}

type envelope struct {
	Origin string       `json:"origin"`
	Event  *types.Event `json:"event"`
}

// NewBridge rdb 为 nil（未配置 redis）时返回 nil，单实例直接本地广播
func NewBridge(rdb *redis.Client, channel, origin string) *Bridge {
	if rdb == nil {
		return nil
	}
	return &Bridge{rdb: rdb, channel: channel, origin: origin}
}

func (b *Bridge) Publish(ev *types.Event) {
	payload, err := json.Marshal(envelope{Origin: b.origin, Event: ev})
	if err != nil {
		log.L.Error("marshal bridge envelope", zap.Error(err))
		return
	}
	if err := b.rdb.Publish(context.Background(), b.channel, payload).Err(); err != nil {
		log.L.Warn("publish to bridge channel failed", zap.Error(err))
	}
}

// Run 订阅循环，把其他实例的事件转投给本实例的连接
func (b *Bridge) Run(ctx context.Context, hub *Hub) error {
	pubsub := b.rdb.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	log.L.Info("bridge subscribed", zap.String("channel", b.channel), zap.String("origin", b.origin))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil || env.Event == nil {
				continue
			}
			if env.Origin == b.origin {
				continue
			}
			hub.local(env.Event, 0)
		}
	}
}
