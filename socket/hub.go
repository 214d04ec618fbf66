package socket

import (
	"encoding/json"
	"strconv"

	"Anonboard/pkg/log"
	"Anonboard/types"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

// Hub 全板唯一的广播组
// 连接即入组、断开即离组，不保留离线消息，至多一次投递
type Hub struct {
	clients cmap.ConcurrentMap[string, *Client]
	bridge  *Bridge
}

func NewHub(bridge *Bridge) *Hub {
	return &Hub{
		clients: cmap.New[*Client](),
		bridge:  bridge,
	}
}

func (h *Hub) join(c *Client) {
	h.clients.Set(strconv.FormatInt(c.cid, 10), c)
	log.L.Info("client joined board channel",
		zap.Int64("cid", c.cid), zap.Int("online", h.clients.Count()))
}

func (h *Hub) leave(c *Client) {
	h.clients.Remove(strconv.FormatInt(c.cid, 10))
	log.L.Info("client left board channel",
		zap.Int64("cid", c.cid), zap.Int("online", h.clients.Count()))
}

// Count 在线连接数
func (h *Hub) Count() int {
	return h.clients.Count()
}

// Broadcast 广播事件；exceptCid 为产生事件的连接自身，0 表示无
func (h *Hub) Broadcast(ev *types.Event, exceptCid int64) {
	h.local(ev, exceptCid)

	if h.bridge != nil {
		h.bridge.Publish(ev)
	}
}

// local 只投递给本实例的连接
func (h *Hub) local(ev *types.Event, exceptCid int64) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.L.Error("marshal broadcast event", zap.Error(err))
		return
	}

	for item := range h.clients.IterBuffered() {
		c := item.Val
		if c.cid == exceptCid {
			continue
		}
		select {
		case c.send <- payload:
		case <-c.done:
		default:
			// 发送缓冲打满说明客户端已读不动了，掐掉让它重连
			c.close()
		}
	}
}
