package socket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"Anonboard/pkg/log"
	"Anonboard/types"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // 必须小于 pongWait

	maxMessageSize = 16 * 1024
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var cidNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	cidNode = node
}

// Client 一条已连接的浏览器会话
type Client struct {
	cid  int64
	conn *websocket.Conn
	hub  *Hub
	send chan []byte
	done chan struct{}

	closeOnce sync.Once
}

// ServeWS 升级连接并接入广播组，阻塞到连接断开
func ServeWS(hub *Hub, c *gin.Context, sendBuffer int) error {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return err
	}

	client := &Client{
		cid:  cidNode.Generate().Int64(),
		conn: conn,
		hub:  hub,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	hub.join(client)
	defer func() {
		hub.leave(client)
		client.close()
	}()

	go client.writePump()
	client.readLoop()
	return nil
}

// close 幂等关闭；send 通道不关，避免广播方写已关通道
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// readLoop 接收客户端事件并转播给组内其他成员
// 不认识的消息静默丢弃，推送通道没有错误响应路径
func (c *Client) readLoop() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			// 客户端断开是正常行为
			return
		}

		eventType := gjson.GetBytes(data, "type").String()
		switch eventType {
		case "ping":
			_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
			continue
		case types.EventNewPost, types.EventNewComment, types.EventUpdateReaction:
		default:
			continue
		}

		// 入站 update_reaction 出站统一为 reaction_update
		outType := eventType
		if outType == types.EventUpdateReaction {
			outType = types.EventReactionUpdate
		}

		c.hub.Broadcast(&types.Event{
			Type:    outType,
			Message: types.EventMessage(outType),
			Data:    json.RawMessage(data),
		}, c.cid)
	}
}

// writePump 单写协程，定期 ping 保活
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.L.Warn("write to client failed", zap.Int64("cid", c.cid), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
