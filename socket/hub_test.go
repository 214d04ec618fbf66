package socket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Anonboard/types"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	hub := NewHub(nil)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		_ = ServeWS(hub, c, 16)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) *types.Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev types.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return &ev
}

// update_reaction 入站转播为 reaction_update，不回显给发送方
func TestRelayReactionUpdateToOthers(t *testing.T) {
	_, srv := newTestHubServer(t)

	sender := dialWS(t, srv)
	receiver := dialWS(t, srv)
	time.Sleep(100 * time.Millisecond) // 等两条连接都入组

	payload := `{"type":"update_reaction","target_type":"post","target_id":"p1"}`
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(payload)))

	ev := readEvent(t, receiver)
	require.Equal(t, types.EventReactionUpdate, ev.Type)
	require.Equal(t, types.EventMessage(types.EventReactionUpdate), ev.Message)
	require.Equal(t, "p1", mustField(t, ev.Data, "target_id"))

	// 发送方不应收到自己的事件
	require.NoError(t, sender.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := sender.ReadMessage()
	require.Error(t, err)
}

// 服务端 Broadcast 投递给全部在线连接
func TestBroadcastReachesAllClients(t *testing.T) {
	hub, srv := newTestHubServer(t)

	a := dialWS(t, srv)
	b := dialWS(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 2 },
		2*time.Second, 20*time.Millisecond)

	hub.Broadcast(&types.Event{
		Type:    types.EventNewPost,
		Message: types.EventMessage(types.EventNewPost),
		Data:    json.RawMessage(`{"post_id":"p1"}`),
	}, 0)

	for _, conn := range []*websocket.Conn{a, b} {
		ev := readEvent(t, conn)
		require.Equal(t, types.EventNewPost, ev.Type)
	}
}

// 畸形和未知类型的入站消息静默丢弃
func TestMalformedInboundIgnored(t *testing.T) {
	_, srv := newTestHubServer(t)

	sender := dialWS(t, srv)
	receiver := dialWS(t, srv)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not json at all")))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"bogus"}`)))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"new_post","post_id":"p9"}`)))

	// 只有合法事件被转播
	ev := readEvent(t, receiver)
	require.Equal(t, types.EventNewPost, ev.Type)
	require.Equal(t, "p9", mustField(t, ev.Data, "post_id"))
}

// 断开即离组
func TestLeaveOnDisconnect(t *testing.T) {
	hub, srv := newTestHubServer(t)

	conn := dialWS(t, srv)
	require.Eventually(t, func() bool { return hub.Count() == 1 },
		2*time.Second, 20*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 },
		2*time.Second, 20*time.Millisecond)
}

func mustField(t *testing.T, raw json.RawMessage, key string) string {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	v, _ := m[key].(string)
	return v
}
