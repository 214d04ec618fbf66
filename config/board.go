package config

// Board 板块相关配置
type Board struct {
	PageSize      int    `json:"page_size" yaml:"page_size"`           // 列表每页条数
	SessionCookie string `json:"session_cookie" yaml:"session_cookie"` // 匿名会话 cookie 名
	BroadcastChan string `json:"broadcast_chan" yaml:"broadcast_chan"` // redis 广播频道
	SendBuffer    int    `json:"send_buffer" yaml:"send_buffer"`       // 单连接发送缓冲
}

func (b *Board) applyDefaults() {
	if b.PageSize <= 0 {
		b.PageSize = 10
	}
	if b.SessionCookie == "" {
		b.SessionCookie = "board_session"
	}
	if b.BroadcastChan == "" {
		b.BroadcastChan = "board:updates"
	}
	if b.SendBuffer <= 0 {
		b.SendBuffer = 16
	}
}
