package types

// UpdateEvent 轮询通道返回的单条更新
type UpdateEvent struct {
	Type string `json:"type"` // new_post / new_comment
	Data any    `json:"data"`
}

type CheckUpdatesResponse struct {
	HasUpdates bool           `json:"has_updates"`
	Updates    []*UpdateEvent `json:"updates"`
	NextCursor int64          `json:"next_cursor"` // unix 纳秒，下次轮询原样带回
}
