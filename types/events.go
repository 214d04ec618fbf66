package types

import "encoding/json"

// 推送与轮询共用的事件类型
const (
	EventNewPost        = "new_post"
	EventNewComment     = "new_comment"
	EventReactionUpdate = "reaction_update"
	// 客户端入站用 update_reaction，出站统一为 reaction_update
	EventUpdateReaction = "update_reaction"
)

// Event 广播到推送通道的事件
type Event struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// EventMessage 各事件类型附带的提示文案
func EventMessage(eventType string) string {
	switch eventType {
	case EventNewPost:
		return "a new post has been published"
	case EventNewComment:
		return "a new comment has been published"
	case EventReactionUpdate:
		return "reactions have been updated"
	}
	return ""
}
