package types

// ReactionType 反应类型，固定五种
type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionHeart ReactionType = "heart"
	ReactionLaugh ReactionType = "laugh"
	ReactionWow   ReactionType = "wow"
	ReactionSad   ReactionType = "sad"
)

// AllReactionTypes 按固定顺序列出全部类型
var AllReactionTypes = []ReactionType{
	ReactionLike,
	ReactionHeart,
	ReactionLaugh,
	ReactionWow,
	ReactionSad,
}

func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLike, ReactionHeart, ReactionLaugh, ReactionWow, ReactionSad:
		return true
	}
	return false
}

// ReactionCounts 各类型的计数快照，字段与枚举一一对应
type ReactionCounts struct {
	Likes  int64 `json:"likes"`
	Hearts int64 `json:"hearts"`
	Laughs int64 `json:"laughs"`
	Wows   int64 `json:"wows"`
	Sads   int64 `json:"sads"`
}

// Get 按类型取计数，未知类型返回 0
func (c ReactionCounts) Get(t ReactionType) int64 {
	switch t {
	case ReactionLike:
		return c.Likes
	case ReactionHeart:
		return c.Hearts
	case ReactionLaugh:
		return c.Laughs
	case ReactionWow:
		return c.Wows
	case ReactionSad:
		return c.Sads
	}
	return 0
}

// Set 按类型写计数
func (c *ReactionCounts) Set(t ReactionType, n int64) {
	switch t {
	case ReactionLike:
		c.Likes = n
	case ReactionHeart:
		c.Hearts = n
	case ReactionLaugh:
		c.Laughs = n
	case ReactionWow:
		c.Wows = n
	case ReactionSad:
		c.Sads = n
	}
}

// CountsFromMap 由 GROUP BY 结果构造快照
func CountsFromMap(m map[ReactionType]int64) ReactionCounts {
	var c ReactionCounts
	for t, n := range m {
		c.Set(t, n)
	}
	return c
}

// ToggleAction 一次切换实际执行的动作
type ToggleAction string

const (
	ToggleAdded   ToggleAction = "added"
	ToggleChanged ToggleAction = "changed"
	ToggleRemoved ToggleAction = "removed"
)

type ToggleReactionRequest struct {
	ReactionType string `json:"reaction_type"`
	SessionID    string `json:"session_id"`
}

// ToggleResult 切换反应的返回结果
type ToggleResult struct {
	Action   ToggleAction   `json:"action"`
	Count    int64          `json:"count"`     // 本次请求类型的最新计数
	IsActive bool           `json:"is_active"` // 该会话当前是否还持有此类型反应
	Counts   ReactionCounts `json:"counts"`
}
