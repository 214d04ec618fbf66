package service

import "errors"

// 业务错误，handler 层负责翻译成响应
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidReaction = errors.New("invalid reaction type")
	ErrTitleRequired   = errors.New("title and content are required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentRequired = errors.New("comment content is required")
	ErrWrongPassword   = errors.New("delete password does not match")
)

// IsValidationError 校验类错误按约定走 200 + success=false
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidReaction),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrContentRequired),
		errors.Is(err, ErrWrongPassword):
		return true
	}
	return false
}

// IsNotFound 目标不存在或已被软删除
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrCommentNotFound)
}
