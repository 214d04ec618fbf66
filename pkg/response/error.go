package response

import "net/http"

// BizError 业务错误，Status 决定 HTTP 状态码
// 校验类错误按约定仍返回 200，由响应体里的 success=false 表达失败
type BizError struct {
	Status int
	Msg    string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(status int, msg string) *BizError {
	return &BizError{
		Status: status,
		Msg:    msg,
	}
}

// NewValidationError 输入校验失败：HTTP 200 + success=false
func NewValidationError(msg string) *BizError {
	return NewError(http.StatusOK, msg)
}

// NewNotFoundError 目标不存在或已删除
func NewNotFoundError(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}
