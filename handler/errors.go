package handler

import (
	"Anonboard/pkg/response"
	"Anonboard/service"
)

// asBizError 业务错误翻译：NotFound 走 404，校验类走 200 + success=false
// 其余原样抛给 Wrap 按内部错误处理
func asBizError(err error) error {
	switch {
	case service.IsNotFound(err):
		return response.NewNotFoundError(err.Error())
	case service.IsValidationError(err):
		return response.NewValidationError(err.Error())
	}
	return err
}
