package book

import (
	"net/http"

	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// Status 领域服务操作的结果状态
// 数值与HTTP状态码保持一致,便于接口层直接映射
type Status int

const (
	StatusOK            Status = http.StatusOK
	StatusNotFound      Status = http.StatusNotFound
	StatusNotAllowed    Status = http.StatusMethodNotAllowed // 预留,当前没有操作返回该状态
	StatusInternalError Status = http.StatusInternalServerError
)

// String 用于日志和指标标签
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusNotAllowed:
		return "not_allowed"
	case StatusInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Result 领域服务统一返回结构
// 设计说明:
// 1. 每个服务操作都返回Result,不把错误抛出服务边界
// 2. Data只在Status为StatusOK时有意义
// 3. Message是给调用方的提示;内部错误时为底层错误的原始文本
// 4. Err是完整的错误链(含仓储附加的操作描述),只用于日志
type Result[T any] struct {
	Status  Status
	Data    T
	Message string
	Err     error
}

// Empty 无返回数据的操作使用的载荷类型
type Empty struct{}

// OK 构造成功结果
func OK[T any](data T) Result[T] {
	return Result[T]{Status: StatusOK, Data: data}
}

// Fail 由错误构造失败结果
// AppError保留其状态与提示;其他错误按内部错误处理
func Fail[T any](err error) Result[T] {
	appErr := apperrors.GetAppError(err)
	return Result[T]{
		Status:  statusOf(appErr),
		Message: appErr.Message,
		Err:     err,
	}
}

// IsOK 是否成功
func (r Result[T]) IsOK() bool {
	return r.Status == StatusOK
}

func statusOf(appErr *apperrors.AppError) Status {
	switch appErr.HTTPStatus() {
	case http.StatusNotFound:
		return StatusNotFound
	case http.StatusMethodNotAllowed:
		return StatusNotAllowed
	default:
		return StatusInternalError
	}
}
