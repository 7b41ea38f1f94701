package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是五位业务错误码，前三位即HTTP状态码（40400 → 404）
// 2. Message是返回给调用方的提示信息
// 3. Err是底层错误，保留用于errors.Is/errors.As
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 错误提示
	Err     error  `json:"-"`       // 底层错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return 500
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（文件读写、序列化、数据库错误）
// message为空时使用底层错误文本（去掉WithOp附加的操作描述）
func Wrap(err error, message string) *AppError {
	if message == "" && err != nil {
		message = Cause(err).Error()
	}
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、资源不存在）
// - 5xxxx: 服务端错误（存储异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal     = 50000 // 内部错误
	ErrCodeStorageError = 50001 // 存储错误

	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误
	ErrCodeBindError     = 40001 // 参数绑定失败

	// 资源错误（40400-40499）
	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound = 40401 // 图书不存在

	// 操作不允许（40500-40599）
	ErrCodeNotAllowed = 40500

	// 限流（42900）
	ErrCodeTooManyRequests = 42900
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal        = New(ErrCodeInternal, "internal server error")
	ErrInvalidParams   = New(ErrCodeInvalidParams, "Invalid data in the request body.")
	ErrNotAllowed      = New(ErrCodeNotAllowed, "The requested operation is not allowed.")
	ErrTooManyRequests = New(ErrCodeTooManyRequests, "rate limit exceeded")
)

// =========================================
// 辅助函数
// =========================================

// opError 附带操作描述的底层错误
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }

// WithOp 给底层错误附加操作描述（如"读取图书文件失败"）
// 描述出现在Error()和日志中，返回给调用方的提示只保留底层错误文本，见Cause
func WithOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, err: err}
}

// Cause 去掉WithOp附加的所有操作描述，返回底层错误
func Cause(err error) error {
	var op *opError
	for errors.As(err, &op) {
		err = op.err
	}
	return err
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError
// 非AppError的错误统一包装为Internal错误，Message保留原始错误文本
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "")
}
