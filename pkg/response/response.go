package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// 响应约定：
// 1. 成功时直接返回业务数据的JSON（不包一层code/message）
// 2. 没有数据的成功响应返回200空body
// 3. 失败时返回对应的HTTP状态码，body是纯文本提示信息

// Success 成功响应，data序列化为JSON
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK 无数据的成功响应
func OK(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	id, err := parseID(c)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 非AppError按500处理，body为原始错误文本
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	Fail(c, appErr.HTTPStatus(), appErr.Message)
}

// Fail 指定状态码和提示信息的错误响应
func Fail(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// Abort 写入错误响应并中止后续中间件
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
