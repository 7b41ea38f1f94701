package book

import (
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// NotFoundMessage 图书不存在时返回给调用方的固定提示
const NotFoundMessage = "The requested book does not exist."

// ErrBookNotFound 图书不存在
// 操作不允许使用apperrors.ErrNotAllowed(当前没有操作返回它)
var ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, NotFoundMessage)
