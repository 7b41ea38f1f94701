package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/response"
)

// BooksPath 图书资源路径（用于生成Location头）
const BooksPath = "/api/BookCollection/books"

// BookHandler 图书HTTP处理器
// 只做参数解析和Result到HTTP状态码的映射，业务逻辑都在领域服务
type BookHandler struct {
	service book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// GetBooks 查询全部图书
// @Summary      图书列表
// @Description  返回集合中的全部图书
// @Tags         图书
// @Produce      json
// @Success      200 {array}  dto.BookResponse
// @Failure      500 {string} string "存储读取失败"
// @Router       /api/BookCollection/books [get]
func (h *BookHandler) GetBooks(c *gin.Context) {
	r := h.service.GetBooks(c.Request.Context())
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}
	response.Success(c, dto.ToBookResponses(r.Data))
}

// GetBook 根据ID查询图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id  path     int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {string} string "ID不是整数"
// @Failure      404 {string} string "The requested book does not exist."
// @Failure      500 {string} string "存储读取失败"
// @Router       /api/BookCollection/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r := h.service.GetBook(c.Request.Context(), id)
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}
	response.Success(c, dto.ToBookResponse(r.Data))
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  ID由服务端分配，响应的Location头指向新图书
// @Tags         图书
// @Accept       json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200
// @Header       200 {string} Location "新图书的地址"
// @Failure      400 {string} string "Invalid data in the request body."
// @Failure      500 {string} string "存储写入失败"
// @Router       /api/BookCollection/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	req, ok := bindBook(c)
	if !ok {
		return
	}

	r := h.service.AddBook(c.Request.Context(), req.Fields())
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", BooksPath, r.Data.ID))
	response.OK(c)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  整体覆盖书名、作者、年份
// @Tags         图书
// @Accept       json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200
// @Failure      400 {string} string "Invalid data in the request body."
// @Failure      404 {string} string "The requested book does not exist."
// @Failure      500 {string} string "存储写入失败"
// @Router       /api/BookCollection/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindBook(c)
	if !ok {
		return
	}

	r := h.service.UpdateBook(c.Request.Context(), id, req.Fields())
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}
	response.OK(c)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Param        id  path int true "图书ID"
// @Success      200
// @Failure      400 {string} string "ID不是整数"
// @Failure      404 {string} string "The requested book does not exist."
// @Failure      500 {string} string "存储写入失败"
// @Router       /api/BookCollection/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r := h.service.DeleteBook(c.Request.Context(), id)
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}
	response.OK(c)
}

// SearchBooks 按书名/作者搜索
// @Summary      搜索图书
// @Description  书名、作者精确匹配（区分大小写），同时提供时取交集，都不提供返回全部
// @Tags         图书
// @Produce      json
// @Param        Title  query    string false "书名"
// @Param        Author query    string false "作者"
// @Success      200    {array}  dto.BookResponse
// @Failure      400    {string} string "不支持的查询参数"
// @Failure      500    {string} string "存储读取失败"
// @Router       /api/BookCollection/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	r := h.service.GetBooksByTitleOrAuthor(c.Request.Context(), req.Criteria())
	if !r.IsOK() {
		fail(c, r.Status, r.Message)
		return
	}
	response.Success(c, dto.ToBookResponses(r.Data))
}

// =========================================
// 辅助函数
// =========================================

// fail 把失败的Result写成HTTP响应（状态码与Result状态一致）
func fail(c *gin.Context, status book.Status, message string) {
	response.Fail(c, int(status), message)
}

// parseID 解析路由中的图书ID，失败时已写入400响应
func parseID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams,
			fmt.Sprintf("The value '%s' is not valid.", raw)))
		return 0, false
	}
	return id, true
}

// bindBook 解析请求体，空body、null和格式错误都返回400
func bindBook(c *gin.Context) (*dto.BookRequest, bool) {
	data, err := c.GetRawData()
	if err != nil || isNullBody(data) {
		response.Error(c, apperrors.ErrInvalidParams)
		return nil, false
	}

	var req dto.BookRequest
	if err := binding.JSON.BindBody(data, &req); err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return nil, false
	}
	return &req, true
}

// bindSearch 解析搜索参数
// 参数名大小写不敏感；出现Title、Author以外的参数返回400
func bindSearch(c *gin.Context) (dto.SearchRequest, bool) {
	var req dto.SearchRequest
	for key, values := range c.Request.URL.Query() {
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		switch strings.ToLower(key) {
		case "title":
			req.Title = value
		case "author":
			req.Author = value
		default:
			response.Error(c, apperrors.New(apperrors.ErrCodeBindError,
				fmt.Sprintf("Unknown query parameter '%s'.", key)))
			return req, false
		}
	}
	return req, true
}

func isNullBody(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
