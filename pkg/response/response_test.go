package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	Success(c, []map[string]interface{}{{"Id": 1}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Id":1}]`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestOK(t *testing.T) {
	c, w := newContext()
	OK(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"参数错误", apperrors.ErrInvalidParams, http.StatusBadRequest, "Invalid data in the request body."},
		{"资源不存在", apperrors.New(apperrors.ErrCodeBookNotFound, "The requested book does not exist."), http.StatusNotFound, "The requested book does not exist."},
		{"限流", apperrors.ErrTooManyRequests, http.StatusTooManyRequests, "rate limit exceeded"},
		{"普通错误", errors.New("disk failure"), http.StatusInternalServerError, "disk failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		})
	}
}

func TestAbort(t *testing.T) {
	c, w := newContext()
	Abort(c, apperrors.ErrTooManyRequests)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
