package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
)

func newCORSEngine(cfg config.CORSConfig) *gin.Engine {
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/books", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestCORS(t *testing.T) {
	cfg := config.CORSConfig{
		Enabled:       true,
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Location"},
		MaxAge:        12 * time.Hour,
	}
	r := newCORSEngine(cfg)

	t.Run("没有Origin直接放行", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("允许的Origin", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/books", http.Header{"Origin": {"http://localhost:3000"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Location", w.Header().Get("Access-Control-Expose-Headers"))
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("不允许的Origin返回403", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/books", http.Header{"Origin": {"http://evil.example"}})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("预检请求返回204", func(t *testing.T) {
		w := serve(r, http.MethodOptions, "/books", http.Header{"Origin": {"http://localhost:3000"}})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestCORS_Wildcard(t *testing.T) {
	r := newCORSEngine(config.CORSConfig{Enabled: true, AllowOrigins: []string{"*"}})
	w := serve(r, http.MethodGet, "/books", http.Header{"Origin": {"http://any.example"}})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	r = newCORSEngine(config.CORSConfig{Enabled: true, AllowOrigins: []string{"*"}, AllowCredentials: true})
	w = serve(r, http.MethodGet, "/books", http.Header{"Origin": {"http://any.example"}})
	assert.Equal(t, "http://any.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
