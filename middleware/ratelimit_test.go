package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LoginRateLimit(2, 200*time.Millisecond))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 同一 IP 连续 3 次，第 3 次应返回 429
	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "频繁")

	// 不同 IP 互不影响
	assert.Equal(t, 200, doReq("192.168.1.2").Code)

	// 窗口过后恢复
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)
}

func TestSlidingWindow_Sweep(t *testing.T) {
	s := newSlidingWindow(1, time.Minute)
	now := time.Now()
	assert.True(t, s.allow("a", now))
	assert.False(t, s.allow("a", now))

	s.sweep(now.Add(2 * time.Minute))
	assert.Empty(t, s.hits)
	assert.True(t, s.allow("a", now.Add(2*time.Minute)))
}

func TestSlidingWindow_SweepsOnAllow(t *testing.T) {
	s := newSlidingWindow(1, time.Minute)
	now := time.Now()
	assert.True(t, s.allow("a", now))
	assert.True(t, s.allow("b", now.Add(30*time.Second)))
	assert.Len(t, s.hits, 2)

	// 超过一个窗口后的请求触发清理，过期的 key 被移除
	assert.True(t, s.allow("c", now.Add(2*time.Minute)))
	assert.Len(t, s.hits, 1)
	assert.Contains(t, s.hits, "c")
}

func TestLoginRateLimit_NoBackgroundGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		LoginRateLimit(5, time.Minute)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)
}
