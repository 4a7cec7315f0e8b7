package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"citron-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/protected", mw.InternalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/panic", func(c *gin.Context) {
		panic(errors.New("boom"))
	})
	return r
}

func TestInternalAuth(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		headers map[string]string
		want    int
	}{
		{name: "bearer", key: "secret", headers: map[string]string{"Authorization": "Bearer secret"}, want: http.StatusOK},
		{name: "header", key: "secret", headers: map[string]string{"X-Internal-Key": "secret"}, want: http.StatusOK},
		{name: "wrong key", key: "secret", headers: map[string]string{"Authorization": "Bearer nope"}, want: http.StatusUnauthorized},
		{name: "missing", key: "secret", want: http.StatusUnauthorized},
		{name: "unconfigured", key: "", headers: map[string]string{"X-Internal-Key": ""}, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(New(log.NewNop(), tt.key))
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status mismatch: got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), "secret"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status mismatch: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
