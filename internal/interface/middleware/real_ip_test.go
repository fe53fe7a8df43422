package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRealIPResolution(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "198.51.100.7", "X-Forwarded-For": "203.0.113.9"}, "198.51.100.7"},
		{"xff left-most", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"garbage headers fall through", map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Forwarded-For": "also-bad"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) {
				got = c.GetString(CtxRealIPKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			if tt.want != "" && got != tt.want {
				t.Errorf("real ip = %q, want %q", got, tt.want)
			}
			if tt.want == "" && got == "" {
				t.Error("fallback did not set any ip")
			}
		})
	}
}
