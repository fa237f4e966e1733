package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-travel-reminders/internal/observability/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(Gin(GinConfig{
		SkipPaths:  []string{"/health"},
		Module:     logging.Module("test"),
		TracerName: "test",
	}))
	r.Use(PanicRecoveryGin())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestGin_RequestID(t *testing.T) {
	const validID = "7a1f7c52-3c4e-4b8f-9e5d-2f0c1a9b8d77"

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "valid id is kept", header: validID, wantSame: true},
		{name: "invalid id is replaced", header: "not-a-uuid", wantSame: false},
		{name: "missing id is generated", header: "", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/echo", nil)
			if tt.header != "" {
				req.Header.Set(logging.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			got := w.Header().Get(logging.RequestIDHeader)
			if got == "" {
				t.Fatal("expected request id response header")
			}
			if got != w.Body.String() {
				t.Errorf("context request id = %q, header = %q", w.Body.String(), got)
			}
			if (got == tt.header) != tt.wantSame {
				t.Errorf("request id = %q, header sent %q", got, tt.header)
			}
		})
	}
}

func TestGin_SkipPaths(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Header().Get(logging.RequestIDHeader) != "" {
		t.Error("skipped path should not carry a request id header")
	}
}

func TestPanicRecoveryGin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
