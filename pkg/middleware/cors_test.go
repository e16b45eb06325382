package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/reqid"
)

func TestCORSPreflightShortCircuits(t *testing.T) {
	handlerHit := false
	h := CORS(DefaultCORSOptions())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerHit = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if handlerHit {
		t.Error("preflight must not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != reqid.Header {
		t.Errorf("expose-headers = %q, want %q", got, reqid.Header)
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins("https://admin.kirana.test, https://ops.kirana.test")
	if len(got) != 2 || got[0] != "https://admin.kirana.test" || got[1] != "https://ops.kirana.test" {
		t.Errorf("splitOrigins = %v", got)
	}

	if got := splitOrigins(" "); len(got) != 1 || got[0] != "*" {
		t.Errorf("blank list should fall back to the wildcard, got %v", got)
	}
}
