package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/router"
)

func TestNamedRoutesAndURL(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	path, ok := r.Path("products.show")
	if !ok || path != "/products/{id}" {
		t.Fatalf("unexpected path %q (ok=%v)", path, ok)
	}

	url, err := r.URL("products.show", map[string]string{"id": "7"})
	if err != nil || url != "/products/7" {
		t.Fatalf("unexpected url %q err %v", url, err)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("missing params should error")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", mw("outer"))
	admin := api.Group("/admin", mw("inner"))
	admin.Get("/brands", "brands.index", func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/brands", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Fatalf("middleware order %v", order)
	}
}

func TestRoutesSnapshot(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", func(http.ResponseWriter, *http.Request) {})
	r.Post("/b", "b", func(http.ResponseWriter, *http.Request) {})
	r.HandleFunc("/metrics", func(http.ResponseWriter, *http.Request) {})

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 named routes, got %d", len(infos))
	}
}
