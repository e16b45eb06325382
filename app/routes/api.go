package routes

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/kirana/app/controllers"
	appgraphql "github.com/shashiranjanraj/kirana/app/graphql"
	"github.com/shashiranjanraj/kirana/pkg/event"
	"github.com/shashiranjanraj/kirana/pkg/graphql"
	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/middleware"
	"github.com/shashiranjanraj/kirana/pkg/response"
	"github.com/shashiranjanraj/kirana/pkg/router"
	"github.com/shashiranjanraj/kirana/pkg/ws"
)

// AdminHub pushes catalog change events to connected back-office sessions.
var AdminHub = ws.NewHub()

// RegisterAPI mounts every HTTP route.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()
	brandController := controllers.NewBrandController()
	uploadController := controllers.NewUploadController()
	adminController := controllers.NewAdminController()

	api := r.Group("/api")
	api.Post("/login", "auth.login", authController.Login)

	api.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	// Read-only catalog query API.
	if schema, err := appgraphql.NewSchema(); err != nil {
		logger.Error("routes: graphql schema", "error", err)
	} else {
		api.Post("/graphql", "graphql", graphql.Handler(schema))
	}

	// Everything the back-office writes sits behind the JWT guard.
	admin := api.Group("/admin", middleware.Auth)

	admin.Get("/products", "products.index", productController.Index)
	admin.Post("/products", "products.store", productController.Store)
	admin.Get("/products/{id}", "products.show", productController.Show)
	admin.Put("/products/{id}", "products.update", productController.Update)
	admin.Delete("/products/{id}", "products.destroy", productController.Destroy)

	admin.Get("/brands", "brands.index", brandController.Index)
	admin.Post("/brands", "brands.store", brandController.Store)
	admin.Get("/brands/{id}", "brands.show", brandController.Show)
	admin.Put("/brands/{id}", "brands.update", brandController.Update)
	admin.Delete("/brands/{id}", "brands.destroy", brandController.Destroy)

	admin.Post("/uploads", "uploads.store", uploadController.Store)

	// Descriptors for the rendering layer.
	admin.Get("/resources", "admin.resources", adminController.Resources)
	admin.Get("/resources/products", "admin.products.schema", adminController.ProductSchema)
	admin.Get("/resources/brands", "admin.brands.schema", adminController.BrandSchema)

	// Operational endpoints, unnamed on purpose.
	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/ws/admin", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, AdminHub)
	})
}

// WireEvents subscribes the admin hub to catalog change events and starts
// its event loop. Call once at boot.
func WireEvents() {
	go AdminHub.Run()

	names := []string{
		"product.created", "product.updated", "product.deleted",
		"brand.created", "brand.updated", "brand.deleted",
	}
	for _, name := range names {
		name := name
		event.Listen(name, func(payload interface{}) {
			msg, err := json.Marshal(map[string]interface{}{
				"event": name,
				"data":  payload,
			})
			if err != nil {
				return
			}
			select {
			case AdminHub.Broadcast <- msg:
			default:
				// Feed is best-effort; drop when the hub is backed up.
			}
		})
	}
}
