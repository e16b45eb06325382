package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/admin"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// AdminController serves the resource descriptors the rendering layer
// consumes to draw forms, tables and filters.
type AdminController struct{}

func NewAdminController() *AdminController {
	return &AdminController{}
}

// Resources lists every descriptor.
func (c *AdminController) Resources(w http.ResponseWriter, r *http.Request) {
	response.Success(w, []admin.Resource{
		admin.ProductResource(),
		admin.BrandResource(),
	})
}

// ProductSchema returns the product descriptor.
func (c *AdminController) ProductSchema(w http.ResponseWriter, r *http.Request) {
	response.Success(w, admin.ProductResource())
}

// BrandSchema returns the brand descriptor.
func (c *AdminController) BrandSchema(w http.ResponseWriter, r *http.Request) {
	response.Success(w, admin.BrandResource())
}
