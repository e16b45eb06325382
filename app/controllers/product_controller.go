package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/app/resources"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/resource"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// ProductController maps the catalog service onto the admin REST routes.
type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{service: services.NewProductService()}
}

// Index lists products with search, sort, filters and pagination.
//
// Query parameters: page, per_page, search, sort, dir=asc|desc,
// visible=1|0 (ternary filter; absent = all), brand_id.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := repositories.ProductListOptions{
		Search:  q.Get("search"),
		Sort:    q.Get("sort"),
		Desc:    q.Get("dir") == "desc",
		Page:    intParam(q.Get("page"), 1),
		PerPage: intParam(q.Get("per_page"), 25),
	}
	if v := q.Get("visible"); v == "1" || v == "0" {
		visible := v == "1"
		opts.Visible = &visible
	}
	if v := q.Get("brand_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			brandID := uint(id)
			opts.BrandID = &brandID
		}
	}

	products, pagination, err := c.service.List(opts)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not list products")
		return
	}

	response.Paginated(w, products, pagination)
}

// Show returns one product.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resource.New(resources.ProductResource{}, product).Respond(w)
}

// Store creates a product.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, product)
}

// Update edits a product. The slug is immutable and never part of the
// payload.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input services.ProductInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Update(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, product)
}

// Destroy deletes a product.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}

	response.NoContent(w)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

// idParam parses the {id} route parameter, writing a 404 on garbage.
func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(w)
		return 0, false
	}
	return uint(id), true
}

func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// writeServiceError maps the two domain error kinds onto their HTTP shapes;
// anything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if ve, ok := services.AsValidation(err); ok {
		response.ValidationError(w, ve.Fields)
		return
	}
	if _, ok := services.AsNotFound(err); ok {
		response.NotFound(w)
		return
	}
	response.Error(w, http.StatusInternalServerError, "Internal server error")
}
