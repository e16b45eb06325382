package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/kirana/app/resources"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/resource"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// BrandController maps the brand service onto the admin REST routes.
type BrandController struct {
	service *services.BrandService
}

func NewBrandController() *BrandController {
	return &BrandController{service: services.NewBrandService()}
}

// Index lists brands with pagination.
func (c *BrandController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	brands, pagination, err := c.service.List(intParam(q.Get("page"), 1), intParam(q.Get("per_page"), 25))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not list brands")
		return
	}

	response.Paginated(w, brands, pagination)
}

// Show returns one brand.
func (c *BrandController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	brand, err := c.service.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resource.New(resources.BrandResource{}, brand).Respond(w)
}

// Store creates a brand.
func (c *BrandController) Store(w http.ResponseWriter, r *http.Request) {
	var input services.BrandInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	brand, err := c.service.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, brand)
}

// Update edits a brand.
func (c *BrandController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input services.BrandInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	brand, err := c.service.Update(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, brand)
}

// Destroy deletes a brand. Its products survive with brand_id nulled out.
func (c *BrandController) Destroy(w http.ResponseWriter, r *http.Request) {
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
