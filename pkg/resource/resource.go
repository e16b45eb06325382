// Package resource provides API resource transformers: a Resource controls
// exactly what JSON shape a model is serialized to, independent of the GORM
// struct tags.
//
//	type BrandResource struct{ resource.Base }
//	func (r *BrandResource) ToArray(v any) resource.Map {
//	    b := v.(models.Brand)
//	    return resource.Map{"id": b.ID, "name": b.Name, "slug": b.Slug}
//	}
//
//	resource.New(&BrandResource{}, brand).Respond(w)
//	resource.CollectionOf(&BrandResource{}, brands).WithPagination(p).Respond(w)
package resource

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/shashiranjanraj/kirana/pkg/orm"
)

// Map is the output shape of a transformer.
type Map = map[string]interface{}

// Transformer converts one model instance into its API representation.
type Transformer interface {
	ToArray(v interface{}) Map
}

// Base can be embedded in any Resource to satisfy future extension points.
type Base struct{}

// ------------------- Single resource -------------------

// Resource wraps a single model with its transformer.
type Resource struct {
	transformer Transformer
	data        interface{}
	meta        Map
}

// New creates a Resource for a single model instance.
func New(t Transformer, data interface{}) *Resource {
	return &Resource{transformer: t, data: data}
}

// WithMeta attaches additional metadata to the response envelope.
func (r *Resource) WithMeta(meta Map) *Resource {
	r.meta = meta
	return r
}

// MarshalJSON implements json.Marshaler so a Resource can be nested inside
// another transformer's output.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.transformer.ToArray(r.data))
}

// Respond writes the resource as JSON with status 200.
func (r *Resource) Respond(w http.ResponseWriter) {
	out := Map{"data": r.transformer.ToArray(r.data)}
	if r.meta != nil {
		out["meta"] = r.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Collection resource -------------------

// Collection wraps a slice of models with a transformer.
type Collection struct {
	transformer Transformer
	items       interface{}
	pagination  *orm.Pagination
	meta        Map
}

// CollectionOf creates a Collection from a slice. items must be a
// []SomeModel; each element is passed to the transformer with its
// concrete type intact.
func CollectionOf(t Transformer, items interface{}) *Collection {
	return &Collection{transformer: t, items: items}
}

// WithPagination attaches pagination metadata.
func (c *Collection) WithPagination(p orm.Pagination) *Collection {
	c.pagination = &p
	return c
}

// WithMeta attaches extra metadata.
func (c *Collection) WithMeta(meta Map) *Collection {
	c.meta = meta
	return c
}

// Respond writes the collection as JSON with status 200.
func (c *Collection) Respond(w http.ResponseWriter) {
	result := []Map{}

	rv := reflect.ValueOf(c.items)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			result = append(result, c.transformer.ToArray(rv.Index(i).Interface()))
		}
	}

	out := Map{"data": result}
	if c.pagination != nil {
		out["pagination"] = c.pagination
	}
	if c.meta != nil {
		out["meta"] = c.meta
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------- Helpers -------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
