// Package graphql exposes a read-only catalog query API for rendering
// layers that prefer a single endpoint over the REST routes.
//
//	{ products(visible: true, search: "mouse") { name slug price brand { name } } }
package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	gql "github.com/shashiranjanraj/kirana/pkg/graphql"
)

var brandType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Brand",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"url":         &graphql.Field{Type: graphql.String},
		"primary_hex": &graphql.Field{Type: graphql.String},
		"is_visible":  &graphql.Field{Type: graphql.Boolean},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"slug":        &graphql.Field{Type: graphql.String},
		"sku":         &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"image":       &graphql.Field{Type: graphql.String},
		"quantity":    &graphql.Field{Type: graphql.Int},
		"price": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				product, ok := p.Source.(models.Product)
				if !ok {
					return nil, nil
				}
				return product.Price.StringFixed(2), nil
			},
		},
		"is_visible":  &graphql.Field{Type: graphql.Boolean},
		"is_featured": &graphql.Field{Type: graphql.Boolean},
		"type":        &graphql.Field{Type: graphql.String},
		"live": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				product, ok := p.Source.(models.Product)
				if !ok {
					return nil, nil
				}
				return product.Live(time.Now()), nil
			},
		},
		"brand": &graphql.Field{
			Type: brandType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				product, ok := p.Source.(models.Product)
				if !ok || product.Brand == nil {
					return nil, nil
				}
				return *product.Brand, nil
			},
		},
	},
})

// NewSchema builds the catalog query schema.
func NewSchema() (graphql.Schema, error) {
	products := repositories.NewProductRepository()
	brands := repositories.NewBrandRepository()

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					product, err := products.FindByID(uint(id))
					if err != nil {
						return nil, nil
					}
					return product, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"visible": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"search":  &graphql.ArgumentConfig{Type: graphql.String},
					"brandId": &graphql.ArgumentConfig{Type: graphql.Int},
					"limit":   &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 25},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					opts := repositories.ProductListOptions{
						Sort:    "name",
						Page:    1,
						PerPage: 25,
					}
					if limit, ok := p.Args["limit"].(int); ok {
						opts.PerPage = limit
					}
					if search, ok := p.Args["search"].(string); ok {
						opts.Search = search
					}
					if visible, ok := p.Args["visible"].(bool); ok {
						opts.Visible = &visible
					}
					if brandID, ok := p.Args["brandId"].(int); ok {
						id := uint(brandID)
						opts.BrandID = &id
					}

					// The plain visible listing is the storefront's hot
					// query: serve it through the cache. Filtered or
					// unrestricted queries go to the database.
					if opts.Visible != nil && *opts.Visible && opts.Search == "" && opts.BrandID == nil {
						items, err := products.CachedVisible(time.Now())
						if err != nil {
							return nil, err
						}
						if len(items) > opts.PerPage {
							items = items[:opts.PerPage]
						}
						return items, nil
					}

					items, _, err := products.List(opts)
					return items, err
				},
			},
			"brands": &graphql.Field{
				Type: graphql.NewList(brandType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					items, _, err := brands.All(1, 100)
					return items, err
				},
			},
		},
	})

	return gql.NewSchema(rootQuery)
}
