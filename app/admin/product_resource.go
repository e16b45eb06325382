package admin

import "github.com/shashiranjanraj/kirana/app/models"

// ProductResource is the admin descriptor for products. Section names group
// the form the way the back-office renders it: details and
// pricing/inventory on the left, status, image and associations on the
// right.
func ProductResource() Resource {
	typeOptions := make([]Option, 0, 2)
	for _, t := range models.ProductTypes() {
		typeOptions = append(typeOptions, Option{Value: string(t), Label: string(t)})
	}

	return Resource{
		Name:   "product",
		Plural: "products",
		Fields: []Field{
			{
				Name:    "name",
				Input:   InputText,
				Section: "Details",
				Rules:   []string{"required", "max=255", "unique"},
			},
			{
				Name:       "slug",
				Input:      InputText,
				Section:    "Details",
				Rules:      []string{"required", "unique"},
				Disabled:   true, // derived from name, immutable
				HelperText: "Generated from the name on creation.",
			},
			{
				Name:      "description",
				Input:     InputMarkdown,
				Section:   "Details",
				FullWidth: true,
			},
			{
				Name:    "sku",
				Label:   "SKU (Stock Keeping Unit)",
				Input:   InputText,
				Section: "Pricing and Inventory",
				Rules:   []string{"required", "max=100", "unique"},
			},
			{
				Name:    "price",
				Input:   InputText,
				Section: "Pricing and Inventory",
				Rules:   []string{"required", "decimal=10,2"},
			},
			{
				Name:    "quantity",
				Input:   InputNumber,
				Section: "Pricing and Inventory",
				Rules:   []string{"required", "integer", "between=0,2000"},
			},
			{
				Name:    "type",
				Input:   InputSelect,
				Section: "Pricing and Inventory",
				Rules:   []string{"required", "in=deliverable,downloadable"},
				Options: typeOptions,
			},
			{
				Name:       "is_visible",
				Label:      "Visibility",
				Input:      InputToggle,
				Section:    "Status",
				Default:    true,
				HelperText: "Enable or disable product visibility",
			},
			{
				Name:       "is_featured",
				Label:      "Featured",
				Input:      InputToggle,
				Section:    "Status",
				Default:    true,
				HelperText: "Enable or disable product featured state",
			},
			{
				Name:    "published_at",
				Label:   "Availability",
				Input:   InputDate,
				Section: "Status",
				Default: "now",
			},
			{
				Name:      "image",
				Input:     InputFile,
				Section:   "Image",
				UploadDir: "product-attachments",
			},
			{
				Name:     "brand_id",
				Input:    InputSelect,
				Section:  "Associations",
				Relation: &Relationship{Entity: "brand", DisplayField: "name"},
			},
		},
		Columns: []Column{
			{Name: "image", Display: ColumnImage},
			{Name: "name", Display: ColumnText, Searchable: true, Sortable: true},
			{Name: "brand.name", Display: ColumnText, Searchable: true, Sortable: true, Toggleable: true},
			{Name: "is_visible", Label: "Visibility", Display: ColumnBooleanIcon, Sortable: true, Toggleable: true},
			{Name: "price", Display: ColumnText, Sortable: true, Toggleable: true},
			{Name: "quantity", Display: ColumnText, Sortable: true, Toggleable: true},
			{Name: "published_at", Display: ColumnDate, Sortable: true},
			{Name: "type", Display: ColumnText},
		},
		Filters: []Filter{
			{
				Name:       "is_visible",
				Label:      "Visibility",
				Kind:       FilterTernary,
				TrueLabel:  "Only visible products",
				FalseLabel: "Only hidden products",
			},
			{
				Name:     "brand",
				Kind:     FilterSelect,
				Relation: &Relationship{Entity: "brand", DisplayField: "name"},
			},
		},
	}
}
