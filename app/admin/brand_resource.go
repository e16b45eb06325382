package admin

// BrandResource is the admin descriptor for brands.
func BrandResource() Resource {
	return Resource{
		Name:   "brand",
		Plural: "brands",
		Fields: []Field{
			{
				Name:    "name",
				Input:   InputText,
				Section: "Details",
				Rules:   []string{"required", "max=255"},
			},
			{
				Name:       "slug",
				Input:      InputText,
				Section:    "Details",
				Rules:      []string{"required", "unique"},
				Disabled:   true,
				HelperText: "Generated from the name on creation.",
			},
			{
				Name:    "url",
				Label:   "Website",
				Input:   InputText,
				Section: "Details",
				Rules:   []string{"nullable", "url"},
			},
			{
				Name:    "primary_hex",
				Label:   "Primary Color",
				Input:   InputColor,
				Section: "Details",
				Rules:   []string{"nullable", "hex_color"},
			},
			{
				Name:       "is_visible",
				Label:      "Visibility",
				Input:      InputToggle,
				Section:    "Status",
				Default:    false,
				HelperText: "Enable or disable brand visibility",
			},
			{
				Name:      "description",
				Input:     InputMarkdown,
				Section:   "Details",
				FullWidth: true,
			},
		},
		Columns: []Column{
			{Name: "name", Display: ColumnText, Searchable: true, Sortable: true},
			{Name: "url", Label: "Website", Display: ColumnText, Toggleable: true},
			{Name: "primary_hex", Label: "Primary Color", Display: ColumnText},
			{Name: "is_visible", Label: "Visibility", Display: ColumnBooleanIcon, Sortable: true},
		},
		Filters: []Filter{
			{
				Name:       "is_visible",
				Label:      "Visibility",
				Kind:       FilterTernary,
				TrueLabel:  "Only visible brands",
				FalseLabel: "Only hidden brands",
			},
		},
	}
}
