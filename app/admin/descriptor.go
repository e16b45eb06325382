// Package admin describes the back-office UI as data. Each Resource is a
// field-descriptor list — form fields, table columns, filters — that any
// rendering layer can consume as JSON without knowing the models behind it.
package admin

// Field input types understood by the rendering layer.
const (
	InputText     = "text"
	InputMarkdown = "markdown"
	InputNumber   = "number"
	InputSelect   = "select"
	InputToggle   = "toggle"
	InputDate     = "date"
	InputFile     = "file"
	InputColor    = "color"
)

// Column display types.
const (
	ColumnText        = "text"
	ColumnImage       = "image"
	ColumnBooleanIcon = "boolean_icon"
	ColumnDate        = "date"
)

// Filter kinds.
const (
	// FilterTernary is a three-state filter over a boolean column:
	// all / true-only / false-only.
	FilterTernary = "ternary"
	// FilterSelect narrows the list to one value of a related entity.
	FilterSelect = "select"
)

// Option is one selectable value for a select input.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Relationship points a select input or filter at a related entity.
type Relationship struct {
	Entity       string `json:"entity"`        // e.g. "brand"
	DisplayField string `json:"display_field"` // e.g. "name"
}

// Field describes one form input.
type Field struct {
	Name       string        `json:"name"`
	Label      string        `json:"label,omitempty"`
	Input      string        `json:"input"`
	Section    string        `json:"section,omitempty"`
	Rules      []string      `json:"rules,omitempty"`
	Default    interface{}   `json:"default,omitempty"`
	HelperText string        `json:"helper_text,omitempty"`
	Disabled   bool          `json:"disabled,omitempty"`
	FullWidth  bool          `json:"full_width,omitempty"`
	Options    []Option      `json:"options,omitempty"`
	Relation   *Relationship `json:"relation,omitempty"`
	UploadDir  string        `json:"upload_dir,omitempty"`
}

// Column describes one table column of the list view.
type Column struct {
	Name       string `json:"name"`
	Label      string `json:"label,omitempty"`
	Display    string `json:"display"`
	Searchable bool   `json:"searchable,omitempty"`
	Sortable   bool   `json:"sortable,omitempty"`
	Toggleable bool   `json:"toggleable,omitempty"`
}

// Filter describes one list-view filter.
type Filter struct {
	Name       string        `json:"name"`
	Label      string        `json:"label,omitempty"`
	Kind       string        `json:"kind"`
	TrueLabel  string        `json:"true_label,omitempty"`
	FalseLabel string        `json:"false_label,omitempty"`
	Relation   *Relationship `json:"relation,omitempty"`
}

// Resource is the complete descriptor for one admin entity.
type Resource struct {
	Name    string   `json:"name"`   // singular, e.g. "product"
	Plural  string   `json:"plural"` // list route segment, e.g. "products"
	Fields  []Field  `json:"fields"`
	Columns []Column `json:"columns"`
	Filters []Filter `json:"filters"`
}
