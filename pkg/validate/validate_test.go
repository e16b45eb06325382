package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/validate"
)

type productInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Price    string `json:"price"    validate:"required,decimal=10,2"`
	Quantity *int   `json:"quantity" validate:"required,integer,between=0,2000"`
	Type     string `json:"type"     validate:"required,in=deliverable,downloadable"`
	Hex      string `json:"hex"      validate:"nullable,hex_color"`
	Website  string `json:"website"  validate:"nullable,url"`
}

func intp(n int) *int { return &n }

func TestValidProductInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Wireless Mouse",
		Price:    "24.99",
		Quantity: intp(50),
		Type:     "deliverable",
		Hex:      "#ff6600",
		Website:  "https://example.com",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestDecimalRule(t *testing.T) {
	accepted := []string{"99.99", "0", "9999999999.99", "5", "5.", "10.5"}
	rejected := []string{"99.999", "-1", "12345678901", "abc", "1,000", ""}

	for _, price := range accepted {
		errs := validate.Struct(productInput{
			Name: "x", Price: price, Quantity: intp(1), Type: "deliverable",
		})
		if _, ok := errs["price"]; ok {
			t.Errorf("price %q should be accepted, got %q", price, errs["price"])
		}
	}
	for _, price := range rejected {
		errs := validate.Struct(productInput{
			Name: "x", Price: price, Quantity: intp(1), Type: "deliverable",
		})
		if _, ok := errs["price"]; !ok {
			t.Errorf("price %q should be rejected", price)
		}
	}
}

func TestQuantityPointerSemantics(t *testing.T) {
	// Zero through a pointer is present, not missing.
	errs := validate.Struct(productInput{
		Name: "x", Price: "1", Quantity: intp(0), Type: "deliverable",
	})
	if _, ok := errs["quantity"]; ok {
		t.Errorf("quantity 0 should be accepted, got %q", errs["quantity"])
	}

	// Nil pointer fails required.
	errs = validate.Struct(productInput{
		Name: "x", Price: "1", Quantity: nil, Type: "deliverable",
	})
	if _, ok := errs["quantity"]; !ok {
		t.Error("absent quantity should be rejected")
	}

	for _, bad := range []int{-1, 2001} {
		errs = validate.Struct(productInput{
			Name: "x", Price: "1", Quantity: intp(bad), Type: "deliverable",
		})
		if _, ok := errs["quantity"]; !ok {
			t.Errorf("quantity %d should be rejected", bad)
		}
	}
	for _, good := range []int{0, 2000} {
		errs = validate.Struct(productInput{
			Name: "x", Price: "1", Quantity: intp(good), Type: "deliverable",
		})
		if _, ok := errs["quantity"]; ok {
			t.Errorf("quantity %d should be accepted", good)
		}
	}
}

func TestInRuleWithMultipleValues(t *testing.T) {
	for _, good := range []string{"deliverable", "downloadable"} {
		errs := validate.Struct(productInput{
			Name: "x", Price: "1", Quantity: intp(1), Type: good,
		})
		if _, ok := errs["type"]; ok {
			t.Errorf("type %q should be accepted", good)
		}
	}

	errs := validate.Struct(productInput{
		Name: "x", Price: "1", Quantity: intp(1), Type: "streamable",
	})
	if _, ok := errs["type"]; !ok {
		t.Error("unknown type should be rejected")
	}
}

func TestHexColorRule(t *testing.T) {
	for _, good := range []string{"#fff", "#FF6600", "#a1b2c3", ""} {
		errs := validate.Struct(productInput{
			Name: "x", Price: "1", Quantity: intp(1), Type: "deliverable", Hex: good,
		})
		if _, ok := errs["hex"]; ok {
			t.Errorf("hex %q should be accepted", good)
		}
	}
	for _, bad := range []string{"fff", "#ff66", "#ggg", "orange"} {
		errs := validate.Struct(productInput{
			Name: "x", Price: "1", Quantity: intp(1), Type: "deliverable", Hex: bad,
		})
		if _, ok := errs["hex"]; !ok {
			t.Errorf("hex %q should be rejected", bad)
		}
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(productInput{
		Name: "x", Price: "1", Quantity: intp(1), Type: "deliverable",
		Website: "",
	})
	if _, ok := errs["website"]; ok {
		t.Error("empty nullable field should pass")
	}

	errs = validate.Struct(productInput{
		Name: "x", Price: "1", Quantity: intp(1), Type: "deliverable",
		Website: "not a url",
	})
	if _, ok := errs["website"]; !ok {
		t.Error("bad url should fail once non-empty")
	}
}

func TestParseDate(t *testing.T) {
	for _, good := range []string{"2024-03-15", "2024-03-15T10:00:00Z", "15/03/2024"} {
		if _, err := validate.ParseDate(good); err != nil {
			t.Errorf("date %q should parse: %v", good, err)
		}
	}
	if _, err := validate.ParseDate("yesterday"); err == nil {
		t.Error("garbage date should not parse")
	}
}
