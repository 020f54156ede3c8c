package jsondoc

import (
	"strings"
	"testing"
)

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Parse() of invalid JSON returned nil error")
	}
}

func TestItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"array of objects", `[{"id":"a"},{"id":"b"}]`, 2},
		{"single object wraps", `{"id":"a"}`, 1},
		{"scalar wraps", `42`, 1},
		{"empty array", `[]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := len(Items(doc)); got != tt.want {
				t.Errorf("len(Items()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestString_CandidatePrecedence(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"Drake","title":"Feuerdrache"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, ok := Object(doc)
	if !ok {
		t.Fatal("Object() = false, want true")
	}

	// The first present candidate wins.
	if got := String(obj, "name", "title"); got != "Drake" {
		t.Errorf("String(name, title) = %q, want %q", got, "Drake")
	}
	if got := String(obj, "cardName", "title"); got != "Feuerdrache" {
		t.Errorf("String(cardName, title) = %q, want fallback %q", got, "Feuerdrache")
	}
	if got := String(obj, "missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
}

func TestString_NonStringValues(t *testing.T) {
	doc, _ := Parse([]byte(`{"id":42,"name":""}`))
	obj, _ := Object(doc)

	if got := String(obj, "id"); got != "" {
		t.Errorf("String() of numeric value = %q, want empty", got)
	}
	if got := String(obj, "name", "id"); got != "" {
		t.Errorf("String() skipping empty string = %q, want empty", got)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"integer", `{"qty":3}`, 3, true},
		{"zero", `{"qty":0}`, 0, true},
		{"negative", `{"qty":-2}`, -2, true},
		{"fractional", `{"qty":2.5}`, 0, false},
		{"string", `{"qty":"3"}`, 0, false},
		{"absent", `{}`, 0, false},
		{"null", `{"qty":null}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := Parse([]byte(tt.input))
			obj, _ := Object(doc)
			got, ok := Int(obj, "qty")
			if ok != tt.wantOK {
				t.Fatalf("Int() ok = %t, want %t", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHas(t *testing.T) {
	doc, _ := Parse([]byte(`{"id":null}`))
	obj, _ := Object(doc)

	if !Has(obj, "id") {
		t.Error("Has(id) = false, want true for null value")
	}
	if Has(obj, "name") {
		t.Error("Has(name) = true, want false")
	}
}

func TestFlatten(t *testing.T) {
	doc, _ := Parse([]byte(`{"Sections":[{"Title":"Mulligan Rules"}]}`))
	blob := Flatten(doc)

	if !strings.Contains(blob, "mulligan") {
		t.Errorf("Flatten() = %q, want it to contain %q", blob, "mulligan")
	}
	if strings.Contains(blob, "Mulligan") {
		t.Errorf("Flatten() = %q, want lower-cased output", blob)
	}
}
