package model

import (
	"encoding/json"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Quantity
	}{
		{name: "coming_soon_sentinel", input: "Coming Soon!", want: Quantity{ComingSoon: true}},
		{name: "plain_number", input: "42", want: Quantity{Count: 42}},
		{name: "zero", input: "0", want: Quantity{Count: 0}},
		{name: "non_numeric_coerces_to_zero", input: "abc", want: Quantity{Count: 0}},
		{name: "negative_coerces_to_zero", input: "-5", want: Quantity{Count: 0}},
		{name: "empty_coerces_to_zero", input: "", want: Quantity{Count: 0}},
		{name: "sentinel_is_case_sensitive", input: "coming soon!", want: Quantity{Count: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			if got != tt.want {
				t.Errorf("ParseQuantity(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuantityJSON(t *testing.T) {
	tests := []struct {
		name string
		q    Quantity
		want string
	}{
		{name: "count", q: Quantity{Count: 70}, want: "70"},
		{name: "zero", q: Quantity{}, want: "0"},
		{name: "coming_soon", q: Quantity{ComingSoon: true}, want: `"Coming Soon!"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.q)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Quantity
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if back != tt.q {
				t.Errorf("round-trip = %+v, want %+v", back, tt.q)
			}
		})
	}
}

func TestQuantityUnmarshalString(t *testing.T) {
	var q Quantity
	if err := json.Unmarshal([]byte(`"15"`), &q); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if q != (Quantity{Count: 15}) {
		t.Errorf("got %+v, want count 15", q)
	}

	if err := json.Unmarshal([]byte(`true`), &q); err == nil {
		t.Error("expected error for boolean quantity")
	}
}

func TestStockItemJSONFlattensAttrs(t *testing.T) {
	item := StockItem{
		ID:             "fep-001",
		Category:       CategoryHeatShrink,
		MaterialFamily: "FEP",
		Description:    "FEP Heat Shrink 1.5:1",
		Quantity:       Quantity{Count: 70},
		Attrs: map[string]string{
			AttrExpIDMin:    "0.048\"",
			AttrShrinkRatio: "1.5:1",
		},
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	if obj["expIdMin"] != "0.048\"" {
		t.Errorf("expected flattened expIdMin, got %v", obj["expIdMin"])
	}
	if obj["shrinkRatio"] != "1.5:1" {
		t.Errorf("expected flattened shrinkRatio, got %v", obj["shrinkRatio"])
	}
	if _, ok := obj["attrs"]; ok {
		t.Error("attrs bag must not appear as a nested object")
	}
}

func TestStockItemJSONKeepsUnknownFields(t *testing.T) {
	raw := `{
		"id": "sle-099",
		"category": "Single Lumen Extrusions",
		"description": "Test extrusion",
		"quantity": "Coming Soon!",
		"material": "Pebax 72D",
		"coating": "hydrophilic",
		"lot_count": 3
	}`

	var item StockItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !item.Quantity.ComingSoon {
		t.Error("expected coming-soon quantity")
	}
	if item.Attr(AttrMaterial) != "Pebax 72D" {
		t.Errorf("known attr lost: %q", item.Attr(AttrMaterial))
	}
	if item.Attr("coating") != "hydrophilic" {
		t.Errorf("unknown string field must survive as attr, got %q", item.Attr("coating"))
	}
	// Non-string extras are dropped, not fatal.
	if _, ok := item.Attrs["lot_count"]; ok {
		t.Error("non-string extra must be dropped")
	}

	// And it survives a re-marshal.
	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("re-Marshal failed: %v", err)
	}
	var back StockItem
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("re-Unmarshal failed: %v", err)
	}
	if back.Attr("coating") != "hydrophilic" {
		t.Error("unknown attr lost on round-trip")
	}
}

func TestStockItemClone(t *testing.T) {
	item := StockItem{ID: "a", Attrs: map[string]string{"k": "v"}}
	cp := item.Clone()
	cp.SetAttr("k", "changed")

	if item.Attr("k") != "v" {
		t.Error("Clone must not share the attribute map")
	}
}

func TestSetAttrEmptyRemoves(t *testing.T) {
	var item StockItem
	item.SetAttr("length", "48\"")
	if item.Attr("length") != "48\"" {
		t.Fatalf("attr not set")
	}
	item.SetAttr("length", "")
	if _, ok := item.Attrs["length"]; ok {
		t.Error("empty value must remove the attribute")
	}
}
