package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Product categories known to the portal. Persistence and the CSV codec
// tolerate values outside this set; only UI grouping depends on it.
const (
	CategoryResin       = "Resin"
	CategoryHeatShrink  = "FEP Heat Shrink"
	CategoryExtrusion   = "Single Lumen Extrusions"
)

// Categories returns the closed set of categories in display order.
func Categories() []string {
	return []string{CategoryResin, CategoryHeatShrink, CategoryExtrusion}
}

// ComingSoonLabel is the sentinel quantity for items that are not yet
// orderable. Distinct from a numeric zero, which means out of stock.
const ComingSoonLabel = "Coming Soon!"

// Quantity is a tagged value: either a non-negative count or the
// "Coming Soon!" sentinel.
type Quantity struct {
	ComingSoon bool
	Count      int
}

// ParseQuantity is the single coercion point for quantity input, shared by
// the CSV codec, inline admin edits, and JSON import. The literal sentinel
// passes through; any other non-numeric text coerces to 0.
func ParseQuantity(s string) Quantity {
	if s == ComingSoonLabel {
		return Quantity{ComingSoon: true}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Quantity{Count: 0}
	}
	return Quantity{Count: n}
}

// String renders the quantity the way it appears in CSV cells and UI tables.
func (q Quantity) String() string {
	if q.ComingSoon {
		return ComingSoonLabel
	}
	return strconv.Itoa(q.Count)
}

// MarshalJSON encodes the quantity as a number, or as the sentinel string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.ComingSoon {
		return json.Marshal(ComingSoonLabel)
	}
	return json.Marshal(q.Count)
}

// UnmarshalJSON accepts a number or a string; strings go through ParseQuantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			n = 0
		}
		*q = Quantity{Count: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("quantity must be a number or a string: %w", err)
	}
	*q = ParseQuantity(s)
	return nil
}

// Attribute keys for the category-specific extension bag. FEP Heat Shrink
// uses the first five, Single Lumen Extrusions the last four plus length.
const (
	AttrExpIDMin    = "expIdMin"
	AttrRecIDMax    = "recIdMax"
	AttrRecWall     = "recWall"
	AttrShrinkRatio = "shrinkRatio"
	AttrLength      = "length"
	AttrMaterial    = "material"
	AttrIDSpec      = "id_spec"
	AttrWT          = "wt"
	AttrODRef       = "odRef"
)

// StockItem is a stocked or orderable product line.
//
// Attrs is a polymorphic bag of optional string-valued technical fields whose
// meaning depends on Category. The JSON codec flattens it into the item
// object and preserves unknown string fields opaquely, so the schema can grow
// without breaking round-trips.
type StockItem struct {
	ID             string
	Category       string
	MaterialFamily string
	Description    string
	Notes          string
	Quantity       Quantity
	Attrs          map[string]string
}

// Attr returns the named attribute, or "" when absent.
func (s *StockItem) Attr(key string) string {
	return s.Attrs[key]
}

// SetAttr sets an attribute; an empty value removes it.
func (s *StockItem) SetAttr(key, value string) {
	if value == "" {
		delete(s.Attrs, key)
		return
	}
	if s.Attrs == nil {
		s.Attrs = make(map[string]string)
	}
	s.Attrs[key] = value
}

// Clone returns a deep copy of the item.
func (s StockItem) Clone() StockItem {
	out := s
	if s.Attrs != nil {
		out.Attrs = make(map[string]string, len(s.Attrs))
		for k, v := range s.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// CloneItems returns a deep copy of a collection.
func CloneItems(items []StockItem) []StockItem {
	out := make([]StockItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// MarshalJSON flattens the attribute bag into the item object.
func (s StockItem) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, 6+len(s.Attrs))
	obj["id"] = s.ID
	obj["category"] = s.Category
	obj["materialFamily"] = s.MaterialFamily
	obj["description"] = s.Description
	obj["notes"] = s.Notes
	obj["quantity"] = s.Quantity
	for k, v := range s.Attrs {
		obj[k] = v
	}
	return json.Marshal(obj)
}

// UnmarshalJSON extracts the base fields and keeps every other string-valued
// field as an opaque attribute.
func (s *StockItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) (string, error) {
		msg, ok := raw[key]
		if !ok {
			return "", nil
		}
		var v string
		if err := json.Unmarshal(msg, &v); err != nil {
			return "", fmt.Errorf("field %q: %w", key, err)
		}
		return v, nil
	}

	var err error
	if s.ID, err = str("id"); err != nil {
		return err
	}
	if s.Category, err = str("category"); err != nil {
		return err
	}
	if s.MaterialFamily, err = str("materialFamily"); err != nil {
		return err
	}
	if s.Description, err = str("description"); err != nil {
		return err
	}
	if s.Notes, err = str("notes"); err != nil {
		return err
	}

	s.Quantity = Quantity{}
	if msg, ok := raw["quantity"]; ok {
		if err := json.Unmarshal(msg, &s.Quantity); err != nil {
			return err
		}
	}

	base := map[string]bool{
		"id": true, "category": true, "materialFamily": true,
		"description": true, "notes": true, "quantity": true,
	}
	s.Attrs = nil
	for key, msg := range raw {
		if base[key] {
			continue
		}
		var v string
		if err := json.Unmarshal(msg, &v); err != nil {
			// Non-string extras are dropped rather than failing the item.
			continue
		}
		if v == "" {
			continue
		}
		if s.Attrs == nil {
			s.Attrs = make(map[string]string)
		}
		s.Attrs[key] = v
	}
	return nil
}
