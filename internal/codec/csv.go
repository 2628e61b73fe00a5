// Package codec implements the CSV and JSON import/export formats for the
// stock collection.
package codec

import (
	"fmt"
	"strings"

	"lightningcath-stock-api/internal/model"
)

// csvHeader is the fixed column order of the export format. Description and
// Notes are double-quoted with ""-escaped internal quotes; every other cell
// is emitted unquoted.
var csvHeader = []string{
	"ID",
	"Category",
	"Material Family",
	"Description",
	"Quantity",
	"Notes",
	// FEP Heat Shrink fields
	"Exp ID (MIN)",
	"Rec ID (MAX)",
	"Rec Wall",
	"Shrink Ratio",
	"Length",
	// Single Lumen Extrusions fields
	"Material",
	"ID Spec",
	"WT",
	"OD Ref",
}

// attrColumns maps the trailing CSV columns (index 6..14) onto attribute keys.
var attrColumns = []string{
	model.AttrExpIDMin,
	model.AttrRecIDMax,
	model.AttrRecWall,
	model.AttrShrinkRatio,
	model.AttrLength,
	model.AttrMaterial,
	model.AttrIDSpec,
	model.AttrWT,
	model.AttrODRef,
}

// ToCSV serializes the collection in the fixed column order.
func ToCSV(items []model.StockItem) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, item := range items {
		cells := make([]string, 0, len(csvHeader))
		cells = append(cells,
			item.ID,
			item.Category,
			item.MaterialFamily,
			quoteCell(item.Description),
			item.Quantity.String(),
			quoteCell(item.Notes),
		)
		for _, key := range attrColumns {
			cells = append(cells, item.Attr(key))
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, ","))
	}

	return b.String()
}

// quoteCell wraps a cell in double quotes, escaping internal quotes as "".
func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FromCSV parses CSV text back into a collection. The header row is required;
// blank lines are skipped. An empty optional cell means the attribute is
// absent, not empty-string. A malformed row aborts the whole parse.
func FromCSV(text string) ([]model.StockItem, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("csv: missing header row")
	}

	items := make([]model.StockItem, 0, len(lines)-1)
	for n, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells, err := splitCSVLine(line)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", n+2, err)
		}
		if len(cells) < 6 {
			return nil, fmt.Errorf("csv: line %d: expected at least 6 columns, got %d", n+2, len(cells))
		}

		item := model.StockItem{
			ID:             cells[0],
			Category:       cells[1],
			MaterialFamily: cells[2],
			Description:    cells[3],
			Quantity:       model.ParseQuantity(cells[4]),
			Notes:          cells[5],
		}
		for i, key := range attrColumns {
			col := 6 + i
			if col >= len(cells) {
				break
			}
			item.SetAttr(key, cells[col])
		}

		if item.ID == "" || item.Description == "" {
			return nil, fmt.Errorf("csv: line %d: ID and Description are required", n+2)
		}
		items = append(items, item)
	}
	return items, nil
}

// splitCSVLine splits a single line on commas, honoring double-quoted cells
// with ""-escaped quotes (the format the export emits). A quote only opens a
// quoted cell at the start of the cell; mid-cell quotes are literal, since
// inch-mark measurements like 0.098" appear unquoted in the data.
func splitCSVLine(line string) ([]string, error) {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes:
			if i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case c == '"' && current.Len() == 0:
			inQuotes = true
		case c == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quoted cell")
	}
	cells = append(cells, current.String())
	return cells, nil
}
