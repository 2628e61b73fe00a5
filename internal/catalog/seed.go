// Package catalog holds the fixed seed datasets of the portal: the default
// stock list used whenever no persisted override exists, and the service
// catalog consumed by the RFQ form.
package catalog

import "lightningcath-stock-api/internal/model"

// seedStock is the immutable default stock collection, sourced from the
// LightningCath stock lists (Resin, FEP Heat Shrink, Single Lumen Extrusions).
var seedStock = []model.StockItem{
	// Resin: Polyurethane
	{ID: "resin-001", Category: model.CategoryResin, MaterialFamily: "Polyurethane", Description: "Pellethane 2363-75D, Natural"},
	{ID: "resin-002", Category: model.CategoryResin, MaterialFamily: "Polyurethane", Description: "Pellethane 2363-80AE, Natural"},
	{ID: "resin-003", Category: model.CategoryResin, MaterialFamily: "Polyurethane", Description: "Pellethane 2363-90AE, Natural"},

	// Resin: Polyethylene
	{ID: "resin-004", Category: model.CategoryResin, MaterialFamily: "Polyethylene", Description: "Repsol 55G HDPE, Natural"},

	// Resin: Acetal
	{ID: "resin-005", Category: model.CategoryResin, MaterialFamily: "Acetal", Description: "Celcon M50, Natural"},

	// Resin: Pebax
	{ID: "resin-006", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 2533 SA01 MED, Natural"},
	{ID: "resin-007", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 2533 SA01 MED, 20% BaSO4"},
	{ID: "resin-008", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 3533 SA01 MED, Natural"},
	{ID: "resin-009", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 3533 SA01 MED, 20% BaSO4"},
	{ID: "resin-010", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 3533 SA01 MED, Cool Grey 7C"},
	{ID: "resin-011", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 3533 SA01 MED, Dark Blue 295C"},
	{ID: "resin-012", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 4033 SA01 MED, Natural"},
	{ID: "resin-013", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 4533 SA01 MED, Natural"},
	{ID: "resin-014", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 5533 SA01 MED, Natural"},
	{ID: "resin-015", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 5533 SA01 MED, 20% BaSO4"},
	{ID: "resin-016", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 5533 SA01 MED, Cool Grey 7C"},
	{ID: "resin-017", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 5533 SA01 MED, Light Blue 2925C"},
	{ID: "resin-018", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 6333 SA01 MED, Natural"},
	{ID: "resin-019", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 6333 SA01 MED, Light Blue 2925C"},
	{ID: "resin-020", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 7033 SA01 MED, Natural"},
	{ID: "resin-021", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 7233 SA01 MED, Natural"},
	{ID: "resin-022", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 7233 SA01 MED, 20% BaSO4"},
	{ID: "resin-023", Category: model.CategoryResin, MaterialFamily: "Pebax", Description: "Pebax 7233 SA01 MED, Dark Blue 295C"},

	// Resin: Nylon
	{ID: "resin-024", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Besno MED, Natural"},
	{ID: "resin-025", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Grilamid L25, Natural"},
	{ID: "resin-026", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Grilamid TR90, Natural"},
	{ID: "resin-027", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Vestamid CARE ML21, Natural"},
	{ID: "resin-028", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Vestamid CARE ML21, 20% BaSO4"},
	{ID: "resin-029", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Vestamid CARE ML21, Dark Blue 295C"},
	{ID: "resin-030", Category: model.CategoryResin, MaterialFamily: "Nylon", Description: "Vestamid CARE ML24, Natural"},

	// Resin: Color Concentrate
	{ID: "resin-031", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx PEBA Color Concentrate, Black 7",
		Notes: "Colorant that can be mixed with Pebax/Nylon resins"},
	{ID: "resin-032", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx PEBA Color Concentrate, Blue 2925C",
		Notes: "Colorant that can be mixed with Pebax/Nylon resins"},
	{ID: "resin-033", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx PEBA Color Concentrate, Blue 295C",
		Notes: "Colorant that can be mixed with Pebax/Nylon resins"},
	{ID: "resin-034", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx PEBA Color Concentrate, Cool Grey 7C",
		Notes: "Colorant that can be mixed with Pebax/Nylon resins"},
	{ID: "resin-035", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx PEBA Color Concentrate, White",
		Notes: "Colorant that can be mixed with Pebax/Nylon resins"},
	{ID: "resin-036", Category: model.CategoryResin, MaterialFamily: "Color Concentrate", Description: "PurTone, Rx TPU Color Concentrate, Cool Grey 7C",
		Notes: "Colorant that can be mixed with TPU resins"},

	// FEP Heat Shrink
	{ID: "fep-001", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.068 Exp x 0.044 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.068"`, model.AttrRecIDMax: `0.044"`,
			model.AttrRecWall: `0.008"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-002", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.074 Exp x 0.047 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.074"`, model.AttrRecIDMax: `0.047"`,
			model.AttrRecWall: `0.008"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-003", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.085 Exp x 0.053 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.085"`, model.AttrRecIDMax: `0.053"`,
			model.AttrRecWall: `0.008"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-004", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.090 Exp x 0.058 Rec",
		Quantity:    model.Quantity{Count: 70},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.090"`, model.AttrRecIDMax: `0.058"`,
			model.AttrRecWall: `0.008"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-005", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.094 Exp x 0.057 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.094"`, model.AttrRecIDMax: `0.057"`,
			model.AttrRecWall: `0.008"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-006", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.110 Exp 0.068 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.110"`, model.AttrRecIDMax: `0.068"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-007", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.125 Exp x 0.075 Rec",
		Quantity:    model.Quantity{Count: 135},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.125"`, model.AttrRecIDMax: `0.075"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-008", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.130 Exp x 0.081 Rec",
		Quantity:    model.Quantity{Count: 100},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.130"`, model.AttrRecIDMax: `0.081"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-009", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.136 Exp x 0.085 Rec",
		Quantity:    model.Quantity{Count: 351},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.136"`, model.AttrRecIDMax: `0.085"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-010", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.150 Exp x 0.095 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.150"`, model.AttrRecIDMax: `0.095"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-011", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.172 Exp x 0.110 Rec",
		Quantity:    model.Quantity{Count: 28},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.172"`, model.AttrRecIDMax: `0.110"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-012", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.175 Exp x 0.109 Rec",
		Quantity:    model.Quantity{Count: 92},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.175"`, model.AttrRecIDMax: `0.109"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-013", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.180 Exp x 0.113 Rec",
		Quantity:    model.Quantity{Count: 58},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.180"`, model.AttrRecIDMax: `0.113"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-014", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.185 Exp x 0.115 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.185"`, model.AttrRecIDMax: `0.115"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-015", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.188 Exp x 0.118 Rec",
		Quantity:    model.Quantity{Count: 66},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.188"`, model.AttrRecIDMax: `0.118"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-016", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.200 Exp x 0.125 Rec",
		Quantity:    model.Quantity{Count: 80},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.200"`, model.AttrRecIDMax: `0.125"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-017", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.215 Exp x 0.135 Rec",
		Quantity:    model.Quantity{Count: 141},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.215"`, model.AttrRecIDMax: `0.135"`,
			model.AttrRecWall: `0.010"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-018", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.225 Exp x 0.140 Rec",
		Quantity:    model.Quantity{Count: 5},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.225"`, model.AttrRecIDMax: `0.140"`,
			model.AttrRecWall: `0.011"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-019", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.246 Exp x 0.153 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.246"`, model.AttrRecIDMax: `0.153"`,
			model.AttrRecWall: `0.011"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-020", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.250 Exp x 0.157 Rec",
		Quantity:    model.Quantity{Count: 357},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.250"`, model.AttrRecIDMax: `0.157"`,
			model.AttrRecWall: `0.011"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-021", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.265 Exp x 0.166 Rec",
		Quantity:    model.Quantity{Count: 38},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.265"`, model.AttrRecIDMax: `0.166"`,
			model.AttrRecWall: `0.011"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-022", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.275 Exp x 0.166 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.275"`, model.AttrRecIDMax: `0.172"`,
			model.AttrRecWall: `0.012"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-023", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.300 Exp x 0.188 Rec",
		Quantity:    model.Quantity{ComingSoon: true},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.300"`, model.AttrRecIDMax: `0.188"`,
			model.AttrRecWall: `0.011"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-024", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.350 Exp x 0.219 Rec",
		Quantity:    model.Quantity{Count: 380},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.350"`, model.AttrRecIDMax: `0.219"`,
			model.AttrRecWall: `0.012"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},
	{ID: "fep-025", Category: model.CategoryHeatShrink, MaterialFamily: "FEP Heat Shrink",
		Description: "FEP Heat Shrink, 0.375 Exp x 0.234 Rec",
		Quantity:    model.Quantity{Count: 90},
		Attrs: map[string]string{
			model.AttrExpIDMin: `0.375"`, model.AttrRecIDMax: `0.234"`,
			model.AttrRecWall: `0.012"`, model.AttrShrinkRatio: "1.6:1", model.AttrLength: `72"`,
		}},

	// Single Lumen Extrusions
	{ID: "sle-001", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.086" ± .001" ID, 0.005" ± .0005" WT, 0.096" (ref) OD`,
		Quantity:    model.Quantity{Count: 230},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.086" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.096" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-002", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.092" ± .001" ID, 0.005" ± .0005" WT, 0.102" (ref) OD`,
		Quantity:    model.Quantity{Count: 125},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.092" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.102" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-003", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.099" ± .001" ID, 0.005" ± .0005" WT, 0.109" (ref) OD`,
		Quantity:    model.Quantity{Count: 228},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.099" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.109" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-004", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.105" ± .001" ID, 0.005" ± .0005" WT, 0.115" (ref) OD`,
		Quantity:    model.Quantity{Count: 238},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.105" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.115" (ref)`, model.AttrLength: `66 + 1" - 0"`,
		}},
	{ID: "sle-005", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.112" ± .001" ID, 0.005" ± .0005" WT, 0.124" (ref) OD`,
		Quantity:    model.Quantity{Count: 235},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.112" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.124" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-006", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 72D Natural",
		Description: `Pebax 72D Natural, 0.118" ± .001" ID, 0.005" ± .0005" WT, 0.128" (ref) OD`,
		Quantity:    model.Quantity{Count: 245},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 72D Natural", model.AttrIDSpec: `0.118" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.128" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-007", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 63D Natural",
		Description: `Pebax 63D Natural, 0.170" ± .001" ID, 0.005" ± .0005" WT, 0.180" (ref) OD`,
		Quantity:    model.Quantity{Count: 98},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 63D Natural", model.AttrIDSpec: `0.170" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.180" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-008", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 63D Natural",
		Description: `Pebax 63D Natural, 0.175" ± .001" ID, 0.005" ± .0005" WT, 0.185" (ref) OD`,
		Quantity:    model.Quantity{Count: 98},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 63D Natural", model.AttrIDSpec: `0.175" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.185" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-009", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 63D Natural",
		Description: `Pebax 63D Natural, 0.180" ± .001" ID, 0.005" ± .0005" WT, 0.190" (ref) OD`,
		Quantity:    model.Quantity{Count: 98},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 63D Natural", model.AttrIDSpec: `0.180" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.190" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-010", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 63D Natural",
		Description: `Pebax 63D Natural, 0.190" ± .001" ID, 0.005" ± .0005" WT, 0.200" (ref) OD`,
		Quantity:    model.Quantity{Count: 97},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 63D Natural", model.AttrIDSpec: `0.190" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.200" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-011", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 55D Natural",
		Description: `Pebax 55D Natural, 0.053" ± .001" ID, 0.005" ± .0005" WT, 0.063" (ref) OD`,
		Quantity:    model.Quantity{Count: 190},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 55D Natural", model.AttrIDSpec: `0.053" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.063" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-012", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 55D Natural",
		Description: `Pebax 55D Natural, 0.060" ± .001" ID, 0.005" ± .0005" WT, 0.070" (ref) OD`,
		Quantity:    model.Quantity{Count: 174},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 55D Natural", model.AttrIDSpec: `0.060" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.070" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-013", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 55D Natural",
		Description: `Pebax 55D Natural, 0.066" ± .001" ID, 0.005" ± .0005" WT, 0.076" (ref) OD`,
		Quantity:    model.Quantity{Count: 230},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 55D Natural", model.AttrIDSpec: `0.066" ± .001"`,
			model.AttrWT: `0.005" ± .0005"`, model.AttrODRef: `0.076" (ref)`, model.AttrLength: `66" + 1" - 0"`,
		}},
	{ID: "sle-014", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.026" ± .001" ID, 0.002" ± .0005" WT, 0.030" (ref) OD`,
		Quantity:    model.Quantity{Count: 701},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.026" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.030" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-015", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.033" ± .001" ID, 0.002" ± .0005" WT, 0.037" (ref) OD`,
		Quantity:    model.Quantity{Count: 80},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.033" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.037" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-016", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.039" ± .001" ID, 0.002" ± .0005" WT, 0.043" (ref) OD`,
		Quantity:    model.Quantity{Count: 85},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.039" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.043" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-017", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.047" ± .001" ID, 0.002" ± .0005" WT, 0.051" (ref) OD`,
		Quantity:    model.Quantity{Count: 100},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.047" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.051" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-018", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.053" ± .001" ID, 0.002" ± .0005" WT, 0.057" (ref) OD`,
		Quantity:    model.Quantity{Count: 45},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.053" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.057" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-019", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.079" ± .001" ID, 0.002" ± .0005" WT, 0.083" (ref) OD`,
		Quantity:    model.Quantity{Count: 85},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.079" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.083" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-020", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.086" ± .001" ID, 0.002" ± .0005" WT, 0.090" (ref) OD`,
		Quantity:    model.Quantity{Count: 85},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.086" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.090" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-021", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.092" ± .001" ID, 0.002" ± .0005" WT, 0.096" (ref) OD`,
		Quantity:    model.Quantity{Count: 80},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.092" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.096" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-022", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.099" ± .001" ID, 0.002" ± .0005" WT, 0.103" (ref) OD`,
		Quantity:    model.Quantity{Count: 100},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.099" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.103" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-023", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.105" ± .001" ID, 0.002" ± .0005" WT, 0.109" (ref) OD`,
		Quantity:    model.Quantity{Count: 100},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.105" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.109" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-024", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.112" ± .001" ID, 0.002" ± .0005" WT, 0.116" (ref) OD`,
		Quantity:    model.Quantity{Count: 80},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.112" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.116" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-025", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 35D 20% BaSO4",
		Description: `Pebax 35D 20% BaSO4, 0.118" ± .001" ID, 0.002" ± .0005" WT, 0.122" (ref) OD`,
		Quantity:    model.Quantity{Count: 80},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 35D 20% BaSO4", model.AttrIDSpec: `0.118" ± .001"`,
			model.AttrWT: `0.002" ± .0005"`, model.AttrODRef: `0.122" (ref)`, model.AttrLength: `60" MIN`,
		}},
	{ID: "sle-026", Category: model.CategoryExtrusion, MaterialFamily: "Pebax 25D 20% BaSO4",
		Description: `Pebax 25D 20% BaSO4, 0.115" ± .002" ID, 0.0255" (REF) WT, 0.166" ± .003" OD`,
		Quantity:    model.Quantity{Count: 50},
		Attrs: map[string]string{
			model.AttrMaterial: "Pebax 25D 20% BaSO4", model.AttrIDSpec: `0.115" ± .002"`,
			model.AttrWT: `0.0255" (REF)`, model.AttrODRef: `0.166" ± .003"`, model.AttrLength: `48" MIN`,
		}},
}

// SeedStock returns a fresh deep copy of the default stock collection, so
// callers can mutate their copy without touching the seed.
func SeedStock() []model.StockItem {
	return model.CloneItems(seedStock)
}
