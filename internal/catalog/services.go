package catalog

// Service is one entry of the fixed service catalog consumed by the RFQ form.
// BaseDays is the base lead time in business days.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BaseDays    int    `json:"baseDaysEstimate"`
	Description string `json:"description"`
}

var serviceCatalog = []Service{
	{ID: "single-lumen", Name: "Single-Lumen Extrusion", BaseDays: 5,
		Description: "Standard single-lumen tube extrusion"},
	{ID: "multi-lumen", Name: "Multi-Lumen Extrusion", BaseDays: 7,
		Description: "Multi-lumen tube extrusion with custom lumen configuration"},
	{ID: "braiding", Name: "Braiding/Coiling", BaseDays: 3,
		Description: "Wire braiding or coiling for kink resistance"},
	{ID: "multi-braiding", Name: "Multi-Lumen + Braiding", BaseDays: 10,
		Description: "Multi-lumen extrusion with braiding/coiling"},
	{ID: "laser-welding", Name: "Laser Welding", BaseDays: 4,
		Description: "Precision laser welding services"},
	{ID: "tipping", Name: "Tipping", BaseDays: 3,
		Description: "Catheter tip forming and finishing"},
	{ID: "full-assembly", Name: "Full Assembly", BaseDays: 14,
		Description: "Complete catheter assembly with cleanroom manufacturing"},
	{ID: "quick-turn", Name: "Quick-Turn Prototype", BaseDays: 3,
		Description: "Rush prototype service (subject to availability)"},
}

// Services returns the service catalog. Not user-editable.
func Services() []Service {
	out := make([]Service, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}

// ServiceByID looks up a catalog entry.
func ServiceByID(id string) (Service, bool) {
	for _, s := range serviceCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
