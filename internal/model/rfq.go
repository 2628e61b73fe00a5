package model

import "lightningcath-stock-api/pkg/apierror"

// RFQMaterial is a value snapshot of a selected stock item. Later inventory
// edits must not retroactively alter a submitted RFQ.
type RFQMaterial struct {
	MaterialFamily string `json:"materialFamily"`
	Description    string `json:"description"`
	Notes          string `json:"notes,omitempty"`
}

// RFQService is one selected service requirement.
type RFQService struct {
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Description string `json:"description"`
}

// RFQSpecifications holds the technical measurement fields of the form.
type RFQSpecifications struct {
	InnerDiameter string `json:"innerDiameter,omitempty"`
	OuterDiameter string `json:"outerDiameter,omitempty"`
	Length        string `json:"length,omitempty"`
	WallThickness string `json:"wallThickness,omitempty"`
	Other         string `json:"other,omitempty"`
}

// Empty reports whether no specification field is filled in.
func (s RFQSpecifications) Empty() bool {
	return s.InnerDiameter == "" && s.OuterDiameter == "" &&
		s.Length == "" && s.WallThickness == "" && s.Other == ""
}

// RFQRecord is a single quote request. Ephemeral; it is not persisted beyond
// the generated document.
type RFQRecord struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	ProjectName string `json:"projectName,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`

	SelectedMaterials []RFQMaterial     `json:"selectedMaterials"`
	Services          []RFQService      `json:"services"`
	Specifications    RFQSpecifications `json:"specifications"`
	AdditionalNotes   string            `json:"additionalNotes,omitempty"`
}

// HasProjectDetails reports whether any optional project field is filled in.
func (r *RFQRecord) HasProjectDetails() bool {
	return r.ProjectName != "" || r.Quantity != "" || r.TargetDate != ""
}

// Validate enforces the submittability invariant: all required customer
// fields present, at least one material and one service selected. It runs
// before any document is rendered or any network call is made.
func (r *RFQRecord) Validate() error {
	var details []apierror.FieldError

	required := []struct{ field, value string }{
		{"companyName", r.CompanyName},
		{"contactName", r.ContactName},
		{"email", r.Email},
		{"phone", r.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			details = append(details, apierror.FieldError{
				Field:   f.field,
				Message: "this field is required",
			})
		}
	}

	if len(r.SelectedMaterials) == 0 {
		details = append(details, apierror.FieldError{
			Field:   "selectedMaterials",
			Message: "select at least one material from the stock list",
		})
	}
	if len(r.Services) == 0 {
		details = append(details, apierror.FieldError{
			Field:   "services",
			Message: "select at least one service requirement",
		})
	}

	if len(details) > 0 {
		return apierror.ValidationError("RFQ is not submittable", details...)
	}
	return nil
}
