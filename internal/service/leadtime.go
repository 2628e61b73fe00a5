package service

import (
	"time"

	"lightningcath-stock-api/internal/catalog"
	"lightningcath-stock-api/pkg/apierror"
)

// LeadTimeEstimate is the delivery estimate for one service.
type LeadTimeEstimate struct {
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	BusinessDays  int    `json:"business_days"`
	DeliveryDate  string `json:"delivery_date"`
	FormattedDate string `json:"formatted_date"`
}

// EstimateLeadTime computes the estimated delivery date for a catalog
// service, counting business days from start.
func EstimateLeadTime(serviceID string, start time.Time) (LeadTimeEstimate, error) {
	svc, ok := catalog.ServiceByID(serviceID)
	if !ok {
		return LeadTimeEstimate{}, apierror.NotFound("service type '" + serviceID + "' not found")
	}

	delivery := AddBusinessDays(start, svc.BaseDays)
	return LeadTimeEstimate{
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		BusinessDays:  svc.BaseDays,
		DeliveryDate:  delivery.Format("2006-01-02"),
		FormattedDate: delivery.Format("Monday, January 2, 2006"),
	}, nil
}

// AddBusinessDays advances the date by n business days, skipping weekends.
func AddBusinessDays(start time.Time, n int) time.Time {
	t := start
	for added := 0; added < n; {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return t
}
