package request

import (
	"strings"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/usecase/queries"
)

// DateRange is embedded by every request that prices a rental period.
type DateRange struct {
	StartDate string `json:"startDate" binding:"required" example:"2026-03-02"`
	EndDate   string `json:"endDate" binding:"required" example:"2026-03-11"`
}

func (r DateRange) Parse() (time.Time, time.Time, error) {
	start, err := daterange.Parse(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := daterange.Parse(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// PricingOptions are the renter's choices layered on top of the rate schedule.
type PricingOptions struct {
	PromoCode       string `json:"promoCode,omitempty" binding:"max=32" example:"SUMMER20"`
	InsurancePlanID string `json:"insurancePlanId,omitempty" binding:"max=64" example:"standard"`
	Delivery        bool   `json:"delivery"`
}

func (o PricingOptions) promoCode() string {
	return strings.TrimSpace(o.PromoCode)
}

type QuoteRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required,max=64" example:"excavator-mini-01"`
	DateRange
	PricingOptions
}

func (r QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	start, end, err := r.Parse()
	if err != nil {
		return queries.QuoteRequest{}, err
	}
	return queries.QuoteRequest{
		EquipmentID:     r.EquipmentID,
		StartDate:       start,
		EndDate:         end,
		PromoCode:       r.promoCode(),
		InsurancePlanID: r.InsurancePlanID,
		Delivery:        r.Delivery,
	}, nil
}

// ClickRequest carries the picker's current selection and the date just clicked.
type ClickRequest struct {
	EquipmentID string  `json:"equipmentId" binding:"required,max=64"`
	Start       *string `json:"start,omitempty"`
	End         *string `json:"end,omitempty"`
	Date        string  `json:"date" binding:"required"`
	PricingOptions
}

func (r ClickRequest) ToQuery() (queries.ClickRequest, error) {
	date, err := daterange.Parse(r.Date)
	if err != nil {
		return queries.ClickRequest{}, err
	}
	start, err := optionalDate(r.Start)
	if err != nil {
		return queries.ClickRequest{}, err
	}
	end, err := optionalDate(r.End)
	if err != nil {
		return queries.ClickRequest{}, err
	}
	return queries.ClickRequest{
		EquipmentID:     r.EquipmentID,
		Start:           start,
		End:             end,
		Date:            date,
		PromoCode:       r.promoCode(),
		InsurancePlanID: r.InsurancePlanID,
		Delivery:        r.Delivery,
	}, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := daterange.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseMonth reads a YYYY-MM query value.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, daterange.ErrMalformedDate
	}
	return t.Year(), t.Month(), nil
}
