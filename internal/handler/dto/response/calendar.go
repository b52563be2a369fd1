package response

import (
	"fmt"

	"rental-pricing-engine/internal/pkg/money"
	"rental-pricing-engine/internal/usecase/queries"
)

type CalendarDayResponse struct {
	Date            string `json:"date"`
	Available       bool   `json:"available"`
	Booked          bool   `json:"booked"`
	DemandLevel     string `json:"demandLevel"`
	DiscountPercent int    `json:"discountPercent"`
	Price           string `json:"price"`
	Recommended     bool   `json:"recommended"`
	Reason          string `json:"reason,omitempty"`
}

type WindowResponse struct {
	Label             string            `json:"label"`
	StartDate         string            `json:"startDate"`
	EndDate           string            `json:"endDate"`
	DayCount          int               `json:"dayCount"`
	UndiscountedTotal string            `json:"undiscountedTotal"`
	TotalSavings      string            `json:"totalSavings"`
	ExpectedTotal     string            `json:"expectedTotal"`
	Confidence        float64           `json:"confidence"`
	Reason            string            `json:"reason"`
	Source            string            `json:"source"`
	Breakdown         BreakdownResponse `json:"breakdown"`
}

type CalendarResponse struct {
	EquipmentID   string                `json:"equipmentId"`
	EquipmentName string                `json:"equipmentName"`
	Location      string                `json:"location,omitempty"`
	Images        []string              `json:"images"`
	Month         string                `json:"month"`
	Days          []CalendarDayResponse `json:"days"`
	Windows       []WindowResponse      `json:"windows"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	res := &CalendarResponse{
		EquipmentID:   v.Listing.ID,
		EquipmentName: v.Listing.Name,
		Location:      v.Listing.Location,
		Images:        append([]string{}, v.Listing.Images...),
		Month:         fmt.Sprintf("%04d-%02d", v.Year, int(v.Month)),
		Days:          make([]CalendarDayResponse, len(v.Days)),
		Windows:       make([]WindowResponse, len(v.Windows)),
	}
	for i, d := range v.Days {
		res.Days[i] = CalendarDayResponse{
			Date:            date(d.Date),
			Available:       d.Available,
			Booked:          d.Booked,
			DemandLevel:     string(d.DemandLevel),
			DiscountPercent: d.DiscountPercent,
			Price:           money.Display(d.Price),
			Recommended:     d.Recommended,
			Reason:          d.Reason,
		}
	}
	for i, w := range v.Windows {
		res.Windows[i] = WindowResponse{
			Label:             w.Label,
			StartDate:         date(w.Start),
			EndDate:           date(w.End),
			DayCount:          w.DayCount,
			UndiscountedTotal: money.Display(w.UndiscountedTotal),
			TotalSavings:      money.Display(w.TotalSavings),
			ExpectedTotal:     money.Display(w.ExpectedTotal),
			Confidence:        w.Confidence,
			Reason:            w.Reason,
			Source:            w.Source,
			Breakdown:         FromBreakdown(w.Breakdown),
		}
	}
	return res
}
