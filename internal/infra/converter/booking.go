package converter

import (
	"fmt"
	"math"

	"rental-pricing-engine/internal/domain/insurance"
	"rental-pricing-engine/internal/domain/pricing"
	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/infra/db"
	"rental-pricing-engine/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func BookingToInfra(b *pricing.BookingDetails) db.Booking {
	if b.TotalDays > math.MaxInt32 || b.TotalDays < 0 {
		panic(fmt.Sprintf("total days out of int32 range: %d", b.TotalDays))
	}
	bd := b.Breakdown

	row := db.Booking{
		ID:               b.ID,
		EquipmentID:      b.EquipmentID,
		RenterID:         b.RenterID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		TotalDays:        int32(b.TotalDays),
		RateTier:         string(bd.Tier),
		NaiveTotal:       pgconv.DecimalToText(bd.NaiveTotal),
		BasePrice:        pgconv.DecimalToText(bd.BasePrice),
		DurationDiscount: pgconv.DecimalToText(bd.DurationDiscount),
		PromoDiscount:    pgconv.DecimalToText(bd.PromoDiscount),
		InsurancePlanID:  pgconv.OptionalText(bd.InsurancePlanID),
		InsuranceAmount:  pgconv.DecimalToText(bd.InsuranceAmount),
		Delivery:         b.Delivery,
		DeliveryAddress:  pgconv.OptionalText(b.DeliveryAddress),
		DeliveryFee:      pgconv.DecimalToText(bd.DeliveryFee),
		ServiceFee:       pgconv.DecimalToText(bd.ServiceFee),
		Deposit:          pgconv.DecimalToText(bd.Deposit),
		Total:            pgconv.DecimalToText(bd.Total),
		NegotiationID:    pgconv.UUIDPtrToPgtype(b.NegotiationID),
		NegotiatedTotal:  pgconv.DecimalPtrToPgtype(b.NegotiatedTotal),
		Notes:            pgconv.OptionalText(b.Notes),
		CreatedAt:        b.CreatedAt,
	}
	// Only a redeemed code is worth keeping on the record.
	if bd.PromoStatus == pricing.PromoApplied {
		row.PromoCode = pgconv.OptionalText(string(bd.PromoCode))
	}
	return row
}

// BookingFromInfra rebuilds the booking record. plans resolves the stored
// insurance plan ID; a plan no longer offered leaves Insurance nil.
func BookingFromInfra(row db.Booking, plans *insurance.Catalog) (*pricing.BookingDetails, error) {
	var bd pricing.Breakdown
	amounts := []struct {
		src string
		dst *decimal.Decimal
	}{
		{row.NaiveTotal, &bd.NaiveTotal},
		{row.BasePrice, &bd.BasePrice},
		{row.DurationDiscount, &bd.DurationDiscount},
		{row.PromoDiscount, &bd.PromoDiscount},
		{row.InsuranceAmount, &bd.InsuranceAmount},
		{row.DeliveryFee, &bd.DeliveryFee},
		{row.ServiceFee, &bd.ServiceFee},
		{row.Deposit, &bd.Deposit},
		{row.Total, &bd.Total},
	}
	for _, a := range amounts {
		d, err := pgconv.DecimalFromText(a.src)
		if err != nil {
			return nil, fmt.Errorf("booking %s: malformed amount %q: %w", row.ID, a.src, err)
		}
		*a.dst = d
	}

	bd.DayCount = int(row.TotalDays)
	bd.Tier = rate.Tier(row.RateTier)
	bd.DiscountedBase = bd.BasePrice.Sub(bd.PromoDiscount)
	bd.InsurancePlanID = pgconv.StringFromPgtype(row.InsurancePlanID)
	bd.Delivery = row.Delivery
	if row.PromoCode.Valid {
		bd.PromoCode = promo.Code(row.PromoCode.String)
		bd.PromoStatus = pricing.PromoApplied
	}

	negotiated, err := pgconv.DecimalPtrFromPgtype(row.NegotiatedTotal)
	if err != nil {
		return nil, fmt.Errorf("booking %s: malformed negotiated total: %w", row.ID, err)
	}

	details := &pricing.BookingDetails{
		ID:              row.ID,
		EquipmentID:     row.EquipmentID,
		RenterID:        row.RenterID,
		StartDate:       row.StartDate.UTC(),
		EndDate:         row.EndDate.UTC(),
		TotalDays:       int(row.TotalDays),
		Breakdown:       bd,
		Delivery:        row.Delivery,
		DeliveryAddress: pgconv.StringFromPgtype(row.DeliveryAddress),
		Notes:           pgconv.StringFromPgtype(row.Notes),
		PromoCode:       pgconv.StringFromPgtype(row.PromoCode),
		NegotiationID:   pgconv.UUIDPtrFromPgtype(row.NegotiationID),
		NegotiatedTotal: negotiated,
		CreatedAt:       row.CreatedAt,
	}
	if bd.InsurancePlanID != "" && plans != nil {
		if plan, err := plans.Find(bd.InsurancePlanID); err == nil {
			details.Insurance = &plan
		}
	}
	return details, nil
}
