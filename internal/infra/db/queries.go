package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Numeric columns travel as text so that amounts keep full precision on both
// sides of the wire.

type Booking struct {
	ID               uuid.UUID
	EquipmentID      string
	RenterID         string
	StartDate        time.Time
	EndDate          time.Time
	TotalDays        int32
	RateTier         string
	NaiveTotal       string
	BasePrice        string
	DurationDiscount string
	PromoCode        pgtype.Text
	PromoDiscount    string
	InsurancePlanID  pgtype.Text
	InsuranceAmount  string
	Delivery         bool
	DeliveryAddress  pgtype.Text
	DeliveryFee      string
	ServiceFee       string
	Deposit          string
	Total            string
	NegotiationID    pgtype.UUID
	NegotiatedTotal  pgtype.Text
	Notes            pgtype.Text
	CreatedAt        time.Time
}

type BookedRange struct {
	StartDate time.Time
	EndDate   time.Time
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const createBooking = `
INSERT INTO bookings (
    id, equipment_id, renter_id, start_date, end_date, total_days, rate_tier,
    naive_total, base_price, duration_discount, promo_code, promo_discount,
    insurance_plan_id, insurance_amount, delivery, delivery_address, delivery_fee,
    service_fee, deposit, total, negotiation_id, negotiated_total, notes, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8::numeric, $9::numeric, $10::numeric, $11, $12::numeric,
    $13, $14::numeric, $15, $16, $17::numeric,
    $18::numeric, $19::numeric, $20::numeric, $21, $22::numeric, $23, $24
)
RETURNING id`

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg Booking) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID, arg.EquipmentID, arg.RenterID, arg.StartDate, arg.EndDate, arg.TotalDays, arg.RateTier,
		arg.NaiveTotal, arg.BasePrice, arg.DurationDiscount, arg.PromoCode, arg.PromoDiscount,
		arg.InsurancePlanID, arg.InsuranceAmount, arg.Delivery, arg.DeliveryAddress, arg.DeliveryFee,
		arg.ServiceFee, arg.Deposit, arg.Total, arg.NegotiationID, arg.NegotiatedTotal, arg.Notes, arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getBooking = `
SELECT id, equipment_id, renter_id, start_date, end_date, total_days, rate_tier,
       naive_total::text, base_price::text, duration_discount::text, promo_code, promo_discount::text,
       insurance_plan_id, insurance_amount::text, delivery, delivery_address, delivery_fee::text,
       service_fee::text, deposit::text, total::text, negotiation_id, negotiated_total::text, notes, created_at
FROM bookings
WHERE id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	var b Booking
	err := db.QueryRow(ctx, getBooking, id).Scan(
		&b.ID, &b.EquipmentID, &b.RenterID, &b.StartDate, &b.EndDate, &b.TotalDays, &b.RateTier,
		&b.NaiveTotal, &b.BasePrice, &b.DurationDiscount, &b.PromoCode, &b.PromoDiscount,
		&b.InsurancePlanID, &b.InsuranceAmount, &b.Delivery, &b.DeliveryAddress, &b.DeliveryFee,
		&b.ServiceFee, &b.Deposit, &b.Total, &b.NegotiationID, &b.NegotiatedTotal, &b.Notes, &b.CreatedAt,
	)
	return b, err
}

const countOverlappingBookings = `
SELECT COUNT(*)
FROM bookings
WHERE equipment_id = $1
  AND start_date <= $3
  AND end_date >= $2`

func (q *Queries) CountOverlappingBookings(ctx context.Context, db DBTX, equipmentID string, start, end time.Time) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countOverlappingBookings, equipmentID, start, end).Scan(&n)
	return n, err
}

const listBookedRanges = `
SELECT start_date, end_date
FROM bookings
WHERE equipment_id = $1
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date`

func (q *Queries) ListBookedRanges(ctx context.Context, db DBTX, equipmentID string, from, to time.Time) ([]BookedRange, error) {
	rows, err := db.Query(ctx, listBookedRanges, equipmentID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookedRange, error) {
		var r BookedRange
		err := row.Scan(&r.StartDate, &r.EndDate)
		return r, err
	})
}
