package response

import (
	"fmt"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as a two-decimal string and IDs as canonical UUID text.
var converters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			d, ok := src.(decimal.Decimal)
			if !ok {
				return nil, fmt.Errorf("expected decimal.Decimal, got %T", src)
			}
			return money.Display(d), nil
		},
	},
	{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			id, ok := src.(uuid.UUID)
			if !ok {
				return nil, fmt.Errorf("expected uuid.UUID, got %T", src)
			}
			return id.String(), nil
		},
	},
}

// copyInto maps a domain value onto a response DTO with matching field names.
// A failure is a programming error and surfaces through the recovery middleware.
func copyInto(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copier.Option{Converters: converters}); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
}

func date(t time.Time) string {
	return daterange.Format(t)
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := daterange.Format(*t)
	return &s
}

func optionalAmount(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money.Display(*d)
	return &s
}
