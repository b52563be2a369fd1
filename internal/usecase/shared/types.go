package shared

import (
	"rental-pricing-engine/internal/domain/rate"
)

// Listing is the slice of an equipment listing the pricing engine consumes.
// Location and Images are display-only.
type Listing struct {
	ID       string
	Name     string
	Location string
	Images   []string
	Schedule rate.Schedule
}
