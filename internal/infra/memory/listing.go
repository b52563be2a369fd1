package memory

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"rental-pricing-engine/internal/domain/rate"
	"rental-pricing-engine/internal/pkg/errs"
	"rental-pricing-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed listings.yaml
var defaultListings []byte

type listingFile struct {
	Listings []listingEntry `yaml:"listings"`
}

type listingEntry struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Location      string   `yaml:"location"`
	Images        []string `yaml:"images"`
	DailyRate     string   `yaml:"daily_rate"`
	WeeklyRate    string   `yaml:"weekly_rate"`
	MonthlyRate   string   `yaml:"monthly_rate"`
	Deposit       string   `yaml:"deposit"`
	MinRentalDays int      `yaml:"min_rental_days"`
	MaxRentalDays int      `yaml:"max_rental_days"`
}

// ListingStore is a read-only listing catalog. Schedules are stored as
// given; their validity is checked when a price is requested.
type ListingStore struct {
	byID map[string]shared.Listing
}

func NewListingStore(listings ...shared.Listing) (*ListingStore, error) {
	s := &ListingStore{byID: make(map[string]shared.Listing, len(listings))}
	for _, l := range listings {
		if l.ID == "" {
			return nil, errs.New("listing without an id")
		}
		if _, dup := s.byID[l.ID]; dup {
			return nil, errs.Newf("duplicate listing id %q", l.ID)
		}
		s.byID[l.ID] = l
	}
	return s, nil
}

func ParseListings(data []byte) (*ListingStore, error) {
	var file listingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(err, "failed to parse listing catalog")
	}
	listings := make([]shared.Listing, 0, len(file.Listings))
	for _, e := range file.Listings {
		l, err := e.toListing()
		if err != nil {
			return nil, errs.Wrapf(err, "listing %q", e.ID)
		}
		listings = append(listings, l)
	}
	return NewListingStore(listings...)
}

// LoadListings reads path, or the embedded sample catalog when path is empty.
func LoadListings(path string) (*ListingStore, error) {
	if path == "" {
		return ParseListings(defaultListings)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read listing catalog %s", path)
	}
	return ParseListings(data)
}

func (s *ListingStore) FindByID(_ context.Context, id string) (*shared.Listing, error) {
	l, ok := s.byID[id]
	if !ok {
		return nil, errs.Wrapf(shared.ErrListingNotFound, "equipment %q", id)
	}
	l.Images = append([]string(nil), l.Images...)
	return &l, nil
}

func (s *ListingStore) IDs() []string {
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e listingEntry) toListing() (shared.Listing, error) {
	daily, err := decimal.NewFromString(e.DailyRate)
	if err != nil {
		return shared.Listing{}, fmt.Errorf("daily_rate: %w", err)
	}
	weekly, err := optionalAmount(e.WeeklyRate)
	if err != nil {
		return shared.Listing{}, fmt.Errorf("weekly_rate: %w", err)
	}
	monthly, err := optionalAmount(e.MonthlyRate)
	if err != nil {
		return shared.Listing{}, fmt.Errorf("monthly_rate: %w", err)
	}
	deposit := decimal.Zero
	if e.Deposit != "" {
		if deposit, err = decimal.NewFromString(e.Deposit); err != nil {
			return shared.Listing{}, fmt.Errorf("deposit: %w", err)
		}
	}

	return shared.Listing{
		ID:       e.ID,
		Name:     e.Name,
		Location: e.Location,
		Images:   e.Images,
		Schedule: rate.Schedule{
			DailyRate:     daily,
			WeeklyRate:    weekly,
			MonthlyRate:   monthly,
			DepositAmount: deposit,
			MinRentalDays: e.MinRentalDays,
			MaxRentalDays: e.MaxRentalDays,
		},
	}, nil
}

func optionalAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
