package promo

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Promotion struct {
	Code             Code
	DiscountFraction decimal.Decimal
}

// Catalog is a fixed lookup table. A code either resolves exactly or is not
// found; there are no partial matches.
type Catalog struct {
	entries map[Code]Promotion
}

type catalogFile struct {
	Promotions []struct {
		Code     string `yaml:"code"`
		Discount string `yaml:"discount"`
	} `yaml:"promotions"`
}

func NewCatalog(promotions ...Promotion) (*Catalog, error) {
	c := &Catalog{entries: make(map[Code]Promotion, len(promotions))}
	for _, p := range promotions {
		code, err := NewCode(p.Code.String())
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p.Code, err)
		}
		if !p.DiscountFraction.IsPositive() || p.DiscountFraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("%s: %w", code, ErrInvalidDiscount)
		}
		if _, dup := c.entries[code]; dup {
			return nil, fmt.Errorf("%s: %w", code, ErrDuplicateCatalogKey)
		}
		c.entries[code] = Promotion{Code: code, DiscountFraction: p.DiscountFraction}
	}
	return c, nil
}

// ParseCatalog reads the YAML catalog format.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse promo catalog: %w", err)
	}
	promotions := make([]Promotion, 0, len(file.Promotions))
	for _, entry := range file.Promotions {
		fraction, err := decimal.NewFromString(entry.Discount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Code, ErrInvalidDiscount)
		}
		promotions = append(promotions, Promotion{Code: Code(entry.Code), DiscountFraction: fraction})
	}
	return NewCatalog(promotions...)
}

// LoadCatalog reads path, or the embedded default catalog when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read promo catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// Lookup is case-insensitive. Malformed input is simply not found.
func (c *Catalog) Lookup(raw string) (Promotion, bool) {
	code, err := NewCode(raw)
	if err != nil {
		return Promotion{}, false
	}
	p, ok := c.entries[code]
	return p, ok
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
