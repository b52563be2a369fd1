//go:build unit

package insurance_test

import (
	"testing"

	"rental-pricing-engine/internal/domain/insurance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := insurance.DefaultCatalog()
	require.Len(t, c.Plans(), 3)

	p, err := c.Find("standard")
	require.NoError(t, err)
	assert.True(t, p.Premium(decimal.NewFromInt(3320)).Equal(decimal.NewFromInt(332)))

	_, err = c.Find("platinum")
	require.ErrorIs(t, err, insurance.ErrUnknownPlan)

	plans := c.Plans()
	plans[0].ID = "mutated"
	again, _ := c.Find("basic")
	assert.Equal(t, "basic", again.ID)
}

func TestNewCatalog_Validation(t *testing.T) {
	good := insurance.Plan{ID: "x", Rate: decimal.RequireFromString("0.1"), Coverage: decimal.NewFromInt(10)}

	cases := []struct {
		name  string
		plans []insurance.Plan
	}{
		{name: "rate of one", plans: []insurance.Plan{{ID: "x", Rate: decimal.NewFromInt(1), Coverage: decimal.NewFromInt(10)}}},
		{name: "missing coverage", plans: []insurance.Plan{{ID: "x", Rate: decimal.RequireFromString("0.1")}}},
		{name: "missing id", plans: []insurance.Plan{{Rate: decimal.RequireFromString("0.1"), Coverage: decimal.NewFromInt(10)}}},
		{name: "duplicate id", plans: []insurance.Plan{good, good}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := insurance.NewCatalog(c.plans...)
			require.ErrorIs(t, err, insurance.ErrInvalidPlan)
		})
	}
}
