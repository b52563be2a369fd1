//go:build unit

package promo_test

import (
	"os"
	"path/filepath"
	"testing"

	"rental-pricing-engine/internal/domain/promo"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		raw   string
		want  promo.Code
		errIs error
	}{
		{raw: "SUMMER20", want: "SUMMER20"},
		{raw: "  summer20 ", want: "SUMMER20"},
		{raw: "ab", errIs: promo.ErrInvalidCode},
		{raw: "SUMMER-20", errIs: promo.ErrInvalidCode},
		{raw: "", errIs: promo.ErrInvalidCode},
		{raw: "ABCDEFGHIJKLMNOPQRSTU", errIs: promo.ErrInvalidCode},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			got, err := promo.NewCode(c.raw)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCatalog(t *testing.T) {
	t.Run("embedded default catalog", func(t *testing.T) {
		c, err := promo.LoadCatalog("")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.Len(), 1)

		p, ok := c.Lookup("summer20")
		require.True(t, ok)
		assert.True(t, p.DiscountFraction.Equal(money.MustParse("0.20")))
	})

	t.Run("no partial matches", func(t *testing.T) {
		c, err := promo.LoadCatalog("")
		require.NoError(t, err)
		_, ok := c.Lookup("SUMMER")
		assert.False(t, ok)
		_, ok = c.Lookup("SUMMER200")
		assert.False(t, ok)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "promos.yaml")
		require.NoError(t, os.WriteFile(path, []byte("promotions:\n  - code: spring30\n    discount: \"0.3\"\n"), 0o600))

		c, err := promo.LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
		_, ok := c.Lookup("SPRING30")
		assert.True(t, ok)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		cases := map[string]string{
			"fraction of one":   "promotions:\n  - code: FREE100\n    discount: \"1\"\n",
			"zero fraction":     "promotions:\n  - code: NOTHING\n    discount: \"0\"\n",
			"not a number":      "promotions:\n  - code: BROKEN\n    discount: \"abc\"\n",
			"malformed code":    "promotions:\n  - code: \"x\"\n    discount: \"0.1\"\n",
			"duplicate entries": "promotions:\n  - code: DUP10\n    discount: \"0.1\"\n  - code: dup10\n    discount: \"0.2\"\n",
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := promo.ParseCatalog([]byte(body))
				require.Error(t, err)
			})
		}
	})

	t.Run("missing override file", func(t *testing.T) {
		_, err := promo.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestRedemption(t *testing.T) {
	catalog, err := promo.NewCatalog(
		promo.Promotion{Code: "SUMMER20", DiscountFraction: money.MustParse("0.20")},
		promo.Promotion{Code: "WELCOME10", DiscountFraction: money.MustParse("0.10")},
	)
	require.NoError(t, err)

	t.Run("applies a known code", func(t *testing.T) {
		r := promo.NewRedemption(catalog)
		discount, err := r.Apply("Summer20", money.MustParse("4150"))
		require.NoError(t, err)
		assert.True(t, discount.Equal(money.MustParse("830")), "got %s", discount)

		applied, ok := r.Applied()
		require.True(t, ok)
		assert.Equal(t, promo.Code("SUMMER20"), applied.Code)
	})

	t.Run("unknown code is a no-op", func(t *testing.T) {
		r := promo.NewRedemption(catalog)
		discount, err := r.Apply("NOPE123", money.MustParse("100"))
		require.ErrorIs(t, err, promo.ErrCodeNotFound)
		assert.True(t, discount.IsZero())
		_, ok := r.Applied()
		assert.False(t, ok)

		discount, err = r.Apply("WELCOME10", money.MustParse("100"))
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.NewFromInt(10)))
	})

	t.Run("malformed code", func(t *testing.T) {
		r := promo.NewRedemption(catalog)
		_, err := r.Apply("!!", money.MustParse("100"))
		require.ErrorIs(t, err, promo.ErrInvalidCode)
	})

	t.Run("second code is rejected", func(t *testing.T) {
		r := promo.NewRedemption(catalog)
		_, err := r.Apply("SUMMER20", money.MustParse("100"))
		require.NoError(t, err)

		_, err = r.Apply("WELCOME10", money.MustParse("100"))
		require.ErrorIs(t, err, promo.ErrAlreadyApplied)
		_, err = r.Apply("SUMMER20", money.MustParse("100"))
		require.ErrorIs(t, err, promo.ErrAlreadyApplied)
	})

	t.Run("discount never exceeds base", func(t *testing.T) {
		p := promo.Promotion{Code: "X", DiscountFraction: money.MustParse("0.99")}
		assert.True(t, promo.Discount(p, decimal.Zero).IsZero())
		assert.True(t, promo.Discount(p, money.MustParse("10")).LessThanOrEqual(money.MustParse("10")))
	})
}
