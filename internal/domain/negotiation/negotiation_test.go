//go:build unit

package negotiation_test

import (
	"context"
	"testing"
	"time"

	"rental-pricing-engine/internal/domain/daterange"
	"rental-pricing-engine/internal/domain/negotiation"
	"rental-pricing-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0         = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	tenDayStay = daterange.Range{Start: daterange.NewDate(2026, time.April, 1), End: daterange.NewDate(2026, time.April, 10)}
)

func newSession(t *testing.T, original string) *negotiation.Session {
	t.Helper()
	s, err := negotiation.NewSession(uuid.New(), "eq-1", "renter-1", tenDayStay, money.MustParse(original), t0)
	require.NoError(t, err)
	return s
}

// offerAndRespond runs one full round with an immediate owner reply.
func offerAndRespond(t *testing.T, s *negotiation.Session, amount string) negotiation.Decision {
	t.Helper()
	_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse(amount), "", t0)
	require.NoError(t, err)
	d, err := s.PendingDecision()
	require.NoError(t, err)
	_, err = s.ApplyOwnerResponse(d, uuid.New(), t0)
	require.NoError(t, err)
	return d
}

func TestDecide(t *testing.T) {
	original := money.MustParse("1000")

	cases := []struct {
		name        string
		round       int
		amount      string
		wantOutcome negotiation.Outcome
		wantReason  negotiation.Reason
		wantAmount  string
		errIs       error
	}{
		{name: "exactly five percent off", round: 0, amount: "950", wantOutcome: negotiation.OutcomeAccept, wantReason: negotiation.ReasonWithinTolerance, wantAmount: "950.00"},
		{name: "ten percent off in the first round", round: 0, amount: "900", wantOutcome: negotiation.OutcomeCounter, wantReason: negotiation.ReasonModerateDiscount, wantAmount: "940.00"},
		{name: "ten percent off in the second round", round: 1, amount: "900", wantOutcome: negotiation.OutcomeCounter, wantReason: negotiation.ReasonModerateDiscount, wantAmount: "940.00"},
		{name: "ten percent off in the third round", round: 2, amount: "900", wantOutcome: negotiation.OutcomeAccept, wantReason: negotiation.ReasonPersistentOffer, wantAmount: "900.00"},
		{name: "fifteen percent off late", round: 5, amount: "850", wantOutcome: negotiation.OutcomeAccept, wantReason: negotiation.ReasonPersistentOffer, wantAmount: "850.00"},
		{name: "sixteen percent off late still counters", round: 5, amount: "840", wantOutcome: negotiation.OutcomeCounter, wantReason: negotiation.ReasonModerateDiscount, wantAmount: "904.00"},
		{name: "forty percent off", round: 0, amount: "600", wantOutcome: negotiation.OutcomeCounter, wantReason: negotiation.ReasonSteepDiscount, wantAmount: "800.00"},
		{name: "concession capped at twenty percent", round: 0, amount: "100", wantOutcome: negotiation.OutcomeCounter, wantReason: negotiation.ReasonSteepDiscount, wantAmount: "800.00"},
		{name: "zero offer", amount: "0", errIs: negotiation.ErrInvalidOffer},
		{name: "negative offer", amount: "-10", errIs: negotiation.ErrInvalidOffer},
		{name: "offer at the original total", amount: "1000", errIs: negotiation.ErrInvalidOffer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := negotiation.Decide(original, c.round, money.MustParse(c.amount))
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantOutcome, d.Outcome)
			assert.Equal(t, c.wantReason, d.Reason)
			assert.Equal(t, c.wantAmount, money.Display(d.Amount))
		})
	}
}

func TestDecide_CounterScenario(t *testing.T) {
	d, err := negotiation.Decide(money.MustParse("3150"), 0, money.MustParse("2950"))
	require.NoError(t, err)

	assert.Equal(t, negotiation.OutcomeCounter, d.Outcome)
	assert.Equal(t, "3030.00", money.Display(d.Amount))
	assert.Equal(t, "6.35", money.Display(d.DiscountPct))
}

func TestDecide_CounterAlwaysBetweenOfferAndOriginal(t *testing.T) {
	original := money.MustParse("2487.35")
	for pct := int64(6); pct < 100; pct++ {
		amount := original.Mul(decimal.NewFromInt(100 - pct)).Div(decimal.NewFromInt(100))
		d, err := negotiation.Decide(original, 0, amount)
		require.NoError(t, err)
		require.Equal(t, negotiation.OutcomeCounter, d.Outcome, "pct=%d", pct)
		assert.True(t, d.Amount.GreaterThan(amount), "pct=%d", pct)
		assert.True(t, d.Amount.LessThan(original), "pct=%d", pct)
	}
}

func TestSession_FivePercentAcceptedInFirstRound(t *testing.T) {
	s := newSession(t, "3150")
	offer := money.MustParse("3150").Mul(decimal.RequireFromString("0.95"))

	_, err := s.SubmitRenterOffer(uuid.New(), offer, "would you take this?", t0)
	require.NoError(t, err)
	assert.True(t, s.AwaitingResponse)

	d, err := s.PendingDecision()
	require.NoError(t, err)
	reply, err := s.ApplyOwnerResponse(d, uuid.New(), t0.Add(time.Second))
	require.NoError(t, err)

	assert.Equal(t, negotiation.StatusAccepted, s.Status)
	assert.True(t, s.CurrentOffer.Equal(offer))
	assert.Equal(t, 1, s.RoundCount)
	assert.Equal(t, negotiation.RoleOwner, reply.SenderRole)
	require.Len(t, s.History, 2)
	assert.False(t, s.AwaitingResponse)

	agreed, ok := s.AgreedTotal()
	require.True(t, ok)
	assert.True(t, agreed.Equal(offer))
}

func TestSession_FortyPercentKeepsNegotiating(t *testing.T) {
	s := newSession(t, "3150")
	d := offerAndRespond(t, s, "1890")

	assert.Equal(t, negotiation.StatusActive, s.Status)
	assert.Equal(t, negotiation.ReasonSteepDiscount, d.Reason)
	assert.True(t, s.CurrentOffer.GreaterThan(money.MustParse("1890")))
	assert.True(t, s.CurrentOffer.LessThan(money.MustParse("3150")))
	_, ok := s.AgreedTotal()
	assert.False(t, ok)
}

func TestSession_ThirdRoundModerateOfferAccepted(t *testing.T) {
	s := newSession(t, "1000")

	offerAndRespond(t, s, "880")
	offerAndRespond(t, s, "880")
	require.Equal(t, negotiation.StatusActive, s.Status)

	d := offerAndRespond(t, s, "880")
	assert.Equal(t, negotiation.ReasonPersistentOffer, d.Reason)
	assert.Equal(t, negotiation.StatusAccepted, s.Status)
	assert.Equal(t, 3, s.RoundCount)
	assert.Equal(t, "880.00", money.Display(s.CurrentOffer))
}

func TestSession_Transitions(t *testing.T) {
	t.Run("invalid offer leaves the session unchanged", func(t *testing.T) {
		s := newSession(t, "1000")
		before := s.Clone()

		_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse("1000"), "", t0)
		require.ErrorIs(t, err, negotiation.ErrInvalidOffer)
		assert.Equal(t, before.RoundCount, s.RoundCount)
		assert.Len(t, s.History, 0)
		assert.False(t, s.AwaitingResponse)
	})

	t.Run("second offer while awaiting a response", func(t *testing.T) {
		s := newSession(t, "1000")
		_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse("700"), "", t0)
		require.NoError(t, err)

		_, err = s.SubmitRenterOffer(uuid.New(), money.MustParse("750"), "", t0)
		require.ErrorIs(t, err, negotiation.ErrResponsePending)
		require.ErrorIs(t, s.AcceptCurrent(t0), negotiation.ErrResponsePending)
		assert.Equal(t, 1, s.RoundCount)
	})

	t.Run("owner response without an offer", func(t *testing.T) {
		s := newSession(t, "1000")
		_, err := s.PendingDecision()
		require.ErrorIs(t, err, negotiation.ErrNoPendingOffer)
		_, err = s.ApplyOwnerResponse(negotiation.Decision{}, uuid.New(), t0)
		require.ErrorIs(t, err, negotiation.ErrNoPendingOffer)
	})

	t.Run("renter accepts the standing counter", func(t *testing.T) {
		s := newSession(t, "1000")
		offerAndRespond(t, s, "600")
		counter := s.CurrentOffer

		require.NoError(t, s.AcceptCurrent(t0))
		assert.Equal(t, negotiation.StatusAccepted, s.Status)
		assert.Equal(t, negotiation.RoleRenter, s.ClosedBy)
		assert.True(t, s.CurrentOffer.Equal(counter))
	})

	t.Run("renter accepts the list price before offering", func(t *testing.T) {
		s := newSession(t, "1000")
		require.NoError(t, s.AcceptCurrent(t0))
		agreed, ok := s.AgreedTotal()
		require.True(t, ok)
		assert.Equal(t, "1000.00", money.Display(agreed))
	})

	t.Run("either party can walk away", func(t *testing.T) {
		s := newSession(t, "1000")
		_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse("700"), "", t0)
		require.NoError(t, err)

		require.NoError(t, s.Reject(negotiation.RoleOwner, "not interested", t0))
		assert.Equal(t, negotiation.StatusRejected, s.Status)
		assert.False(t, s.AwaitingResponse)

		require.ErrorIs(t, s.Reject(negotiation.RoleRenter, "", t0), negotiation.ErrSessionClosed)
		require.ErrorIs(t, newSession(t, "1").Reject("broker", "", t0), negotiation.ErrInvalidRole)
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		s := newSession(t, "1000")
		require.NoError(t, s.Expire("idle", t0))

		_, err := s.SubmitRenterOffer(uuid.New(), money.MustParse("900"), "", t0)
		require.ErrorIs(t, err, negotiation.ErrSessionClosed)
		require.ErrorIs(t, s.AcceptCurrent(t0), negotiation.ErrSessionClosed)
		require.ErrorIs(t, s.Expire("again", t0), negotiation.ErrSessionClosed)
		_, err = s.ApplyOwnerResponse(negotiation.Decision{}, uuid.New(), t0)
		require.ErrorIs(t, err, negotiation.ErrSessionClosed)
	})

	t.Run("idle detection", func(t *testing.T) {
		s := newSession(t, "1000")
		assert.False(t, s.IdleFor(time.Hour, t0.Add(59*time.Minute)))
		assert.True(t, s.IdleFor(time.Hour, t0.Add(time.Hour)))
		require.NoError(t, s.AcceptCurrent(t0))
		assert.False(t, s.IdleFor(time.Hour, t0.Add(2*time.Hour)))
	})

	t.Run("clone does not share history", func(t *testing.T) {
		s := newSession(t, "1000")
		offerAndRespond(t, s, "600")
		c := s.Clone()
		c.History[0].Message = "changed"
		assert.NotEqual(t, "changed", s.History[0].Message)
	})
}

func TestNewSession_RejectsNonPositiveTotal(t *testing.T) {
	_, err := negotiation.NewSession(uuid.New(), "eq", "r", tenDayStay, decimal.Zero, t0)
	require.ErrorIs(t, err, negotiation.ErrInvalidOriginalTotal)
}

func TestPolicy_Submit(t *testing.T) {
	p := negotiation.Policy{MaxRounds: 2}
	s := newSession(t, "1000")

	for i := 0; i < 2; i++ {
		_, err := p.Submit(s, uuid.New(), money.MustParse("500"), "", t0)
		require.NoError(t, err)
		d, err := s.PendingDecision()
		require.NoError(t, err)
		_, err = s.ApplyOwnerResponse(d, uuid.New(), t0)
		require.NoError(t, err)
	}

	// a bad amount at the cap is rejected without closing the session
	for _, amount := range []string{"-5", "0", "1000"} {
		_, err := p.Submit(s, uuid.New(), money.MustParse(amount), "", t0)
		require.ErrorIs(t, err, negotiation.ErrInvalidOffer, amount)
		assert.Equal(t, negotiation.StatusActive, s.Status)
		assert.Equal(t, 2, s.RoundCount)
	}

	_, err := p.Submit(s, uuid.New(), money.MustParse("500"), "", t0)
	require.ErrorIs(t, err, negotiation.ErrRoundLimitReached)
	assert.Equal(t, negotiation.StatusExpired, s.Status)
	assert.Equal(t, 2, s.RoundCount)

	unlimited := negotiation.Policy{}
	s = newSession(t, "1000")
	for i := 0; i < 20; i++ {
		_, err := unlimited.Submit(s, uuid.New(), money.MustParse("500"), "", t0)
		require.NoError(t, err)
		d, _ := s.PendingDecision()
		_, err = s.ApplyOwnerResponse(d, uuid.New(), t0)
		require.NoError(t, err)
	}
	assert.Equal(t, negotiation.StatusActive, s.Status)
}

func TestResponseDelay(t *testing.T) {
	require.NoError(t, negotiation.NoDelay{}.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, negotiation.NoDelay{}.Wait(ctx), context.Canceled)
	require.ErrorIs(t, negotiation.RandomDelay{Min: time.Hour, Max: 2 * time.Hour}.Wait(ctx), context.Canceled)

	start := time.Now()
	require.NoError(t, negotiation.RandomDelay{Min: time.Millisecond, Max: 5 * time.Millisecond}.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)
}
