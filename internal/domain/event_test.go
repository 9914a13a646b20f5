package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	at, err := ParseSchedule("2025-06-10", "18:30", loc)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC), at.UTC())
}

func TestParseSchedule_Invalid(t *testing.T) {
	_, err := ParseSchedule("10-06-2025", "18:30", nil)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestEvent_EffectivePrice(t *testing.T) {
	assert.True(t, (&Event{Category: CategoryNormal, Price: decimal.NewFromInt(50)}).EffectivePrice().IsZero())
	assert.True(t, (&Event{Category: CategoryPremium}).EffectivePrice().Equal(DefaultPremiumPrice))
	assert.True(t, (&Event{Category: CategoryPremium, Price: decimal.NewFromInt(75)}).EffectivePrice().Equal(decimal.NewFromInt(75)))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" PREMIUM ")
	require.NoError(t, err)
	assert.Equal(t, CategoryPremium, c)

	c, err = ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryNormal, c)

	_, err = ParseCategory("vip")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassify_EveryEventInExactlyOneBucket(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	events := []*Event{
		{ID: "a", Date: "2025-06-10", Time: "11:59", Category: CategoryPremium},
		{ID: "b", Date: "2025-06-10", Time: "12:00", Category: CategoryPremium},
		{ID: "c", Date: "2025-06-12", Time: "09:00", Category: CategoryNormal},
		{ID: "d", Date: "2025-06-12", Time: "9", Category: CategoryNormal},
	}

	c := Classify(events, now, time.UTC)

	seen := map[string]int{}
	for _, bucket := range [][]*Event{c.Premium, c.Normal, c.Expired} {
		for _, e := range bucket {
			seen[e.ID]++
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, seen)
	assert.Equal(t, "b", c.Premium[0].ID)
	assert.Len(t, c.Expired, 2)
}
