package services

import (
	"testing"

	"backend/data"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOrigin(t *testing.T) {
	cases := []struct {
		name   string
		origin string
		detail string
		tier   OriginTier
		ok     bool
	}{
		{"local", data.OriginLocal, "", TierLokal, true},
		{"regional", data.OriginRegional, "", TierRegional, true},
		{"national", data.OriginNational, "", TierCH, true},
		{"foreign eu country", data.OriginForeign, "Frankreich", TierEU, true},
		{"foreign eu in free text", data.OriginForeign, "Oliven aus Italien", TierEU, true},
		{"foreign overseas", data.OriginForeign, "Brasilien", TierUebersee, true},
		{"foreign without detail", data.OriginForeign, "", TierUebersee, true},
		{"unknown origin", "Mars", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, ok := ClassifyOrigin(tc.origin, tc.detail)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.tier, tier)
		})
	}
}

func TestOriginBreakdownCountsAllTiers(t *testing.T) {
	items := []models.KitchenItem{
		{Origin: data.OriginLocal},
		{Origin: data.OriginLocal},
		{Origin: data.OriginNational},
		{Origin: data.OriginForeign, OriginDetail: "Spanien"},
		{Origin: data.OriginForeign, OriginDetail: "Peru"},
		{Origin: "kaputt"},
	}

	stats := OriginBreakdown(items)

	// every tier is present even when empty, so charts render all slices
	require.Len(t, stats, len(OriginTiers))
	assert.Equal(t, 2, stats[TierLokal])
	assert.Equal(t, 0, stats[TierRegional])
	assert.Equal(t, 1, stats[TierCH])
	assert.Equal(t, 1, stats[TierEU])
	assert.Equal(t, 1, stats[TierUebersee])
}
