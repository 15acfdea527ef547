package services

import (
	"backend/data"
	"backend/models"
)

// OriginTier is the provenance bucket used on the origin pie charts.
type OriginTier string

const (
	TierLokal    OriginTier = "Lokal"
	TierRegional OriginTier = "Kt. Aargau"
	TierCH       OriginTier = "CH"
	TierEU       OriginTier = "EU"
	TierUebersee OriginTier = "Übersee"
)

var OriginTiers = []OriginTier{TierLokal, TierRegional, TierCH, TierEU, TierUebersee}

// ClassifyOrigin maps an item's origin and detail to a tier. Foreign items
// split into EU and Übersee by the EU membership list. Pure and stateless.
func ClassifyOrigin(origin, originDetail string) (OriginTier, bool) {
	switch origin {
	case data.OriginLocal:
		return TierLokal, true
	case data.OriginRegional:
		return TierRegional, true
	case data.OriginNational:
		return TierCH, true
	case data.OriginForeign:
		if data.MentionsEUCountry(originDetail) {
			return TierEU, true
		}
		return TierUebersee, true
	}
	return "", false
}

// OriginBreakdown counts items per tier. Items with an unrecognized origin
// are skipped, matching the chart behaviour.
func OriginBreakdown(items []models.KitchenItem) map[OriginTier]int {
	stats := make(map[OriginTier]int, len(OriginTiers))
	for _, tier := range OriginTiers {
		stats[tier] = 0
	}
	for _, item := range items {
		if tier, ok := ClassifyOrigin(item.Origin, item.OriginDetail); ok {
			stats[tier]++
		}
	}
	return stats
}
