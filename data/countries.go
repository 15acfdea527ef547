package data

import "strings"

// EUCountries drives the EU vs. Übersee split on the origin charts.
var EUCountries = []string{
	"Belgien", "Bulgarien", "Dänemark", "Deutschland", "Estland", "Finnland",
	"Frankreich", "Griechenland", "Irland", "Italien", "Kroatien", "Lettland",
	"Litauen", "Luxemburg", "Malta", "Niederlande", "Österreich", "Polen",
	"Portugal", "Rumänien", "Schweden", "Slowakei", "Slowenien", "Spanien",
	"Tschechien", "Ungarn", "Zypern",
}

// PriorityCountries are the most common import origins, shown first in the
// country autocomplete.
var PriorityCountries = []string{
	"Deutschland", "Italien", "Frankreich", "Spanien", "Niederlande", "Belgien",
	"Österreich", "China", "USA", "Brasilien", "Polen", "Marokko", "Türkei",
	"Indien", "Südafrika", "Peru", "Thailand", "Vietnam", "Griechenland",
	"Portugal", "Ungarn", "Tschechien", "Dänemark", "Schweden", "Norwegen",
	"Finnland", "Irland", "Vereinigtes Königreich", "Russland",
}

// MentionsEUCountry reports whether the free-form origin detail names an EU
// member. Substring match on purpose: details like "Südtirol, Italien" count.
func MentionsEUCountry(detail string) bool {
	for _, c := range EUCountries {
		if strings.Contains(detail, c) {
			return true
		}
	}
	return false
}
