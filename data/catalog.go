package data

// Fixed form vocabulary of the Küchen-Check. The category keys are stored verbatim
// on kitchen items, so changing a key here requires a data migration.

var Categories = []string{
	"Früchte",
	"Gemüse",
	"Milchprodukte",
	"Eier",
	"Fleisch",
	"Fisch und Meeresfrüchte",
	"Getreideprodukte",
	"Hülsenfrüchte (inkl. Tofu)",
	"Nüsse und Samen",
	"Öle und Fette",
	"Andere",
}

const (
	OriginLocal    = "aus eigener Gemeinde oder Nachbargemeinde"
	OriginRegional = "Kanton Aargau"
	OriginNational = "Schweiz"
	OriginForeign  = "Anderes Land"
)

var Origins = []string{
	OriginLocal,
	OriginRegional,
	OriginNational,
	OriginForeign,
}

var Labels = []string{"Bio", "IP", "Regiolabel", "Fairtrade", "Anderes", "Keines"}

// Suggestions shown in the item-name combobox.
var Groceries = []string{
	"Tomaten", "Brot", "Milch", "Käse", "Äpfel", "Kartoffeln", "Butter", "Joghurt",
	"Karotten", "Eier", "Reis", "Bananen", "Fleisch", "Fisch", "Tofu", "Paprika",
	"Salat", "Gurke", "Zwiebeln", "Knoblauch", "Linsen", "Kichererbsen",
	"Haferflocken", "Müsli", "Nudeln", "Olivenöl", "Rapsöl", "Honig",
}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidOrigin(o string) bool {
	for _, v := range Origins {
		if v == o {
			return true
		}
	}
	return false
}

func ValidLabel(l string) bool {
	if l == "" {
		return true
	}
	for _, v := range Labels {
		if v == l {
			return true
		}
	}
	return false
}
