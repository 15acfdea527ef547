package data

// Challenge is one entry of the static mini-challenge catalog. The catalog is
// study content, not user data, so it ships with the binary.
type Challenge struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	Difficulty        string `json:"difficulty"`
	EstimatedTime     string `json:"estimated_time"`
	Points            int    `json:"points"`
	RequireProofText  bool   `json:"require_proof_text"`
	RequireProofImage bool   `json:"require_proof_image"`
}

var Challenges = []Challenge{
	{
		ID:            1,
		Title:         "Regionaler Wocheneinkauf",
		Description:   "Kaufe eine Woche lang nur Lebensmittel aus der Schweiz ein.",
		Category:      "Einkauf",
		Difficulty:    "mittel",
		EstimatedTime: "1 Woche",
		Points:        30,
	},
	{
		ID:                2,
		Title:             "Markt statt Supermarkt",
		Description:       "Besuche einen Wochenmarkt und dokumentiere deinen Einkauf mit einem Foto.",
		Category:          "Einkauf",
		Difficulty:        "leicht",
		EstimatedTime:     "2 Stunden",
		Points:            15,
		RequireProofImage: true,
	},
	{
		ID:               3,
		Title:            "Resteverwertung",
		Description:      "Koche ein Gericht ausschliesslich aus Resten und beschreibe das Rezept.",
		Category:         "Kochen",
		Difficulty:       "mittel",
		EstimatedTime:    "1 Stunde",
		Points:           20,
		RequireProofText: true,
	},
	{
		ID:            4,
		Title:         "Fleischfreie Woche",
		Description:   "Verzichte sieben Tage auf Fleisch und Fisch.",
		Category:      "Ernährung",
		Difficulty:    "schwer",
		EstimatedTime: "1 Woche",
		Points:        40,
	},
	{
		ID:                5,
		Title:             "Saisonales Gemüse",
		Description:       "Koche ein Gericht mit mindestens drei saisonalen Gemüsesorten und fotografiere es.",
		Category:          "Kochen",
		Difficulty:        "leicht",
		EstimatedTime:     "1 Stunde",
		Points:            15,
		RequireProofImage: true,
	},
	{
		ID:            6,
		Title:         "Unverpackt einkaufen",
		Description:   "Kaufe fünf Produkte ohne Einwegverpackung.",
		Category:      "Einkauf",
		Difficulty:    "mittel",
		EstimatedTime: "2 Stunden",
		Points:        20,
	},
	{
		ID:               7,
		Title:            "Hofladen entdecken",
		Description:      "Finde einen Hofladen in deiner Gemeinde und berichte, was du gekauft hast.",
		Category:         "Einkauf",
		Difficulty:       "leicht",
		EstimatedTime:    "2 Stunden",
		Points:           15,
		RequireProofText: true,
	},
	{
		ID:            8,
		Title:         "Vorratscheck",
		Description:   "Plane drei Mahlzeiten nur mit Vorräten, bevor du neu einkaufst.",
		Category:      "Planung",
		Difficulty:    "mittel",
		EstimatedTime: "3 Tage",
		Points:        25,
	},
}

func ChallengeByID(id int) (Challenge, bool) {
	for _, ch := range Challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return Challenge{}, false
}
