package data

// Question is one entry of the one-time observation survey.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"` // "multiple_choice" | "text"
	Options  []string `json:"options,omitempty"`
	Category string   `json:"category"`
}

var Questions = []Question{
	{
		ID:       1,
		Question: "Wie oft kaufst du Lebensmittel direkt beim Produzenten (Hofladen, Markt)?",
		Type:     "multiple_choice",
		Options:  []string{"Nie", "Selten", "Monatlich", "Wöchentlich", "Mehrmals pro Woche"},
		Category: "Einkaufsverhalten",
	},
	{
		ID:       2,
		Question: "Achtest du beim Einkauf auf die Herkunft der Produkte?",
		Type:     "multiple_choice",
		Options:  []string{"Nie", "Selten", "Manchmal", "Meistens", "Immer"},
		Category: "Einkaufsverhalten",
	},
	{
		ID:       3,
		Question: "Hat sich dein Einkaufsverhalten während der Studie verändert?",
		Type:     "multiple_choice",
		Options:  []string{"Gar nicht", "Ein wenig", "Deutlich"},
		Category: "Veränderung",
	},
	{
		ID:       4,
		Question: "Was hat dich am meisten überrascht, als du deine Küche dokumentiert hast?",
		Type:     "text",
		Category: "Reflexion",
	},
	{
		ID:       5,
		Question: "Welche Mini-Challenge war für dich am wertvollsten und warum?",
		Type:     "text",
		Category: "Reflexion",
	},
	{
		ID:       6,
		Question: "Wirst du nach der Studie weiterhin auf regionale Produkte achten?",
		Type:     "multiple_choice",
		Options:  []string{"Nein", "Vielleicht", "Ja, teilweise", "Ja, konsequent"},
		Category: "Veränderung",
	},
	{
		ID:       7,
		Question: "Wie schwierig war es, regionale Alternativen zu finden?",
		Type:     "multiple_choice",
		Options:  []string{"Sehr einfach", "Einfach", "Mittel", "Schwierig", "Sehr schwierig"},
		Category: "Einkaufsverhalten",
	},
	{
		ID:       8,
		Question: "Hast du weitere Anmerkungen zur Studie?",
		Type:     "text",
		Category: "Feedback",
	},
}

func QuestionByID(id int) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
