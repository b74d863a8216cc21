// Package content holds the fixed Dutch presentation text per risk tier.
package content

import (
	"fmt"

	"github.com/tdewit/opbarst/pkg/safety"
)

// Text is the resolved presentation record for one evaluation.
type Text struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// block is a fixed content record. advice may reference the target level
// through a single %.2f verb; needsLevel marks whether it does.
type block struct {
	title      string
	desc       string
	advice     string
	needsLevel bool
}

var blocks = map[safety.Tier]block{
	safety.TierSafe: {
		title:  "Veilig",
		desc:   "De actuele stijghoogte ligt voldoende onder het kritieke niveau; de vereiste marge tegen opbarsten is aanwezig.",
		advice: "Geen maatregelen nodig. Blijf de stijghoogte volgens het reguliere meetprogramma volgen.",
	},
	safety.TierWarning: {
		title:      "Waarschuwing",
		desc:       "De veiligheidsfactor ligt boven 1.00 maar onder de norm; de marge tegen opbarsten is kleiner dan vereist.",
		advice:     "Verlaag de stijghoogte tot %.2f m of lager om weer aan de norm te voldoen, en verhoog de meetfrequentie.",
		needsLevel: true,
	},
	safety.TierDanger: {
		title:      "Gevaar",
		desc:       "De kritieke stijghoogte is overschreden; er is direct risico op opbarsten van de deklaag.",
		advice:     "Neem direct maatregelen: waarschuw de geotechnisch adviseur, verlaag de stijghoogte tot onder %.2f m (bijvoorbeeld door de bemaling op te voeren) en herhaal daarna de meting.",
		needsLevel: true,
	},
}

// For returns the presentation text for a tier, with the target level
// interpolated to two decimals where the text references it. An unknown tier
// falls back to the danger record.
func For(tier safety.Tier, targetLevel float64) Text {
	b, ok := blocks[tier]
	if !ok {
		b = blocks[safety.TierDanger]
	}
	advice := b.advice
	if b.needsLevel {
		advice = fmt.Sprintf(b.advice, targetLevel)
	}
	return Text{
		Title:          b.title,
		Description:    b.desc,
		Recommendation: advice,
	}
}
