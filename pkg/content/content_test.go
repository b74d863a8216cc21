package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewit/opbarst/pkg/safety"
)

func TestFor(t *testing.T) {
	t.Run("safe ignores target level", func(t *testing.T) {
		text := For(safety.TierSafe, 10.909090909)

		assert.Equal(t, "Veilig", text.Title)
		assert.NotContains(t, text.Recommendation, "10.91")
		assert.NotContains(t, text.Recommendation, "%")
	})

	t.Run("warning interpolates target level to two decimals", func(t *testing.T) {
		text := For(safety.TierWarning, 12.0/1.10)

		assert.Equal(t, "Waarschuwing", text.Title)
		assert.Contains(t, text.Recommendation, "10.91 m")
		assert.NotContains(t, text.Recommendation, "%")
	})

	t.Run("danger interpolates target level to two decimals", func(t *testing.T) {
		text := For(safety.TierDanger, 10.0)

		assert.Equal(t, "Gevaar", text.Title)
		assert.Contains(t, text.Recommendation, "10.00 m")
	})

	t.Run("every tier has complete content", func(t *testing.T) {
		for _, tier := range []safety.Tier{safety.TierSafe, safety.TierWarning, safety.TierDanger} {
			text := For(tier, 10.0)
			assert.NotEmpty(t, text.Title, "tier %s", tier)
			assert.NotEmpty(t, text.Description, "tier %s", tier)
			assert.NotEmpty(t, text.Recommendation, "tier %s", tier)
		}
	})

	t.Run("unknown tier falls back to danger", func(t *testing.T) {
		text := For(safety.Tier("bogus"), 10.0)
		assert.Equal(t, "Gevaar", text.Title)
	})

	t.Run("danger advice lists concrete actions", func(t *testing.T) {
		text := For(safety.TierDanger, 9.5)
		assert.True(t, strings.Contains(text.Recommendation, "bemaling"))
	})
}
