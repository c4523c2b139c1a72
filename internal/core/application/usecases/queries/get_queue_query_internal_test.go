package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeItems(t *testing.T) {
	assert.Empty(t, summarizeItems(nil))
	assert.Equal(t, "2x Taco", summarizeItems([]string{"2x Taco"}))
	assert.Equal(t,
		"2x Taco, 1x Burrito, 1x Chips",
		summarizeItems([]string{"2x Taco", "1x Burrito", "1x Chips"}),
	)
	assert.Equal(t,
		"2x Taco, 1x Burrito, 1x Chips +2 more",
		summarizeItems([]string{"2x Taco", "1x Burrito", "1x Chips", "1x Horchata", "1x Salsa"}),
	)
}
