// backend/grades/grades_test.go
package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, label := range Labels() {
		assert.Equal(t, label, ToLabel(ToNumeric(label)), "round trip for %q", label)
	}
}

func TestLabelsOrderedByDifficulty(t *testing.T) {
	labels := Labels()
	require.NotEmpty(t, labels)

	for i := 1; i < len(labels); i++ {
		assert.Less(t, ToNumeric(labels[i-1]), ToNumeric(labels[i]))
	}

	assert.Less(t, ToNumeric("6a+"), ToNumeric("6b"))
	assert.Less(t, ToNumeric("7c+"), ToNumeric("8a"))
	assert.Equal(t, 0, ToNumeric("2"))
}

func TestUnknownLabels(t *testing.T) {
	assert.Equal(t, Unknown, ToNumeric(""))
	assert.Equal(t, Unknown, ToNumeric("5c"))
	assert.Equal(t, Unknown, ToNumeric("V10"))

	// Unknown sorts below every real grade and never collides with "2".
	assert.Less(t, Unknown, ToNumeric("2"))
}

func TestToLabelOutOfRange(t *testing.T) {
	assert.Equal(t, "?", ToLabel(Unknown))
	assert.Equal(t, "?", ToLabel(len(Labels())))
	assert.Equal(t, "?", ToLabel(1000))
	assert.Equal(t, "2", ToLabel(Min()))
	assert.Equal(t, "9a", ToLabel(Max()))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#eab308", ColorHex("6a"))
	assert.Equal(t, "#6b7280", ColorHex("9a"))
	assert.Equal(t, "#6b7280", ColorHex("nonsense"))
}

func TestColorClass(t *testing.T) {
	assert.Equal(t, "bg-green-500", Color("2"))
	assert.Equal(t, "bg-yellow-500", Color("6a+"))
	assert.Equal(t, "bg-orange-900", Color("8b+"))
	assert.Equal(t, "bg-rock-500", Color("9a"))
	assert.Equal(t, "bg-rock-500", Color("nonsense"))
}

func TestPopularityColorBands(t *testing.T) {
	assert.Equal(t, "text-yellow-400", PopularityColor(100))
	assert.Equal(t, "text-yellow-400", PopularityColor(80))
	assert.Equal(t, "text-orange-400", PopularityColor(79))
	assert.Equal(t, "text-orange-400", PopularityColor(60))
	assert.Equal(t, "text-blue-400", PopularityColor(59))
	assert.Equal(t, "text-blue-400", PopularityColor(40))
	assert.Equal(t, "text-rock-400", PopularityColor(39))
	assert.Equal(t, "text-rock-400", PopularityColor(0))
}
