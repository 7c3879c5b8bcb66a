// backend/utils/areas_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAreaName(t *testing.T) {
	assert.Equal(t, "cuvier", NormalizeAreaName("Cuvier"))
	assert.Equal(t, "rocher canon", NormalizeAreaName("  Rocher Canon "))
	assert.Equal(t, "", NormalizeAreaName("   "))
}
