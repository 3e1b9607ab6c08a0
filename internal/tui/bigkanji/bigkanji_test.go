package bigkanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyEncodesDimensions(t *testing.T) {
	assert.Equal(t, cacheKey("猫", 12, 6), cacheKey("猫", 12, 6))
	assert.NotEqual(t, cacheKey("猫", 12, 6), cacheKey("犬", 12, 6))
	assert.NotEqual(t, cacheKey("猫", 1, 11), cacheKey("猫", 11, 1), "transposed dimensions must not collide")
	assert.NotEqual(t, cacheKey("猫", 1, 26), cacheKey("猫", 12, 6), "digit runs must stay separated")
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Empty(t, Render("", 12, 6))
	assert.Empty(t, Render("猫", 0, 6))
	assert.Empty(t, Render("猫", 12, 0))
}
