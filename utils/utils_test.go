package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.Equal(SuccessColor+"ok"+DefaultColor, DecorateText("ok", SuccessMessage))
	assert.Equal("raw", DecorateText("raw", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(2, Min(3, 2))
	assert.Equal(3, Max(2, 3))
	assert.Equal(float32(0), Clamp(float32(-4), 0, 10))
	assert.Equal(float32(10), Clamp(float32(14), 0, 10))
	// An empty interval collapses to its lower bound.
	assert.Equal(float32(0), Clamp(float32(5), 0, -3))
	assert.Equal(7, Abs(-7))
}
