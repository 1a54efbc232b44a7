package wheel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

func TestHatTagConversion(t *testing.T) {
	// Raw direction order up, down, left, right maps onto the odd
	// canonical codes; the evens are diagonal positions this protocol
	// never produces.
	tags := []wheel.MapEntry{wheel.HatTagUp, wheel.HatTagDown, wheel.HatTagLeft, wheel.HatTagRight}
	want := []wheel.Hat{wheel.HatUp, wheel.HatDown, wheel.HatLeft, wheel.HatRight}

	for i, tag := range tags {
		assert.True(t, tag.IsHat())
		assert.Equal(t, want[i], tag.Hat())
	}
	assert.Equal(t, []wheel.Hat{1, 3, 5, 7}, want)
}

func TestHatCenteredIsDistinct(t *testing.T) {
	for _, h := range []wheel.Hat{wheel.HatUp, wheel.HatDown, wheel.HatLeft, wheel.HatRight} {
		assert.NotEqual(t, wheel.HatCentered, h)
	}
	assert.Equal(t, "centered", wheel.HatCentered.String())
	assert.Equal(t, "up", wheel.HatUp.String())
}

func TestNonHatEntries(t *testing.T) {
	assert.False(t, wheel.Unmapped.IsHat())
	assert.False(t, wheel.MapEntry(0).IsHat())
	assert.False(t, wheel.MapEntry(20).IsHat())
}
