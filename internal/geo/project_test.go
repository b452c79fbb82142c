package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCenter(t *testing.T) {
	p, err := Project(0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 339.5, p[0], 1e-9)
	assert.InDelta(t, 362.0, p[1], 1e-9)
}

func TestProjectLongitudeSpansCanvas(t *testing.T) {
	west, err := Project(0, -180)
	require.NoError(t, err)
	east, err := Project(0, 180)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, west[0], 1e-9)
	assert.InDelta(t, 679.0, east[0], 1e-9)
}

func TestProjectOrientation(t *testing.T) {
	center, err := Project(0, 0)
	require.NoError(t, err)

	north, err := Project(10, 0)
	require.NoError(t, err)
	east, err := Project(0, 10)
	require.NoError(t, err)

	assert.Less(t, north[1], center[1], "moving north must decrease y")
	assert.Greater(t, east[0], center[0], "moving east must increase x")
}

func TestProjectStretchesHighLatitudes(t *testing.T) {
	low, err := Project(10, 0)
	require.NoError(t, err)
	lowBase, err := Project(0, 0)
	require.NoError(t, err)

	high, err := Project(70, 0)
	require.NoError(t, err)
	highBase, err := Project(60, 0)
	require.NoError(t, err)

	lowSpan := lowBase[1] - low[1]
	highSpan := highBase[1] - high[1]
	assert.Greater(t, highSpan, lowSpan, "a degree of latitude must grow toward the poles")
}

func TestProjectRejectsOutOfDomainCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"beyond north pole", 91, 0},
		{"longitude past east", 0, 180.5},
		{"longitude past west", 0, -181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.lat, tt.lon)
			require.Error(t, err)

			var coordErr *ErrInvalidCoordinate
			require.True(t, errors.As(err, &coordErr))
			assert.Equal(t, tt.lat, coordErr.Lat)
			assert.Equal(t, tt.lon, coordErr.Lon)
		})
	}
}

func TestProjectAcceptsLongitudeBounds(t *testing.T) {
	_, err := Project(45, -180)
	assert.NoError(t, err)

	_, err = Project(45, 180)
	assert.NoError(t, err)
}
