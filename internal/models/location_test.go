package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocationKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Harare (Central)", "HARARE"},
		{"harare", "HARARE"},
		{"  Gweru  ", "GWERU"},
		{"Vic Falls (Tourist Area)", "VIC FALLS"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeLocationKey(tc.in))
	}
}

func TestProfileForKnownKey(t *testing.T) {
	p := ProfileFor("HARARE")
	assert.Equal(t, "HARARE", p.Key)
	assert.Equal(t, RiskHigh, p.Risk)
	assert.Equal(t, "Robbery", p.Pattern.NightCrime)
	assert.InDelta(t, -17.8252, p.Latitude, 1e-9)
}

func TestProfileForUnknownKeyFallsBack(t *testing.T) {
	p := ProfileFor("NOWHERE_TOWN")
	assert.Equal(t, DefaultKey, p.Key)
	assert.Equal(t, RiskGeneral, p.Risk)

	def := ProfileFor(DefaultKey)
	assert.Equal(t, def.Latitude, p.Latitude)
	assert.Equal(t, def.Longitude, p.Longitude)
}

func TestKnownLocationKeysExcludesDefault(t *testing.T) {
	keys := KnownLocationKeys()
	assert.Len(t, keys, 15)
	assert.NotContains(t, keys, DefaultKey)
	assert.Contains(t, keys, "HARARE")
	assert.Contains(t, keys, "BEITBRIDGE")
}

func TestNearbyStationsWithoutReferencePoint(t *testing.T) {
	list := NearbyStations("HARARE", nil, nil, 50)
	require.Len(t, list, 3)
	assert.Equal(t, "Harare Central Police Station", list[0].Name)

	// unknown areas get the default listing
	list = NearbyStations("NOWHERE_TOWN", nil, nil, 50)
	require.Len(t, list, 1)
	assert.Equal(t, "Nearest Police Station", list[0].Name)
}

func TestNearbyStationsDistanceFilter(t *testing.T) {
	lat, lon := -17.8252, 31.0531

	near := NearbyStations("HARARE", &lat, &lon, 50)
	assert.Len(t, near, 3)

	// a reference point far from every Harare station filters them all
	farLat, farLon := -22.0, 25.0
	none := NearbyStations("HARARE", &farLat, &farLon, 50)
	assert.Empty(t, none)
}
