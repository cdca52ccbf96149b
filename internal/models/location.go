package models

import (
	"math"
	"strings"
)

// RiskTier is the qualitative risk classification of a patrol area.
type RiskTier string

const (
	RiskLow      RiskTier = "Low"
	RiskModerate RiskTier = "Moderate"
	RiskHigh     RiskTier = "High"
	RiskCritical RiskTier = "Critical"
	RiskGeneral  RiskTier = "General"
)

// CrimePattern names the crime types historically dominant in an area
// by time of day.
type CrimePattern struct {
	NightCrime   string `json:"night_crime"`
	DayCrime     string `json:"day_crime"`
	GeneralCrime string `json:"general_crime"`
}

// LocationProfile is the static reference record for a patrol area.
type LocationProfile struct {
	Key       string       `json:"key"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Risk      RiskTier     `json:"risk"`
	Pattern   CrimePattern `json:"pattern"`
}

// Station is a police station position used for nearby-station lookups.
type Station struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultKey is the profile every unrecognised location resolves to.
const DefaultKey = "DEFAULT"

// locationProfiles holds the representative centres, risk tiers and
// learned crime patterns for the covered areas.
var locationProfiles = map[string]LocationProfile{
	"HARARE":      {Key: "HARARE", Latitude: -17.8252, Longitude: 31.0531, Risk: RiskHigh, Pattern: CrimePattern{"Robbery", "Fraud", "Cybercrime"}},
	"BULAWAYO":    {Key: "BULAWAYO", Latitude: -20.1508, Longitude: 28.5795, Risk: RiskHigh, Pattern: CrimePattern{"Robbery", "Bribery", "Assault"}},
	"CHITUNGWIZA": {Key: "CHITUNGWIZA", Latitude: -18.0017, Longitude: 31.0369, Risk: RiskModerate, Pattern: CrimePattern{"Robbery", "Fraud", "Housebreaking"}},
	"GWERU":       {Key: "GWERU", Latitude: -19.4476, Longitude: 29.8196, Risk: RiskModerate, Pattern: CrimePattern{"Arson", "Drug Possession", "Murder"}},
	"MASVINGO":    {Key: "MASVINGO", Latitude: -20.0660, Longitude: 30.8328, Risk: RiskModerate, Pattern: CrimePattern{"Robbery", "Theft", "Kidnapping"}},
	"MUTARE":      {Key: "MUTARE", Latitude: -18.9707, Longitude: 32.6709, Risk: RiskModerate, Pattern: CrimePattern{"Robbery", "Arson", "Fraud"}},
	"BEITBRIDGE":  {Key: "BEITBRIDGE", Latitude: -22.2140, Longitude: 30.0036, Risk: RiskCritical, Pattern: CrimePattern{"Stock Theft", "Smuggling", "Rape"}},
	"CHINHOYI":    {Key: "CHINHOYI", Latitude: -17.3667, Longitude: 30.2, Risk: RiskModerate, Pattern: CrimePattern{"Murder", "Corruption", "Theft"}},
	"MARONDERA":   {Key: "MARONDERA", Latitude: -18.1853, Longitude: 31.5514, Risk: RiskModerate, Pattern: CrimePattern{"Murder", "Bribery", "Assault"}},
	"KWEKWE":      {Key: "KWEKWE", Latitude: -18.9167, Longitude: 29.8167, Risk: RiskModerate, Pattern: CrimePattern{"Arson", "Fraud", "Kidnapping"}},
	"ZVISHA":      {Key: "ZVISHA", Latitude: -20.3333, Longitude: 30.0667, Risk: RiskModerate, Pattern: CrimePattern{"Robbery", "Stock Theft", "Assault"}}, // Zvishavane
	"KADOMA":      {Key: "KADOMA", Latitude: -18.3333, Longitude: 29.9167, Risk: RiskModerate, Pattern: CrimePattern{"Robbery", "Theft", "Vandalism"}},
	"VIC FALLS":   {Key: "VIC FALLS", Latitude: -17.9333, Longitude: 25.8333, Risk: RiskModerate, Pattern: CrimePattern{"Housebreaking", "Smuggling", "Rape"}}, // Victoria Falls
	"HWANGE":      {Key: "HWANGE", Latitude: -18.3667, Longitude: 26.5, Risk: RiskModerate, Pattern: CrimePattern{"Rape", "Kidnapping", "Assault"}},
	"BINDURA":     {Key: "BINDURA", Latitude: -17.3019, Longitude: 31.3306, Risk: RiskModerate, Pattern: CrimePattern{"Murder", "Kidnapping", "Rape"}},
	DefaultKey:    {Key: DefaultKey, Latitude: -19.0154, Longitude: 29.1549, Risk: RiskGeneral, Pattern: CrimePattern{"Robbery", "Theft", "Assault"}},
}

// stations lists sample ZRP stations per area.
var stations = map[string][]Station{
	"HARARE": {
		{"Harare Central Police Station", -17.8252, 31.0531},
		{"Avondale Police Station", -17.795, 31.035},
		{"Mbare Police Station", -17.855, 31.045},
	},
	"BULAWAYO": {
		{"Bulawayo Central Police Station", -20.1508, 28.5795},
		{"Nkulumane Police Station", -20.18, 28.55},
		{"Entumbane Police Station", -20.13, 28.58},
	},
	"CHITUNGWIZA": {
		{"Chitungwiza Police Station", -18.0017, 31.0369},
		{"Zengeza Police Post", -18.02, 31.04},
	},
	"GWERU": {
		{"Gweru Central Police Station", -19.4476, 29.8196},
		{"Mkoba Police Station", -19.43, 29.82},
	},
	"MASVINGO": {
		{"Masvingo Central Police Station", -20.0660, 30.8328},
		{"Mucheke Police Station", -20.08, 30.83},
	},
	"MUTARE": {
		{"Mutare Central Police Station", -18.9707, 32.6709},
		{"Sakubva Police Station", -18.98, 32.68},
	},
	"BEITBRIDGE": {
		{"Beitbridge Police Station", -22.2140, 30.0036},
		{"Dite Police Post", -22.22, 30.01},
	},
	"CHINHOYI": {
		{"Chinhoyi Police Station", -17.3667, 30.2},
		{"Banket Police Post", -17.38, 30.22},
	},
	"MARONDERA": {
		{"Marondera Police Station", -18.1853, 31.5514},
		{"Dombotombo Police Post", -18.17, 31.55},
	},
	"KWEKWE": {
		{"Kwekwe Central Police Station", -18.9167, 29.8167},
		{"Redcliff Police Station", -18.92, 29.81},
	},
	"ZVISHA": {
		{"Zvishavane Police Station", -20.3333, 30.0667},
	},
	"KADOMA": {
		{"Kadoma Police Station", -18.3333, 29.9167},
		{"Chegutu Police Station", -18.13, 30.14},
	},
	"VIC FALLS": {
		{"Victoria Falls Police Station", -17.9333, 25.8333},
	},
	"HWANGE": {
		{"Hwange Police Station", -18.3667, 26.5},
		{"Dete Police Post", -18.62, 26.47},
	},
	"BINDURA": {
		{"Bindura Police Station", -17.3019, 31.3306},
	},
	DefaultKey: {
		{"Nearest Police Station", -19.0154, 29.1549},
	},
}

// NormalizeLocationKey turns free-text location input into a canonical
// profile key: any trailing parenthetical annotation is stripped and
// the remainder upper-cased. "Harare (Central)" -> "HARARE".
func NormalizeLocationKey(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.ToUpper(strings.TrimSpace(name))
}

// ProfileFor resolves a canonical key to its profile. Unrecognised keys
// resolve to the DEFAULT profile, so every caller gets a usable answer.
func ProfileFor(key string) LocationProfile {
	if p, ok := locationProfiles[key]; ok {
		return p
	}
	return locationProfiles[DefaultKey]
}

// KnownLocationKeys returns the canonical keys excluding DEFAULT, in no
// particular order. Used by the corpus generator.
func KnownLocationKeys() []string {
	keys := make([]string, 0, len(locationProfiles)-1)
	for k := range locationProfiles {
		if k != DefaultKey {
			keys = append(keys, k)
		}
	}
	return keys
}

// NearbyStations returns the stations registered for an area. When a
// reference point is supplied, stations beyond maxKm are filtered out
// using a flat-earth approximation, which is adequate at patrol scale.
func NearbyStations(key string, lat, lon *float64, maxKm float64) []Station {
	list, ok := stations[strings.ToUpper(key)]
	if !ok {
		list = stations[DefaultKey]
	}
	if lat == nil || lon == nil {
		return list
	}

	var nearby []Station
	for _, s := range list {
		dist := math.Hypot(s.Latitude-*lat, s.Longitude-*lon) * 111 // rough km per degree
		if dist <= maxKm {
			nearby = append(nearby, s)
		}
	}
	return nearby
}
