package forecast

import "math"

// Pollutant component keys, matching the OpenWeatherMap air pollution
// payload.
const (
	PollutantSO2  = "so2"
	PollutantNO2  = "no2"
	PollutantPM10 = "pm10"
	PollutantPM25 = "pm2_5"
	PollutantO3   = "o3"
	PollutantCO   = "co"
)

// AQITier describes one severity tier of an air quality scale. Min and
// Max are inclusive.
type AQITier struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	BgColor     string  `json:"bgColor"`
	Icon        string  `json:"icon"`

	// PollutantRanges holds per-pollutant concentration bands in
	// micrograms per cubic metre, inclusive on both ends.
	PollutantRanges map[string][2]float64 `json:"-"`
}

// AQIScale is an ordered table of disjoint severity tiers.
type AQIScale struct {
	Name  string
	Tiers []AQITier
}

// OWMScale is the discrete 1-5 scale OpenWeatherMap reports. This is
// the canonical default.
var OWMScale = AQIScale{
	Name: "owm",
	Tiers: []AQITier{
		{
			Min: 1, Max: 1,
			Label:       "Good",
			Description: "Air quality is considered satisfactory, and air pollution poses little or no risk.",
			Color:       "text-green-500", BgColor: "bg-green-500", Icon: "thumbs-up",
			PollutantRanges: map[string][2]float64{
				PollutantSO2:  {0, 20},
				PollutantNO2:  {0, 40},
				PollutantPM10: {0, 20},
				PollutantPM25: {0, 10},
				PollutantO3:   {0, 60},
				PollutantCO:   {0, 4400},
			},
		},
		{
			Min: 2, Max: 2,
			Label:       "Fair",
			Description: "Air quality is acceptable; however, some pollutants may be moderate.",
			Color:       "text-yellow-500", BgColor: "bg-yellow-500", Icon: "activity",
			PollutantRanges: map[string][2]float64{
				PollutantSO2:  {20, 80},
				PollutantNO2:  {40, 70},
				PollutantPM10: {20, 50},
				PollutantPM25: {10, 25},
				PollutantO3:   {60, 100},
				PollutantCO:   {4400, 9400},
			},
		},
		{
			Min: 3, Max: 3,
			Label:       "Moderate",
			Description: "Members of sensitive groups may experience health effects.",
			Color:       "text-orange-500", BgColor: "bg-orange-500", Icon: "alert-triangle",
			PollutantRanges: map[string][2]float64{
				PollutantSO2:  {80, 250},
				PollutantNO2:  {70, 150},
				PollutantPM10: {50, 100},
				PollutantPM25: {25, 50},
				PollutantO3:   {100, 140},
				PollutantCO:   {9400, 12400},
			},
		},
		{
			Min: 4, Max: 4,
			Label:       "Poor",
			Description: "Everyone may begin to experience health effects.",
			Color:       "text-red-500", BgColor: "bg-red-500", Icon: "alert-circle",
			PollutantRanges: map[string][2]float64{
				PollutantSO2:  {250, 350},
				PollutantNO2:  {150, 200},
				PollutantPM10: {100, 200},
				PollutantPM25: {50, 75},
				PollutantO3:   {140, 180},
				PollutantCO:   {12400, 15400},
			},
		},
		{
			Min: 5, Max: 5,
			Label:       "Very Poor",
			Description: "Health warnings of emergency conditions. Entire population is likely to be affected.",
			Color:       "text-purple-900", BgColor: "bg-purple-900", Icon: "skull",
			PollutantRanges: map[string][2]float64{
				PollutantSO2:  {350, math.Inf(1)},
				PollutantNO2:  {200, math.Inf(1)},
				PollutantPM10: {200, math.Inf(1)},
				PollutantPM25: {75, math.Inf(1)},
				PollutantO3:   {180, math.Inf(1)},
				PollutantCO:   {15400, math.Inf(1)},
			},
		},
	},
}

// EPAScale is the continuous 0-500 scale, selectable for providers that
// report it instead of the 1-5 index.
var EPAScale = AQIScale{
	Name: "epa",
	Tiers: []AQITier{
		{
			Min: 0, Max: 50,
			Label:       "Good",
			Description: "Air quality is considered satisfactory, and air pollution poses little or no risk.",
			Color:       "text-green-500", BgColor: "bg-green-500", Icon: "thumbs-up",
		},
		{
			Min: 51, Max: 100,
			Label:       "Moderate",
			Description: "Air quality is acceptable; however, some pollutants may be a concern for sensitive people.",
			Color:       "text-yellow-500", BgColor: "bg-yellow-500", Icon: "activity",
		},
		{
			Min: 101, Max: 150,
			Label:       "Unhealthy for Sensitive Groups",
			Description: "Members of sensitive groups may experience health effects.",
			Color:       "text-orange-500", BgColor: "bg-orange-500", Icon: "alert-triangle",
		},
		{
			Min: 151, Max: 200,
			Label:       "Unhealthy",
			Description: "Everyone may begin to experience health effects.",
			Color:       "text-red-500", BgColor: "bg-red-500", Icon: "alert-circle",
		},
		{
			Min: 201, Max: 300,
			Label:       "Very Unhealthy",
			Description: "Health alert: everyone may experience more serious health effects.",
			Color:       "text-purple-700", BgColor: "bg-purple-700", Icon: "alert-circle",
		},
		{
			Min: 301, Max: 500,
			Label:       "Hazardous",
			Description: "Health warnings of emergency conditions. Entire population is likely to be affected.",
			Color:       "text-purple-900", BgColor: "bg-purple-900", Icon: "skull",
		},
	},
}

// ScaleByName returns the scale for a config value, defaulting to the
// OpenWeatherMap 1-5 scale.
func ScaleByName(name string) AQIScale {
	if name == EPAScale.Name {
		return EPAScale
	}
	return OWMScale
}

// TierFor resolves an index to its severity tier. Indexes below the
// first range clamp to the first tier; indexes above the last range
// clamp to the last tier.
func (s AQIScale) TierFor(index int) AQITier {
	value := float64(index)
	for _, tier := range s.Tiers {
		if value >= tier.Min && value <= tier.Max {
			return tier
		}
	}
	if value < s.Tiers[0].Min {
		return s.Tiers[0]
	}
	return s.Tiers[len(s.Tiers)-1]
}

// PollutantTier finds the tier whose band for the named pollutant
// contains the concentration. Concentrations above every band clamp to
// the worst tier.
func (s AQIScale) PollutantTier(pollutant string, concentration float64) AQITier {
	for _, tier := range s.Tiers {
		band, ok := tier.PollutantRanges[pollutant]
		if !ok {
			continue
		}
		if concentration >= band[0] && concentration <= band[1] {
			return tier
		}
	}
	return s.Tiers[len(s.Tiers)-1]
}
