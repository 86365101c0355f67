package forecast

import "testing"

func TestOWMScale_TierFor(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"Good", 1, "Good"},
		{"Fair", 2, "Fair"},
		{"Moderate", 3, "Moderate"},
		{"Poor", 4, "Poor"},
		{"Very poor", 5, "Very Poor"},
		{"Below range clamps to first", 0, "Good"},
		{"Above range clamps to last", 9, "Very Poor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OWMScale.TierFor(tt.index)
			if got.Label != tt.want {
				t.Errorf("TierFor(%d).Label = %q, want %q", tt.index, got.Label, tt.want)
			}
		})
	}
}

func TestEPAScale_TierFor(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "Good"},
		{50, "Good"},
		{51, "Moderate"},
		{100, "Moderate"},
		{101, "Unhealthy for Sensitive Groups"},
		{151, "Unhealthy"},
		{201, "Very Unhealthy"},
		{301, "Hazardous"},
		{500, "Hazardous"},
		{700, "Hazardous"},
	}

	for _, tt := range tests {
		got := EPAScale.TierFor(tt.index)
		if got.Label != tt.want {
			t.Errorf("TierFor(%d).Label = %q, want %q", tt.index, got.Label, tt.want)
		}
	}
}

func TestScaleByName(t *testing.T) {
	if ScaleByName("epa").Name != "epa" {
		t.Error("expected the EPA scale for \"epa\"")
	}
	if ScaleByName("owm").Name != "owm" {
		t.Error("expected the OpenWeatherMap scale for \"owm\"")
	}
	if ScaleByName("").Name != "owm" {
		t.Error("empty scale name should default to the OpenWeatherMap scale")
	}
	if ScaleByName("bogus").Name != "owm" {
		t.Error("unknown scale name should default to the OpenWeatherMap scale")
	}
}

func TestOWMScale_PollutantTier(t *testing.T) {
	tests := []struct {
		name          string
		pollutant     string
		concentration float64
		want          string
	}{
		{"Clean PM2.5", PollutantPM25, 5, "Good"},
		{"Fair PM2.5", PollutantPM25, 20, "Fair"},
		{"Moderate PM10", PollutantPM10, 80, "Moderate"},
		{"Poor NO2", PollutantNO2, 180, "Poor"},
		{"Extreme ozone clamps to worst", PollutantO3, 400, "Very Poor"},
		{"CO upper band is open-ended", PollutantCO, 1e6, "Very Poor"},
		{"Unknown pollutant clamps to worst", "nh3", 1, "Very Poor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OWMScale.PollutantTier(tt.pollutant, tt.concentration)
			if got.Label != tt.want {
				t.Errorf("PollutantTier(%q, %v).Label = %q, want %q", tt.pollutant, tt.concentration, got.Label, tt.want)
			}
		})
	}
}

// The tier tables carry the presentation fields the display needs, so a
// missing color or icon is a data bug, not a styling choice.
func TestScales_TiersArePresentable(t *testing.T) {
	for _, scale := range []AQIScale{OWMScale, EPAScale} {
		for _, tier := range scale.Tiers {
			if tier.Label == "" || tier.Description == "" || tier.Color == "" || tier.BgColor == "" || tier.Icon == "" {
				t.Errorf("scale %q tier %v-%v is missing presentation fields", scale.Name, tier.Min, tier.Max)
			}
		}
	}
}
