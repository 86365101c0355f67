package forecast

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Category
	}{
		{"Thunderstorm group", 212, CategoryThunderstorm},
		{"Drizzle group", 301, CategoryDrizzle},
		{"Rain group", 502, CategoryRain},
		{"Freezing rain is still rain", 511, CategoryRain},
		{"Snow group", 622, CategorySnow},
		{"Atmosphere group", 741, CategoryAtmosphere},
		{"Tornado is atmosphere", 781, CategoryAtmosphere},
		{"Clear is exactly 800", 800, CategoryClear},
		{"Few clouds", 801, CategoryClouds},
		{"Overcast", 804, CategoryClouds},
		{"Unknown code falls back to clouds", 900, CategoryClouds},
		{"Unknown low code falls back to clouds", 100, CategoryClouds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassify_AllKnownCodes(t *testing.T) {
	// Every labelled code must classify into its hundreds-digit family.
	for code := range conditionLabels {
		got := Classify(code)
		var want Category
		switch {
		case code == 800:
			want = CategoryClear
		case code > 800:
			want = CategoryClouds
		case code >= 700:
			want = CategoryAtmosphere
		case code >= 600:
			want = CategorySnow
		case code >= 500:
			want = CategoryRain
		case code >= 300:
			want = CategoryDrizzle
		default:
			want = CategoryThunderstorm
		}
		if got != want {
			t.Errorf("Classify(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "Thunderstorm with Light Rain"},
		{511, "Freezing Rain"},
		{800, "Clear Sky"},
		{802, "Scattered Clouds"},
		{999, "Unknown"},
	}

	for _, tt := range tests {
		if got := Label(tt.code); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		isNight bool
		want    Icon
	}{
		{"Clear day", 800, false, IconDaySunny},
		{"Clear night", 800, true, IconNightClear},
		{"Clouds day", 802, false, IconDayCloudy},
		{"Clouds night", 803, true, IconNightAltCloudy},
		{"Light rain day", 500, false, IconDayRain},
		{"Light rain night", 500, true, IconNightAltRain},
		{"Heavy rain ignores day/night", 503, false, IconRainWind},
		{"Heavy rain night same", 503, true, IconRainWind},
		{"Freezing rain", 511, false, IconSleet},
		{"Blowing snow day", 622, false, IconSnowWind},
		{"Blowing snow night", 622, true, IconNightAltSnow},
		{"Fog day", 741, false, IconDayFog},
		{"Fog night", 741, true, IconNightFog},
		{"Haze has no night variant", 721, true, IconDayHaze},
		{"Tornado", 781, false, IconTornado},
		{"Squall", 771, true, IconStrongWind},
		{"Volcanic ash", 762, false, IconVolcano},
		{"Unknown code day", 950, false, IconDayCloudy},
		{"Unknown code night", 950, true, IconNightAltCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconFor(tt.code, tt.isNight); got != tt.want {
				t.Errorf("IconFor(%d, %v) = %q, want %q", tt.code, tt.isNight, got, tt.want)
			}
		})
	}
}
