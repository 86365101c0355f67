package forecast

import "testing"

func TestIsNight(t *testing.T) {
	const (
		sunrise = int64(1700000000)
		sunset  = sunrise + 36000 // ten hours of daylight
	)

	tests := []struct {
		name string
		ts   int64
		want bool
	}{
		{"Before sunrise is night", sunrise - 1, true},
		{"Exactly sunrise is day", sunrise, false},
		{"Midday is day", sunrise + 18000, false},
		{"Just before sunset is day", sunset - 1, false},
		{"Exactly sunset is night", sunset, true},
		{"After sunset is night", sunset + 3600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNight(tt.ts, sunset, sunrise); got != tt.want {
				t.Errorf("IsNight(%d, %d, %d) = %v, want %v", tt.ts, sunset, sunrise, got, tt.want)
			}
		})
	}
}
