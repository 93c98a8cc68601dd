package models

import "testing"

func TestSpecies_MinimumSizeLabel(t *testing.T) {
	tests := []struct {
		name string
		size float64
		want string
	}{
		{"positive size", 36, "36 cm"},
		{"fractional size", 27.5, "27.5 cm"},
		{"zero means no legal minimum", 0, "N/A - Catch & Release Recommended"},
		{"negative treated as no minimum", -1, "N/A - Catch & Release Recommended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Species{MinimumSizeCm: tt.size}
			if got := s.MinimumSizeLabel(); got != tt.want {
				t.Errorf("MinimumSizeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpecies_PlaceholderImageURL(t *testing.T) {
	s := Species{CommonName: "Sea Bass"}
	got := s.PlaceholderImageURL(100, 100)
	want := "https://placehold.co/100x100/e3f2fd/0d47a1?text=Sea%20Bass"
	if got != want {
		t.Errorf("PlaceholderImageURL() = %q, want %q", got, want)
	}
}

func TestMark_Summary(t *testing.T) {
	m := Mark{MarkType: "rock mark", County: "Northumberland", NearestTown: "Craster"}
	want := "A rock mark in Northumberland, near Craster."
	if got := m.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestTideEventType_Label(t *testing.T) {
	if TideHighWater.Label() != "High" {
		t.Errorf("TideHighWater.Label() = %q, want High", TideHighWater.Label())
	}
	if TideLowWater.Label() != "Low" {
		t.Errorf("TideLowWater.Label() = %q, want Low", TideLowWater.Label())
	}
}

func TestDailyWeather_Days(t *testing.T) {
	d := DailyWeather{
		Time:           []string{"2026-08-29", "2026-08-30", "2026-08-31"},
		WeatherCode:    []int{0, 3},
		TemperatureMax: []float64{14, 15, 16},
		WindSpeedMax:   []float64{10, 12, 14},
	}
	if got := d.Days(); got != 2 {
		t.Errorf("Days() = %d, want 2 (shortest array wins)", got)
	}
}
