package forecast

import (
	"math"
	"time"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

// SkyCondition is a coarse weather category derived from the provider's WMO
// weather code.
type SkyCondition int

const (
	SkyUnknown SkyCondition = iota
	SkyClear
	SkyCloudy
	SkyFog
	SkyDrizzle
	SkyRain
	SkySnow
	SkyRainShowers
	SkySnowShowers
	SkyThunderstorm
)

// ConditionForCode maps a WMO weather code onto a sky condition. The code
// ranges are a closed lookup table fixed by the WMO 4677 groups the provider
// emits; anything outside them is unknown.
func ConditionForCode(code int) SkyCondition {
	switch {
	case code == 0:
		return SkyClear
	case code >= 1 && code <= 3:
		return SkyCloudy
	case code >= 45 && code <= 48:
		return SkyFog
	case code >= 51 && code <= 57:
		return SkyDrizzle
	case code >= 61 && code <= 67:
		return SkyRain
	case code >= 71 && code <= 77:
		return SkySnow
	case code >= 80 && code <= 82:
		return SkyRainShowers
	case code >= 85 && code <= 86:
		return SkySnowShowers
	case code >= 95 && code <= 99:
		return SkyThunderstorm
	}
	return SkyUnknown
}

// Icon returns the emoji used in the weather pane.
func (c SkyCondition) Icon() string {
	switch c {
	case SkyClear:
		return "☀️"
	case SkyCloudy:
		return "☁️"
	case SkyFog:
		return "🌫️"
	case SkyDrizzle:
		return "🌦️"
	case SkyRain:
		return "🌧️"
	case SkySnow:
		return "❄️"
	case SkyRainShowers:
		return "🌧️"
	case SkySnowShowers:
		return "🌨️"
	case SkyThunderstorm:
		return "⛈️"
	}
	return "❓"
}

// kphToMph is the fixed conversion factor for the provider's wind speeds.
const kphToMph = 0.621371

// WeatherDay is one display-ready day of the weather forecast.
type WeatherDay struct {
	Label      string // "Today" or abbreviated weekday
	IsToday    bool
	Condition  SkyCondition
	MaxTempC   int
	MaxWindMph int
}

// BuildWeatherDays converts the provider's parallel arrays into display
// records, one per day. Index 0 is always labelled "Today"; later days use
// the abbreviated weekday of their date, falling back to the raw date string
// if it fails to parse.
func BuildWeatherDays(daily models.DailyWeather) []WeatherDay {
	n := daily.Days()
	days := make([]WeatherDay, 0, n)
	for i := 0; i < n; i++ {
		label := "Today"
		if i > 0 {
			label = daily.Time[i]
			if d, err := time.Parse("2006-01-02", daily.Time[i]); err == nil {
				label = d.Format("Mon")
			}
		}
		days = append(days, WeatherDay{
			Label:      label,
			IsToday:    i == 0,
			Condition:  ConditionForCode(daily.WeatherCode[i]),
			MaxTempC:   int(math.Round(daily.TemperatureMax[i])),
			MaxWindMph: int(math.Round(daily.WindSpeedMax[i] * kphToMph)),
		})
	}
	return days
}
