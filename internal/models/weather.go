package models

// DailyWeather holds the provider's parallel daily arrays, one entry per
// forecast day. Time values are calendar dates in the location's own
// timezone, formatted 2006-01-02.
type DailyWeather struct {
	Time           []string
	WeatherCode    []int
	TemperatureMax []float64 // °C
	WindSpeedMax   []float64 // km/h
}

// Days returns the number of complete days present, guarding against the
// arrays arriving with mismatched lengths.
func (d DailyWeather) Days() int {
	n := len(d.Time)
	if len(d.WeatherCode) < n {
		n = len(d.WeatherCode)
	}
	if len(d.TemperatureMax) < n {
		n = len(d.TemperatureMax)
	}
	if len(d.WindSpeedMax) < n {
		n = len(d.WindSpeedMax)
	}
	return n
}
