// Package forecast reads real-world weather and maps it onto game weather.
package forecast

import (
	"context"

	"github.com/appengine-ltd/stormfront/internal/weather"
)

const (
	FallbackTemperatureC = 15.0
	FallbackDescription  = "Temperate"
)

// Service reports the current real-world weather. Implementations never fail:
// when the provider cannot answer they return Fallback.
type Service interface {
	CurrentWeather(ctx context.Context) weather.Effect
}

// Fallback is the neutral reading used whenever the provider is unavailable.
func Fallback() *weather.APIWeather {
	return weather.NewAPIClear(FallbackTemperatureC, FallbackDescription)
}

// Static always reports the same weather. A nil Weather reports Fallback.
type Static struct {
	Weather weather.Effect
}

func (s Static) CurrentWeather(context.Context) weather.Effect {
	if s.Weather == nil {
		return Fallback()
	}
	return s.Weather
}

// FromCondition maps an OpenWeatherMap main condition plus its description to
// an API weather. Unknown conditions fall back to the fuzzy categoriser.
func FromCondition(main string, temperatureC float64, description string) *weather.APIWeather {
	switch normalize(main) {
	case "rain", "drizzle", "thunderstorm":
		return weather.NewAPIRain(temperatureC, description)
	case "snow":
		return weather.NewAPISnow(temperatureC, description)
	case "clear", "clouds":
		return weather.NewAPIClear(temperatureC, description)
	}
	return weather.NewAPIWeather(weather.Categorize(main+" "+description), temperatureC, description)
}
