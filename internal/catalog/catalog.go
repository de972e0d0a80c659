// Package catalog computes the archive seed URLs for a sensor/country
// selection of the AI4Boundaries dataset.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

type Sensor string

const (
	SensorAll   Sensor = "All"
	SensorOrtho Sensor = "ortho"
	SensorS2    Sensor = "s2"
)

type Country string

const CountryAll Country = "All"

// Sensors and Countries enumerate the values accepted by SeedURLs.
var (
	Sensors   = []Sensor{SensorAll, SensorOrtho, SensorS2}
	Countries = []Country{CountryAll, "AT", "ES", "FR", "LU", "NL", "SE", "SI"}
)

var (
	ErrInvalidSensor  = errors.New("invalid sensor value")
	ErrInvalidCountry = errors.New("invalid country value")

	// ErrCountryNeedsSensor rejects a country filter without a sensor:
	// the archive has no per-country branch above the sensor level, so
	// the selection would match nothing.
	ErrCountryNeedsSensor = errors.New(`a country filter requires sensor "ortho" or "s2"`)
)

func validSensor(s Sensor) bool {
	for _, v := range Sensors {
		if s == v {
			return true
		}
	}
	return false
}

func validCountry(c Country) bool {
	for _, v := range Countries {
		if c == v {
			return true
		}
	}
	return false
}

// SeedURLs returns the archive directories to scrape for the given
// selection, in deterministic order. It performs no I/O.
func SeedURLs(baseURL string, sensor Sensor, country Country) ([]string, error) {
	if !validSensor(sensor) {
		return nil, fmt.Errorf("%w %q, choose from %v", ErrInvalidSensor, sensor, Sensors)
	}
	if !validCountry(country) {
		return nil, fmt.Errorf("%w %q, choose from %v", ErrInvalidCountry, country, Countries)
	}

	base := baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	switch {
	case sensor == SensorAll && country == CountryAll:
		return []string{base}, nil
	case sensor == SensorOrtho && country == CountryAll:
		return []string{base + "orthophoto/"}, nil
	case sensor == SensorOrtho:
		return []string{
			base + "orthophoto/images/" + string(country) + "/",
			base + "orthophoto/masks/" + string(country) + "/",
		}, nil
	case sensor == SensorS2 && country == CountryAll:
		return []string{base + "sentinel2/"}, nil
	case sensor == SensorS2:
		return []string{
			base + "sentinel2/images/" + string(country) + "/",
			base + "sentinel2/masks/" + string(country) + "/",
		}, nil
	default:
		return nil, ErrCountryNeedsSensor
	}
}
