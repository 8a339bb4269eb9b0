package csv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"bike-report/domain/rentals"
	"bike-report/domain/stations"
)

// WriteHourlyDemandCSV writes the temporal aggregation.
// Headers: hour, day_type, average_rentals
func WriteHourlyDemandCSV(path string, rows []rentals.HourlyDemand) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{rentals.SemanticColumn("hr"), "day_type", "average_rentals"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{strconv.Itoa(r.Hour), r.DayType, formatFloat(r.AvgRentals)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteWeatherSegmentsCSV writes the weather aggregation.
// Headers: weather_code, average_casual, average_registered
func WriteWeatherSegmentsCSV(path string, rows []rentals.WeatherSegment) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{rentals.SemanticColumn("weathersit"), "average_casual", "average_registered"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{strconv.Itoa(r.WeatherCode), formatFloat(r.AvgCasual), formatFloat(r.AvgRegistered)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteTopStationsCSV writes the spatial diagnostic counts.
// Headers: start_station, departures
func WriteTopStationsCSV(path string, rows []stations.StationCount) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"start_station", "departures"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Station, strconv.Itoa(r.Count)}); err != nil {
			return err
		}
	}
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
