package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"bike-report/domain/rentals"
)

const dateLayout = "2006-01-02"

// ReadHourlyRentals loads the UCI hourly CSV and returns one cleaned record
// per data row, in input order. A missing file is reported as a not-found
// error; other malformed input surfaces as whatever parse error it causes.
func ReadHourlyRentals(path string) ([]rentals.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("hourly rentals file not found at %s: %w", path, err)
		}
		return nil, err
	}
	defer f.Close()
	slog.Info(fmt.Sprintf("Loading data from %s...", path))

	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx := indexMap(head)
	required := []string{
		"dteday", "yr", "mnth", "hr", "season", "weathersit", "workingday",
		"temp", "atemp", "hum", "windspeed", "casual", "registered", "cnt",
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s missing column %s (%s)", path, col, rentals.SemanticColumn(col))
		}
	}

	var recs []rentals.Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := parseRentalRow(rec, idx)
		if err != nil {
			return nil, err
		}
		recs = append(recs, row)
	}
	return recs, nil
}

func parseRentalRow(rec []string, idx map[string]int) (rentals.Record, error) {
	var (
		row rentals.Record
		err error
	)
	row.Date, err = time.Parse(dateLayout, rec[idx["dteday"]])
	if err != nil {
		return row, fmt.Errorf("parse date: %w", err)
	}
	ints := []struct {
		col string
		dst *int
	}{
		{"yr", &row.Year},
		{"mnth", &row.Month},
		{"hr", &row.Hour},
		{"season", &row.Season},
		{"weathersit", &row.WeatherCode},
		{"workingday", &row.IsWorkingDay},
		{"casual", &row.Casual},
		{"registered", &row.Registered},
		{"cnt", &row.TotalRentals},
	}
	for _, c := range ints {
		if *c.dst, err = strconv.Atoi(rec[idx[c.col]]); err != nil {
			return row, fmt.Errorf("column %s: %w", rentals.SemanticColumn(c.col), err)
		}
	}
	floats := []struct {
		col string
		dst *float64
	}{
		{"temp", &row.TempNorm},
		{"atemp", &row.FeelTempNorm},
		{"hum", &row.HumidityNorm},
		{"windspeed", &row.WindSpeedNorm},
	}
	for _, c := range floats {
		if *c.dst, err = strconv.ParseFloat(rec[idx[c.col]], 64); err != nil {
			return row, fmt.Errorf("column %s: %w", rentals.SemanticColumn(c.col), err)
		}
	}

	// Denormalize the weather readings back to real units and label the day.
	row.TempC = row.TempNorm * rentals.TempMaxC
	row.HumidityReal = row.HumidityNorm * rentals.HumidityMaxPct
	row.WindSpeedReal = row.WindSpeedNorm * rentals.WindSpeedMax
	row.DayType = rentals.DayTypeFor(row.IsWorkingDay)
	return row, nil
}

// ReadDailySummary digests the optional daily CSV into its date range and
// rental total. Callers treat a not-found error as a graceful skip.
func ReadDailySummary(path string) (rentals.DailySummary, error) {
	var sum rentals.DailySummary
	f, err := os.Open(path)
	if err != nil {
		return sum, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return sum, err
	}
	idx := indexMap(head)
	for _, col := range []string{"dteday", "cnt"} {
		if _, ok := idx[col]; !ok {
			return sum, fmt.Errorf("%s missing column %s (%s)", path, col, rentals.SemanticColumn(col))
		}
	}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, err
		}
		day, err := time.Parse(dateLayout, rec[idx["dteday"]])
		if err != nil {
			return sum, fmt.Errorf("parse date: %w", err)
		}
		total, err := strconv.Atoi(rec[idx["cnt"]])
		if err != nil {
			return sum, fmt.Errorf("column total_rentals: %w", err)
		}
		if sum.Days == 0 || day.Before(sum.From) {
			sum.From = day
		}
		if sum.Days == 0 || day.After(sum.To) {
			sum.To = day
		}
		sum.Days++
		sum.TotalRentals += total
	}
	return sum, nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}
