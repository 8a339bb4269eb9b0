package report

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bike-report/connectors/chart"
	"bike-report/connectors/config"
	ccsv "bike-report/connectors/csv"
	"bike-report/domain/rentals"
	"bike-report/domain/stations"
)

// Run executes the report command: load + clean the hourly rentals, run the
// temporal and weather aggregations, write each as CSV, render both charts,
// then the optional spatial step. Flags override the config; defaults
// reproduce the canonical run on data/hour.csv.
func Run(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	hourly := fs.String("hourly", "", "path to the hourly rentals CSV (default from config)")
	daily := fs.String("daily", "", "path to the daily rentals CSV (optional, default from config)")
	trips := fs.String("trips", "", "path to the raw trip log CSV (optional, default from config)")
	dataDir := fs.String("data", "", "directory for generated aggregate CSVs (default from config)")
	chartsDir := fs.String("out", "", "directory for rendered charts (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	override(&cfg.Data.Hourly, *hourly)
	override(&cfg.Data.Daily, *daily)
	override(&cfg.Data.Trips, *trips)
	override(&cfg.Report.DataDir, *dataDir)
	override(&cfg.Report.ChartsDir, *chartsDir)

	// The required input is checked before any output is produced.
	recs, err := ccsv.ReadHourlyRentals(cfg.Data.Hourly)
	if err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Loaded %d hourly records", len(recs)))
	logDailySummary(cfg.Data.Daily)

	if err := os.MkdirAll(cfg.Report.DataDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Report.ChartsDir, 0o755); err != nil {
		return err
	}

	slog.Info("--- Starting Analysis ---")
	renderer := chart.NewRenderer(styleFrom(cfg.Chart))

	hourlyDemand := rentals.AverageRentalsByHour(recs)
	if err := ccsv.WriteHourlyDemandCSV(filepath.Join(cfg.Report.DataDir, "hourly_demand.csv"), hourlyDemand); err != nil {
		return err
	}
	temporalPath := filepath.Join(cfg.Report.ChartsDir, "temporal_analysis.png")
	if err := renderer.RenderHourlyDemand(hourlyDemand, temporalPath); err != nil {
		return fmt.Errorf("render temporal chart: %w", err)
	}
	slog.Info(fmt.Sprintf("Saved temporal analysis to %s", temporalPath))

	segments := rentals.AverageUsersByWeather(recs)
	if err := ccsv.WriteWeatherSegmentsCSV(filepath.Join(cfg.Report.DataDir, "weather_segments.csv"), segments); err != nil {
		return err
	}
	weatherPath := filepath.Join(cfg.Report.ChartsDir, "user_analysis.png")
	if err := renderer.RenderWeatherSegments(segments, weatherPath); err != nil {
		return fmt.Errorf("render weather chart: %w", err)
	}
	slog.Info(fmt.Sprintf("Saved user analysis to %s", weatherPath))

	if err := runSpatial(cfg); err != nil {
		return err
	}
	slog.Info("--- Analysis Complete ---")
	return nil
}

// logDailySummary reports the optional daily CSV as a dataset digest. The
// hourly file carries the analysis; this one is informational only, so
// absence is a skip, not an error.
func logDailySummary(path string) {
	sum, err := ccsv.ReadDailySummary(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info(fmt.Sprintf("'%s' not found. Skipping daily summary.", path))
		return
	}
	if err != nil {
		slog.Warn(fmt.Sprintf("daily summary unavailable: %v", err))
		return
	}
	slog.Info(fmt.Sprintf("Daily dataset: %d days from %s to %s, %d total rentals",
		sum.Days, sum.From.Format("2006-01-02"), sum.To.Format("2006-01-02"), sum.TotalRentals))
}

// runSpatial counts top start stations when a raw trip log is available.
// The standard UCI dataset has no such log, so a missing file is the normal
// case and only logs a notice.
func runSpatial(cfg *config.Config) error {
	slog.Info("--- Checking for Spatial Data ---")
	trips, err := ccsv.ReadTrips(cfg.Data.Trips)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info(fmt.Sprintf("'%s' not found. Skipping spatial module.", cfg.Data.Trips))
		slog.Info("Note: the standard UCI dataset is aggregated and lacks station coordinates.")
		return nil
	}
	if err != nil {
		return err
	}
	top := stations.TopStartStations(trips, 5)
	if err := ccsv.WriteTopStationsCSV(filepath.Join(cfg.Report.DataDir, "top_stations.csv"), top); err != nil {
		return err
	}
	for _, s := range top {
		slog.Info(fmt.Sprintf("%s: %d departures", s.Station, s.Count))
	}
	return nil
}

func styleFrom(c config.Chart) chart.Style {
	s := chart.DefaultStyle()
	if c.WidthInches > 0 {
		s.WidthInches = c.WidthInches
	}
	if c.HeightInches > 0 {
		s.HeightInches = c.HeightInches
	}
	if c.TitleFontSize > 0 {
		s.TitleFontSize = c.TitleFontSize
	}
	s.Grid = c.Grid
	return s
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
