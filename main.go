package main

import (
	cmdreport "bike-report/command/report"
	cmdstations "bike-report/command/stations"
	cmdweb "bike-report/command/web"
	"fmt"
	"log/slog"
	"os"
)

// Bike-sharing usage report generator over the UCI hourly/daily dataset.
// Usage:
//   bike-report report [-hourly data/hour.csv] [-daily data/day.csv] [-trips trips.csv] [-data data] [-out output]
//   bike-report stations [-trips trips.csv] [-n 5]
//   bike-report web [-addr :8080] [-data ./data] [-charts ./output]
// Notes:
// - report loads and cleans the hourly CSV (semantic renaming, weather
//   denormalization, day-type labels), aggregates demand by hour/day type and
//   users by weather code, writes the aggregates as CSV and renders both
//   charts as PNG. The trip log and the daily CSV are optional and skipped
//   with a notice when absent.

func main() {
	args := os.Args
	// Initialize slog logger (text to stderr, INFO level)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "report":
			if err := cmdreport.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "stations":
			if err := cmdstations.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: bike-report report [-hourly <csv>] [-trips <csv>] [-out <dir>] | stations [-n 5] | web [-addr :8080]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
