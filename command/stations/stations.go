package stations

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bike-report/connectors/config"
	ccsv "bike-report/connectors/csv"
	"bike-report/domain/stations"
)

// Run executes the stations command: the spatial diagnostic on its own,
// without regenerating the charts. Prints one "station<TAB>count" line per
// top station to stdout; a missing trip log is a notice, not a failure.
func Run(args []string) error {
	fs := flag.NewFlagSet("stations", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	trips := fs.String("trips", "", "path to the raw trip log CSV (default from config)")
	n := fs.Int("n", 5, "number of stations to report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	path := cfg.Data.Trips
	if *trips != "" {
		path = *trips
	}

	rows, err := ccsv.ReadTrips(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info(fmt.Sprintf("'%s' not found. Skipping spatial module.", path))
		return nil
	}
	if err != nil {
		return err
	}
	for _, s := range stations.TopStartStations(rows, *n) {
		fmt.Printf("%s\t%d\n", s.Station, s.Count)
	}
	return nil
}
