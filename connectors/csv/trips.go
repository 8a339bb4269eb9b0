package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"bike-report/domain/stations"
)

// ReadTrips loads the optional raw trip log. The file is not part of the
// standard UCI dataset; callers check the returned error with
// errors.Is(err, os.ErrNotExist) to take the skip path instead of failing.
func ReadTrips(path string) ([]stations.Trip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	head, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx := indexMap(head)
	startCol, ok := idx["start station"]
	if !ok {
		return nil, fmt.Errorf("%s missing column Start Station", path)
	}
	endCol, hasEnd := idx["end station"]

	var trips []stations.Trip
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t := stations.Trip{StartStation: rec[startCol]}
		if hasEnd {
			t.EndStation = rec[endCol]
		}
		trips = append(trips, t)
	}
	return trips, nil
}
