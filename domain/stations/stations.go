package stations

import "sort"

// Trip is one row of the raw trip log. Only the station columns matter here;
// the standard UCI dataset is aggregated and has no such log, which is why
// this whole module is optional.
type Trip struct {
	StartStation string
	EndStation   string
}

// StationCount is a start station with its departure count.
type StationCount struct {
	Station string
	Count   int
}

// TopStartStations counts trips per start station and returns the top n by
// count descending. Ties keep first-encounter order (stable sort over the
// order stations first appear in the log). Fewer than n distinct stations
// returns them all.
func TopStartStations(trips []Trip, n int) []StationCount {
	counts := make(map[string]int, len(trips))
	var order []string
	for _, t := range trips {
		if _, seen := counts[t.StartStation]; !seen {
			order = append(order, t.StartStation)
		}
		counts[t.StartStation]++
	}
	out := make([]StationCount, 0, len(order))
	for _, s := range order {
		out = append(out, StationCount{Station: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
