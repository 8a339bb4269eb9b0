package rentals

import (
	"sort"

	lo "github.com/samber/lo"
)

// HourlyDemand is one row of the temporal group-by-average: mean total
// rentals for an observed (hour, day type) pair.
type HourlyDemand struct {
	Hour       int
	DayType    string
	AvgRentals float64
}

// WeatherSegment is one row of the weather group-by-average: independent
// means of casual and registered rentals for an observed weather code.
type WeatherSegment struct {
	WeatherCode   int
	AvgCasual     float64
	AvgRegistered float64
}

type hourDayKey struct {
	hour    int
	dayType string
}

// AverageRentalsByHour groups records by (hour, day type) and averages total
// rentals per group. One row per observed pair, sorted by day type then hour,
// which puts "Weekend/Holiday" before "Working Day".
func AverageRentalsByHour(recs []Record) []HourlyDemand {
	groups := lo.GroupBy(recs, func(r Record) hourDayKey {
		return hourDayKey{hour: r.Hour, dayType: r.DayType}
	})
	out := make([]HourlyDemand, 0, len(groups))
	for k, g := range groups {
		total := lo.SumBy(g, func(r Record) int { return r.TotalRentals })
		out = append(out, HourlyDemand{
			Hour:       k.hour,
			DayType:    k.dayType,
			AvgRentals: float64(total) / float64(len(g)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayType != out[j].DayType {
			return out[i].DayType < out[j].DayType
		}
		return out[i].Hour < out[j].Hour
	})
	return out
}

// AverageUsersByWeather groups records by weather code and averages casual
// and registered rentals independently. One row per observed code, ascending.
// Codes are taken as-is (1=Clear … 4=Heavy Rain by dataset convention); no
// range check is performed.
func AverageUsersByWeather(recs []Record) []WeatherSegment {
	groups := lo.GroupBy(recs, func(r Record) int { return r.WeatherCode })
	out := make([]WeatherSegment, 0, len(groups))
	for code, g := range groups {
		n := float64(len(g))
		out = append(out, WeatherSegment{
			WeatherCode:   code,
			AvgCasual:     float64(lo.SumBy(g, func(r Record) int { return r.Casual })) / n,
			AvgRegistered: float64(lo.SumBy(g, func(r Record) int { return r.Registered })) / n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeatherCode < out[j].WeatherCode })
	return out
}
