package rentals

import "time"

// ColumnRenames maps the cryptic UCI hourly-dataset headers to the semantic
// names used for Record fields and for every CSV this tool writes. Keeping
// the mapping in one table keeps the reader and the writers consistent.
var ColumnRenames = map[string]string{
	"dteday":     "date",
	"yr":         "year",
	"mnth":       "month",
	"hr":         "hour",
	"weathersit": "weather_code",
	"cnt":        "total_rentals",
	"hum":        "humidity_norm",
	"atemp":      "feel_temp_norm",
	"workingday": "is_working_day",
}

// SemanticColumn returns the renamed header for a source column, or the
// source name unchanged when no rename applies.
func SemanticColumn(src string) string {
	if sem, ok := ColumnRenames[src]; ok {
		return sem
	}
	return src
}

// Denormalization factors from the UCI dataset documentation: temp is
// min-max normalized against 41°C, humidity against 100%, wind speed
// against 67. If the source format ever changes these are silently wrong.
const (
	TempMaxC       = 41.0
	HumidityMaxPct = 100.0
	WindSpeedMax   = 67.0
)

const (
	DayTypeWorking = "Working Day"
	DayTypeWeekend = "Weekend/Holiday"
)

// DayTypeFor turns the binary working-day flag into its readable label.
func DayTypeFor(isWorkingDay int) string {
	if isWorkingDay == 1 {
		return DayTypeWorking
	}
	return DayTypeWeekend
}

// Record is one cleaned hourly observation: the source row with semantic
// names, a parsed date, and the derived real-unit fields. Immutable after
// the load pass.
type Record struct {
	Date         time.Time
	Year         int
	Month        int
	Hour         int
	Season       int
	WeatherCode  int
	IsWorkingDay int

	TempNorm      float64
	FeelTempNorm  float64
	HumidityNorm  float64
	WindSpeedNorm float64

	Casual       int
	Registered   int
	TotalRentals int

	// Derived during load.
	TempC         float64
	HumidityReal  float64
	WindSpeedReal float64
	DayType       string
}

// DailySummary is the informational digest of the optional daily CSV.
type DailySummary struct {
	From         time.Time
	To           time.Time
	Days         int
	TotalRentals int
}
