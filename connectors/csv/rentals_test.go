package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bike-report/domain/rentals"
)

const hourlyHeader = "instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt\n"

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHourlyRentals(t *testing.T) {
	path := writeFixture(t, "hour.csv", hourlyHeader+
		"1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0.0,3,13,16\n"+
		"2,2011-01-01,1,0,1,1,0,6,1,2,0.5,0.2727,0.80,0.2985,8,32,40\n")

	recs, err := ReadHourlyRentals(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	assert.Equal(t, time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 0, first.Hour)
	assert.Equal(t, 1, first.WeatherCode)
	assert.Equal(t, 3, first.Casual)
	assert.Equal(t, 13, first.Registered)
	assert.Equal(t, 16, first.TotalRentals)
	assert.Equal(t, rentals.DayTypeWeekend, first.DayType)

	second := recs[1]
	assert.Equal(t, rentals.DayTypeWorking, second.DayType)
	assert.InDelta(t, 0.5*41, second.TempC, 1e-9)
	assert.InDelta(t, 0.80*100, second.HumidityReal, 1e-9)
	assert.InDelta(t, 0.2985*67, second.WindSpeedReal, 1e-9)
}

func TestReadHourlyRentalsRowCountPreserved(t *testing.T) {
	content := hourlyHeader
	for i := 0; i < 50; i++ {
		content += "1,2011-06-15,2,0,6,12,0,3,1,1,0.6,0.6,0.5,0.1,10,20,30\n"
	}
	path := writeFixture(t, "hour.csv", content)

	recs, err := ReadHourlyRentals(path)
	require.NoError(t, err)
	assert.Len(t, recs, 50)
}

func TestReadHourlyRentalsMissingFile(t *testing.T) {
	_, err := ReadHourlyRentals(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadHourlyRentalsMissingColumn(t *testing.T) {
	path := writeFixture(t, "hour.csv", "instant,dteday\n1,2011-01-01\n")
	_, err := ReadHourlyRentals(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadHourlyRentalsBadDate(t *testing.T) {
	path := writeFixture(t, "hour.csv", hourlyHeader+
		"1,01/01/2011,1,0,1,0,0,6,0,1,0.24,0.28,0.81,0.0,3,13,16\n")
	_, err := ReadHourlyRentals(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse date")
}

func TestReadHourlyRentalsBadNumber(t *testing.T) {
	path := writeFixture(t, "hour.csv", hourlyHeader+
		"1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.28,0.81,0.0,3,13,lots\n")
	_, err := ReadHourlyRentals(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_rentals")
}

func TestReadDailySummary(t *testing.T) {
	path := writeFixture(t, "day.csv",
		"instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt\n"+
			"1,2011-01-02,1,0,1,0,0,0,1,0.3,0.3,0.7,0.2,100,200,300\n"+
			"2,2011-01-01,1,0,1,0,6,0,2,0.3,0.3,0.7,0.2,50,150,200\n")

	sum, err := ReadDailySummary(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Days)
	assert.Equal(t, 500, sum.TotalRentals)
	assert.Equal(t, "2011-01-01", sum.From.Format("2006-01-02"))
	assert.Equal(t, "2011-01-02", sum.To.Format("2006-01-02"))
}

func TestReadDailySummaryMissingFile(t *testing.T) {
	_, err := ReadDailySummary(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
