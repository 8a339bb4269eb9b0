package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hourlyFixture = "instant,dteday,season,yr,mnth,hr,holiday,weekday,workingday,weathersit,temp,atemp,hum,windspeed,casual,registered,cnt\n" +
	"1,2011-01-01,1,0,1,0,0,6,0,1,0.24,0.2879,0.81,0.0,3,13,16\n" +
	"2,2011-01-01,1,0,1,1,0,6,0,2,0.22,0.2727,0.80,0.0,8,32,40\n" +
	"3,2011-01-03,1,0,1,8,0,1,1,1,0.20,0.2576,0.86,0.0,5,200,205\n" +
	"4,2011-01-03,1,0,1,17,0,1,1,3,0.24,0.2879,0.75,0.1,2,150,152\n"

func run(t *testing.T, dir string, extra ...string) error {
	t.Helper()
	// Point config resolution away from any real config.yml.
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "no-config.yml"))
	args := []string{
		"-hourly", filepath.Join(dir, "hour.csv"),
		"-daily", filepath.Join(dir, "day.csv"),
		"-trips", filepath.Join(dir, "trips.csv"),
		"-data", filepath.Join(dir, "data"),
		"-out", filepath.Join(dir, "output"),
	}
	return Run(append(args, extra...))
}

func TestRunProducesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hour.csv"), []byte(hourlyFixture), 0o644))

	require.NoError(t, run(t, dir))

	for _, name := range []string{
		filepath.Join("data", "hourly_demand.csv"),
		filepath.Join("data", "weather_segments.csv"),
		filepath.Join("output", "temporal_analysis.png"),
		filepath.Join("output", "user_analysis.png"),
	} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, fi.Size(), name)
	}

	// Trips were absent, so the spatial output must not exist.
	_, err := os.Stat(filepath.Join(dir, "data", "top_stations.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunWithTrips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hour.csv"), []byte(hourlyFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trips.csv"), []byte(
		"Start Station,End Station\nCentral Park,Harbor\nCentral Park,Main St\nHarbor,Central Park\n"), 0o644))

	require.NoError(t, run(t, dir))

	b, err := os.ReadFile(filepath.Join(dir, "data", "top_stations.csv"))
	require.NoError(t, err)
	assert.Equal(t, "start_station,departures\nCentral Park,2\nHarbor,1\n", string(b))
}

func TestRunMissingHourlyProducesNoOutputs(t *testing.T) {
	dir := t.TempDir()

	err := run(t, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, name := range []string{"data", "output"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.ErrorIs(t, err, os.ErrNotExist, name)
	}
}

func TestRunAggregateContents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hour.csv"), []byte(hourlyFixture), 0o644))

	require.NoError(t, run(t, dir))

	b, err := os.ReadFile(filepath.Join(dir, "data", "hourly_demand.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"hour,day_type,average_rentals\n"+
			"0,Weekend/Holiday,16\n"+
			"1,Weekend/Holiday,40\n"+
			"8,Working Day,205\n"+
			"17,Working Day,152\n",
		string(b))

	b, err = os.ReadFile(filepath.Join(dir, "data", "weather_segments.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"weather_code,average_casual,average_registered\n"+
			"1,4,106.5\n"+
			"2,8,32\n"+
			"3,2,150\n",
		string(b))
}
