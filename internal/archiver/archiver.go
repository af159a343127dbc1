package archiver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-archiver/internal/report"
	"github.com/i474232898/weather-archiver/internal/weather"
)

// timestampLayout has second resolution; two fetches for the same city
// within the same second would collide on the object key.
const timestampLayout = "20060102-150405"

var errNoData = errors.New("no weather data to save")

// Fetcher retrieves the raw current-weather document for one city.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (weather.Reading, error)
}

// Store is the archive destination.
type Store interface {
	EnsureBucket(ctx context.Context)
	Put(ctx context.Context, key string, body []byte) error
}

// Archiver drives the fetch-then-archive workflow over a fixed city list.
type Archiver struct {
	fetcher Fetcher
	store   Store
	rep     report.Reporter
	out     io.Writer

	now func() time.Time
}

// New creates an Archiver. Display output goes to out (stdout in production).
func New(fetcher Fetcher, store Store, rep report.Reporter, out io.Writer) *Archiver {
	return &Archiver{
		fetcher: fetcher,
		store:   store,
		rep:     rep,
		out:     out,
		now:     time.Now,
	}
}

// EnsureBucket makes sure the destination bucket exists before the run.
// Failures are reported by the store and never stop the run.
func (a *Archiver) EnsureBucket(ctx context.Context) {
	a.store.EnsureBucket(ctx)
}

// Archive stamps the reading with the current timestamp and writes it as
// weather-data/{city}-{timestamp}.json. A nil return means exactly one new
// object exists in the bucket; a non-nil return means nothing was written.
func (a *Archiver) Archive(ctx context.Context, reading weather.Reading, city string) error {
	if len(reading) == 0 {
		a.rep.Report(report.LevelWarn, "no weather data to save", report.Fields{"city": city})
		return errNoData
	}

	timestamp := a.now().Format(timestampLayout)
	reading["timestamp"] = timestamp
	key := fmt.Sprintf("weather-data/%s-%s.json", city, timestamp)

	body, err := json.Marshal(reading)
	if err != nil {
		a.rep.Report(report.LevelError, "error serializing weather data", report.Fields{"city": city, "error": err})
		return err
	}

	if err := a.store.Put(ctx, key, body); err != nil {
		a.rep.Report(report.LevelError, "error saving weather data", report.Fields{"city": city, "key": key, "error": err})
		return err
	}

	a.rep.Report(report.LevelInfo, "weather data saved", report.Fields{"city": city, "key": key})
	return nil
}

// Run processes the cities strictly in order. Each city is fetched,
// shape-checked, displayed, and archived; any failure skips that city's
// remaining steps and the loop moves on to the next.
func (a *Archiver) Run(ctx context.Context, cities []string) {
	a.rep.Report(report.LevelInfo, "starting archive run", report.Fields{
		"run_id": uuid.NewString(),
		"cities": len(cities),
	})

	for _, city := range cities {
		fmt.Fprintf(a.out, "\nFetching weather data for %s...\n", city)

		reading, err := a.fetcher.Fetch(ctx, city)
		if err != nil {
			a.rep.Report(report.LevelError, "error fetching weather data", report.Fields{"city": city, "error": err})
			fmt.Fprintf(a.out, "Failed to fetch weather data for %s.\n", city)
			continue
		}

		fields, err := reading.Extract()
		if err != nil {
			a.rep.Report(report.LevelWarn, "unexpected response structure", report.Fields{"city": city})
			continue
		}

		fmt.Fprintf(a.out, "Temperature: %.1f°F\n", fields.Temp)
		fmt.Fprintf(a.out, "Feels like: %.1f°F\n", fields.FeelsLike)
		fmt.Fprintf(a.out, "Humidity: %.0f%%\n", fields.Humidity)
		fmt.Fprintf(a.out, "Conditions: %s\n", fields.Description)

		// Archive reports its own errors; the persist outcome never stops the loop.
		_ = a.Archive(ctx, reading, city)
	}
}
