package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"scamshield/internal/db"
)

var (
	checkOutcomeDesc = prometheus.NewDesc(
		"scamshield_check_outcomes_total",
		"Total message check count by outcome",
		[]string{"outcome"},
		nil,
	)
)

// OutcomeCollector is a custom Prometheus collector that reads message check
// counts from the database on each scrape.
type OutcomeCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *OutcomeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- checkOutcomeDesc
}

// Collect queries the database for all check outcomes and emits them as counters.
func (c *OutcomeCollector) Collect(ch chan<- prometheus.Metric) {
	outcomes, err := c.db.GetAllCheckOutcomes(context.Background())
	if err != nil {
		slog.Error("failed to collect check outcome metrics", "error", err)
		return
	}
	for _, o := range outcomes {
		ch <- prometheus.MustNewConstMetric(
			checkOutcomeDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Outcome,
		)
	}
}

// Recorder provides async check outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&OutcomeCollector{db: database})
	})
}

// RecordCheckOutcome asynchronously records a message check outcome.
func RecordCheckOutcome(outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementCheckOutcome(context.Background(), outcome); err != nil {
			slog.Error("failed to record check outcome", "outcome", outcome, "error", err)
		}
	}()
}
