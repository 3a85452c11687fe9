package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"genderdecoder/internal/logger"
	"genderdecoder/internal/models"
)

var (
	storedAdsDesc = prometheus.NewDesc(
		"genderdecoder_job_ads_stored",
		"Number of stored job ads by coding",
		[]string{"coding"},
		nil,
	)

	analyses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "genderdecoder_analyses_total",
		Help: "Total job ad analyses by coding and source",
	}, []string{"coding", "source"})

	rescored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "genderdecoder_rescored_job_ads_total",
		Help: "Total stored job ads re-scored after a lexicon change",
	})
)

// Analysis sources.
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// CodingCounter reads stored ad counts per coding.
type CodingCounter interface {
	CountJobAdsByCoding(ctx context.Context) ([]models.CodingCount, error)
}

// StoredAdsCollector is a custom Prometheus collector that reads job ad counts
// from the database on each scrape.
type StoredAdsCollector struct {
	store   CodingCounter
	timeout time.Duration
}

// NewStoredAdsCollector creates a collector over store.
func NewStoredAdsCollector(store CodingCounter) *StoredAdsCollector {
	return &StoredAdsCollector{store: store, timeout: 5 * time.Second}
}

// Describe sends the metric descriptor to the channel.
func (c *StoredAdsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storedAdsDesc
}

// Collect queries the database for per-coding counts and emits them as gauges.
func (c *StoredAdsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.store.CountJobAdsByCoding(ctx)
	if err != nil {
		logger.Named("metrics").Error().Err(err).Msg("failed to collect stored job ad metrics")
		return
	}
	for _, cc := range counts {
		ch <- prometheus.MustNewConstMetric(
			storedAdsDesc,
			prometheus.GaugeValue,
			float64(cc.Count),
			cc.Coding,
		)
	}
}

var registerOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(store CodingCounter) {
	registerOnce.Do(func() {
		prometheus.MustRegister(analyses, rescored, NewStoredAdsCollector(store))
	})
}

// RecordAnalysis counts one analysis.
func RecordAnalysis(coding, source string) {
	analyses.WithLabelValues(coding, source).Inc()
}

// RecordRescore counts one re-scored ad.
func RecordRescore() {
	rescored.Inc()
}
