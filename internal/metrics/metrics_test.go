package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"genderdecoder/internal/models"
)

type fakeCounter struct {
	counts []models.CodingCount
	err    error
}

func (f *fakeCounter) CountJobAdsByCoding(context.Context) ([]models.CodingCount, error) {
	return f.counts, f.err
}

func TestStoredAdsCollector(t *testing.T) {
	c := NewStoredAdsCollector(&fakeCounter{counts: []models.CodingCount{
		{Coding: "masculine-coded", Count: 3},
		{Coding: "neutral", Count: 1},
	}})

	expected := `
# HELP genderdecoder_job_ads_stored Number of stored job ads by coding
# TYPE genderdecoder_job_ads_stored gauge
genderdecoder_job_ads_stored{coding="masculine-coded"} 3
genderdecoder_job_ads_stored{coding="neutral"} 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collector output: %v", err)
	}
}

func TestStoredAdsCollector_StoreError(t *testing.T) {
	c := NewStoredAdsCollector(&fakeCounter{err: errors.New("db down")})
	if n := testutil.CollectAndCount(c); n != 0 {
		t.Errorf("CollectAndCount() = %d, want 0 on store error", n)
	}
}

func TestRecordAnalysis(t *testing.T) {
	before := testutil.ToFloat64(analyses.WithLabelValues("neutral", SourceAPI))
	RecordAnalysis("neutral", SourceAPI)
	RecordAnalysis("neutral", SourceAPI)
	after := testutil.ToFloat64(analyses.WithLabelValues("neutral", SourceAPI))
	if after-before != 2 {
		t.Errorf("counter moved by %v, want 2", after-before)
	}

	beforeRescore := testutil.ToFloat64(rescored)
	RecordRescore()
	if got := testutil.ToFloat64(rescored) - beforeRescore; got != 1 {
		t.Errorf("rescore counter moved by %v, want 1", got)
	}
}
