package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	scoringAssessedTotal  atomic.Uint64
	scoringEvaluatedTotal atomic.Uint64
	scoringInvalidTotal   atomic.Uint64

	syncTriggeredTotal atomic.Uint64
	syncSucceededTotal atomic.Uint64
	syncFailedTotal    atomic.Uint64

	syncDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncScoringAssessed counts one input quality assessment.
func IncScoringAssessed() {
	scoringAssessedTotal.Add(1)
}

// IncScoringEvaluated counts one full evaluation.
func IncScoringEvaluated() {
	scoringEvaluatedTotal.Add(1)
}

// IncScoringInvalid counts assessments that landed in the invalid band.
func IncScoringInvalid() {
	scoringInvalidTotal.Add(1)
}

// IncSyncTriggered increments the sync trigger counter.
func IncSyncTriggered() {
	syncTriggeredTotal.Add(1)
}

// IncSyncSucceeded increments the successful sync counter.
func IncSyncSucceeded() {
	syncSucceededTotal.Add(1)
}

// IncSyncFailed increments the failed sync counter.
func IncSyncFailed() {
	syncFailedTotal.Add(1)
}

// ObserveSyncDurationMs records a remote sync call duration in milliseconds.
func ObserveSyncDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	syncDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "scoring_assessed_total", "Total resume input assessments", scoringAssessedTotal.Load())
	writeCounter(&buf, "scoring_evaluated_total", "Total resume evaluations", scoringEvaluatedTotal.Load())
	writeCounter(&buf, "scoring_invalid_total", "Total assessments graded invalid", scoringInvalidTotal.Load())
	writeCounter(&buf, "job_sync_triggered_total", "Total job syncs triggered", syncTriggeredTotal.Load())
	writeCounter(&buf, "job_sync_succeeded_total", "Total job syncs succeeded", syncSucceededTotal.Load())
	writeCounter(&buf, "job_sync_failed_total", "Total job syncs failed", syncFailedTotal.Load())
	writeHistogram(&buf, "job_sync_duration_ms", "Remote sync duration in milliseconds", syncDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records the value in the first bucket it fits; Render accumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
