package internal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector keeps running totals of encoded documents, split by format name
type MetricsCollector struct {
	documents    int64
	bytesWritten int64
	failures     int64
	maxDocument  int64
	byFormat     sync.Map // format name -> *formatCounters
	startTime    time.Time
}

type formatCounters struct {
	documents int64
	bytes     int64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{startTime: time.Now()}
}

// RecordDocument records one successfully written document of n bytes
func (mc *MetricsCollector) RecordDocument(format string, n int) {
	size := int64(n)
	atomic.AddInt64(&mc.documents, 1)
	atomic.AddInt64(&mc.bytesWritten, size)
	updateMax(&mc.maxDocument, size)

	actual, _ := mc.byFormat.LoadOrStore(format, &formatCounters{})
	c := actual.(*formatCounters)
	atomic.AddInt64(&c.documents, 1)
	atomic.AddInt64(&c.bytes, size)
}

// RecordFailure records a document that could not be written
func (mc *MetricsCollector) RecordFailure() {
	atomic.AddInt64(&mc.failures, 1)
}

// FormatStats holds the per-format totals
type FormatStats struct {
	Documents int64 `json:"documents"`
	Bytes     int64 `json:"bytes"`
}

// Stats is a point-in-time snapshot of a MetricsCollector
type Stats struct {
	Documents   int64                  `json:"documents"`
	Bytes       int64                  `json:"bytes"`
	Failures    int64                  `json:"failures"`
	MaxDocument int64                  `json:"max_document"`
	ByFormat    map[string]FormatStats `json:"by_format"`
	Uptime      time.Duration          `json:"uptime"`
}

// Snapshot returns the current totals
func (mc *MetricsCollector) Snapshot() Stats {
	s := Stats{
		Documents:   atomic.LoadInt64(&mc.documents),
		Bytes:       atomic.LoadInt64(&mc.bytesWritten),
		Failures:    atomic.LoadInt64(&mc.failures),
		MaxDocument: atomic.LoadInt64(&mc.maxDocument),
		ByFormat:    make(map[string]FormatStats),
		Uptime:      time.Since(mc.startTime),
	}
	mc.byFormat.Range(func(key, value any) bool {
		if k, ok := key.(string); ok {
			if c, ok := value.(*formatCounters); ok {
				s.ByFormat[k] = FormatStats{
					Documents: atomic.LoadInt64(&c.documents),
					Bytes:     atomic.LoadInt64(&c.bytes),
				}
			}
		}
		return true
	})
	return s
}

// Reset clears all totals
func (mc *MetricsCollector) Reset() {
	atomic.StoreInt64(&mc.documents, 0)
	atomic.StoreInt64(&mc.bytesWritten, 0)
	atomic.StoreInt64(&mc.failures, 0)
	atomic.StoreInt64(&mc.maxDocument, 0)
	mc.byFormat.Range(func(key, _ any) bool {
		mc.byFormat.Delete(key)
		return true
	})
	mc.startTime = time.Now()
}

// Summary returns a formatted summary of the totals
func (mc *MetricsCollector) Summary() string {
	s := mc.Snapshot()

	names := make([]string, 0, len(s.ByFormat))
	for name := range s.ByFormat {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Encoded %d documents (%d bytes, largest %d), %d failed",
		s.Documents, s.Bytes, s.MaxDocument, s.Failures)
	for _, name := range names {
		fs := s.ByFormat[name]
		fmt.Fprintf(&b, "\n  %s: %d documents, %d bytes", name, fs.Documents, fs.Bytes)
	}
	return b.String()
}

// updateMax atomically updates target to value if value is greater
func updateMax(target *int64, value int64) {
	for {
		current := atomic.LoadInt64(target)
		if value <= current || atomic.CompareAndSwapInt64(target, current, value) {
			return
		}
	}
}
