// Package perf collects frame timings and byte counts when
// TERMSYNC_PROFILE is set, and periodically writes a summary to the log.
package perf

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/termsync/internal/logging"
)

const (
	sampleWindow      = 256
	defaultIntervalMs = 5000
)

// StatSnapshot summarizes the durations recorded under one name.
type StatSnapshot struct {
	Name  string
	Count int64
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
	P95   time.Duration
}

// CounterSnapshot is the accumulated value of one counter.
type CounterSnapshot struct {
	Name  string
	Value int64
}

type stat struct {
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples []time.Duration
	next    int
	full    bool
}

func (s *stat) add(d time.Duration) {
	s.count++
	s.total += d
	if s.count == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	if s.samples == nil {
		s.samples = make([]time.Duration, sampleWindow)
	}
	s.samples[s.next] = d
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.full = true
	}
}

func (s *stat) window() []time.Duration {
	if s.full {
		return s.samples
	}
	return s.samples[:s.next]
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu       sync.Mutex
	stats    = map[string]*stat{}
	counters = map[string]int64{}
)

func init() {
	enabled.Store(isEnabled())
	logInterval.Store(int64(defaultLogInterval()))
}

// Enabled reports whether profiling is enabled.
func Enabled() bool {
	return enabled.Load()
}

// Time returns a function that records elapsed time when invoked.
func Time(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record captures a duration sample for the given name.
func Record(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &stat{}
		stats[name] = s
	}
	s.add(d)
	mu.Unlock()

	maybeLog()
}

// Count increments a named counter by delta.
func Count(name string, delta int64) {
	if !enabled.Load() || delta == 0 {
		return
	}
	mu.Lock()
	counters[name] += delta
	mu.Unlock()

	maybeLog()
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last == 0 {
		lastLog.CompareAndSwap(0, now)
		return
	}
	if time.Duration(now-last) < interval || !lastLog.CompareAndSwap(last, now) {
		return
	}
	logSnapshot("PERF")
}

// Flush logs a summary of current stats/counters immediately.
// If reason is provided, it is included in the log prefix.
func Flush(reason string) {
	if !enabled.Load() {
		return
	}
	prefix := "PERF SUMMARY"
	if r := strings.TrimSpace(reason); r != "" {
		prefix += " " + r
	}
	logSnapshot(prefix)
}

func logSnapshot(prefix string) {
	statsOut, countersOut := Snapshot()
	for _, s := range statsOut {
		logging.Info("%s %s count=%d avg=%s p95=%s min=%s max=%s",
			prefix, s.Name, s.Count, s.Avg, s.P95, s.Min, s.Max)
	}
	for _, c := range countersOut {
		logging.Info("%s %s count=%d", prefix, c.Name, c.Value)
	}
}

// Snapshot returns current stats and counters sorted by name, and resets
// them.
func Snapshot() ([]StatSnapshot, []CounterSnapshot) {
	mu.Lock()
	statsOut := make([]StatSnapshot, 0, len(stats))
	for name, s := range stats {
		if s.count == 0 {
			continue
		}
		statsOut = append(statsOut, StatSnapshot{
			Name:  name,
			Count: s.count,
			Avg:   s.total / time.Duration(s.count),
			Min:   s.min,
			Max:   s.max,
			P95:   computeP95(s.window()),
		})
	}
	countersOut := make([]CounterSnapshot, 0, len(counters))
	for name, v := range counters {
		countersOut = append(countersOut, CounterSnapshot{Name: name, Value: v})
	}
	stats = map[string]*stat{}
	counters = map[string]int64{}
	mu.Unlock()

	sort.Slice(statsOut, func(i, j int) bool { return statsOut[i].Name < statsOut[j].Name })
	sort.Slice(countersOut, func(i, j int) bool { return countersOut[i].Name < countersOut[j].Name })
	return statsOut, countersOut
}

// EnableForTest forces collection on with periodic logging off. The
// returned function restores the previous settings.
func EnableForTest() func() {
	prevEnabled := enabled.Load()
	prevInterval := logInterval.Load()
	enabled.Store(true)
	logInterval.Store(0)
	lastLog.Store(0)
	Snapshot()
	return func() {
		enabled.Store(prevEnabled)
		logInterval.Store(prevInterval)
		Snapshot()
	}
}

func computeP95(samples []time.Duration) time.Duration {
	n := len(samples)
	if n == 0 {
		return 0
	}
	window := make([]time.Duration, n)
	copy(window, samples)
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
	pos := int(math.Ceil(0.95*float64(n))) - 1
	return window[min(max(pos, 0), n-1)]
}

func isEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TERMSYNC_PROFILE"))) {
	case "", "0", "false", "no":
		return false
	}
	return true
}

func defaultLogInterval() time.Duration {
	interval := defaultIntervalMs
	if raw := strings.TrimSpace(os.Getenv("TERMSYNC_PROFILE_INTERVAL_MS")); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			interval = val
		}
	}
	return time.Duration(interval) * time.Millisecond
}
