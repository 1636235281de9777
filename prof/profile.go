package prof

// Package prof is a lightweight timing recorder used by the command-line
// tools to report where a run spent its time (grouping, evolution steps,
// sampling) without pulling in a metrics stack.

import (
	"sort"
	"sync"
	"time"
)

// Sample is a single timing measurement.
type Sample struct {
	Label string
	Dur   time.Duration
}

// Summary aggregates the samples sharing one label.
type Summary struct {
	Label string
	Count int
	Total time.Duration
}

var (
	mu     sync.Mutex
	record []Sample
)

// Track logs the duration since start under the given label. Intended use:
//
//	defer prof.Track(time.Now(), "advance")
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Sample{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected samples and clears the recorder.
func SnapshotAndReset() []Sample {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Sample, len(record))
	copy(out, record)
	record = nil
	return out
}

// Summarize groups samples by label, sorted by descending total duration.
func Summarize(samples []Sample) []Summary {
	byLabel := make(map[string]*Summary)
	for _, s := range samples {
		sum, ok := byLabel[s.Label]
		if !ok {
			sum = &Summary{Label: s.Label}
			byLabel[s.Label] = sum
		}
		sum.Count++
		sum.Total += s.Dur
	}
	out := make([]Summary, 0, len(byLabel))
	for _, sum := range byLabel {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
