// Package histogram summarizes value→count distributions captured in colony
// stats snapshots. Inputs arrive as generically-decoded JSON objects of the
// shape {"distribution": {...}, "average": ..., "was_cut": ...,
// "unique_values_count": ...}; malformed keys or counts are filtered out,
// never fatal, so the summarizers stay total over partial or corrupt input.
package histogram

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// NumericSummary holds the summary statistics for one numeric histogram.
// All statistics are null when the distribution has no valid entries;
// WasCut and UniqueValuesCount pass through from the input regardless.
type NumericSummary struct {
	Mean              *float64
	P50               *float64
	P90               *float64
	P99               *float64
	WasCut            bool
	UniqueValuesCount *int64
}

// BoolSummary holds the summary for a boolean histogram keyed "0"/"1".
type BoolSummary struct {
	TrueCount         int64
	FalseCount        int64
	TrueFraction      *float64
	Average           *float64
	WasCut            bool
	UniqueValuesCount *int64
}

type entry struct {
	value float64
	count int64
}

// SummarizeNumeric computes the weighted mean and discrete weighted
// percentiles (p50/p90/p99) of a numeric histogram.
//
// When preferSuppliedAverage is set and the histogram carries a precomputed
// "average", that value wins over the count-weighted mean derived from the
// distribution. Upstream truncates large distributions (was_cut), so its
// precomputed average can be more accurate than anything derivable locally.
func SummarizeNumeric(hist map[string]any, preferSuppliedAverage bool) NumericSummary {
	sum := NumericSummary{
		WasCut:            histWasCut(hist),
		UniqueValuesCount: histUniqueValues(hist),
	}

	entries := numericEntries(distribution(hist))
	if len(entries) == 0 {
		return sum
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	var total int64
	var weighted float64
	for _, e := range entries {
		total += e.count
		weighted += e.value * float64(e.count)
	}

	mean := weighted / float64(total)
	if preferSuppliedAverage {
		if avg := suppliedAverage(hist); avg != nil {
			mean = *avg
		}
	}
	sum.Mean = &mean

	sum.P50 = percentile(entries, total, 0.5)
	sum.P90 = percentile(entries, total, 0.9)
	sum.P99 = percentile(entries, total, 0.99)
	return sum
}

// SummarizeBool summarizes a histogram whose keys are the literals "0" and
// "1". A missing or unparsable count is treated as zero. TrueFraction is
// always derived from the counts; only Average is overridable by the
// histogram's supplied "average".
func SummarizeBool(hist map[string]any) BoolSummary {
	sum := BoolSummary{
		WasCut:            histWasCut(hist),
		UniqueValuesCount: histUniqueValues(hist),
	}

	dist := distribution(hist)
	sum.TrueCount = boolCount(dist, "1")
	sum.FalseCount = boolCount(dist, "0")

	if total := sum.TrueCount + sum.FalseCount; total > 0 {
		frac := float64(sum.TrueCount) / float64(total)
		sum.TrueFraction = &frac
	}

	if avg := suppliedAverage(hist); avg != nil {
		sum.Average = avg
	} else if sum.TrueFraction != nil {
		frac := *sum.TrueFraction
		sum.Average = &frac
	}
	return sum
}

// percentile returns the value of the first entry, in ascending value order,
// whose running count reaches total*p. Ties within a value are never split.
// Entries must be sorted and total positive.
func percentile(entries []entry, total int64, p float64) *float64 {
	threshold := float64(total) * p
	var running int64
	for _, e := range entries {
		running += e.count
		if float64(running) >= threshold {
			v := e.value
			return &v
		}
	}
	// Unreachable for p <= 1, kept as a floor on corrupt accumulation.
	v := entries[len(entries)-1].value
	return &v
}

// numericEntries parses a distribution into (value, count) pairs, dropping
// entries whose key is not a number or whose count is not a positive integer.
func numericEntries(dist map[string]any) []entry {
	entries := make([]entry, 0, len(dist))
	for k, v := range dist {
		value, err := strconv.ParseFloat(k, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		count, ok := asCount(v)
		if !ok || count <= 0 {
			continue
		}
		entries = append(entries, entry{value: value, count: count})
	}
	return entries
}

func boolCount(dist map[string]any, key string) int64 {
	count, ok := asCount(dist[key])
	if !ok || count < 0 {
		return 0
	}
	return count
}

// distribution returns the histogram's distribution mapping, substituting an
// empty mapping when the field is absent or not an object.
func distribution(hist map[string]any) map[string]any {
	if dist, ok := hist["distribution"].(map[string]any); ok {
		return dist
	}
	return nil
}

func suppliedAverage(hist map[string]any) *float64 {
	avg, ok := asFloat(hist["average"])
	if !ok {
		return nil
	}
	return &avg
}

func histWasCut(hist map[string]any) bool {
	cut, _ := hist["was_cut"].(bool)
	return cut
}

func histUniqueValues(hist map[string]any) *int64 {
	n, ok := asCount(hist["unique_values_count"])
	if !ok {
		return nil
	}
	return &n
}

// asCount coerces a generically-decoded JSON value to an integer count.
// Fractional values truncate toward zero.
func asCount(v any) (int64, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// asFloat coerces the numeric representations encoding/json can produce,
// plus numeric strings, which upstream serializers occasionally emit.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
