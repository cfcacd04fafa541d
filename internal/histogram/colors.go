package histogram

import "sort"

// TopColors is the number of ranked colors projected from the
// original_color histogram.
const TopColors = 5

// RankedColor is one rank slot in the color projection. Both fields are nil
// when fewer distinct colors exist than the slot's rank.
type RankedColor struct {
	Color *string
	Count *int64
}

// ColorSummary is the ranked top-N projection of a color histogram whose
// keys are "<r>_<g>_<b>" strings.
type ColorSummary struct {
	Top               [TopColors]RankedColor
	Dominant          RankedColor
	WasCut            bool
	UniqueValuesCount *int64
}

// SummarizeColors ranks distinct colors by count descending and projects the
// top five into fixed rank slots, null-padding missing ranks. Rank 1 is
// aliased as Dominant. Ties rank by color key ascending, which keeps the
// projection deterministic under Go's randomized map iteration.
func SummarizeColors(hist map[string]any) ColorSummary {
	sum := ColorSummary{
		WasCut:            histWasCut(hist),
		UniqueValuesCount: histUniqueValues(hist),
	}

	type colorCount struct {
		color string
		count int64
	}

	dist := distribution(hist)
	ranked := make([]colorCount, 0, len(dist))
	for color, v := range dist {
		count, ok := asCount(v)
		if !ok || count <= 0 {
			continue
		}
		ranked = append(ranked, colorCount{color: color, count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].color < ranked[j].color
	})

	for i := 0; i < TopColors && i < len(ranked); i++ {
		color := ranked[i].color
		count := ranked[i].count
		sum.Top[i] = RankedColor{Color: &color, Count: &count}
	}
	sum.Dominant = sum.Top[0]
	return sum
}
