package normalize

import (
	"github.com/yanivbyd/colony-analytics/internal/histogram"
	"github.com/yanivbyd/colony-analytics/pkg/types"
)

// SnapshotRow flattens one parsed stats snapshot into a StatsRow.
//
// An entirely missing histograms or meta section, or any individual metric
// sub-object, is replaced by an empty mapping, which yields all-null summary
// columns for the affected metric. Colony-id consistency with the object's
// location is the caller's responsibility.
func SnapshotRow(snapshot map[string]any) types.StatsRow {
	row := types.StatsRow{
		ColonyID:       optString(snapshot, "colony_instance_id"),
		Tick:           optInt64(snapshot, "tick"),
		CreaturesCount: optInt64(snapshot, "creatures_count"),
	}

	meta := childMap(snapshot, "meta")
	row.CreatedAtUTC = optString(meta, "created_at_utc")
	row.ColonyWidth = optInt64(meta, "colony_width")
	row.ColonyHeight = optInt64(meta, "colony_height")

	hists := childMap(snapshot, "histograms")

	size := histogram.SummarizeNumeric(childMap(hists, "creature_size"), true)
	row.CreatureSizeMean = size.Mean
	row.CreatureSizeAvg = size.Mean
	row.CreatureSizeP50 = size.P50
	row.CreatureSizeP90 = size.P90
	row.CreatureSizeP99 = size.P99
	row.CreatureSizeWasCut = size.WasCut
	row.CreatureSizeUniqueValuesCount = size.UniqueValuesCount

	health := histogram.SummarizeNumeric(childMap(hists, "health"), true)
	row.HealthMean = health.Mean
	row.HealthAvg = health.Mean
	row.HealthP50 = health.P50
	row.HealthP90 = health.P90
	row.HealthP99 = health.P99
	row.HealthWasCut = health.WasCut
	row.HealthUniqueValuesCount = health.UniqueValuesCount

	food := histogram.SummarizeNumeric(childMap(hists, "food"), true)
	row.FoodMean = food.Mean
	row.FoodAvg = food.Mean
	row.FoodP50 = food.P50
	row.FoodP90 = food.P90
	row.FoodP99 = food.P99
	row.FoodWasCut = food.WasCut
	row.FoodUniqueValuesCount = food.UniqueValuesCount

	age := histogram.SummarizeNumeric(childMap(hists, "age"), true)
	row.AgeMean = age.Mean
	row.AgeAvg = age.Mean
	row.AgeP50 = age.P50
	row.AgeP90 = age.P90
	row.AgeP99 = age.P99
	row.AgeWasCut = age.WasCut
	row.AgeUniqueValuesCount = age.UniqueValuesCount

	canKill := histogram.SummarizeBool(childMap(hists, "can_kill"))
	row.CanKillTrueCount = canKill.TrueCount
	row.CanKillFalseCount = canKill.FalseCount
	row.CanKillTrueFraction = canKill.TrueFraction
	row.CanKillAverage = canKill.Average
	row.CanKillWasCut = canKill.WasCut
	row.CanKillUniqueValuesCount = canKill.UniqueValuesCount

	canMove := histogram.SummarizeBool(childMap(hists, "can_move"))
	row.CanMoveTrueCount = canMove.TrueCount
	row.CanMoveFalseCount = canMove.FalseCount
	row.CanMoveTrueFraction = canMove.TrueFraction
	row.CanMoveAverage = canMove.Average
	row.CanMoveWasCut = canMove.WasCut
	row.CanMoveUniqueValuesCount = canMove.UniqueValuesCount

	colors := histogram.SummarizeColors(childMap(hists, "original_color"))
	row.OriginalColorWasCut = colors.WasCut
	row.OriginalColorUniqueValuesCount = colors.UniqueValuesCount
	row.OriginalColorTop1 = colors.Top[0].Color
	row.OriginalColorTop1Count = colors.Top[0].Count
	row.OriginalColorTop2 = colors.Top[1].Color
	row.OriginalColorTop2Count = colors.Top[1].Count
	row.OriginalColorTop3 = colors.Top[2].Color
	row.OriginalColorTop3Count = colors.Top[2].Count
	row.OriginalColorTop4 = colors.Top[3].Color
	row.OriginalColorTop4Count = colors.Top[3].Count
	row.OriginalColorTop5 = colors.Top[4].Color
	row.OriginalColorTop5Count = colors.Top[4].Count
	row.OriginalColorDominant = colors.Dominant.Color
	row.OriginalColorDominantCount = colors.Dominant.Count

	return row
}
