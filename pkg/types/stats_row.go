// Package types provides the fixed row schemas produced by the normalization
// pipelines. Column names and nullability are a compatibility contract with
// downstream consumers (dashboards, ad-hoc analytics); renaming or dropping
// a column is a breaking change.
package types

// StatsRow is one flat row derived from a single stats snapshot object.
//
// Optional columns are pointer-typed and map to OPTIONAL parquet fields;
// a nil pointer is written as null. The *_was_cut flags default to false
// when the source histogram omits them and are never null.
type StatsRow struct {
	ColonyID       *string `parquet:"name=colony_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"colony_id"`
	Tick           *int64  `parquet:"name=tick, type=INT64, repetitiontype=OPTIONAL" json:"tick"`
	CreaturesCount *int64  `parquet:"name=creatures_count, type=INT64, repetitiontype=OPTIONAL" json:"creatures_count"`
	CreatedAtUTC   *string `parquet:"name=created_at_utc, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"created_at_utc"`
	ColonyWidth    *int64  `parquet:"name=colony_width, type=INT64, repetitiontype=OPTIONAL" json:"colony_width"`
	ColonyHeight   *int64  `parquet:"name=colony_height, type=INT64, repetitiontype=OPTIONAL" json:"colony_height"`

	CreatureSizeMean              *float64 `parquet:"name=creature_size_mean, type=DOUBLE, repetitiontype=OPTIONAL" json:"creature_size_mean"`
	CreatureSizeAvg               *float64 `parquet:"name=creature_size_avg, type=DOUBLE, repetitiontype=OPTIONAL" json:"creature_size_avg"`
	CreatureSizeP50               *float64 `parquet:"name=creature_size_p50, type=DOUBLE, repetitiontype=OPTIONAL" json:"creature_size_p50"`
	CreatureSizeP90               *float64 `parquet:"name=creature_size_p90, type=DOUBLE, repetitiontype=OPTIONAL" json:"creature_size_p90"`
	CreatureSizeP99               *float64 `parquet:"name=creature_size_p99, type=DOUBLE, repetitiontype=OPTIONAL" json:"creature_size_p99"`
	CreatureSizeWasCut            bool     `parquet:"name=creature_size_was_cut, type=BOOLEAN" json:"creature_size_was_cut"`
	CreatureSizeUniqueValuesCount *int64   `parquet:"name=creature_size_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"creature_size_unique_values_count"`

	HealthMean              *float64 `parquet:"name=health_mean, type=DOUBLE, repetitiontype=OPTIONAL" json:"health_mean"`
	HealthAvg               *float64 `parquet:"name=health_avg, type=DOUBLE, repetitiontype=OPTIONAL" json:"health_avg"`
	HealthP50               *float64 `parquet:"name=health_p50, type=DOUBLE, repetitiontype=OPTIONAL" json:"health_p50"`
	HealthP90               *float64 `parquet:"name=health_p90, type=DOUBLE, repetitiontype=OPTIONAL" json:"health_p90"`
	HealthP99               *float64 `parquet:"name=health_p99, type=DOUBLE, repetitiontype=OPTIONAL" json:"health_p99"`
	HealthWasCut            bool     `parquet:"name=health_was_cut, type=BOOLEAN" json:"health_was_cut"`
	HealthUniqueValuesCount *int64   `parquet:"name=health_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"health_unique_values_count"`

	FoodMean              *float64 `parquet:"name=food_mean, type=DOUBLE, repetitiontype=OPTIONAL" json:"food_mean"`
	FoodAvg               *float64 `parquet:"name=food_avg, type=DOUBLE, repetitiontype=OPTIONAL" json:"food_avg"`
	FoodP50               *float64 `parquet:"name=food_p50, type=DOUBLE, repetitiontype=OPTIONAL" json:"food_p50"`
	FoodP90               *float64 `parquet:"name=food_p90, type=DOUBLE, repetitiontype=OPTIONAL" json:"food_p90"`
	FoodP99               *float64 `parquet:"name=food_p99, type=DOUBLE, repetitiontype=OPTIONAL" json:"food_p99"`
	FoodWasCut            bool     `parquet:"name=food_was_cut, type=BOOLEAN" json:"food_was_cut"`
	FoodUniqueValuesCount *int64   `parquet:"name=food_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"food_unique_values_count"`

	AgeMean              *float64 `parquet:"name=age_mean, type=DOUBLE, repetitiontype=OPTIONAL" json:"age_mean"`
	AgeAvg               *float64 `parquet:"name=age_avg, type=DOUBLE, repetitiontype=OPTIONAL" json:"age_avg"`
	AgeP50               *float64 `parquet:"name=age_p50, type=DOUBLE, repetitiontype=OPTIONAL" json:"age_p50"`
	AgeP90               *float64 `parquet:"name=age_p90, type=DOUBLE, repetitiontype=OPTIONAL" json:"age_p90"`
	AgeP99               *float64 `parquet:"name=age_p99, type=DOUBLE, repetitiontype=OPTIONAL" json:"age_p99"`
	AgeWasCut            bool     `parquet:"name=age_was_cut, type=BOOLEAN" json:"age_was_cut"`
	AgeUniqueValuesCount *int64   `parquet:"name=age_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"age_unique_values_count"`

	CanKillTrueCount         int64    `parquet:"name=can_kill_true_count, type=INT64" json:"can_kill_true_count"`
	CanKillFalseCount        int64    `parquet:"name=can_kill_false_count, type=INT64" json:"can_kill_false_count"`
	CanKillTrueFraction      *float64 `parquet:"name=can_kill_true_fraction, type=DOUBLE, repetitiontype=OPTIONAL" json:"can_kill_true_fraction"`
	CanKillAverage           *float64 `parquet:"name=can_kill_average, type=DOUBLE, repetitiontype=OPTIONAL" json:"can_kill_average"`
	CanKillWasCut            bool     `parquet:"name=can_kill_was_cut, type=BOOLEAN" json:"can_kill_was_cut"`
	CanKillUniqueValuesCount *int64   `parquet:"name=can_kill_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"can_kill_unique_values_count"`

	CanMoveTrueCount         int64    `parquet:"name=can_move_true_count, type=INT64" json:"can_move_true_count"`
	CanMoveFalseCount        int64    `parquet:"name=can_move_false_count, type=INT64" json:"can_move_false_count"`
	CanMoveTrueFraction      *float64 `parquet:"name=can_move_true_fraction, type=DOUBLE, repetitiontype=OPTIONAL" json:"can_move_true_fraction"`
	CanMoveAverage           *float64 `parquet:"name=can_move_average, type=DOUBLE, repetitiontype=OPTIONAL" json:"can_move_average"`
	CanMoveWasCut            bool     `parquet:"name=can_move_was_cut, type=BOOLEAN" json:"can_move_was_cut"`
	CanMoveUniqueValuesCount *int64   `parquet:"name=can_move_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"can_move_unique_values_count"`

	OriginalColorWasCut            bool    `parquet:"name=original_color_was_cut, type=BOOLEAN" json:"original_color_was_cut"`
	OriginalColorUniqueValuesCount *int64  `parquet:"name=original_color_unique_values_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_unique_values_count"`
	OriginalColorTop1              *string `parquet:"name=original_color_top1, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_top1"`
	OriginalColorTop1Count         *int64  `parquet:"name=original_color_top1_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_top1_count"`
	OriginalColorTop2              *string `parquet:"name=original_color_top2, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_top2"`
	OriginalColorTop2Count         *int64  `parquet:"name=original_color_top2_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_top2_count"`
	OriginalColorTop3              *string `parquet:"name=original_color_top3, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_top3"`
	OriginalColorTop3Count         *int64  `parquet:"name=original_color_top3_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_top3_count"`
	OriginalColorTop4              *string `parquet:"name=original_color_top4, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_top4"`
	OriginalColorTop4Count         *int64  `parquet:"name=original_color_top4_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_top4_count"`
	OriginalColorTop5              *string `parquet:"name=original_color_top5, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_top5"`
	OriginalColorTop5Count         *int64  `parquet:"name=original_color_top5_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_top5_count"`
	OriginalColorDominant          *string `parquet:"name=original_color_dominant, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"original_color_dominant"`
	OriginalColorDominantCount     *int64  `parquet:"name=original_color_dominant_count, type=INT64, repetitiontype=OPTIONAL" json:"original_color_dominant_count"`
}
