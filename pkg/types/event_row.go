package types

// Event payload variants recognized by the events pipeline. Anything else
// becomes EventUnknown with the raw payload serialized into event_data_value.
const (
	EventCreateCreature         = "CreateCreature"
	EventChangeExtraFoodPerTick = "ChangeExtraFoodPerTick"
	EventExtinction             = "Extinction"
	EventNewTopography          = "NewTopography"
	EventChangeColonyRules      = "ChangeColonyRules"
	EventUnknown                = "Unknown"
)

// EventRow is one flat row derived from a single colony event object.
//
// Every row carries the full column superset regardless of payload variant:
// each variant populates its own columns and leaves every other variant's
// columns null. This keeps the table schema stable across heterogeneous
// event streams.
type EventRow struct {
	ColonyID         *string `parquet:"name=colony_id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"colony_id"`
	Tick             *int64  `parquet:"name=tick, type=INT64, repetitiontype=OPTIONAL" json:"tick"`
	EventType        *string `parquet:"name=event_type, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"event_type"`
	EventDescription *string `parquet:"name=event_description, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"event_description"`

	// Colony rule snapshot at event time.
	RulesHealthCostPerSizeUnit  *float64 `parquet:"name=rules_health_cost_per_size_unit, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_health_cost_per_size_unit"`
	RulesEatCapacityPerSizeUnit *float64 `parquet:"name=rules_eat_capacity_per_size_unit, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_eat_capacity_per_size_unit"`
	RulesHealthCostIfCanKill    *float64 `parquet:"name=rules_health_cost_if_can_kill, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_health_cost_if_can_kill"`
	RulesHealthCostIfCanMove    *float64 `parquet:"name=rules_health_cost_if_can_move, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_health_cost_if_can_move"`
	RulesMutationChance         *float64 `parquet:"name=rules_mutation_chance, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_mutation_chance"`
	RulesRandomDeathChance      *float64 `parquet:"name=rules_random_death_chance, type=DOUBLE, repetitiontype=OPTIONAL" json:"rules_random_death_chance"`

	// EventDataType is the payload variant name, or null when the event
	// carried no payload at all.
	EventDataType *string `parquet:"name=event_data_type, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"event_data_type"`

	// EventDataValue holds ChangeColonyRules descriptions, stringified
	// ChangeExtraFoodPerTick values, and opaque JSON for Unknown payloads.
	// Always text: mixing numeric and string values here would break the
	// combined table schema.
	EventDataValue *string `parquet:"name=event_data_value, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"event_data_value"`

	// CreateCreature: spawn region.
	EventDataRegionType    *string  `parquet:"name=event_data_region_type, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL" json:"event_data_region_type"`
	EventDataRegionX       *float64 `parquet:"name=event_data_region_x, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_region_x"`
	EventDataRegionY       *float64 `parquet:"name=event_data_region_y, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_region_y"`
	EventDataRegionRadiusX *float64 `parquet:"name=event_data_region_radius_x, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_region_radius_x"`
	EventDataRegionRadiusY *float64 `parquet:"name=event_data_region_radius_y, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_region_radius_y"`

	// CreateCreature: creature color and traits.
	EventDataColorR         *float64 `parquet:"name=event_data_color_r, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_color_r"`
	EventDataColorG         *float64 `parquet:"name=event_data_color_g, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_color_g"`
	EventDataColorB         *float64 `parquet:"name=event_data_color_b, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_color_b"`
	EventDataTraitsSize     *float64 `parquet:"name=event_data_traits_size, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_traits_size"`
	EventDataTraitsCanKill  *bool    `parquet:"name=event_data_traits_can_kill, type=BOOLEAN, repetitiontype=OPTIONAL" json:"event_data_traits_can_kill"`
	EventDataTraitsCanMove  *bool    `parquet:"name=event_data_traits_can_move, type=BOOLEAN, repetitiontype=OPTIONAL" json:"event_data_traits_can_move"`
	EventDataStartingHealth *float64 `parquet:"name=event_data_starting_health, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_starting_health"`

	// ChangeColonyRules: the replacement rule set.
	EventDataNewRulesHealthCostPerSizeUnit  *float64 `parquet:"name=event_data_new_rules_health_cost_per_size_unit, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_health_cost_per_size_unit"`
	EventDataNewRulesEatCapacityPerSizeUnit *float64 `parquet:"name=event_data_new_rules_eat_capacity_per_size_unit, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_eat_capacity_per_size_unit"`
	EventDataNewRulesHealthCostIfCanKill    *float64 `parquet:"name=event_data_new_rules_health_cost_if_can_kill, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_health_cost_if_can_kill"`
	EventDataNewRulesHealthCostIfCanMove    *float64 `parquet:"name=event_data_new_rules_health_cost_if_can_move, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_health_cost_if_can_move"`
	EventDataNewRulesMutationChance         *float64 `parquet:"name=event_data_new_rules_mutation_chance, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_mutation_chance"`
	EventDataNewRulesRandomDeathChance      *float64 `parquet:"name=event_data_new_rules_random_death_chance, type=DOUBLE, repetitiontype=OPTIONAL" json:"event_data_new_rules_random_death_chance"`
}
