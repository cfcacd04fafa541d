package normalize

import (
	"encoding/json"

	"github.com/yanivbyd/colony-analytics/pkg/types"
)

// EventRow flattens one parsed colony event into an EventRow.
//
// The event payload is a tagged union keyed by a single variant name. Each
// branch populates only its own columns; the zero-valued row already carries
// null for every other variant's columns, so the full fixed column superset
// holds for every output row. Unrecognized payload shapes become the Unknown
// variant with the raw payload serialized as opaque JSON text, preserving
// forward compatibility with event types this binary predates.
func EventRow(event map[string]any) types.EventRow {
	row := types.EventRow{
		ColonyID:         optString(event, "colony_instance_id"),
		Tick:             optInt64(event, "tick"),
		EventType:        optString(event, "event_type"),
		EventDescription: optString(event, "event_description"),
	}

	rules := childMap(event, "rules")
	row.RulesHealthCostPerSizeUnit = optFloat(rules, "health_cost_per_size_unit")
	row.RulesEatCapacityPerSizeUnit = optFloat(rules, "eat_capacity_per_size_unit")
	row.RulesHealthCostIfCanKill = optFloat(rules, "health_cost_if_can_kill")
	row.RulesHealthCostIfCanMove = optFloat(rules, "health_cost_if_can_move")
	row.RulesMutationChance = optFloat(rules, "mutation_chance")
	row.RulesRandomDeathChance = optFloat(rules, "random_death_chance")

	data, present := event["event_data"]
	if !present || data == nil {
		// ColonyCreated and friends carry no payload at all.
		return row
	}

	payload, ok := data.(map[string]any)
	if !ok {
		// Bare scalar payload: keep the value as text, variant unknown.
		value := stringifyScalar(data)
		row.EventDataValue = &value
		return row
	}

	switch {
	case hasKey(payload, types.EventCreateCreature):
		flattenCreateCreature(&row, payload[types.EventCreateCreature])
	case hasKey(payload, types.EventChangeExtraFoodPerTick):
		variant := types.EventChangeExtraFoodPerTick
		// Stored as text: a numeric column here would collide with
		// ChangeColonyRules descriptions once both variants share a table.
		value := stringifyScalar(payload[types.EventChangeExtraFoodPerTick])
		row.EventDataType = &variant
		row.EventDataValue = &value
	case hasKey(payload, types.EventExtinction):
		variant := types.EventExtinction
		row.EventDataType = &variant
	case hasKey(payload, types.EventNewTopography):
		variant := types.EventNewTopography
		row.EventDataType = &variant
	case hasKey(payload, types.EventChangeColonyRules):
		flattenRuleChange(&row, payload[types.EventChangeColonyRules])
	default:
		variant := types.EventUnknown
		row.EventDataType = &variant
		if len(payload) > 0 {
			if raw, err := json.Marshal(payload); err == nil {
				value := string(raw)
				row.EventDataValue = &value
			}
		}
	}
	return row
}

// flattenCreateCreature extracts the [region, params] pair carried by a
// CreateCreature payload. Either element may be missing or malformed; the
// affected columns stay null.
func flattenCreateCreature(row *types.EventRow, data any) {
	variant := types.EventCreateCreature
	row.EventDataType = &variant

	parts, _ := data.([]any)

	if len(parts) > 0 {
		if region, ok := parts[0].(map[string]any); ok {
			if ellipse, ok := region["Ellipse"].(map[string]any); ok {
				regionType := "Ellipse"
				row.EventDataRegionType = &regionType
				row.EventDataRegionX = optFloat(ellipse, "x")
				row.EventDataRegionY = optFloat(ellipse, "y")
				row.EventDataRegionRadiusX = optFloat(ellipse, "radius_x")
				row.EventDataRegionRadiusY = optFloat(ellipse, "radius_y")
			}
		}
	}

	if len(parts) > 1 {
		if params, ok := parts[1].(map[string]any); ok {
			color := childMap(params, "color")
			row.EventDataColorR = optFloat(color, "r")
			row.EventDataColorG = optFloat(color, "g")
			row.EventDataColorB = optFloat(color, "b")

			traits := childMap(params, "traits")
			row.EventDataTraitsSize = optFloat(traits, "size")
			row.EventDataTraitsCanKill = optBool(traits, "can_kill")
			row.EventDataTraitsCanMove = optBool(traits, "can_move")

			row.EventDataStartingHealth = optFloat(params, "starting_health")
		}
	}
}

// flattenRuleChange extracts the description and replacement rule set from a
// ChangeColonyRules payload.
func flattenRuleChange(row *types.EventRow, data any) {
	variant := types.EventChangeColonyRules
	row.EventDataType = &variant

	change, ok := data.(map[string]any)
	if !ok {
		return
	}

	row.EventDataValue = optString(change, "description")

	newRules := childMap(change, "new_rules")
	row.EventDataNewRulesHealthCostPerSizeUnit = optFloat(newRules, "health_cost_per_size_unit")
	row.EventDataNewRulesEatCapacityPerSizeUnit = optFloat(newRules, "eat_capacity_per_size_unit")
	row.EventDataNewRulesHealthCostIfCanKill = optFloat(newRules, "health_cost_if_can_kill")
	row.EventDataNewRulesHealthCostIfCanMove = optFloat(newRules, "health_cost_if_can_move")
	row.EventDataNewRulesMutationChance = optFloat(newRules, "mutation_chance")
	row.EventDataNewRulesRandomDeathChance = optFloat(newRules, "random_death_chance")
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}
