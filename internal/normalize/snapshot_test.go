package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	return doc
}

const sampleSnapshot = `{
	"colony_instance_id": "colony-7",
	"tick": 120,
	"creatures_count": 340,
	"meta": {
		"created_at_utc": "2026-01-15T10:00:00Z",
		"colony_width": 200,
		"colony_height": 100
	},
	"histograms": {
		"creature_size": {
			"distribution": {"2": 10, "4": 10},
			"average": 3.25,
			"was_cut": false,
			"unique_values_count": 2
		},
		"health": {
			"distribution": {"50": 1, "80": 3}
		},
		"can_kill": {
			"distribution": {"1": 3, "0": 1}
		},
		"can_move": {
			"distribution": {"1": 0, "0": 4},
			"average": 0.0
		},
		"original_color": {
			"distribution": {"1_2_3": 5, "4_5_6": 9, "7_8_9": 1},
			"unique_values_count": 3
		}
	}
}`

func TestSnapshotRow_FullDocument(t *testing.T) {
	row := SnapshotRow(decode(t, sampleSnapshot))

	require.NotNil(t, row.ColonyID)
	assert.Equal(t, "colony-7", *row.ColonyID)
	require.NotNil(t, row.Tick)
	assert.Equal(t, int64(120), *row.Tick)
	require.NotNil(t, row.CreaturesCount)
	assert.Equal(t, int64(340), *row.CreaturesCount)

	require.NotNil(t, row.CreatedAtUTC)
	assert.Equal(t, "2026-01-15T10:00:00Z", *row.CreatedAtUTC)
	require.NotNil(t, row.ColonyWidth)
	assert.Equal(t, int64(200), *row.ColonyWidth)
	require.NotNil(t, row.ColonyHeight)
	assert.Equal(t, int64(100), *row.ColonyHeight)

	// Supplied average wins over the derived weighted mean (3.0).
	require.NotNil(t, row.CreatureSizeMean)
	assert.InDelta(t, 3.25, *row.CreatureSizeMean, 1e-9)
	require.NotNil(t, row.CreatureSizeAvg)
	assert.InDelta(t, 3.25, *row.CreatureSizeAvg, 1e-9)
	require.NotNil(t, row.CreatureSizeP50)
	assert.InDelta(t, 2, *row.CreatureSizeP50, 1e-9)
	require.NotNil(t, row.CreatureSizeP99)
	assert.InDelta(t, 4, *row.CreatureSizeP99, 1e-9)
	assert.False(t, row.CreatureSizeWasCut)
	require.NotNil(t, row.CreatureSizeUniqueValuesCount)
	assert.Equal(t, int64(2), *row.CreatureSizeUniqueValuesCount)

	// health has no supplied average, so the mean is derived: (50+240)/4.
	require.NotNil(t, row.HealthMean)
	assert.InDelta(t, 72.5, *row.HealthMean, 1e-9)

	// age histogram is entirely absent: all its summary columns stay null.
	assert.Nil(t, row.AgeMean)
	assert.Nil(t, row.AgeAvg)
	assert.Nil(t, row.AgeP50)
	assert.Nil(t, row.AgeP90)
	assert.Nil(t, row.AgeP99)
	assert.Nil(t, row.AgeUniqueValuesCount)
	assert.False(t, row.AgeWasCut)

	assert.Equal(t, int64(3), row.CanKillTrueCount)
	assert.Equal(t, int64(1), row.CanKillFalseCount)
	require.NotNil(t, row.CanKillTrueFraction)
	assert.InDelta(t, 0.75, *row.CanKillTrueFraction, 1e-9)
	require.NotNil(t, row.CanKillAverage)
	assert.InDelta(t, 0.75, *row.CanKillAverage, 1e-9)

	// can_move carries a supplied average that overrides the derived one.
	require.NotNil(t, row.CanMoveTrueFraction)
	assert.InDelta(t, 0.0, *row.CanMoveTrueFraction, 1e-9)
	require.NotNil(t, row.CanMoveAverage)
	assert.InDelta(t, 0.0, *row.CanMoveAverage, 1e-9)

	require.NotNil(t, row.OriginalColorTop1)
	assert.Equal(t, "4_5_6", *row.OriginalColorTop1)
	assert.Equal(t, int64(9), *row.OriginalColorTop1Count)
	assert.Equal(t, "1_2_3", *row.OriginalColorTop2)
	assert.Equal(t, "7_8_9", *row.OriginalColorTop3)
	assert.Nil(t, row.OriginalColorTop4)
	assert.Nil(t, row.OriginalColorTop5)
	require.NotNil(t, row.OriginalColorDominant)
	assert.Equal(t, "4_5_6", *row.OriginalColorDominant)
	require.NotNil(t, row.OriginalColorUniqueValuesCount)
	assert.Equal(t, int64(3), *row.OriginalColorUniqueValuesCount)
}

func TestSnapshotRow_MinimalDocument(t *testing.T) {
	row := SnapshotRow(decode(t, `{"colony_instance_id": "colony-1", "tick": 1}`))

	require.NotNil(t, row.ColonyID)
	assert.Equal(t, "colony-1", *row.ColonyID)
	assert.Nil(t, row.CreaturesCount)
	assert.Nil(t, row.CreatedAtUTC)
	assert.Nil(t, row.CreatureSizeMean)
	assert.Nil(t, row.HealthP90)
	assert.Equal(t, int64(0), row.CanKillTrueCount)
	assert.Nil(t, row.CanKillTrueFraction)
	assert.Nil(t, row.OriginalColorTop1)
	assert.Nil(t, row.OriginalColorDominant)
}

func TestSnapshotRow_MalformedSubObjects(t *testing.T) {
	// histograms holding the wrong JSON shapes must degrade to nulls, never panic.
	row := SnapshotRow(decode(t, `{
		"colony_instance_id": "colony-2",
		"tick": "not-a-number",
		"meta": [1, 2, 3],
		"histograms": {
			"creature_size": "oops",
			"can_kill": {"distribution": [true, false]}
		}
	}`))

	assert.Nil(t, row.Tick)
	assert.Nil(t, row.ColonyWidth)
	assert.Nil(t, row.CreatureSizeMean)
	assert.Equal(t, int64(0), row.CanKillTrueCount)
	assert.Nil(t, row.CanKillTrueFraction)
}

func TestSnapshotRow_Deterministic(t *testing.T) {
	doc := decode(t, sampleSnapshot)

	first, err := json.Marshal(SnapshotRow(doc))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := json.Marshal(SnapshotRow(doc))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}
