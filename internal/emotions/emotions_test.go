package emotions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestValidateComponents(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
		want    []Component
	}{
		{
			name: "valid list is normalized",
			json: `[{"emotion":"JOY","intensity":7},{"emotion":"Trust","intensity":"4"}]`,
			want: []Component{{Emotion: "joy", Intensity: 7}, {Emotion: "trust", Intensity: 4}},
		},
		{
			name: "empty list",
			json: `[]`,
			want: []Component{},
		},
		{
			name:    "not an array",
			json:    `{"emotion":"joy","intensity":5}`,
			wantErr: "Components must be an array",
		},
		{
			name:    "missing intensity",
			json:    `[{"emotion":"joy"}]`,
			wantErr: "Each component must have emotion and intensity",
		},
		{
			name:    "missing emotion",
			json:    `[{"intensity":3}]`,
			wantErr: "Each component must have emotion and intensity",
		},
		{
			name:    "element is not an object",
			json:    `["joy"]`,
			wantErr: "Each component must have emotion and intensity",
		},
		{
			name:    "unknown emotion",
			json:    `[{"emotion":"happiness","intensity":5}]`,
			wantErr: "Invalid emotion: happiness",
		},
		{
			name:    "non-string emotion",
			json:    `[{"emotion":3,"intensity":5}]`,
			wantErr: "Invalid emotion: 3",
		},
		{
			name: "fractional intensities",
			json: `[{"emotion":"joy","intensity":5.5},{"emotion":"fear","intensity":"7.5"}]`,
			want: []Component{{Emotion: "joy", Intensity: 5.5}, {Emotion: "fear", Intensity: 7.5}},
		},
		{
			name:    "null emotion",
			json:    `[{"emotion":null,"intensity":5}]`,
			wantErr: "Invalid emotion: null",
		},
		{
			name:    "object emotion",
			json:    `[{"emotion":{"name":"joy"},"intensity":5}]`,
			wantErr: `Invalid emotion: {"name":"joy"}`,
		},
		{
			name:    "intensity too high",
			json:    `[{"emotion":"fear","intensity":11}]`,
			wantErr: "Invalid intensity for fear: must be 1-10",
		},
		{
			name:    "intensity zero",
			json:    `[{"emotion":"Fear","intensity":0}]`,
			wantErr: "Invalid intensity for Fear: must be 1-10",
		},
		{
			name:    "duplicate ignoring case",
			json:    `[{"emotion":"sad","intensity":2},{"emotion":"SAD","intensity":3}]`,
			wantErr: "Duplicate emotion: SAD",
		},
		{
			name:    "first violation wins",
			json:    `[{"emotion":"nope","intensity":50},{"emotion":"joy"}]`,
			wantErr: "Invalid emotion: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateComponents(gjson.Parse(tt.json))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	for _, e := range Vocabulary {
		assert.True(t, IsValid(string(e)))
	}
	assert.True(t, IsValid("ANXIETY"))
	assert.False(t, IsValid("calm"))
	assert.False(t, IsValid(""))
}

func TestCalculateStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := CalculateStats(nil)
		assert.Nil(t, stats.Dominant)
		assert.Zero(t, stats.Average)
		assert.Empty(t, stats.Breakdown)
		assert.NotNil(t, stats.Breakdown)
	})

	t.Run("dominant and average", func(t *testing.T) {
		stats := CalculateStats([]Component{
			{Emotion: "joy", Intensity: 4},
			{Emotion: "fear", Intensity: 9},
			{Emotion: "trust", Intensity: 5},
		})
		require.NotNil(t, stats.Dominant)
		assert.Equal(t, "fear", *stats.Dominant)
		assert.InDelta(t, 6.0, stats.Average, 1e-9)
		assert.Equal(t, map[string]float64{"joy": 4, "fear": 9, "trust": 5}, stats.Breakdown)
	})

	t.Run("first maximum wins ties", func(t *testing.T) {
		stats := CalculateStats([]Component{
			{Emotion: "sad", Intensity: 6},
			{Emotion: "angry", Intensity: 6},
		})
		require.NotNil(t, stats.Dominant)
		assert.Equal(t, "sad", *stats.Dominant)
	})

	t.Run("fractional intensities", func(t *testing.T) {
		stats := CalculateStats([]Component{
			{Emotion: "joy", Intensity: 5.5},
			{Emotion: "trust", Intensity: 7.5},
		})
		require.NotNil(t, stats.Dominant)
		assert.Equal(t, "trust", *stats.Dominant)
		assert.InDelta(t, 6.5, stats.Average, 1e-9)
	})

	t.Run("later duplicate overwrites breakdown", func(t *testing.T) {
		stats := CalculateStats([]Component{
			{Emotion: "joy", Intensity: 2},
			{Emotion: "joy", Intensity: 8},
		})
		assert.Equal(t, 8.0, stats.Breakdown["joy"])
		assert.InDelta(t, 5.0, stats.Average, 1e-9)
	})
}
