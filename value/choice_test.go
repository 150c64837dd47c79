package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedChoice(t *testing.T) {
	testCases := []struct {
		Name    string
		Weights []float64
		R       float64
		Index   int
	}{
		{Name: "Zero", Weights: []float64{1, 99}, R: 0, Index: 0},
		{Name: "FirstBoundary", Weights: []float64{1, 99}, R: 0.005, Index: 0},
		{Name: "Second", Weights: []float64{1, 99}, R: 0.5, Index: 1},
		{Name: "Even", Weights: []float64{1, 1, 1, 1}, R: 0.6, Index: 2},
		{Name: "Clamp", Weights: []float64{1, 1}, R: 1.5, Index: 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			assert.Equal(subT, testCase.Index, WeightedChoice(testCase.Weights, testCase.R))
		})
	}
}

func TestChoose(t *testing.T) {
	var defs Definitions
	require.NoError(t, json.Unmarshal([]byte(`[
		{"generator": "'first'", "weight": 1},
		{"generator": "'second'", "weight": 99}
	]`), &defs))

	t.Run("Dynamic", func(subT *testing.T) {
		b, err := New(Config{Library: Casual, Dynamic: true})
		require.NoError(subT, err)

		got, err := Choose(b, defs)
		require.NoError(subT, err)
		assert.Equal(subT, "[() => 'first', () => 'second'][weightedChoice([1,99], () => casual.double(0, 1.0))]()", got)
	})

	t.Run("DynamicFaker", func(subT *testing.T) {
		b, err := New(Config{Library: Faker, Dynamic: true})
		require.NoError(subT, err)

		got, err := Choose(b, defs)
		require.NoError(subT, err)
		assert.Equal(subT, "[() => 'first', () => 'second'][weightedChoice([1,99], () => faker.datatype.float({ max: 1.0 }))]()", got)
	})

	t.Run("Static", func(subT *testing.T) {
		b, err := New(Config{Library: Casual})
		require.NoError(subT, err)

		seen := map[string]int{}
		for i := int64(0); i < 200; i++ {
			b.Seed(i)
			got, err := Choose(b, defs)
			require.NoError(subT, err)
			seen[got]++
		}
		assert.Subset(subT, []string{"'first'", "'second'"}, keys(seen))
		assert.Greater(subT, seen["'second'"], seen["'first'"])

		b.Seed(7)
		a, _ := Choose(b, defs)
		b.Seed(7)
		c, _ := Choose(b, defs)
		assert.Equal(subT, a, c)
	})

	t.Run("Single", func(subT *testing.T) {
		b, _ := New(Config{Library: Casual, Dynamic: true})
		got, err := Choose(b, defs[:1])
		require.NoError(subT, err)
		assert.Equal(subT, "'first'", got)
	})

	t.Run("Empty", func(subT *testing.T) {
		b, _ := New(Config{})
		_, err := Choose(b, nil)
		assert.ErrorIs(subT, err, ErrBadArguments)
	})
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDefinitionsDecode(t *testing.T) {
	testCases := []struct {
		Name   string
		JSON   string
		Expect Definitions
	}{
		{
			Name:   "Name",
			JSON:   `"email"`,
			Expect: Definitions{{Generator: "email"}},
		},
		{
			Name:   "Object",
			JSON:   `{"generator": "integer", "arguments": [1, 2]}`,
			Expect: Definitions{{Generator: "integer", Arguments: []interface{}{1.0, 2.0}}},
		},
		{
			Name:   "ScalarArguments",
			JSON:   `{"generator": "date", "arguments": "YYYY"}`,
			Expect: Definitions{{Generator: "date", Arguments: []interface{}{"YYYY"}}},
		},
		{
			Name: "List",
			JSON: `["word", {"generator": "email", "extra": {"function": "toUpperCase"}}]`,
			Expect: Definitions{
				{Generator: "word"},
				{Generator: "email", Extra: &Extra{Function: "toUpperCase"}},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			var defs Definitions
			require.NoError(subT, json.Unmarshal([]byte(testCase.JSON), &defs))
			assert.Equal(subT, testCase.Expect, defs)
		})
	}

	var defs Definitions
	require.NoError(t, json.Unmarshal([]byte(`[{"generator":"a","weight":3},"b"]`), &defs))
	assert.Equal(t, []float64{3, 1}, defs.Weights())
}
