package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValue float64
		wantValid bool
	}{
		{"number", `42.5`, 42.5, true},
		{"negative", `-3`, -3, true},
		{"numeric string", `"12.75"`, 12.75, true},
		{"padded string", `" 7 "`, 7, true},
		{"null", `null`, 0, true},
		{"empty string", `""`, 0, true},
		{"garbage string", `"abc"`, 0, false},
		{"nan string", `"NaN"`, 0, false},
		{"inf string", `"Infinity"`, 0, false},
		{"bool", `true`, 0, false},
		{"object", `{"a":1}`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.wantValid, n.Valid)
			assert.Equal(t, tt.wantValue, n.Value)
		})
	}
}

func TestFlexNumberMissingFieldIsInvalid(t *testing.T) {
	var rec RawTrendRecord
	require.NoError(t, json.Unmarshal([]byte(`{"yearMonth":"2024-01"}`), &rec))
	assert.False(t, rec.TotalOrderQty.Valid)
	assert.Equal(t, "2024-01", rec.YearMonth)
}

func TestFlexNumberMarshal(t *testing.T) {
	data, err := json.Marshal([]FlexNumber{NewFlexNumber(1.5), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[1.5, null]`, string(data))
	assert.Equal(t, 0.0, FlexNumber{Value: 9}.Float64())
}

func TestFiltersParams(t *testing.T) {
	var f Filters
	assert.True(t, f.IsEmpty())
	assert.Equal(t, "All", f.String())
	assert.Empty(t, f.Params())

	require.NoError(t, f.Set("branch", "North"))
	require.NoError(t, f.Set("Product_Class", "Widgets"))
	require.NoError(t, f.Set("area", "  "))

	params := f.Params()
	assert.Equal(t, "North", params.Get("branch"))
	assert.Equal(t, "Widgets", params.Get("product_class"))
	assert.False(t, params.Has("area"))
	assert.Equal(t, "branch=North, product_class=Widgets", f.String())

	// Clearing a filter removes the parameter.
	require.NoError(t, f.Set("branch", ""))
	assert.False(t, f.Params().Has("branch"))
}

func TestFiltersRejectUnknownKey(t *testing.T) {
	var f Filters
	err := f.Set("region", "West")
	assert.ErrorContains(t, err, `unknown filter key "region"`)
	assert.True(t, f.IsEmpty())
}

func TestFilterOptionsCategories(t *testing.T) {
	var opts FilterOptions
	require.NoError(t, json.Unmarshal([]byte(`{"branch":["B1","B2"],"product_class":["PC"]}`), &opts))

	cats := opts.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, FilterBranch, cats[0].Key)
	assert.Equal(t, []string{"B1", "B2"}, cats[0].Options)
	assert.Equal(t, "Product Class", cats[3].Label)
	assert.Equal(t, []string{"PC"}, cats[3].Options)
	assert.NotNil(t, cats[1].Options)
	assert.Empty(t, cats[1].Options)
}

func TestDashboardFailedCount(t *testing.T) {
	d := DashboardResult{Sections: []DashboardSection{
		{View: StatusView, Status: &StatusOverviewResult{}},
		{View: TrendView, Error: "failed to fetch order trend analysis"},
	}}
	assert.Equal(t, 1, d.FailedCount())
	assert.True(t, d.Sections[1].Failed())
}
