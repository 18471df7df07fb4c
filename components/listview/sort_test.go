package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortIsStableInBothDirections(t *testing.T) {
	tier, _ := customerSchema.Field("tier")
	records := sampleCustomers()[:8]

	asc := Sort(records, &tier, SortAscending)
	assert.Equal(t, []string{"c01", "c05", "c02", "c03", "c04", "c06", "c07", "c08"}, ids(asc))

	desc := Sort(records, &tier, SortDescending)
	assert.Equal(t, []string{"c02", "c03", "c04", "c06", "c07", "c08", "c01", "c05"}, ids(desc))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	name, _ := customerSchema.Field("name")
	records := sampleCustomers()
	before := ids(records)
	_ = Sort(records, &name, SortDescending)
	assert.Equal(t, before, ids(records))
}

func TestSortWithoutFieldKeepsInputOrder(t *testing.T) {
	records := sampleCustomers()
	assert.Equal(t, ids(records), ids(Sort[customer](records, nil, SortAscending)))
}

func TestSortPlacesMissingValuesLowest(t *testing.T) {
	joined, _ := customerSchema.Field("joined_at")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []customer{
		{ID: "b", JoinedAt: day.AddDate(0, 0, 1)},
		{ID: "none"},
		{ID: "a", JoinedAt: day},
	}
	assert.Equal(t, []string{"none", "a", "b"}, ids(Sort(records, &joined, SortAscending)))
	assert.Equal(t, []string{"b", "a", "none"}, ids(Sort(records, &joined, SortDescending)))
}

func TestCompareOrdersByKindThenValue(t *testing.T) {
	assert.Negative(t, Compare(MissingValue(), StringValue("")))
	assert.Negative(t, Compare(NumberValue(2), NumberValue(10)))
	assert.Negative(t, Compare(StringValue("10"), StringValue("2")))
	assert.Zero(t, Compare(IntValue(3), NumberValue(3)))
	assert.Positive(t, Compare(BoolValue(true), BoolValue(false)))
	assert.True(t, TimeValue(time.Time{}).IsMissing())
}

func TestNextSort(t *testing.T) {
	state := NextSort(SortState{}, "name")
	assert.Equal(t, SortState{Key: "name", Direction: SortAscending}, state)

	state = NextSort(state, "name")
	assert.Equal(t, SortDescending, state.Direction)

	state = NextSort(state, "name")
	assert.Equal(t, SortAscending, state.Direction)

	state = NextSort(SortState{Key: "name", Direction: SortDescending}, "totalSpent")
	assert.Equal(t, SortState{Key: "total_spent", Direction: SortAscending}, state)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want SortState
	}{
		{raw: "", want: SortState{}},
		{raw: "name", want: SortState{Key: "name", Direction: SortAscending}},
		{raw: "totalSpent:DESC", want: SortState{Key: "total_spent", Direction: SortDescending}},
		{raw: " joined_at:asc ", want: SortState{Key: "joined_at", Direction: SortAscending}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSort(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSort("name:sideways")
	require.Error(t, err)
	_, err = ParseSort(":desc")
	require.Error(t, err)
}

func TestSortStateString(t *testing.T) {
	assert.Equal(t, "", SortState{}.String())
	assert.Equal(t, "name:asc", SortState{Key: "name"}.String())
	assert.Equal(t, "name:desc", SortState{Key: "name", Direction: SortDescending}.String())
}
