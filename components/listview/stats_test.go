package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 0.5, Percent(1, 200))
	assert.Equal(t, 100.0, Percent(4, 4))
	assert.Zero(t, Percent(3, 0))
}

func TestSummarizeGroupsInFirstAppearanceOrder(t *testing.T) {
	status, _ := customerSchema.Field("status")
	spent, _ := customerSchema.Field("total_spent")

	summary := Summarize(sampleCustomers(), status.Get, spent.Get)
	assert.Equal(t, 25, summary.Count)
	assert.Equal(t, 5000.0, summary.Total)
	require.Len(t, summary.Buckets, 2)
	assert.Equal(t, "inactive", summary.Buckets[0].Key)
	assert.Equal(t, "active", summary.Buckets[1].Key)

	inactive, ok := summary.Bucket("inactive")
	require.True(t, ok)
	assert.Equal(t, 9, inactive.Count)
	assert.Equal(t, 36.0, inactive.Percent)

	active, _ := summary.Bucket("active")
	assert.Equal(t, 16, active.Count)
	assert.Equal(t, 64.0, active.Percent)
	assert.Equal(t, summary.Total, inactive.Total+active.Total)

	_, ok = summary.Bucket("archived")
	assert.False(t, ok)
}

func TestSummarizeWithoutAccessors(t *testing.T) {
	summary := Summarize(sampleCustomers(), nil, nil)
	assert.Equal(t, 25, summary.Count)
	assert.Zero(t, summary.Total)
	assert.Empty(t, summary.Buckets)

	empty := Summarize([]customer{}, nil, nil)
	assert.Zero(t, empty.Count)
}
