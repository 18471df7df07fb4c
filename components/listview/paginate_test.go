package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 0))
}

func TestPaginateCoversEveryRecordOnce(t *testing.T) {
	records := sampleCustomers()
	var seen []string
	pages := TotalPages(len(records), 7)
	for p := 1; p <= pages; p++ {
		page := Paginate(records, p, 7)
		assert.LessOrEqual(t, len(page.Visible), 7)
		seen = append(seen, ids(page.Visible)...)
	}
	assert.Equal(t, ids(records), seen)
}

func TestPaginateOutOfRange(t *testing.T) {
	records := sampleCustomers()
	page := Paginate(records, 9, 10)
	assert.Empty(t, page.Visible)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.Total)

	assert.Empty(t, Paginate(records, 0, 10).Visible)
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]customer{}, 1, 10)
	assert.Empty(t, page.Visible)
	assert.Equal(t, 1, page.TotalPages)
	assert.Zero(t, page.Total)
}

func TestPaginateVisibleCannotGrowIntoSource(t *testing.T) {
	records := sampleCustomers()
	page := Paginate(records, 1, 5)
	_ = append(page.Visible, customer{ID: "x"})
	assert.Equal(t, "c06", records[5].ID)
}
