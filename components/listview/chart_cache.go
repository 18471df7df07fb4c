package listview

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RenderCache memoizes rendered chart HTML. A slot holds one chart (list,
// chart type, theme); digest identifies the data it was drawn from.
type RenderCache interface {
	GetOrRender(slot, digest string, render func() (string, error)) (string, error)
}

// ChartCache keeps the latest rendering per slot for a TTL. A new digest
// replaces the slot's entry, so the cache never holds more than one entry per
// chart, and expired slots are swept on every write.
type ChartCache struct {
	ttl   time.Duration
	mu    sync.Mutex
	slots map[string]renderedChart
}

type renderedChart struct {
	digest  string
	html    string
	expires time.Time
}

// NewChartCache builds a cache; a non-positive ttl disables it.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{ttl: ttl, slots: map[string]renderedChart{}}
}

// GetOrRender returns the slot's HTML when digest matches and the entry is
// live; otherwise it renders and replaces the slot. Render errors are not
// stored.
func (c *ChartCache) GetOrRender(slot, digest string, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}
	now := time.Now()
	c.mu.Lock()
	entry, ok := c.slots[slot]
	c.mu.Unlock()
	if ok && entry.digest == digest && now.Before(entry.expires) {
		return entry.html, nil
	}

	html, err := render()
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.slots {
		if !now.Before(e.expires) {
			delete(c.slots, key)
		}
	}
	c.slots[slot] = renderedChart{digest: digest, html: html, expires: now.Add(c.ttl)}
	return html, nil
}

// Len reports the number of cached slots.
func (c *ChartCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}

// chartSlot names the cache slot of a chart.
func chartSlot(title, chartType, theme string) string {
	return title + "|" + chartType + "|" + theme
}

// summaryDigest fingerprints the buckets a chart is drawn from.
func summaryDigest(summary Summary) string {
	data, err := json.Marshal(summary)
	if err != nil {
		return ""
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, data).String()
}
