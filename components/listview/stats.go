package listview

import "math"

// Bucket aggregates records sharing a group value (for example a status).
type Bucket struct {
	Key     string  `json:"key"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

// Summary holds the badge counts and totals shown above a list.
type Summary struct {
	Count   int      `json:"count"`
	Total   float64  `json:"total"`
	Buckets []Bucket `json:"buckets"`
}

// Bucket returns the bucket for key.
func (s Summary) Bucket(key string) (Bucket, bool) {
	for _, b := range s.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return Bucket{}, false
}

// Summarize counts records per group and sums amount. Either accessor may be
// nil. Buckets keep the order in which groups first appear.
func Summarize[T any](records []T, group, amount Accessor[T]) Summary {
	summary := Summary{Count: len(records)}
	index := map[string]int{}
	for _, rec := range records {
		value := 0.0
		if amount != nil {
			if v := amount(rec); v.Kind() == KindNumber {
				value = v.num
			}
		}
		summary.Total += value
		if group == nil {
			continue
		}
		key := group(rec).Text()
		pos, ok := index[key]
		if !ok {
			pos = len(summary.Buckets)
			index[key] = pos
			summary.Buckets = append(summary.Buckets, Bucket{Key: key})
		}
		summary.Buckets[pos].Count++
		summary.Buckets[pos].Total += value
	}
	for i := range summary.Buckets {
		summary.Buckets[i].Percent = Percent(summary.Buckets[i].Count, summary.Count)
	}
	return summary
}

// Percent returns part/whole as a percentage rounded to one decimal place.
// The ratio is computed in floating point so small shares do not collapse to
// zero.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(whole)) / 10
}
