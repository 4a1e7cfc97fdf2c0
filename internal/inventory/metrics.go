package inventory

import "sort"

// SortedByTotal returns a copy of records ordered by Total, largest first.
// Equal totals keep their input order.
func SortedByTotal(records []RegionRecord) []RegionRecord {
	out := make([]RegionRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// TopContributor returns the region with the largest Total. Ties go to the
// first occurrence. ok is false for an empty slice.
func TopContributor(records []RegionRecord) (top RegionRecord, ok bool) {
	for i, r := range records {
		if i == 0 || r.Total > top.Total {
			top = r
		}
	}
	return top, len(records) > 0
}

// RegionalSum adds up the region totals.
func RegionalSum(records []RegionRecord) float64 {
	sum := 0.0
	for _, r := range records {
		sum += r.Total
	}
	return sum
}
