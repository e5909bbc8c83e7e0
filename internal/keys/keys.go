package keys

import (
	"sort"
	"strconv"
	"strings"
)

// HeroSetKey produces a canonical key for a set of hero ids: sorted
// ascending and joined with commas. Suitable as a dedupe/cache key
// regardless of the order provided by the caller.
func HeroSetKey(ids []uint) string {
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}
