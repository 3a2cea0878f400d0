package timeslot

import (
	"strconv"
	"strings"
)

// ParseSet parses a comma-joined slot-set string ("14,15,16") into slot
// indices. Blank and non-numeric elements are dropped. Order is preserved and
// duplicates are kept; set semantics are applied by IsSubset and Intersects.
func ParseSet(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// FormatSet renders slot indices back into the comma-joined wire form.
func FormatSet(slots []int) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// FormatRange renders the half-open slot range [start, end) as a slot-set
// string. An empty or inverted range yields "".
func FormatRange(start, end int) string {
	if start < 1 || end <= start {
		return ""
	}
	slots := make([]int, 0, end-start)
	for s := start; s < end; s++ {
		slots = append(slots, s)
	}
	return FormatSet(slots)
}

// IsSubset reports whether every slot in want appears in have, comparing
// numerically. An empty want never satisfies containment: there is nothing to
// check, which callers must treat as failure rather than a vacuous pass. An
// empty have is always false.
func IsSubset(want, have string) bool {
	wantSlots := ParseSet(want)
	if len(wantSlots) == 0 {
		return false
	}
	haveSet := toSet(ParseSet(have))
	if len(haveSet) == 0 {
		return false
	}
	for _, s := range wantSlots {
		if _, ok := haveSet[s]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether the two slot-sets share at least one slot.
func Intersects(a, b string) bool {
	bSet := toSet(ParseSet(b))
	if len(bSet) == 0 {
		return false
	}
	for _, s := range ParseSet(a) {
		if _, ok := bSet[s]; ok {
			return true
		}
	}
	return false
}

func toSet(slots []int) map[int]struct{} {
	set := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}
