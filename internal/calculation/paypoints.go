package calculation

import (
	"sort"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// SamePayPoint reports whether a and b identify the same pay point:
// equal IDs when both carry one, otherwise equal year and pay.
func SamePayPoint(a, b domain.PayPoint) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return a.Year == b.Year && a.Pay.Equal(b.Pay)
}

// SortPayPoints returns a copy of points ordered by year. Equal years keep their input order.
func SortPayPoints(points []domain.PayPoint) []domain.PayPoint {
	sorted := append([]domain.PayPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })
	return sorted
}

// UpsertPayPoint returns a new sorted slice with p replacing the matching point, or added.
func UpsertPayPoint(points []domain.PayPoint, p domain.PayPoint) []domain.PayPoint {
	out := make([]domain.PayPoint, 0, len(points)+1)
	replaced := false
	for _, existing := range points {
		if !replaced && SamePayPoint(existing, p) {
			out = append(out, p)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, p)
	}
	return SortPayPoints(out)
}

// RemovePayPoint returns a new slice without the point identified by p.
// The boolean is false when nothing matched.
func RemovePayPoint(points []domain.PayPoint, p domain.PayPoint) ([]domain.PayPoint, bool) {
	out := make([]domain.PayPoint, 0, len(points))
	removed := false
	for _, existing := range points {
		if !removed && SamePayPoint(existing, p) {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}
