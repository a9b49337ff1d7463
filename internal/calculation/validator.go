package calculation

import (
	"fmt"

	"github.com/martgra/kjopekraft-sub001/internal/domain"
)

// ValidatePayPoint checks a candidate pay point before it is added or edited.
//
// Checks run in order and stop at the first failure: required fields,
// positive pay, year inside the inflation data range, and no other point
// in the same year. A candidate matching an existing point's identity may
// keep that point's year. The year range check is skipped when there is no
// inflation data.
func ValidatePayPoint(candidate domain.PayPoint, existing []domain.PayPoint, inflationRange []domain.InflationDataPoint) domain.ValidationResult {
	if candidate.Year == 0 || candidate.Pay.IsZero() || candidate.Reason == "" {
		return invalid(domain.ErrCodeRequired, "year, pay and reason are required", nil)
	}
	if !candidate.Reason.Valid() {
		return invalid(domain.ErrCodeRequired, fmt.Sprintf("reason must be %s, %s or %s", domain.ReasonAdjustment, domain.ReasonPromotion, domain.ReasonNewJob), nil)
	}
	if !candidate.Pay.IsPositive() {
		return invalid(domain.ErrCodePayPositive, "pay must be greater than zero", nil)
	}

	if len(inflationRange) > 0 {
		r := domain.YearRange{MinYear: inflationRange[0].Year, MaxYear: inflationRange[0].Year}
		for _, p := range inflationRange[1:] {
			if p.Year < r.MinYear {
				r.MinYear = p.Year
			}
			if p.Year > r.MaxYear {
				r.MaxYear = p.Year
			}
		}
		if candidate.Year < r.MinYear || candidate.Year > r.MaxYear {
			return invalid(domain.ErrCodeYearRange, fmt.Sprintf("year must be between %d and %d", r.MinYear, r.MaxYear), &r)
		}
	}

	for _, p := range existing {
		if p.Year == candidate.Year && !SamePayPoint(p, candidate) {
			return invalid(domain.ErrCodeDuplicateYear, fmt.Sprintf("a pay point for %d already exists", candidate.Year), nil)
		}
	}

	return domain.ValidationResult{IsValid: true}
}

func invalid(code domain.ValidationErrorCode, msg string, details *domain.YearRange) domain.ValidationResult {
	return domain.ValidationResult{IsValid: false, ErrorCode: code, ErrorMessage: msg, Details: details}
}
