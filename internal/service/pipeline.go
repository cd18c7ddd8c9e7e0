package service

import (
	"github.com/naturecounter/insights-server/internal/repository/models"
)

// Restrict returns the subset of the dataset visible to the given identity.
// Admins see the input unchanged (same backing array, never mutated); other
// roles see only rows whose stored email matches the identity's email
// exactly. Email normalization happens at authentication, not here.
func Restrict(dataset models.Dataset, identity Identity) models.Dataset {
	if identity.Role == RoleAdmin {
		return dataset
	}

	restricted := make(models.Dataset, 0)
	for _, row := range dataset {
		if row.UserEmail == identity.Email {
			restricted = append(restricted, row)
		}
	}
	return restricted
}

// Narrow filters the dataset by the criteria's timestamp window and facet
// allow-lists, composed with AND. Rows without a timestamp are excluded.
// A window with Start after End yields an empty result by contract; it is
// not corrected. The output preserves input order, so Narrow is
// deterministic and idempotent.
func Narrow(dataset models.Dataset, criteria FilterCriteria) models.Dataset {
	indicators := allowSet(criteria.Indicators)
	emails := allowSet(criteria.Emails)

	narrowed := make(models.Dataset, 0)
	for _, row := range dataset {
		if row.Timestamp == nil {
			continue
		}
		ts := *row.Timestamp
		if ts.Before(criteria.Start) || ts.After(criteria.End) {
			continue
		}
		if indicators != nil && !indicators[row.Indicator] {
			continue
		}
		if emails != nil && !emails[row.UserEmail] {
			continue
		}
		narrowed = append(narrowed, row)
	}
	return narrowed
}

// allowSet builds a membership set from a facet allow-list. An empty list
// means "no filter", reported as a nil set.
func allowSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
