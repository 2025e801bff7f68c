package rules

import (
	"sort"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// Slab is one income band of a progressive rate table. UpperBound 0 marks
// the final, unbounded band.
type Slab struct {
	UpperBound  int64
	RatePercent int64
}

// SlabTable is an ordered list of slabs with ascending upper bounds; the
// last slab is unbounded.
type SlabTable []Slab

// SurchargeBand applies RatePercent to slab tax when gross income exceeds
// Threshold. Bands are ordered by ascending threshold.
type SurchargeBand struct {
	Threshold   int64
	RatePercent int64
}

// RebateRule forgives slab tax up to Cap for resident taxpayers whose
// taxable income is at or below IncomeCeiling.
type RebateRule struct {
	IncomeCeiling int64
	Cap           int64
}

// DeductionLimit is the per-section clamp applied under the old regime.
// Limits are tiered by age category; Unlimited marks sections with no cap.
type DeductionLimit struct {
	Section     string
	Description string
	General     int64
	Senior      int64
	SuperSenior int64
	Unlimited   bool
}

// LimitFor returns the clamp for the given age category.
func (d DeductionLimit) LimitFor(age business.AgeCategory) int64 {
	switch age {
	case business.AgeSenior:
		return d.Senior
	case business.AgeSuperSenior:
		return d.SuperSenior
	default:
		return d.General
	}
}

// AdvanceTaxInstallmentRule is one cumulative advance-tax due date.
type AdvanceTaxInstallmentRule struct {
	DueDate           string
	CumulativePercent int64
}

// TableSet holds every numeric table for one assessment year. Instances are
// built once at load time and never mutated afterwards.
type TableSet struct {
	Year string

	NewRegimeSlabs SlabTable
	OldRegimeSlabs map[business.AgeCategory]SlabTable

	IndividualSurcharge []SurchargeBand
	CorporateSurcharge  []SurchargeBand

	Rebate map[business.TaxRegime]RebateRule

	Deductions map[string]DeductionLimit

	CessRatePercent            int64
	ITR1IncomeCeiling          int64
	ITR4IncomeCeiling          int64
	PresumptiveTurnoverCeiling int64
	SanityIncomeCeiling        int64

	AdvanceTaxMinimum      int64
	AdvanceTaxInstallments []AdvanceTaxInstallmentRule
}

// SlabsFor returns the slab table for a regime and age category. The new
// regime has a single table; the old regime tiers by age.
func (t *TableSet) SlabsFor(regime business.TaxRegime, age business.AgeCategory) SlabTable {
	if regime == business.RegimeNew {
		return t.NewRegimeSlabs
	}
	if slabs, ok := t.OldRegimeSlabs[age]; ok {
		return slabs
	}
	return t.OldRegimeSlabs[business.AgeGeneral]
}

// SurchargeFor returns the surcharge band table for an entity type.
// Individuals and HUFs share one table; all other entities use the
// corporate table.
func (t *TableSet) SurchargeFor(entity business.EntityType) []SurchargeBand {
	if entity.IsIndividualOrHUF() || entity == "" {
		return t.IndividualSurcharge
	}
	return t.CorporateSurcharge
}

// Registry holds the configured assessment years. It is safe for concurrent
// use: the map is never written after Load returns.
type Registry struct {
	tables      map[string]*TableSet
	defaultYear string
}

// DefaultYear returns the assessment year used when a caller does not name
// one.
func (r *Registry) DefaultYear() string {
	return r.defaultYear
}

// Years lists the configured assessment years in ascending order.
func (r *Registry) Years() []string {
	years := make([]string, 0, len(r.tables))
	for year := range r.tables {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// ForYear returns the table set for an assessment year. An empty year
// selects the default; an unconfigured year is an unknown-rule-version
// error.
func (r *Registry) ForYear(year string) (*TableSet, error) {
	if year == "" {
		year = r.defaultYear
	}
	tables, ok := r.tables[year]
	if !ok {
		return nil, business.NewUnknownRuleVersion("no rule tables configured for assessment year " + year)
	}
	return tables, nil
}
