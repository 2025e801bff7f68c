package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lokesh-patil57/smart-itr-api/internal/logger"
	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// TaxEngineService computes itemized tax liabilities. All arithmetic is in
// int64 whole rupees; every recorded line is rounded half-up at the point it
// is recorded so re-summing displayed lines reproduces displayed totals.
type TaxEngineService struct {
	registry *rules.Registry
	logger   *zap.Logger
}

// NewTaxEngineService creates a new tax engine service
func NewTaxEngineService(registry *rules.Registry) *TaxEngineService {
	return &TaxEngineService{
		registry: registry,
		logger:   logger.Log,
	}
}

// ComputeTax runs the full computation pipeline: deduction clamping, slab
// walk, rebate, surcharge with marginal relief, cess, and the advance-tax
// schedule when the liability is large enough to owe installments.
func (s *TaxEngineService) ComputeTax(ctx context.Context, p params.ComputeParams) (*business.TaxBreakdown, error) {
	tables, err := s.registry.ForYear(p.AssessmentYear)
	if err != nil {
		return nil, err
	}
	if err := validateComputeParams(p, tables); err != nil {
		return nil, err
	}

	breakdown := &business.TaxBreakdown{GrossIncome: p.TotalIncome}

	// Step 1: deduction clamping. Only the old regime honors deduction
	// claims; the new regime taxes gross income at its own slab rates.
	var totalAllowed int64
	if p.TaxRegime == business.RegimeOld {
		breakdown.DeductionsApplied, totalAllowed = clampDeductions(p.Deductions, p.AgeCategory, tables)
	}
	breakdown.TaxableIncome = p.TotalIncome - totalAllowed
	if breakdown.TaxableIncome < 0 {
		breakdown.TaxableIncome = 0
	}

	// Step 2: slab walk.
	slabs := tables.SlabsFor(p.TaxRegime, p.AgeCategory)
	breakdown.SlabLines, breakdown.SlabTax = walkSlabs(slabs, breakdown.TaxableIncome)

	// Step 3: rebate for resident taxpayers below the regime threshold.
	rebate := tables.Rebate[p.TaxRegime]
	if p.ResidentialStatus == business.StatusResident && breakdown.TaxableIncome <= rebate.IncomeCeiling {
		breakdown.Rebate = min64(breakdown.SlabTax, rebate.Cap)
	}

	// Step 4: surcharge with marginal relief. Surcharge thresholds apply to
	// gross income; relief caps pre-cess tax at the threshold's pre-cess tax
	// plus the income in excess of the threshold, so one extra rupee of
	// income never costs more than one rupee of pre-cess tax.
	bands := tables.SurchargeFor(p.EntityType)
	rate, threshold := surchargeBandFor(bands, p.TotalIncome)
	if rate > 0 {
		breakdown.SurchargeRateApplied = rate
		breakdown.Surcharge = roundPercent(breakdown.SlabTax, rate)

		preCessAtThreshold := s.preCessTaxAt(tables, p, threshold, totalAllowed, bands)
		excess := p.TotalIncome - threshold
		relief := breakdown.SlabTax + breakdown.Surcharge - (preCessAtThreshold + excess)
		if relief > 0 {
			breakdown.MarginalRelief = min64(relief, breakdown.Surcharge)
		}
	}

	// Step 5: cess on the post-rebate, post-relief liability.
	cessBase := breakdown.SlabTax + breakdown.Surcharge - breakdown.MarginalRelief - breakdown.Rebate
	if cessBase < 0 {
		cessBase = 0
	}
	breakdown.Cess = roundPercent(cessBase, tables.CessRatePercent)

	// Step 6: total.
	breakdown.TotalTax = cessBase + breakdown.Cess

	if breakdown.TotalTax >= tables.AdvanceTaxMinimum {
		breakdown.AdvanceTaxSchedule = buildAdvanceTaxSchedule(tables.AdvanceTaxInstallments, breakdown.TotalTax)
	}

	s.logger.Info("Computed tax liability",
		zap.String("regime", string(p.TaxRegime)),
		zap.String("assessment_year", tables.Year),
		zap.Int64("gross_income", breakdown.GrossIncome),
		zap.Int64("taxable_income", breakdown.TaxableIncome),
		zap.Int64("total_tax", breakdown.TotalTax))

	return breakdown, nil
}

// preCessTaxAt recomputes slab tax plus surcharge for a gross income exactly
// at a surcharge threshold. At the threshold itself the band below applies:
// bands fire only when income strictly exceeds their threshold.
func (s *TaxEngineService) preCessTaxAt(tables *rules.TableSet, p params.ComputeParams, grossIncome, totalAllowed int64, bands []rules.SurchargeBand) int64 {
	taxable := grossIncome - totalAllowed
	if taxable < 0 {
		taxable = 0
	}
	_, slabTax := walkSlabs(tables.SlabsFor(p.TaxRegime, p.AgeCategory), taxable)
	rate, _ := surchargeBandFor(bands, grossIncome)
	return slabTax + roundPercent(slabTax, rate)
}

func validateComputeParams(p params.ComputeParams, tables *rules.TableSet) error {
	if !p.EntityType.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown entity type %q", p.EntityType))
	}
	if !p.TaxRegime.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown tax regime %q", p.TaxRegime))
	}
	if !p.AgeCategory.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown age category %q", p.AgeCategory))
	}
	if !p.ResidentialStatus.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown residential status %q", p.ResidentialStatus))
	}
	if p.TotalIncome < 0 {
		return business.NewInvalidIncome("total income cannot be negative")
	}
	if p.TotalIncome > tables.SanityIncomeCeiling {
		return business.NewInvalidIncome(fmt.Sprintf("total income exceeds the supported ceiling of %d", tables.SanityIncomeCeiling))
	}
	for section, claimed := range p.Deductions {
		if claimed < 0 {
			return business.NewInvalidIncome(fmt.Sprintf("deduction claim for %s cannot be negative", section))
		}
	}
	return nil
}

// clampDeductions applies the per-section, age-tiered limits to the claimed
// amounts. Unknown section codes are recorded with zero allowed so the
// caller can see the claim was ignored. Sections are processed in sorted
// order for a deterministic breakdown.
func clampDeductions(claims map[string]int64, age business.AgeCategory, tables *rules.TableSet) ([]business.DeductionLine, int64) {
	sections := make([]string, 0, len(claims))
	for section := range claims {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	lines := make([]business.DeductionLine, 0, len(sections))
	var total int64
	for _, section := range sections {
		claimed := claims[section]
		if claimed == 0 {
			continue
		}
		line := business.DeductionLine{Section: section, AmountClaimed: claimed}
		if limit, ok := tables.Deductions[section]; ok {
			if limit.Unlimited {
				line.AmountAllowed = claimed
			} else {
				line.AmountAllowed = min64(claimed, limit.LimitFor(age))
			}
		}
		total += line.AmountAllowed
		lines = append(lines, line)
	}
	return lines, total
}

// walkSlabs apportions taxable income across the progressive rate table.
// Each band's tax is rounded half-up independently; only bands that produce
// tax are recorded.
func walkSlabs(slabs rules.SlabTable, taxable int64) ([]business.SlabLine, int64) {
	var lines []business.SlabLine
	var total int64
	var lower int64
	for _, slab := range slabs {
		if taxable <= lower {
			break
		}
		portion := taxable - lower
		if slab.UpperBound != 0 && taxable > slab.UpperBound {
			portion = slab.UpperBound - lower
		}
		tax := roundPercent(portion, slab.RatePercent)
		if tax > 0 {
			lines = append(lines, business.SlabLine{
				LowerBound:  lower,
				UpperBound:  slab.UpperBound,
				RatePercent: slab.RatePercent,
				TaxInSlab:   tax,
			})
			total += tax
		}
		lower = slab.UpperBound
	}
	return lines, total
}

// surchargeBandFor returns the rate and threshold of the highest band whose
// threshold the income strictly exceeds. Income exactly at a threshold stays
// in the band below.
func surchargeBandFor(bands []rules.SurchargeBand, income int64) (rate, threshold int64) {
	for _, band := range bands {
		if income > band.Threshold {
			rate = band.RatePercent
			threshold = band.Threshold
		}
	}
	return rate, threshold
}

func buildAdvanceTaxSchedule(installments []rules.AdvanceTaxInstallmentRule, totalTax int64) []business.AdvanceTaxInstallment {
	schedule := make([]business.AdvanceTaxInstallment, 0, len(installments))
	for _, rule := range installments {
		schedule = append(schedule, business.AdvanceTaxInstallment{
			DueDate:           rule.DueDate,
			CumulativePercent: rule.CumulativePercent,
			Amount:            roundPercent(totalTax, rule.CumulativePercent),
		})
	}
	return schedule
}

// roundPercent computes amount*ratePercent/100 rounded half-up to whole
// rupees.
func roundPercent(amount, ratePercent int64) int64 {
	return (amount*ratePercent + 50) / 100
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
