package business

// EntityType identifies the kind of taxpayer being evaluated.
type EntityType string

const (
	EntityIndividual EntityType = "individual"
	EntityHUF        EntityType = "huf"
	EntityCompany    EntityType = "company"
	EntityFirm       EntityType = "firm_llp_aop"
	EntityTrust      EntityType = "trust_institution"
)

// Valid reports whether the entity type is one of the known values.
func (e EntityType) Valid() bool {
	switch e {
	case EntityIndividual, EntityHUF, EntityCompany, EntityFirm, EntityTrust:
		return true
	}
	return false
}

// IsIndividualOrHUF reports whether the entity is classified through the
// income-source cascade rather than directly by entity type.
func (e EntityType) IsIndividualOrHUF() bool {
	return e == EntityIndividual || e == EntityHUF
}

// IncomeSource is a declared head of income on a profile.
type IncomeSource string

const (
	SourceSalary       IncomeSource = "salary"
	SourceBusiness     IncomeSource = "business_professional"
	SourceCapitalGains IncomeSource = "capital_gains"
	SourceRental       IncomeSource = "rental_income"
	SourceOther        IncomeSource = "other_sources"
)

// Valid reports whether the income source is one of the known values.
func (s IncomeSource) Valid() bool {
	switch s {
	case SourceSalary, SourceBusiness, SourceCapitalGains, SourceRental, SourceOther:
		return true
	}
	return false
}

// TriState is a yes/no answer that may also be not applicable, e.g. the
// presumptive-taxation questions for profiles without business income.
type TriState string

const (
	TriYes           TriState = "yes"
	TriNo            TriState = "no"
	TriNotApplicable TriState = "not_applicable"
)

// Valid reports whether the tri-state is one of the known values.
func (t TriState) Valid() bool {
	return t == TriYes || t == TriNo || t == TriNotApplicable
}

// AgeCategory selects the old-regime slab table and age-tiered deduction
// limits. Meaningful only for individuals.
type AgeCategory string

const (
	AgeGeneral     AgeCategory = "general"
	AgeSenior      AgeCategory = "senior"
	AgeSuperSenior AgeCategory = "super_senior"
)

// Valid reports whether the age category is one of the known values.
func (a AgeCategory) Valid() bool {
	return a == AgeGeneral || a == AgeSenior || a == AgeSuperSenior
}

// ResidentialStatus gates the 87A rebate.
type ResidentialStatus string

const (
	StatusResident ResidentialStatus = "resident"
	StatusNRI      ResidentialStatus = "nri"
	StatusRNOR     ResidentialStatus = "rnor"
)

// Valid reports whether the residential status is one of the known values.
func (r ResidentialStatus) Valid() bool {
	return r == StatusResident || r == StatusNRI || r == StatusRNOR
}

// TaxRegime selects the slab table and rebate rule.
type TaxRegime string

const (
	RegimeNew TaxRegime = "new"
	RegimeOld TaxRegime = "old"
)

// Valid reports whether the regime is one of the known values.
func (t TaxRegime) Valid() bool {
	return t == RegimeNew || t == RegimeOld
}

// FormID is one of the seven income-tax return forms.
type FormID string

const (
	FormITR1 FormID = "ITR1"
	FormITR2 FormID = "ITR2"
	FormITR3 FormID = "ITR3"
	FormITR4 FormID = "ITR4"
	FormITR5 FormID = "ITR5"
	FormITR6 FormID = "ITR6"
	FormITR7 FormID = "ITR7"
)

// ClassificationResult is the outcome of the form classification cascade.
// The reason trace lists every rule that fired, in evaluation order; it is
// audit information, not control flow.
type ClassificationResult struct {
	Form        FormID   `json:"form"`
	ReasonTrace []string `json:"reason_trace"`
}

// SlabLine is one recorded income band with the tax it produced. Only bands
// with positive tax are recorded.
type SlabLine struct {
	LowerBound  int64 `json:"lower_bound"`
	UpperBound  int64 `json:"upper_bound"` // 0 means unbounded
	RatePercent int64 `json:"rate_percent"`
	TaxInSlab   int64 `json:"tax_in_slab"`
}

// DeductionLine records a claimed deduction section and the amount actually
// allowed after clamping to the section limit.
type DeductionLine struct {
	Section       string `json:"section"`
	AmountClaimed int64  `json:"amount_claimed"`
	AmountAllowed int64  `json:"amount_allowed"`
}

// AdvanceTaxInstallment is one cumulative advance-tax due amount.
type AdvanceTaxInstallment struct {
	DueDate           string `json:"due_date"`
	CumulativePercent int64  `json:"cumulative_percent"`
	Amount            int64  `json:"amount"`
}

// TaxBreakdown is the itemized result of a tax computation. All amounts are
// whole rupees; each line is rounded half-up at the point it is recorded so
// re-summing displayed lines reproduces the displayed totals.
type TaxBreakdown struct {
	GrossIncome          int64                   `json:"gross_income"`
	TaxableIncome        int64                   `json:"taxable_income"`
	DeductionsApplied    []DeductionLine         `json:"deductions_applied"`
	SlabLines            []SlabLine              `json:"slab_lines"`
	SlabTax              int64                   `json:"slab_tax"`
	Rebate               int64                   `json:"rebate"`
	Surcharge            int64                   `json:"surcharge"`
	SurchargeRateApplied int64                   `json:"surcharge_rate_applied"`
	MarginalRelief       int64                   `json:"marginal_relief"`
	Cess                 int64                   `json:"cess"`
	TotalTax             int64                   `json:"total_tax"`
	AdvanceTaxSchedule   []AdvanceTaxInstallment `json:"advance_tax_schedule,omitempty"`
}

// TaxSavingSuggestion is one recommended investment avenue.
type TaxSavingSuggestion struct {
	Section     string `json:"section"`
	Amount      int64  `json:"amount"`
	Priority    string `json:"priority"` // "high", "medium"
	Description string `json:"description"`
}

// SectionHeadroom reports unused room under a flat-limit deduction section.
type SectionHeadroom struct {
	Section   string `json:"section"`
	Limit     int64  `json:"limit"`
	Claimed   int64  `json:"claimed"`
	Remaining int64  `json:"remaining"`
}

// TaxSavingAdvice is the output of the recommendation service.
type TaxSavingAdvice struct {
	Suggestions          []TaxSavingSuggestion `json:"suggestions"`
	UnusedHeadroom       []SectionHeadroom     `json:"unused_headroom"`
	CurrentTax           int64                 `json:"current_tax"`
	TaxWithoutDeductions int64                 `json:"tax_without_deductions"`
	RealizedSavings      int64                 `json:"realized_savings"`
}
