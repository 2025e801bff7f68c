package rules

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

//go:embed tables.yaml
var tablesYAML []byte

type slabYAML struct {
	UpperBound  int64 `yaml:"upper_bound"`
	RatePercent int64 `yaml:"rate_percent"`
}

type rebateYAML struct {
	IncomeCeiling int64 `yaml:"income_ceiling"`
	Cap           int64 `yaml:"cap"`
}

type bandYAML struct {
	Threshold   int64 `yaml:"threshold"`
	RatePercent int64 `yaml:"rate_percent"`
}

type deductionYAML struct {
	Section     string `yaml:"section"`
	Description string `yaml:"description"`
	Limit       int64  `yaml:"limit"`
	SeniorLimit *int64 `yaml:"senior_limit"`
	Unlimited   bool   `yaml:"unlimited"`
}

type installmentYAML struct {
	DueDate           string `yaml:"due_date"`
	CumulativePercent int64  `yaml:"cumulative_percent"`
}

type yearYAML struct {
	NewRegime struct {
		Slabs  []slabYAML `yaml:"slabs"`
		Rebate rebateYAML `yaml:"rebate"`
	} `yaml:"new_regime"`
	OldRegime struct {
		Rebate rebateYAML            `yaml:"rebate"`
		Slabs  map[string][]slabYAML `yaml:"slabs"`
	} `yaml:"old_regime"`
	Surcharge struct {
		Individual []bandYAML `yaml:"individual"`
		Corporate  []bandYAML `yaml:"corporate"`
	} `yaml:"surcharge"`
	Deductions                 []deductionYAML `yaml:"deductions"`
	CessRatePercent            int64           `yaml:"cess_rate_percent"`
	ITR1IncomeCeiling          int64           `yaml:"itr1_income_ceiling"`
	ITR4IncomeCeiling          int64           `yaml:"itr4_income_ceiling"`
	PresumptiveTurnoverCeiling int64           `yaml:"presumptive_turnover_ceiling"`
	SanityIncomeCeiling        int64           `yaml:"sanity_income_ceiling"`
	AdvanceTax                 struct {
		MinimumTax   int64             `yaml:"minimum_tax"`
		Installments []installmentYAML `yaml:"installments"`
	} `yaml:"advance_tax"`
}

type documentYAML struct {
	DefaultYear string              `yaml:"default_year"`
	Years       map[string]yearYAML `yaml:"years"`
}

// Load parses the embedded rule tables and validates their shape. The
// returned registry is immutable and safe for concurrent use.
func Load() (*Registry, error) {
	var doc documentYAML
	if err := yaml.Unmarshal(tablesYAML, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse rule tables")
	}
	if doc.DefaultYear == "" {
		return nil, errors.New("rule tables missing default_year")
	}
	if _, ok := doc.Years[doc.DefaultYear]; !ok {
		return nil, errors.Errorf("default assessment year %q has no tables", doc.DefaultYear)
	}

	registry := &Registry{
		tables:      make(map[string]*TableSet, len(doc.Years)),
		defaultYear: doc.DefaultYear,
	}
	for year, raw := range doc.Years {
		tables, err := buildTableSet(year, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "assessment year %s", year)
		}
		registry.tables[year] = tables
	}
	return registry, nil
}

// MustLoad is Load for startup paths where a broken embedded table is fatal.
func MustLoad() *Registry {
	registry, err := Load()
	if err != nil {
		panic(err)
	}
	return registry
}

func buildTableSet(year string, raw yearYAML) (*TableSet, error) {
	tables := &TableSet{
		Year:                       year,
		OldRegimeSlabs:             make(map[business.AgeCategory]SlabTable, len(raw.OldRegime.Slabs)),
		Rebate:                     make(map[business.TaxRegime]RebateRule, 2),
		Deductions:                 make(map[string]DeductionLimit, len(raw.Deductions)),
		CessRatePercent:            raw.CessRatePercent,
		ITR1IncomeCeiling:          raw.ITR1IncomeCeiling,
		ITR4IncomeCeiling:          raw.ITR4IncomeCeiling,
		PresumptiveTurnoverCeiling: raw.PresumptiveTurnoverCeiling,
		SanityIncomeCeiling:        raw.SanityIncomeCeiling,
		AdvanceTaxMinimum:          raw.AdvanceTax.MinimumTax,
	}

	var err error
	if tables.NewRegimeSlabs, err = buildSlabTable(raw.NewRegime.Slabs); err != nil {
		return nil, errors.Wrap(err, "new regime slabs")
	}
	tables.Rebate[business.RegimeNew] = RebateRule(raw.NewRegime.Rebate)
	tables.Rebate[business.RegimeOld] = RebateRule(raw.OldRegime.Rebate)

	for name, slabs := range raw.OldRegime.Slabs {
		age := business.AgeCategory(name)
		if !age.Valid() {
			return nil, errors.Errorf("unknown age category %q in old regime slabs", name)
		}
		table, err := buildSlabTable(slabs)
		if err != nil {
			return nil, errors.Wrapf(err, "old regime slabs for %s", name)
		}
		tables.OldRegimeSlabs[age] = table
	}
	if _, ok := tables.OldRegimeSlabs[business.AgeGeneral]; !ok {
		return nil, errors.New("old regime slabs missing general table")
	}

	if tables.IndividualSurcharge, err = buildSurcharge(raw.Surcharge.Individual); err != nil {
		return nil, errors.Wrap(err, "individual surcharge")
	}
	if tables.CorporateSurcharge, err = buildSurcharge(raw.Surcharge.Corporate); err != nil {
		return nil, errors.Wrap(err, "corporate surcharge")
	}

	for _, d := range raw.Deductions {
		if d.Section == "" {
			return nil, errors.New("deduction entry missing section code")
		}
		limit := DeductionLimit{
			Section:     d.Section,
			Description: d.Description,
			General:     d.Limit,
			Senior:      d.Limit,
			SuperSenior: d.Limit,
			Unlimited:   d.Unlimited,
		}
		if d.SeniorLimit != nil {
			limit.Senior = *d.SeniorLimit
			limit.SuperSenior = *d.SeniorLimit
		}
		tables.Deductions[d.Section] = limit
	}

	if tables.SanityIncomeCeiling <= 0 {
		return nil, errors.New("sanity income ceiling must be positive")
	}

	var prevPercent int64
	for _, inst := range raw.AdvanceTax.Installments {
		if inst.CumulativePercent <= prevPercent || inst.CumulativePercent > 100 {
			return nil, fmt.Errorf("advance tax installments must be strictly increasing up to 100, got %d", inst.CumulativePercent)
		}
		prevPercent = inst.CumulativePercent
		tables.AdvanceTaxInstallments = append(tables.AdvanceTaxInstallments, AdvanceTaxInstallmentRule(inst))
	}

	return tables, nil
}

func buildSlabTable(raw []slabYAML) (SlabTable, error) {
	if len(raw) == 0 {
		return nil, errors.New("slab table is empty")
	}
	table := make(SlabTable, 0, len(raw))
	var prevBound int64
	for i, s := range raw {
		last := i == len(raw)-1
		if last {
			if s.UpperBound != 0 {
				return nil, errors.New("final slab must be unbounded")
			}
		} else if s.UpperBound <= prevBound {
			return nil, errors.Errorf("slab bounds must be ascending, got %d after %d", s.UpperBound, prevBound)
		}
		if s.RatePercent < 0 || s.RatePercent > 100 {
			return nil, errors.Errorf("slab rate %d out of range", s.RatePercent)
		}
		prevBound = s.UpperBound
		table = append(table, Slab(s))
	}
	return table, nil
}

func buildSurcharge(raw []bandYAML) ([]SurchargeBand, error) {
	bands := make([]SurchargeBand, 0, len(raw))
	var prevThreshold int64
	for _, b := range raw {
		if b.Threshold <= prevThreshold {
			return nil, errors.Errorf("surcharge thresholds must be ascending, got %d after %d", b.Threshold, prevThreshold)
		}
		if b.RatePercent <= 0 || b.RatePercent > 100 {
			return nil, errors.Errorf("surcharge rate %d out of range", b.RatePercent)
		}
		prevThreshold = b.Threshold
		bands = append(bands, SurchargeBand(b))
	}
	return bands, nil
}
