package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lokesh-patil57/smart-itr-api/internal/logger"
	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// ClassifierService determines which return form an income profile must
// file. Classification is a pure function of the profile and the rule tables
// for the requested assessment year.
type ClassifierService struct {
	registry *rules.Registry
	logger   *zap.Logger
}

// NewClassifierService creates a new classifier service
func NewClassifierService(registry *rules.Registry) *ClassifierService {
	return &ClassifierService{
		registry: registry,
		logger:   logger.Log,
	}
}

// classificationRule is one named predicate in the cascade. Rules are
// evaluated in order; the first rule whose predicate holds selects the form.
// Every firing rule is appended to the reason trace.
type classificationRule struct {
	Name    string
	Form    business.FormID
	Reason  string
	Applies func(p params.ClassifyParams, t *rules.TableSet) bool
}

// cascade is the ordered rule list. Entity-type rules short-circuit
// everything else; disqualification from the presumptive path is checked
// before the presumptive path itself.
var cascade = []classificationRule{
	{
		Name:   "ENTITY_COMPANY",
		Form:   business.FormITR6,
		Reason: "companies file ITR-6 regardless of income composition",
		Applies: func(p params.ClassifyParams, _ *rules.TableSet) bool {
			return p.EntityType == business.EntityCompany
		},
	},
	{
		Name:   "ENTITY_TRUST",
		Form:   business.FormITR7,
		Reason: "trusts and institutions file ITR-7",
		Applies: func(p params.ClassifyParams, _ *rules.TableSet) bool {
			return p.EntityType == business.EntityTrust
		},
	},
	{
		Name:   "ENTITY_FIRM",
		Form:   business.FormITR5,
		Reason: "firms, LLPs and AOPs file ITR-5",
		Applies: func(p params.ClassifyParams, _ *rules.TableSet) bool {
			return p.EntityType == business.EntityFirm
		},
	},
	{
		Name:   "BUSINESS_NOT_PRESUMPTIVE",
		Form:   business.FormITR3,
		Reason: "business income outside the presumptive scheme requires ITR-3",
		Applies: func(p params.ClassifyParams, _ *rules.TableSet) bool {
			return hasSource(p, business.SourceBusiness) &&
				(p.UsesPresumptiveTaxation == business.TriNo || p.TurnoverBelow2Cr == business.TriNo)
		},
	},
	{
		Name:   "PRESUMPTIVE_WITHIN_CEILING",
		Form:   business.FormITR4,
		Reason: "presumptive business income within the ITR-4 income ceiling",
		Applies: func(p params.ClassifyParams, t *rules.TableSet) bool {
			return hasSource(p, business.SourceBusiness) &&
				p.UsesPresumptiveTaxation == business.TriYes &&
				p.TurnoverBelow2Cr == business.TriYes &&
				p.TotalIncome <= t.ITR4IncomeCeiling
		},
	},
	{
		Name:   "ITR2_DISQUALIFIER",
		Form:   business.FormITR2,
		Reason: "profile carries an ITR-1 disqualifier",
		Applies: func(p params.ClassifyParams, t *rules.TableSet) bool {
			return p.HasForeignIncome ||
				p.HasMultipleProperties ||
				hasSource(p, business.SourceCapitalGains) ||
				p.TotalIncome > t.ITR1IncomeCeiling
		},
	},
	{
		Name:   "ITR1_SIMPLE",
		Form:   business.FormITR1,
		Reason: "simple salaried profile within the ITR-1 income ceiling",
		Applies: func(p params.ClassifyParams, t *rules.TableSet) bool {
			for _, src := range p.IncomeSources {
				switch src {
				case business.SourceSalary, business.SourceOther, business.SourceRental:
				default:
					return false
				}
			}
			return p.TotalIncome <= t.ITR1IncomeCeiling
		},
	},
	{
		Name:   "DEFAULT_ITR2",
		Form:   business.FormITR2,
		Reason: "no earlier rule matched; ITR-2 is the conservative catch-all",
		Applies: func(params.ClassifyParams, *rules.TableSet) bool {
			return true
		},
	},
}

// ClassifyForm runs the profile through the rule cascade. A structurally
// invalid profile fails with an invalid_profile error before any rule is
// evaluated; there is no silent default.
func (s *ClassifierService) ClassifyForm(ctx context.Context, p params.ClassifyParams) (*business.ClassificationResult, error) {
	tables, err := s.registry.ForYear(p.AssessmentYear)
	if err != nil {
		return nil, err
	}

	if err := validateProfile(p, tables); err != nil {
		return nil, err
	}

	result := &business.ClassificationResult{}
	for _, rule := range cascade {
		if !rule.Applies(p, tables) {
			continue
		}
		result.Form = rule.Form
		result.ReasonTrace = append(result.ReasonTrace, rule.Name+": "+rule.Reason)

		s.logger.Info("Classified income profile",
			zap.String("entity_type", string(p.EntityType)),
			zap.String("form", string(result.Form)),
			zap.String("rule", rule.Name),
			zap.String("assessment_year", tables.Year))
		return result, nil
	}

	// Unreachable: DEFAULT_ITR2 always applies.
	return nil, business.NewInvalidProfile("no classification rule matched")
}

// validateProfile rejects structurally incomplete or contradictory profiles.
func validateProfile(p params.ClassifyParams, tables *rules.TableSet) error {
	if !p.EntityType.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown entity type %q", p.EntityType))
	}
	if p.TotalIncome < 0 {
		return business.NewInvalidIncome("total income cannot be negative")
	}
	if p.TotalIncome > tables.SanityIncomeCeiling {
		return business.NewInvalidIncome(fmt.Sprintf("total income exceeds the supported ceiling of %d", tables.SanityIncomeCeiling))
	}
	if !p.UsesPresumptiveTaxation.Valid() || !p.TurnoverBelow2Cr.Valid() {
		return business.NewInvalidProfile("presumptive taxation answers must be yes, no or not_applicable")
	}
	if p.ResidentialStatus != "" && !p.ResidentialStatus.Valid() {
		return business.NewInvalidProfile(fmt.Sprintf("unknown residential status %q", p.ResidentialStatus))
	}
	for _, src := range p.IncomeSources {
		if !src.Valid() {
			return business.NewInvalidProfile(fmt.Sprintf("unknown income source %q", src))
		}
	}

	if !p.EntityType.IsIndividualOrHUF() {
		// Non-individual entities classify on entity type alone; declared
		// sources or presumptive answers signal a malformed profile.
		if len(p.IncomeSources) > 0 {
			return business.NewInvalidProfile("income sources apply only to individual and HUF profiles")
		}
		if p.UsesPresumptiveTaxation != business.TriNotApplicable || p.TurnoverBelow2Cr != business.TriNotApplicable {
			return business.NewInvalidProfile("presumptive taxation answers apply only to individual and HUF profiles")
		}
		return nil
	}

	if len(p.IncomeSources) == 0 {
		return business.NewInvalidProfile("at least one income source is required")
	}
	if hasSource(p, business.SourceBusiness) {
		if p.UsesPresumptiveTaxation == business.TriNotApplicable {
			return business.NewInvalidProfile("profiles with business income must answer the presumptive taxation question")
		}
		if p.TurnoverBelow2Cr == business.TriNotApplicable {
			return business.NewInvalidProfile("profiles with business income must answer the turnover question")
		}
	} else if p.UsesPresumptiveTaxation != business.TriNotApplicable || p.TurnoverBelow2Cr != business.TriNotApplicable {
		return business.NewInvalidProfile("presumptive taxation answers require business income")
	}
	return nil
}

func hasSource(p params.ClassifyParams, source business.IncomeSource) bool {
	for _, src := range p.IncomeSources {
		if src == source {
			return true
		}
	}
	return false
}
