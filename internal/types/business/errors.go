package business

import "errors"

// ErrorKind is the machine-readable category of a domain validation failure.
type ErrorKind string

const (
	KindInvalidProfile     ErrorKind = "invalid_profile"
	KindInvalidIncome      ErrorKind = "invalid_income"
	KindUnknownRuleVersion ErrorKind = "unknown_rule_version"
)

// DomainError is a local validation failure reported to the caller. There is
// no transient failure mode; callers re-prompt rather than retry.
type DomainError struct {
	Kind   ErrorKind
	Reason string
}

func (e *DomainError) Error() string {
	return string(e.Kind) + ": " + e.Reason
}

// NewInvalidProfile reports a structurally incomplete or contradictory
// income profile.
func NewInvalidProfile(reason string) *DomainError {
	return &DomainError{Kind: KindInvalidProfile, Reason: reason}
}

// NewInvalidIncome reports a negative or absurdly large income amount.
func NewInvalidIncome(reason string) *DomainError {
	return &DomainError{Kind: KindInvalidIncome, Reason: reason}
}

// NewUnknownRuleVersion reports a request for an assessment year with no
// configured rule tables.
func NewUnknownRuleVersion(reason string) *DomainError {
	return &DomainError{Kind: KindUnknownRuleVersion, Reason: reason}
}

// KindOf extracts the domain error kind from err, unwrapping as needed.
func KindOf(err error) (ErrorKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
