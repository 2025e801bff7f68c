package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Recommendation priorities
	HighPriority   = "high"
	MediumPriority = "medium"

	// Deduction section codes referenced outside the rule tables
	Section80C     = "80C"
	Section80D     = "80D"
	Section80CCD1B = "80CCD1B"
)
