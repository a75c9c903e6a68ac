package domain

type EssayStatus string

const (
	EssayAssigned  EssayStatus = "assigned"
	EssaySubmitted EssayStatus = "submitted"
)

type ProgressBucket string

const (
	BucketNotStarted ProgressBucket = "not_started"
	BucketInProgress ProgressBucket = "in_progress"
	BucketComplete   ProgressBucket = "complete"
)

type RequirementKind string

const (
	// RequirementDivision comes from the division's required_count field.
	RequirementDivision RequirementKind = "division_minimum"
	// RequirementGradeRule comes from the legacy per-grade rule table.
	RequirementGradeRule RequirementKind = "grade_rule_target"
	// RequirementCatalog is the whole-catalog fallback when neither the
	// division nor a grade rule defines a target.
	RequirementCatalog RequirementKind = "catalog_fallback"
)
