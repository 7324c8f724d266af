package types

type RuleAction string

const (
	RuleActionAllow    RuleAction = "allow"
	RuleActionDisallow RuleAction = "disallow"
)

type SkipReason string

const (
	SkipReasonExcludedByRule      SkipReason = "excluded-by-rule"
	SkipReasonMalformedCoordinate SkipReason = "malformed-coordinate"
	SkipReasonArtifactMissing     SkipReason = "artifact-missing"
)

type ArgumentShape string

const (
	ArgumentShapeNone       ArgumentShape = "none"
	ArgumentShapeLegacy     ArgumentShape = "legacy"
	ArgumentShapeStructured ArgumentShape = "structured"
	ArgumentShapeBoth       ArgumentShape = "both"
)
