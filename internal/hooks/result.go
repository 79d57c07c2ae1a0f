package hooks

// RuleResult is the verdict of evaluating a rule against a tool input.
type RuleResult struct {
	// Allowed indicates whether the tool usage should proceed.
	Allowed bool

	// Message explains the verdict. It is empty for allowed results and
	// holds the user-facing reason for blocked results.
	Message string

	// RuleName identifies which rule produced this result.
	RuleName string
}

// NewAllowedResult creates a result that allows the tool usage.
func NewAllowedResult() *RuleResult {
	return &RuleResult{
		Allowed: true,
	}
}

// NewBlockedResult creates a result that blocks the tool usage.
func NewBlockedResult(ruleName, message string) *RuleResult {
	return &RuleResult{
		Allowed:  false,
		Message:  message,
		RuleName: ruleName,
	}
}
