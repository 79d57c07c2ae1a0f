package hooks

import (
	"fmt"
	"io"
)

// ruleEngine evaluates rules in order against a tool input.
type ruleEngine struct {
	rules []Rule
}

// NewRuleEngine creates a new rule engine with the given rules.
func NewRuleEngine(rules ...Rule) *ruleEngine {
	return &ruleEngine{
		rules: rules,
	}
}

// Evaluate evaluates all rules against the tool input.
// Returns the first blocking result, or an allowed result if no rules block.
func (e *ruleEngine) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	for _, rule := range e.rules {
		result, err := rule.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("rule %s failed: %w", rule.Name(), err)
		}

		if !result.Allowed {
			return result, nil
		}
	}

	return NewAllowedResult(), nil
}

// EvaluateFailOpen parses a tool-use request and evaluates the given rules,
// resolving every failure to an allowed result. A request that cannot be
// parsed, or a rule that errors, must never block the host from proceeding,
// so all recovery lives here at the boundary and the engine and rules stay
// free of it. The returned result is never nil.
func EvaluateFailOpen(reader io.Reader, rules ...Rule) *RuleResult {
	input, err := ParseToolInput(reader)
	if err != nil {
		return NewAllowedResult()
	}

	result, err := NewRuleEngine(rules...).Evaluate(input)
	if err != nil {
		return NewAllowedResult()
	}

	return result
}
