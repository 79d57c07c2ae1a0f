package hooks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRule is a test implementation of the Rule interface.
type mockRule struct {
	name       string
	result     *RuleResult
	err        error
	onEvaluate func()
}

func (m *mockRule) Name() string {
	return m.name
}

func (m *mockRule) Description() string {
	return "mock rule for testing"
}

func (m *mockRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if m.onEvaluate != nil {
		m.onEvaluate()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestNewRuleEngine(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
	}{
		{
			name:  "creates engine with no rules",
			rules: []Rule{},
		},
		{
			name: "creates engine with one rule",
			rules: []Rule{
				&mockRule{name: "rule1"},
			},
		},
		{
			name: "creates engine with multiple rules",
			rules: []Rule{
				&mockRule{name: "rule1"},
				&mockRule{name: "rule2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRuleEngine(tt.rules...)
			assert.NotNil(t, got)
			assert.Equal(t, len(tt.rules), len(got.rules))
		})
	}
}

func TestRuleEngine_Evaluate(t *testing.T) {
	input := parseTestToolInput(t, "Bash", "git status")

	tests := []struct {
		name    string
		rules   []Rule
		input   *ToolInput
		want    *RuleResult
		wantErr bool
	}{
		{
			name:  "no rules allows",
			rules: []Rule{},
			input: input,
			want:  NewAllowedResult(),
		},
		{
			name: "single allowing rule",
			rules: []Rule{
				&mockRule{name: "rule1", result: NewAllowedResult()},
			},
			input: input,
			want:  NewAllowedResult(),
		},
		{
			name: "single blocking rule",
			rules: []Rule{
				&mockRule{name: "rule1", result: NewBlockedResult("rule1", "blocked")},
			},
			input: input,
			want:  NewBlockedResult("rule1", "blocked"),
		},
		{
			name: "first block wins",
			rules: []Rule{
				&mockRule{name: "rule1", result: NewAllowedResult()},
				&mockRule{name: "rule2", result: NewBlockedResult("rule2", "second blocked")},
				&mockRule{name: "rule3", result: NewBlockedResult("rule3", "third blocked")},
			},
			input: input,
			want:  NewBlockedResult("rule2", "second blocked"),
		},
		{
			name: "rule error propagates",
			rules: []Rule{
				&mockRule{name: "rule1", err: fmt.Errorf("evaluation failed")},
			},
			input:   input,
			wantErr: true,
		},
		{
			name:    "nil input errors",
			rules:   []Rule{},
			input:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewRuleEngine(tt.rules...)
			got, err := engine.Evaluate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleEngine_Evaluate_StopsAfterBlock(t *testing.T) {
	evaluated := []string{}
	record := func(name string) func() {
		return func() { evaluated = append(evaluated, name) }
	}

	engine := NewRuleEngine(
		&mockRule{name: "rule1", result: NewBlockedResult("rule1", "blocked"), onEvaluate: record("rule1")},
		&mockRule{name: "rule2", result: NewAllowedResult(), onEvaluate: record("rule2")},
	)

	got, err := engine.Evaluate(parseTestToolInput(t, "Bash", "ls"))
	require.NoError(t, err)
	assert.False(t, got.Allowed)
	assert.Equal(t, []string{"rule1"}, evaluated)
}

func TestEvaluateFailOpen(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		rules       []Rule
		wantAllowed bool
	}{
		{
			name:        "allowed request passes through",
			input:       `{"tool_name": "Bash", "tool_input": {"command": "git status"}}`,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: true,
		},
		{
			name:        "blocked request passes through",
			input:       `{"tool_name": "Bash", "tool_input": {"command": "git commit --no-verify"}}`,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: false,
		},
		{
			name:        "invalid JSON resolves to allow",
			input:       `{invalid json}`,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: true,
		},
		{
			name:        "empty input resolves to allow",
			input:       ``,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: true,
		},
		{
			name:        "missing tool_name resolves to allow",
			input:       `{"tool_input": {"command": "git commit --no-verify"}}`,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: true,
		},
		{
			name:        "non-object tool_input resolves to allow",
			input:       `{"tool_name": "Bash", "tool_input": "git commit --no-verify"}`,
			rules:       []Rule{NewNoVerifyRule()},
			wantAllowed: true,
		},
		{
			name:  "rule error resolves to allow",
			input: `{"tool_name": "Bash", "tool_input": {"command": "git commit --no-verify"}}`,
			rules: []Rule{
				&mockRule{name: "broken", err: fmt.Errorf("internal fault")},
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateFailOpen(strings.NewReader(tt.input), tt.rules...)

			require.NotNil(t, got)
			assert.Equal(t, tt.wantAllowed, got.Allowed)
		})
	}
}
