package hooks

const noVerifyBlockMessage = "Git commands with --no-verify are not allowed. " +
	"Run the command without the bypass flag so git hooks and verification steps execute."

// noVerifyRule blocks git commands that skip verification hooks with
// --no-verify or its short form -n.
type noVerifyRule struct{}

// NewNoVerifyRule creates a new rule that blocks git commands bypassing
// verification hooks.
func NewNoVerifyRule() Rule {
	return &noVerifyRule{}
}

// Name returns the unique identifier for this rule.
func (r *noVerifyRule) Name() string {
	return "no-verify"
}

// Description returns a human-readable description of what this rule does.
func (r *noVerifyRule) Description() string {
	return "Blocks git commands that bypass verification hooks with --no-verify or -n"
}

// Evaluate checks if the Bash command is a git invocation carrying a
// verification-bypass flag outside of quoted text.
func (r *noVerifyRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input.ToolName != "Bash" {
		return NewAllowedResult(), nil
	}

	command, ok := input.GetStringArg("command")
	if !ok {
		return NewAllowedResult(), nil
	}

	// The rule only governs git invocations. "git" must appear as a whole
	// word so that commands like "digitize" pass through.
	if !containsWord(command, "git") {
		return NewAllowedResult(), nil
	}

	// Flag detection runs on a working copy with quoted spans removed:
	// a commit message containing the literal text "--no-verify" is not a
	// flag. The raw command is never modified or echoed back.
	cleaned := stripQuotedText(command)

	if containsFlagToken(cleaned, "--no-verify", true) ||
		containsFlagToken(cleaned, "-n", false) {
		return NewBlockedResult(r.Name(), noVerifyBlockMessage), nil
	}

	return NewAllowedResult(), nil
}
