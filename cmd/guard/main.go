package main

import (
	"fmt"
	"os"

	"github.com/hooksmith/claude-guard/internal/audit"
	"github.com/hooksmith/claude-guard/internal/command"
	"github.com/hooksmith/claude-guard/internal/hooks"
	"github.com/hooksmith/claude-guard/internal/settings"
	"github.com/spf13/cobra"
)

// defaultHookCommand is the command registered in Claude Code settings.
const defaultHookCommand = "claude-guard pre-tool-use"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// guardRules returns the rules the guard evaluates on every tool use.
func guardRules() []hooks.Rule {
	return []hooks.Rule{
		hooks.NewNoVerifyRule(),
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-guard",
		Short: "Claude Code hook that blocks git verification bypasses",
		Long:  `A PreToolUse hook for Claude Code that blocks git commands carrying the --no-verify flag, so commit and push hooks always run.`,
	}

	rootCmd.AddCommand(newPreToolUseCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

func newPreToolUseCmd() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Evaluate a tool-use request before execution",
		Long: `Reads a tool-use request from stdin as JSON and evaluates the guard rules.
Exits 0 to allow and 2 to block with a reason on stderr. A request that
cannot be parsed is allowed: the guard fails open rather than stopping
legitimate work over an internal fault.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := hooks.EvaluateFailOpen(cmd.InOrStdin(), guardRules()...)

			if logPath != "" {
				// Best effort: a logging failure never changes the verdict.
				_ = audit.NewLogger(logPath).Record(audit.Entry{
					Allowed:  result.Allowed,
					RuleName: result.RuleName,
					Message:  result.Message,
				})
			}

			if !result.Allowed {
				fmt.Fprintf(cmd.ErrOrStderr(), "Blocked by rule %s: %s\n", result.RuleName, result.Message)
				os.Exit(2)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "append decisions to a JSON lines file at this path")

	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules the guard evaluates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, rule := range guardRules() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", rule.Name(), rule.Description())
			}
			return nil
		},
	}
}

func newInstallCmd() *cobra.Command {
	var settingsPath string
	var hookCommand string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the guard as a PreToolUse hook in Claude Code settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := settings.Install(settingsPath, hookCommand)
			if err != nil {
				return fmt.Errorf("failed to install hook: %w", err)
			}

			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Registered PreToolUse hook in %s\n", settingsPath)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "PreToolUse hook already registered in %s\n", settingsPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", settings.DefaultPath, "path to the Claude Code settings file")
	cmd.Flags().StringVar(&hookCommand, "command", defaultHookCommand, "hook command to register")

	return cmd
}

func newDoctorCmd() *cobra.Command {
	var settingsPath string
	var hookCommand string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the guard's environment and registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			healthy := true

			gitRunner := command.NewGitRunner(command.NewRunner())

			version, err := gitRunner.Version(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "git: not found (%v)\n", err)
				healthy = false
			} else {
				fmt.Fprintf(out, "git: %s\n", version)
			}

			if hooksPath, err := gitRunner.HooksPath(cmd.Context(), ""); err == nil && hooksPath != "" {
				// A redirected hooks directory can neuter the hooks this
				// guard is protecting.
				fmt.Fprintf(out, "warning: core.hooksPath is set to %q\n", hooksPath)
			}

			installed, err := settings.IsInstalled(settingsPath, hookCommand)
			if err != nil {
				fmt.Fprintf(out, "settings: unreadable (%v)\n", err)
				healthy = false
			} else if installed {
				fmt.Fprintf(out, "settings: hook registered in %s\n", settingsPath)
			} else {
				fmt.Fprintf(out, "settings: hook not registered in %s (run claude-guard install)\n", settingsPath)
				healthy = false
			}

			if !healthy {
				return fmt.Errorf("environment problems found")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", settings.DefaultPath, "path to the Claude Code settings file")
	cmd.Flags().StringVar(&hookCommand, "command", defaultHookCommand, "hook command to check for")

	return cmd
}
