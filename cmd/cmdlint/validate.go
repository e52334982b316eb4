package main

import (
	"fmt"
	"os"

	"github.com/cmdlint/cmdlint/pkg/presenter"
	"github.com/cmdlint/cmdlint/pkg/refs"
	"github.com/cmdlint/cmdlint/pkg/rules"
	"github.com/cmdlint/cmdlint/pkg/runner"
	"github.com/cmdlint/cmdlint/pkg/validator"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type ValidateConfig struct {
	Root      string
	Category  string
	Format    string
	Report    string
	Ruleset   string
	AgentsDir string
	SkillsDir string
	Verbose   bool
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		Root:   ".",
		Format: "text",
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [directory]",
	Short: "Validate every command document under a directory",
	Long: `Validate runs all eight structural checks against every markdown
document found under the given directory (default: current directory).

Exit codes: 0 when every document passes, 1 when any check fails,
2 when the directory itself cannot be scanned.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		config := getValidateConfigFromFlags(cmd, args)

		r, err := newRunnerFromConfig(config)
		if err != nil {
			presenter.Error(err, "Failed to configure validation")
			os.Exit(2)
		}

		report, err := r.Run(ctx, config.Root)
		if err != nil {
			presenter.Error(err, "Failed to scan directory")
			os.Exit(2)
		}

		if err := renderReport(report, config); err != nil {
			presenter.Error(err, "Failed to render report")
			os.Exit(2)
		}

		if !report.Passed() {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().StringP("category", "c", defaults.Category, "Only validate documents whose file category matches this glob")
	validateCmd.Flags().StringP("format", "f", defaults.Format, "Output format (text, json, yaml)")
	validateCmd.Flags().String("report", defaults.Report, "Write a markdown report to this file")
	validateCmd.Flags().String("ruleset", defaults.Ruleset, "Path to a ruleset YAML overriding the built-in limits")
	validateCmd.Flags().String("agents-dir", defaults.AgentsDir, "Directory containing agent definitions for reference checks")
	validateCmd.Flags().String("skills-dir", defaults.SkillsDir, "Directory containing skill packages for reference checks")
	validateCmd.Flags().BoolP("verbose", "v", defaults.Verbose, "Show passing checks as well as failing ones")
}

func getValidateConfigFromFlags(cmd *cobra.Command, args []string) *ValidateConfig {
	config := NewValidateConfig()

	if len(args) > 0 {
		config.Root = args[0]
	}
	if category, err := cmd.Flags().GetString("category"); err == nil {
		config.Category = category
	}
	if format, err := cmd.Flags().GetString("format"); err == nil {
		config.Format = format
	}
	if reportPath, err := cmd.Flags().GetString("report"); err == nil {
		config.Report = reportPath
	}
	if ruleset, err := cmd.Flags().GetString("ruleset"); err == nil {
		config.Ruleset = ruleset
	}
	if agentsDir, err := cmd.Flags().GetString("agents-dir"); err == nil {
		config.AgentsDir = agentsDir
	}
	if skillsDir, err := cmd.Flags().GetString("skills-dir"); err == nil {
		config.SkillsDir = skillsDir
	}
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil {
		config.Verbose = verbose
	}

	return config
}

func newRunnerFromConfig(config *ValidateConfig) (*runner.Runner, error) {
	engineOpts := []rules.Option{}
	if config.Ruleset != "" {
		rs, err := rules.LoadRuleset(config.Ruleset)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, rules.WithRuleset(rs))
	}

	engine, err := rules.NewEngine(engineOpts...)
	if err != nil {
		return nil, err
	}

	resolver := refs.NewDirResolver(config.AgentsDir, config.SkillsDir, config.Root)
	v, err := validator.New(validator.WithEngine(engine), validator.WithResolver(resolver))
	if err != nil {
		return nil, err
	}

	return runner.New(
		runner.WithValidator(v),
		runner.WithCategoryFilter(config.Category),
	)
}

func renderReport(report *runner.RepositoryReport, config *ValidateConfig) error {
	switch config.Format {
	case "text":
		if err := runner.RenderText(os.Stdout, report, config.Verbose); err != nil {
			return err
		}
	case "json":
		if err := runner.RenderJSON(os.Stdout, report); err != nil {
			return err
		}
	case "yaml":
		if err := runner.RenderYAML(os.Stdout, report); err != nil {
			return err
		}
	default:
		return errors.Errorf("unsupported format '%s' (expected text, json, or yaml)", config.Format)
	}

	if config.Report != "" {
		f, err := os.Create(config.Report)
		if err != nil {
			return errors.Wrap(err, "failed to create report file")
		}
		defer f.Close()

		if err := runner.RenderMarkdown(f, report); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Markdown report written to %s", config.Report))
	}

	return nil
}
