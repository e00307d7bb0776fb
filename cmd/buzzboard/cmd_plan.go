package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"buzzboard/internal/dashboard"
	"buzzboard/internal/logging"
	"buzzboard/internal/questionnaire"
)

var (
	planAnswers     []string
	planAnswersFile string
	planFormat      string
	planOutput      string
)

// planCmd runs the questionnaire non-interactively.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a dashboard from answers given on the command line",
	Long: `Answers every question from flags or a YAML file and prints the dashboard.

Answers go through the same questionnaire as the interactive planner, so an
unknown option or a missing answer fails at the step it belongs to.

Examples:
  buzzboard plan --answer businessType=Startup --answer productCategory=Tech \
    --answer budget='$5K - $15K' --answer duration='1-3 Months' \
    --answer audience='Millennials (25-40)' --answer goal='Lead Generation'
  buzzboard plan --answers answers.yaml --format json --output plan.json`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringArrayVarP(&planAnswers, "answer", "a", nil, "Answer as key=value (repeatable)")
	planCmd.Flags().StringVarP(&planAnswersFile, "answers", "f", "", "YAML file mapping question keys to answers")
	planCmd.Flags().StringVar(&planFormat, "format", "markdown", "Output format: markdown, json, yaml")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Write the dashboard to a file instead of stdout")
}

func runPlan(cmd *cobra.Command, args []string) error {
	format, err := dashboard.ParseFormat(planFormat)
	if err != nil {
		return err
	}

	schema, err := cfg.LoadSchema()
	if err != nil {
		return err
	}

	answers, err := collectAnswers(planAnswersFile, planAnswers)
	if err != nil {
		return err
	}

	record, err := questionnaire.Run(schema, answers,
		questionnaire.WithLogger(logging.For(logger, logging.CategoryWizard)))
	if err != nil {
		return fmt.Errorf("questionnaire incomplete: %w", err)
	}

	out := cfg.Rules().Derive(record)
	logging.For(logger, logging.CategoryRecommend).Info("recommendation derived",
		zap.Int64("estimated_budget", out.EstimatedBudget),
		zap.Int64("estimated_return", out.EstimatedReturn),
		zap.String("channel", out.RecommendedChannel),
		zap.String("rule", out.MatchedRule))

	d := dashboard.Build(record, out, dashboard.Printer(cfg.UI.Locale))

	write := func(w io.Writer) error { return dashboard.Write(w, d, format) }
	if planOutput == "" {
		err = write(cmd.OutOrStdout())
	} else {
		err = writeFile(planOutput, write)
	}
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryDashboard).Debug("dashboard written",
		zap.String("format", string(format)),
		zap.String("output", planOutput))
	return nil
}

// writeFile creates path and fills it with write. The file is removed if
// writing or closing fails.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}

// collectAnswers merges the answers file with --answer flags; flags win.
func collectAnswers(path string, pairs []string) (questionnaire.AnswerRecord, error) {
	answers := questionnaire.AnswerRecord{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read answers: %w", err)
		}
		var raw map[string]string
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse answers: %w", err)
		}
		for k, v := range raw {
			key, err := questionnaire.ParseKey(k)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			answers[key] = v
		}
	}

	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --answer %q (want key=value)", pair)
		}
		key, err := questionnaire.ParseKey(strings.TrimSpace(k))
		if err != nil {
			return nil, err
		}
		answers[key] = strings.TrimSpace(v)
	}
	return answers, nil
}
