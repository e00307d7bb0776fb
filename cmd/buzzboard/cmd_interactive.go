package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buzzboard/cmd/buzzboard/ui"
	"buzzboard/internal/dashboard"
	"buzzboard/internal/logging"
	"buzzboard/internal/questionnaire"
	"buzzboard/internal/recommend"
)

// runPlanner launches the interactive questionnaire and dashboard.
func runPlanner(cmd *cobra.Command, args []string) error {
	schema, err := cfg.LoadSchema()
	if err != nil {
		return err
	}
	rules := cfg.Rules()

	theme := ui.ThemeFor(cfg.UI.Theme)
	styles := ui.NewStyles(theme)

	glamourStyle := "light"
	if theme.IsDark {
		glamourStyle = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	boot := logging.For(logger, logging.CategoryBoot)
	m, err := ui.NewPlannerModel(ui.PlannerOptions{
		Schema:   schema,
		Rules:    rules,
		Printer:  dashboard.Printer(cfg.UI.Locale),
		Renderer: renderer,
		Styles:   &styles,
		Logger:   logger,
		OnComplete: func(record questionnaire.AnswerRecord, out recommend.Output) {
			boot.Debug("plan completed",
				zap.Any("answers", record),
				zap.Int64("roi_percent", out.ROIPercent))
		},
	})
	if err != nil {
		return err
	}

	boot.Info("starting interactive planner", zap.Bool("dark", theme.IsDark), zap.Int("steps", len(schema)))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("planner failed: %w", err)
	}
	return nil
}
