package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"buzzboard/internal/config"
	"buzzboard/internal/questionnaire"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var techAnswers = []string{
	"businessType=Startup",
	"productCategory=Tech",
	"budget=$5K - $15K",
	"duration=1-3 Months",
	"audience=Millennials (25-40)",
	"goal=Lead Generation",
}

// setup resets the globals the commands read.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	t.Cleanup(func() {
		planAnswers, planAnswersFile, planFormat, planOutput = nil, "", "markdown", ""
		schemaYAML, configForce, cfgPath = false, false, ""
	})
	return &bytes.Buffer{}
}

func newCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestRunPlan_Markdown(t *testing.T) {
	out := setup(t)
	planAnswers = techAnswers
	planFormat = "markdown"

	require.NoError(t, runPlan(newCmd(out), nil))

	got := out.String()
	assert.Contains(t, got, "# Your Personalized Dashboard")
	assert.Contains(t, got, "Insights for your Startup in Tech")
	assert.Contains(t, got, "$10,000")
	assert.Contains(t, got, "$3,500")
	assert.Contains(t, got, "**YouTube** (recommended)")
}

func TestRunPlan_JSONFromFile(t *testing.T) {
	out := setup(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`businessType: Enterprise
productCategory: Beauty
budget: $100K+
duration: 6+ Months
audience: Gen Z (16-24)
goal: Brand Awareness
`), 0644))
	planAnswersFile = path
	planFormat = "json"

	require.NoError(t, runPlan(newCmd(out), nil))

	var decoded struct {
		Output struct {
			EstimatedBudget    int64  `json:"estimated_budget"`
			EstimatedReturn    int64  `json:"estimated_return"`
			RecommendedChannel string `json:"recommended_channel"`
		} `json:"recommendation"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, int64(150000), decoded.Output.EstimatedBudget)
	assert.Equal(t, int64(52500), decoded.Output.EstimatedReturn)
	assert.Equal(t, "TikTok", decoded.Output.RecommendedChannel)
}

func TestRunPlan_FlagsOverrideFile(t *testing.T) {
	out := setup(t)
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audience: Gen Z (16-24)\n"), 0644))
	planAnswersFile = path
	planAnswers = techAnswers
	planFormat = "markdown"

	require.NoError(t, runPlan(newCmd(out), nil))
	assert.Contains(t, out.String(), "**YouTube** (recommended)")
}

func TestRunPlan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		format  string
		wantErr string
		is      error
	}{
		{
			name:    "missing answer",
			answers: techAnswers[:5],
			format:  "markdown",
			wantErr: "goal",
			is:      questionnaire.ErrCannotAdvance,
		},
		{
			name:    "invalid option",
			answers: append(append([]string{}, techAnswers[:5]...), "goal=World Domination"),
			format:  "markdown",
			is:      questionnaire.ErrInvalidSelection,
		},
		{
			name:    "unknown key",
			answers: []string{"colour=blue"},
			format:  "markdown",
			is:      questionnaire.ErrUnknownKey,
		},
		{
			name:    "malformed pair",
			answers: []string{"businessType"},
			format:  "markdown",
			wantErr: "want key=value",
		},
		{
			name:    "unknown format",
			answers: techAnswers,
			format:  "pdf",
			wantErr: "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := setup(t)
			planAnswers = tt.answers
			planFormat = tt.format

			err := runPlan(newCmd(out), nil)
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			assert.Empty(t, out.String())
		})
	}
}

func TestRunPlan_OutputFile(t *testing.T) {
	out := setup(t)
	planAnswers = techAnswers
	planFormat = "yaml"
	planOutput = filepath.Join(t.TempDir(), "plan.yaml")

	require.NoError(t, runPlan(newCmd(out), nil))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(planOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "recommended_channel: YouTube")
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.md")
	errDiskFull := errors.New("disk full")

	err := writeFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "# Your Personal")
		return errDiskFull
	})
	assert.ErrorIs(t, err, errDiskFull)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial file left behind")

	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "done")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "done", string(data))
}

func TestRunPlan_ConfiguredMultiplier(t *testing.T) {
	out := setup(t)
	cfg.Derivation.ReturnMultiplier = 0.5
	planAnswers = techAnswers
	planFormat = "json"

	require.NoError(t, runPlan(newCmd(out), nil))
	assert.Contains(t, out.String(), `"estimated_return": 5000`)
}

func TestRunSchema(t *testing.T) {
	out := setup(t)

	require.NoError(t, runSchema(newCmd(out), nil))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "1. Business Type (businessType)", lines[0])
	assert.Equal(t, "   - Startup", lines[1])
	assert.Contains(t, out.String(), "6. Primary Goal (goal)")
}

func TestRunSchema_YAMLRoundTrips(t *testing.T) {
	out := setup(t)
	schemaYAML = true

	require.NoError(t, runSchema(newCmd(out), nil))

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0644))
	schema, err := config.LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, questionnaire.DefaultSchema(), schema)
}

func TestRunConfigInit(t *testing.T) {
	out := setup(t)
	cfgPath = filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, runConfigInit(newCmd(out), nil))
	assert.Contains(t, out.String(), "Wrote default config")

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Derivation.ReturnMultiplier, loaded.Derivation.ReturnMultiplier)

	err = runConfigInit(newCmd(out), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	configForce = true
	assert.NoError(t, runConfigInit(newCmd(out), nil))
}

func TestRunConfigShow(t *testing.T) {
	out := setup(t)

	require.NoError(t, runConfigShow(newCmd(out), nil))
	assert.Contains(t, out.String(), "return_multiplier: 0.35")
	assert.Contains(t, out.String(), "theme: auto")
}

func TestLoadConfig_VerboseAndValidation(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "config.yaml")

	verbose = true
	t.Cleanup(func() { verbose = false })
	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Logging.Level)

	require.NoError(t, os.WriteFile(cfgPath, []byte("ui:\n  theme: neon\n"), 0644))
	_, err = loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
}

func TestExecute_Version(t *testing.T) {
	out := setup(t)
	cfgPath = filepath.Join(t.TempDir(), "config.yaml")

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version", "--config", cfgPath})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "buzzboard dev\n", out.String())
}

func TestExecute_ConfigInitReplacesBrokenFile(t *testing.T) {
	out := setup(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\nlogging: [broken"), 0644))

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"config", "init", "--force", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote default config")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.NoError(t, loaded.Validate())
}
