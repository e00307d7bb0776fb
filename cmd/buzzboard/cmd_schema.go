package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var schemaYAML bool

// schemaCmd prints the questionnaire in use.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the questionnaire steps and their options",
	Long: `Prints the questionnaire the planner will ask, in order.

With --yaml the output is a schema file that can be edited and pointed to
with schema.path in the config or BUZZBOARD_SCHEMA.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaYAML, "yaml", false, "Print as a YAML schema file")
}

func runSchema(cmd *cobra.Command, args []string) error {
	schema, err := cfg.LoadSchema()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if schemaYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		return enc.Close()
	}

	var sb strings.Builder
	for i, step := range schema {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, step.Title, step.Key)
		for _, opt := range step.Options {
			fmt.Fprintf(&sb, "   - %s\n", opt)
		}
	}
	_, err = fmt.Fprint(out, sb.String())
	return err
}
