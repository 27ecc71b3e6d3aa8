package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kaptinlin/sap"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func newParseCommand() *cobra.Command {
	var (
		allowPartials bool
		trackCoerce   bool
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "parse <schema.yaml> <response-file|->",
		Short: "Parse a free-form LLM response against a schema document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			schemaData, err := readFile(args[0])
			if err != nil {
				return err
			}
			schema, err := sap.LoadSchemaYAML(schemaData)
			if err != nil {
				return fmt.Errorf("load schema: %w", err)
			}

			var response []byte
			if args[1] == "-" {
				response, err = readAllStdin()
			} else {
				response, err = readFile(args[1])
			}
			if err != nil {
				return err
			}

			opts := sap.DefaultOptions()
			opts.AllowPartials = allowPartials
			opts.TrackCoercions = trackCoerce
			opts.Strict = strict

			result := sap.Parse(string(response), schema, opts)
			printResult(result)
			if !result.Success {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowPartials, "allow-partials", false, "accept and propagate partiality")
	cmd.Flags().BoolVar(&trackCoerce, "trace", false, "populate the coercion trace")
	cmd.Flags().BoolVar(&strict, "strict", false, "disable lossy scalar coercions")

	return cmd
}

func printResult(r *sap.Result) {
	status := successStyle.Render("success")
	if !r.Success {
		status = failureStyle.Render("failed")
	}
	fmt.Printf("%s (partial=%v, from_markdown=%v)\n", status, r.IsPartial, r.Meta.FromMarkdown)

	encoded, _ := json.MarshalIndent(r.Value.Native(), "", "  ")
	fmt.Println(string(encoded))

	for _, e := range r.Errors {
		fmt.Printf("  %s %s: %s\n", failureStyle.Render("error"), pathStyle.Render(e.Path), e.Error())
	}
	for _, c := range r.Meta.Coercions {
		fmt.Printf("  note %s: %s\n", pathStyle.Render(c.Path), c.Note)
	}
}

func readAllStdin() ([]byte, error) {
	return readAll(os.Stdin)
}
