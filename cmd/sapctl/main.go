// Command sapctl exercises both halves of a Schema-Aligned Parsing loop
// from the command line: render a schema document into a prompt-side type
// hint, or parse a free-form LLM response against it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "sapctl",
})

func main() {
	root := &cobra.Command{
		Use:           "sapctl",
		Short:         "Schema-Aligned Parsing toolkit",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if *verbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	root.AddCommand(newParseCommand(), newRenderCommand())

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
