package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaptinlin/sap"
	"github.com/kaptinlin/sap/render"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <schema.yaml>",
		Short: "Render a schema document as a prompt-side JSON type hint",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readFile(args[0])
			if err != nil {
				return err
			}
			schema, err := sap.LoadSchemaYAML(data)
			if err != nil {
				return fmt.Errorf("load schema: %w", err)
			}
			fmt.Println(render.Hint(schema))
			return nil
		},
	}
}
