package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Summarize a schema file",
	Long:  `Print the collections, indexes and named graphs a schema file declares.`,
	Example: `  # Describe the default schema file
  arachne describe

  # Describe a specific file
  arachne describe --schema config/db/schema.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}

		if s.Version != "" {
			fmt.Printf("Schema version %s\n", s.Version)
		}

		fmt.Printf("Collections (%d):\n", len(s.Collections))
		for _, c := range s.Collections {
			kind := "document"
			if c.IsEdgeCollection {
				kind = "edge"
			}
			fmt.Printf("  - %s (%s)\n", c.Name, kind)
		}

		fmt.Printf("Indexes (%d):\n", len(s.Indexes))
		for _, idx := range s.Indexes {
			fmt.Printf("  - %s on %s [%s] (%s)\n",
				idx.Name, idx.Collection, strings.Join(idx.Fields, ", "), idx.Settings.Type)
		}

		fmt.Printf("Graphs (%d):\n", len(s.Graphs))
		for _, g := range s.Graphs {
			fmt.Printf("  - %s (%d edge definitions)\n", g.Name, len(g.EdgeDefinitions))
		}
		return nil
	},
}
