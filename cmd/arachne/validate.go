package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a schema file",
	Long:  `Check a schema file for internal consistency: unique names, resolvable index and graph references, and a parseable version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return err
		}
		fmt.Printf("Schema is valid: %d collections, %d indexes, %d graphs\n",
			len(s.Collections), len(s.Indexes), len(s.Graphs))
		return nil
	},
}
