package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asaidimu/go-arachne/arango"
)

var applySilent bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a schema file to the database",
	Long: `Create every collection, index and named graph of the schema file on the
database configured through DB_HOST, DB_NAME, DB_USER and DB_PASSWORD.`,
	Example: `  # Apply the default schema file, skipping already-created elements
  arachne apply --silent

  # Apply a specific file, aborting on the first error
  arachne apply --schema config/db/schema.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSchema()
		if err != nil {
			return err
		}
		if err := s.Validate(); err != nil {
			return err
		}

		cfg, err := arango.ConfigFromEnv()
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if verbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
		}

		db, err := arango.NewDatabase(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		if err := db.ApplySchema(cmd.Context(), s, applySilent); err != nil {
			return err
		}
		fmt.Printf("Schema applied to %s: %d collections, %d indexes, %d graphs\n",
			db.Name(), len(s.Collections), len(s.Indexes), len(s.Graphs))
		return nil
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applySilent, "silent", false, "skip elements that fail to create instead of aborting")
}
