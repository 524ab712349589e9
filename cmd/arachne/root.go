package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asaidimu/go-arachne/core/schema"
)

var (
	schemaFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "arachne",
	Short: "Document graph schema management",
	Long: `arachne - document graph schema management

Manages the declarative YAML schema of an ArangoDB database: describe and
validate schema files, and apply them to a live database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaFile, "schema", "", "path to schema.yaml (default: SCHEMA_PATH or "+schema.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("schema", rootCmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("arachne")
	viper.AutomaticEnv()

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(applyCmd)
}

// schemaPath resolves the schema file location: flag, then SCHEMA_PATH, then
// the default.
func schemaPath() string {
	if path := viper.GetString("schema"); path != "" {
		return path
	}
	if path := os.Getenv("SCHEMA_PATH"); path != "" {
		return path
	}
	return schema.DefaultPath
}

func loadSchema() (*schema.DatabaseSchema, error) {
	return schema.Load(schemaPath())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
