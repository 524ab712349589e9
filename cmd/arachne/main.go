// Package main provides a CLI for managing arachne database schemas.
//
// The CLI supports:
//   - describe: Summarize the collections, indexes and graphs of a schema file
//   - validate: Check a schema file for internal consistency
//   - apply:    Create the schema elements on a live database
//
// Commands that touch the database (apply) read the connection from the
// DB_HOST, DB_NAME, DB_USER and DB_PASSWORD environment variables, with .env
// file support. File-only commands (describe, validate) do not need a
// database.
package main

func main() {
	Execute()
}
