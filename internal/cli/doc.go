// Package cli implements the command-line interface for the medals generator.
//
// The root command fetches the configured medal-table page, extracts and ranks the
// top committees and writes medals.json for the display widget, falling back to
// placeholder rows when the table cannot be read. The mappings command rebuilds the
// name-to-code and code-to-flag lookup files from the reference list of committee
// codes. Settings come from the environment (see package config) and can be
// overridden by flags.
package cli
