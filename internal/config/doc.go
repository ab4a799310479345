// Package config loads .sarif2xlsx.yaml settings for the sarif2xlsx CLI.
//
// # Configuration Precedence
//
// The first file found wins:
//
//  1. The --config flag
//  2. The SARIF2XLSX_CONFIG environment variable
//  3. .sarif2xlsx.yaml in the working directory
//  4. $XDG_CONFIG_HOME/sarif2xlsx/.sarif2xlsx.yaml (or the platform user config dir)
//
// Keys absent from the file keep their defaults. A file that cannot be
// parsed produces a warning and the defaults are used. A file named
// explicitly with --config must exist.
//
// # Keys
//
//   - log_level: zerolog level name (default "warn")
//   - log_format: "console" or "json"
//   - table_name: name of the Excel table region (default "SARIFTable");
//     must be a valid Excel table name
//   - summary: print the severity summary after conversion (default true)
//   - theme: "default" or "mono"
package config
