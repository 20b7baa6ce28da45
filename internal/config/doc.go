// SPDX-License-Identifier: MPL-2.0

// Package config loads lsx user preferences using Viper with CUE as the file
// format.
//
// The file is config.cue in the platform config directory
// ($XDG_CONFIG_HOME/lsx on Linux, ~/Library/Application Support/lsx on macOS,
// %APPDATA%\lsx on Windows) or in the working directory. It is validated
// against the embedded #Config schema. LSX_<KEY> environment variables
// override file values.
//
// The loaded Config only supplies defaults: the command line always wins.
package config
