// Package config loads and persists ai-pr-review configuration.
//
// Effective configuration is the merge of built-in defaults, the JSON
// config file (in the platform config directory), AIPR_* environment
// variables (optionally from a .env file), and CLI flag overrides, in
// that order of increasing precedence.
package config
