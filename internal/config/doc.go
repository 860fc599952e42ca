// Package config loads and validates subtuner's configuration: the
// optimizer tuning knobs from spec.md §3.3 plus the ambient CLI, logging,
// and run-history settings that surround the pipeline. It follows the
// teacher's Default/Load/Validate/normalize layering
// (internal/config/config.go in the original spindle tree), backed by
// github.com/pelletier/go-toml/v2.
package config
