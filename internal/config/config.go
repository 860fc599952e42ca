package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"subtuner/internal/optimize"
)

// Config encapsulates all configuration values for subtuner: the optimizer
// tuning knobs plus the ambient CLI, logging, and run-history settings that
// surround the pipeline.
type Config struct {
	Optimizer optimize.Config `toml:"optimizer"`

	OutputDir        string `toml:"output_dir"`
	LogDir           string `toml:"log_dir"`
	LogFormat        string `toml:"log_format"`
	LogLevel         string `toml:"log_level"`
	RunHistoryDBPath string `toml:"run_history_db_path"`
	BatchConcurrency int    `toml:"batch_concurrency"`

	// MergeDuplicateCues is declared but unimplemented: a merge pass was
	// judged out of scope (an optional future component, never included
	// silently) and setting this true has no effect. See DESIGN.md.
	MergeDuplicateCues bool `toml:"merge_duplicate_cues"`
}

const (
	defaultOutputDir        = "~/.local/share/subtuner/output"
	defaultLogDir           = "~/.local/share/subtuner/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultRunHistoryDBPath = "~/.local/share/subtuner/history.db"
	defaultBatchConcurrency = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Optimizer:        optimize.DefaultConfig(),
		OutputDir:        defaultOutputDir,
		LogDir:           defaultLogDir,
		LogFormat:        defaultLogFormat,
		LogLevel:         defaultLogLevel,
		RunHistoryDBPath: defaultRunHistoryDBPath,
		BatchConcurrency: defaultBatchConcurrency,
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subtuner/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/subtuner/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subtuner.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error

	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = defaultOutputDir
	}
	if c.OutputDir, err = expandPath(c.OutputDir); err != nil {
		return fmt.Errorf("output_dir: %w", err)
	}

	if strings.TrimSpace(c.LogDir) == "" {
		c.LogDir = defaultLogDir
	}
	if c.LogDir, err = expandPath(c.LogDir); err != nil {
		return fmt.Errorf("log_dir: %w", err)
	}

	if strings.TrimSpace(c.RunHistoryDBPath) == "" {
		c.RunHistoryDBPath = defaultRunHistoryDBPath
	}
	if c.RunHistoryDBPath, err = expandPath(c.RunHistoryDBPath); err != nil {
		return fmt.Errorf("run_history_db_path: %w", err)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = defaultLogFormat
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.BatchConcurrency <= 0 {
		c.BatchConcurrency = defaultBatchConcurrency
	}

	if c.Optimizer == (optimize.Config{}) {
		c.Optimizer = optimize.DefaultConfig()
	}

	return nil
}

// Validate ensures the configuration is usable, delegating the optimizer
// knobs to their own cross-field validation.
func (c *Config) Validate() error {
	if err := c.Optimizer.Validate(); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must be set")
	}
	if c.BatchConcurrency <= 0 {
		return errors.New("batch_concurrency must be positive")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := `# subtuner configuration
# Tuning knobs for the retiming pipeline, plus CLI-facing settings.

output_dir = "~/.local/share/subtuner/output"     # shown by "config show"; not used by optimize or batch
log_dir = "~/.local/share/subtuner/logs"          # log files
log_format = "console"                            # "console" or "json"
log_level = "info"                                # debug, info, warn, error
run_history_db_path = "~/.local/share/subtuner/history.db"
batch_concurrency = 4                              # not used; "batch" processes files one at a time
merge_duplicate_cues = false                       # unimplemented; do not enable

[optimizer]
chars_per_sec = 20.0       # reading speed budget, characters per second
min_duration = 1.0         # seconds, floor for any cue's displayed duration
max_duration = 8.0         # seconds, ceiling for any cue's displayed duration
min_gap = 0.05             # seconds, minimum silence enforced between cues
short_threshold = 0.8      # seconds, below this a cue is a rebalance candidate (receiver)
long_threshold = 3.0       # seconds, above this a cue is a rebalance candidate (donor)
max_anticipation = 0.5     # seconds, maximum a cue's start may move earlier
`

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
