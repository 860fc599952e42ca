package batchrun

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"subtuner/internal/apperr"
	"subtuner/internal/cue"
	"subtuner/internal/fileutil"
	"subtuner/internal/optimize"
	"subtuner/internal/stats"
	"subtuner/internal/textutil"
)

// FileResult is one file's outcome within a batch run.
type FileResult struct {
	Path   string
	Report stats.Report
}

// FileError records a file that could not be parsed, optimized, or written.
type FileError struct {
	Path string
	Err  error
}

// Options controls a batch walk.
type Options struct {
	// Root is the directory walked for subtitle files.
	Root string

	// Config is the optimizer configuration applied to every file.
	Config optimize.Config

	// DryRun skips writing output when true; files are still parsed and
	// optimized so the report reflects what would change.
	DryRun bool

	// BackupSuffix, when non-empty, causes the original file to be copied
	// to path+BackupSuffix before it is overwritten.
	BackupSuffix string

	// OnFile, when set, is called after each file finishes (successfully or
	// not), in walk order, so a caller can drive a progress indicator.
	OnFile func(path string, index, total int)
}

// Result aggregates a batch run's outcome.
type Result struct {
	Report     stats.Report
	Files      []FileResult
	Errors     []FileError
	Duplicates []DuplicateWarning
	started    time.Time
	finished   time.Time
}

// StartedAt and FinishedAt bound the walk, for run-history persistence.
func (r Result) StartedAt() time.Time  { return r.started }
func (r Result) FinishedAt() time.Time { return r.finished }

// Run walks opts.Root, optimizes every recognized subtitle file it finds,
// and returns the aggregated report. A per-file error does not abort the
// walk; it is recorded in Result.Errors and the walk continues.
func Run(opts Options) (Result, error) {
	result := Result{started: time.Now()}

	paths, err := discover(opts.Root)
	if err != nil {
		return result, fmt.Errorf("discover subtitle files under %s: %w", opts.Root, err)
	}

	total := len(paths)
	textByPath := make(map[string]string, total)
	for idx, path := range paths {
		report, text, procErr := processFile(path, opts)
		if procErr != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: procErr})
		} else {
			result.Report.Merge(report)
			result.Files = append(result.Files, FileResult{Path: path, Report: report})
			textByPath[path] = text
		}
		if opts.OnFile != nil {
			opts.OnFile(path, idx+1, total)
		}
	}

	result.Duplicates = detectDuplicates(result.Files, textByPath)
	result.finished = time.Now()
	return result, nil
}

// discover walks root and returns every file whose extension matches a
// registered codec, sorted for deterministic processing order.
func discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := codecFor(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// processFile parses, optimizes, and (unless DryRun) writes one file,
// returning the statistics report and the file's joined cue text (fed to
// detectDuplicates) collected along the way.
func processFile(path string, opts Options) (stats.Report, string, error) {
	c, ok := codecFor(path)
	if !ok {
		return stats.Report{}, "", apperr.New(apperr.KindValidation, "select codec", path, fmt.Errorf("unrecognized subtitle extension"))
	}

	cues, err := c.parse(path)
	if err != nil {
		return stats.Report{}, "", err
	}
	text := joinCueText(cues)

	optimized, report, err := optimize.Run(cues, opts.Config)
	if err != nil {
		return stats.Report{}, "", fmt.Errorf("optimize %s: %w", path, err)
	}

	if opts.DryRun {
		return report, text, nil
	}

	lock := flock.New(lockPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return stats.Report{}, "", apperr.New(apperr.KindWriting, "lock output file", path, err)
	}
	if !locked {
		return stats.Report{}, "", apperr.New(apperr.KindWriting, "lock output file", path, fmt.Errorf("another batch run holds the lock"))
	}
	defer func() { _ = lock.Unlock() }()

	if opts.BackupSuffix != "" {
		backupPath := path + opts.BackupSuffix
		if err := fileutil.CopyFileVerified(path, backupPath); err != nil {
			return stats.Report{}, "", apperr.New(apperr.KindWriting, "back up original", path, err)
		}
	}

	if err := c.write(outputPath(path), optimized); err != nil {
		return stats.Report{}, "", err
	}

	return report, text, nil
}

// joinCueText concatenates a file's cue text for fingerprinting. Timing
// differences between two copies of the same release don't matter here,
// only the dialogue itself.
func joinCueText(cues []cue.Cue) string {
	parts := make([]string, 0, len(cues))
	for _, c := range cues {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}

// lockPath derives the flock sentinel path for a subtitle file: the
// sanitized base name alongside the file itself, suffixed ".lock".
func lockPath(path string) string {
	dir := filepath.Dir(path)
	name := textutil.SanitizeFileName(filepath.Base(path))
	return filepath.Join(dir, name+".lock")
}

// outputPath is where the optimized file is written. Batch runs optimize
// in place; a BackupSuffix preserves the pre-optimization original.
func outputPath(path string) string {
	return path
}
