// Package organizer runs the batch rename-and-archive workflow over a
// directory of disc photos.
package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/discshelf/discnamer/internal/fileutil"
	"github.com/discshelf/discnamer/internal/naming"
)

// RenamedExt is the extension forced onto files in the renamed directory,
// matching the encoding the provider was shown.
const RenamedExt = ".jpg"

// imageExtensions is the allow-list of eligible file extensions.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
	".heif": true,
}

// Identifier produces a movie title for the image at path.
type Identifier interface {
	IdentifyFile(ctx context.Context, path string) (string, error)
}

// Options configures a batch run.
type Options struct {
	InputDir     string
	RenamedDir   string
	OriginalsDir string
}

// Result is the outcome for one input file.
type Result struct {
	Source       string `yaml:"source"`
	Title        string `yaml:"title,omitempty"`
	RenamedPath  string `yaml:"renamed,omitempty"`
	OriginalPath string `yaml:"original,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

// Report aggregates the outcomes of one batch run.
type Report struct {
	InputDir  string   `yaml:"inputdir"`
	Processed int      `yaml:"processed"`
	Failed    int      `yaml:"failed"`
	Results   []Result `yaml:"results"`
}

// Run identifies and places every eligible image in the input directory.
// Failures are contained per file: the failing entry is recorded in the
// report and the batch moves on. Only a failure to read the input directory
// itself aborts the run.
func Run(ctx context.Context, identifier Identifier, opts Options) (*Report, error) {
	files, err := eligibleFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}

	report := &Report{InputDir: opts.InputDir}

	if len(files) == 0 {
		slog.Info("No image files found", "dir", opts.InputDir)
		return report, nil
	}

	slog.Info("Found images to process", "count", len(files))

	for _, name := range files {
		result := processOne(ctx, identifier, opts, name)
		if result.Error != "" {
			slog.Error("Error processing image", "file", name, "err", result.Error)
			report.Failed++
		} else {
			report.Processed++
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// eligibleFiles lists the regular files in dir whose extension is on the
// allow-list, sorted by name for reproducible ordering.
func eligibleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if imageExtensions[ext] {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// processOne runs the full pipeline for a single file: identify, sanitize,
// pick two collision-free destinations, copy the original to the originals
// directory, then move the source into the renamed directory. The move comes
// last so a failure never consumes the source file.
func processOne(ctx context.Context, identifier Identifier, opts Options, name string) Result {
	source := filepath.Join(opts.InputDir, name)
	result := Result{Source: name}

	slog.Info("Analyzing image", "file", name)

	title, err := identifier.IdentifyFile(ctx, source)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Title = title
	slog.Info("Identified movie", "file", name, "title", title)

	safeTitle := naming.SanitizeTitle(title)

	// Two independent placements: the renamed copy always carries the jpg
	// extension shown to the provider, the archived original keeps its own.
	renamedPath := naming.AvailablePath(opts.RenamedDir, safeTitle, RenamedExt)
	originalPath := naming.AvailablePath(opts.OriginalsDir, safeTitle, filepath.Ext(name))

	if err := fileutil.CopyFile(source, originalPath); err != nil {
		result.Error = fmt.Sprintf("failed to archive original: %v", err)
		return result
	}
	result.OriginalPath = originalPath

	if err := fileutil.MoveFile(source, renamedPath); err != nil {
		result.Error = fmt.Sprintf("failed to move image: %v", err)
		return result
	}
	result.RenamedPath = renamedPath

	slog.Info("Renamed image", "file", name, "renamed", filepath.Base(renamedPath))
	return result
}
