// Package discovery enumerates model documents under a root path and
// groups them by directory for validation.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/modelspec/classifier"
)

// ErrRootNotFound is returned when the root path does not exist.
// It is the only fatal discovery failure; every other problem becomes an
// entry in the Set's error list.
var ErrRootNotFound = errors.New("root path not found")

// Document file name suffixes, checked case-insensitively against the
// base name without the YAML extension.
const (
	// TypeSuffix marks a file holding an entity's attribute definitions.
	TypeSuffix = ".type"
	// BehaviorSuffix marks a file holding an entity's behaviors.
	BehaviorSuffix = ".behavior"
)

// File is a discovered document tagged with its classified shape.
type File struct {
	// Path is the file path.
	Path string `json:"path"`

	// Kind is the classified document shape.
	Kind classifier.Kind `json:"kind"`
}

// Group is the set of sibling documents in one directory, with
// directory-level flags used by structural checks.
type Group struct {
	// Dir is the directory path.
	Dir string `json:"dir"`

	// Files are the documents in this directory, sorted by path.
	Files []File `json:"files"`

	// Subdirs are the names of immediate subdirectories.
	Subdirs []string `json:"subdirs,omitempty"`

	// HasMetadata is true when the directory holds a _meta file.
	HasMetadata bool `json:"has_metadata"`

	// HasTypeFile is true when any file carries the .type suffix.
	HasTypeFile bool `json:"has_type_file"`

	// HasBehaviorFile is true when any file carries the .behavior suffix.
	HasBehaviorFile bool `json:"has_behavior_file"`
}

// Set is the result of discovering a root path.
type Set struct {
	// Root is the path that was scanned.
	Root string `json:"root"`

	// Groups are the directory groups found, sorted by directory.
	Groups []Group `json:"groups"`

	// Loose are document-like files that match no model shape
	// (documentation, narrative text).
	Loose []File `json:"loose,omitempty"`

	// Errors are non-fatal discovery problems (unreadable files,
	// permission failures).
	Errors []string `json:"errors,omitempty"`
}

// Walker discovers model documents. The zero value is not usable;
// construct with NewWalker.
type Walker struct {
	modelsDir string
	excludes  []string
	logger    *slog.Logger
}

// NewWalker creates a walker. modelsDir is the conventional model-holding
// subfolder name; excludes are doublestar patterns for directories skipped
// during the flat fallback scan.
func NewWalker(modelsDir string, excludes []string, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{modelsDir: modelsDir, excludes: excludes, logger: logger}
}

// Discover enumerates documents under root. A single file path is accepted
// as a degenerate one-file discovery. The returned error is non-nil only
// when the root does not exist; all other failures become entries in the
// Set's error list.
func (w *Walker) Discover(ctx context.Context, root string) (*Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	set := &Set{Root: root}

	if !info.IsDir() {
		w.addFile(ctx, set, root)
		w.finalize(set)
		return set, nil
	}

	// Prefer the conventional model-holding subfolder; fall back to a
	// flat recursive scan of the whole root when it is absent.
	scanRoot := filepath.Join(root, w.modelsDir)
	if _, err := os.Stat(scanRoot); err != nil {
		w.logger.Debug("No conventional models folder, scanning root",
			slog.String("root", root))
		scanRoot = root
	}

	walkErr := filepath.WalkDir(scanRoot, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			set.Errors = append(set.Errors, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		if d.IsDir() {
			if path != scanRoot && w.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		w.addFile(ctx, set, path)
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
		set.Errors = append(set.Errors, walkErr.Error())
	}

	w.finalize(set)
	return set, nil
}

// addFile classifies one file and records it in the set. Non-document
// files are ignored except narrative text, which is recorded as loose.
func (w *Walker) addFile(_ context.Context, set *Set, path string) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))

	switch ext {
	case ".yaml", ".yml":
		// classified below
	case ".md", ".txt":
		set.Loose = append(set.Loose, File{Path: path, Kind: classifier.KindUnknown})
		return
	default:
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		set.Errors = append(set.Errors, fmt.Sprintf("%s: %v", path, err))
		return
	}

	kind := classifier.Classify(base, content)
	dir := filepath.Dir(path)
	g := w.group(set, dir)
	g.Files = append(g.Files, File{Path: path, Kind: kind})

	name := strings.TrimSuffix(base, filepath.Ext(base))
	switch {
	case classifier.IsMetadataFile(base):
		g.HasMetadata = true
	case strings.HasSuffix(strings.ToLower(name), TypeSuffix):
		g.HasTypeFile = true
	case strings.HasSuffix(strings.ToLower(name), BehaviorSuffix):
		g.HasBehaviorFile = true
	}
}

// group returns the group for dir, creating it on first use.
func (w *Walker) group(set *Set, dir string) *Group {
	for i := range set.Groups {
		if set.Groups[i].Dir == dir {
			return &set.Groups[i]
		}
	}
	set.Groups = append(set.Groups, Group{Dir: dir})
	return &set.Groups[len(set.Groups)-1]
}

// excluded returns true if the directory matches any exclude pattern or
// is a dot-directory.
func (w *Walker) excluded(path string) bool {
	return ExcludedDir(path, w.excludes)
}

// ExcludedDir reports whether a directory should be skipped during a tree
// walk: dot-directories and any directory matching one of the doublestar
// patterns, tested against both the full slashed path and the base name.
// The registry loader applies the same predicate so the two walks agree on
// what part of the tree exists.
func ExcludedDir(path string, patterns []string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	slashed := filepath.ToSlash(path)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
		// Patterns may target the directory name alone.
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// finalize sorts groups and their members and records subdirectory names
// for directory-level checks. Shuffled input order must never change the
// discovered set.
func (w *Walker) finalize(set *Set) {
	for i := range set.Groups {
		g := &set.Groups[i]
		sort.Slice(g.Files, func(a, b int) bool { return g.Files[a].Path < g.Files[b].Path })

		entries, err := os.ReadDir(g.Dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				g.Subdirs = append(g.Subdirs, e.Name())
			}
		}
		sort.Strings(g.Subdirs)
	}
	sort.Slice(set.Groups, func(a, b int) bool { return set.Groups[a].Dir < set.Groups[b].Dir })
	sort.Slice(set.Loose, func(a, b int) bool { return set.Loose[a].Path < set.Loose[b].Path })
	sort.Strings(set.Errors)
}
