// Package registry builds the shared type registry: a read-only snapshot of
// every type alias and enumeration defined in the shared folders of a model
// tree. The registry is built once per validation run, before any per-file
// check, and only read afterwards.
package registry

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/modelspec/classifier"
	"github.com/c360studio/modelspec/discovery"
	"github.com/c360studio/modelspec/model"
)

// Collision records two definitions sharing one name. Lookup resolves to
// the definition loaded last; collisions are surfaced so the engine can
// report them instead of overwriting silently.
type Collision struct {
	// Name is the colliding definition name.
	Name string `json:"name"`

	// First is the file that defined the name first.
	First string `json:"first"`

	// Second is the file that redefined it.
	Second string `json:"second"`
}

// Registry maps shared type and enum names to their definitions.
// Immutable after Load.
type Registry struct {
	types      map[string]model.AttributeTypeDefinition
	enums      map[string]model.EnumDefinition
	sources    map[string]string
	collisions []Collision
}

// Load walks root for shared-definition folders (any directory whose own
// name or parent name is in sharedDirs, case-insensitive), parses every
// type-definition and enumeration file inside, and merges them into one
// registry. Directories matching an exclude pattern are skipped, so a
// shared folder under vendor/ or node_modules/ never registers anything
// discovery would not have seen. Unparseable files are skipped; the
// registry favors availability over completeness. Load never fails: a
// missing or empty root yields an empty registry.
func Load(root string, sharedDirs, excludes []string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		types:   make(map[string]model.AttributeTypeDefinition),
		enums:   make(map[string]model.EnumDefinition),
		sources: make(map[string]string),
	}

	shared := make(map[string]bool, len(sharedDirs))
	for _, name := range sharedDirs {
		shared[strings.ToLower(name)] = true
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && discovery.ExcludedDir(path, excludes) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if !inSharedDir(filepath.Dir(path), shared) {
			return nil
		}
		r.loadFile(path, logger)
		return nil
	})

	sort.Slice(r.collisions, func(i, j int) bool {
		if r.collisions[i].Name != r.collisions[j].Name {
			return r.collisions[i].Name < r.collisions[j].Name
		}
		return r.collisions[i].Second < r.collisions[j].Second
	})

	logger.Debug("Shared type registry loaded",
		slog.String("root", root),
		slog.Int("types", len(r.types)),
		slog.Int("enums", len(r.enums)),
		slog.Int("collisions", len(r.collisions)))

	return r
}

// IsSharedDir returns true when the directory's own name or its parent's
// name marks it as hosting shared definitions.
func IsSharedDir(dir string, sharedDirs []string) bool {
	shared := make(map[string]bool, len(sharedDirs))
	for _, name := range sharedDirs {
		shared[strings.ToLower(name)] = true
	}
	return inSharedDir(dir, shared)
}

func inSharedDir(dir string, shared map[string]bool) bool {
	base := strings.ToLower(filepath.Base(dir))
	parent := strings.ToLower(filepath.Base(filepath.Dir(dir)))
	return shared[base] || shared[parent]
}

// loadFile parses one shared file and merges its definitions. Parse
// failures are logged and skipped so one malformed shared file never
// blocks validation.
func (r *Registry) loadFile(path string, logger *slog.Logger) {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Skipping unreadable shared file", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	switch classifier.Classify(filepath.Base(path), content) {
	case classifier.KindTypes:
		var doc model.SharedTypeDocument
		if err := yaml.Unmarshal(content, &doc); err != nil {
			logger.Debug("Skipping unparseable shared type file", slog.String("path", path), slog.String("error", err.Error()))
			return
		}
		for _, def := range doc.Types {
			if def.Name == "" {
				continue
			}
			r.recordSource(def.Name, path)
			r.types[def.Name] = def
		}
	case classifier.KindEnum:
		var def model.EnumDefinition
		if err := yaml.Unmarshal(content, &def); err != nil {
			logger.Debug("Skipping unparseable shared enum file", slog.String("path", path), slog.String("error", err.Error()))
			return
		}
		if def.Name == "" {
			return
		}
		r.recordSource(def.Name, path)
		r.enums[def.Name] = def
	}
}

// recordSource tracks which file defined a name and records a collision
// when the name was already defined elsewhere.
func (r *Registry) recordSource(name, path string) {
	if first, ok := r.sources[name]; ok && first != path {
		r.collisions = append(r.collisions, Collision{Name: name, First: first, Second: path})
	}
	r.sources[name] = path
}

// Resolve returns true when name is a known shared type or enumeration.
func (r *Registry) Resolve(name string) bool {
	if _, ok := r.types[name]; ok {
		return true
	}
	_, ok := r.enums[name]
	return ok
}

// Type returns the type definition for name.
func (r *Registry) Type(name string) (model.AttributeTypeDefinition, bool) {
	def, ok := r.types[name]
	return def, ok
}

// Enum returns the enum definition for name.
func (r *Registry) Enum(name string) (model.EnumDefinition, bool) {
	def, ok := r.enums[name]
	return def, ok
}

// Collisions returns same-name definition conflicts found during load.
func (r *Registry) Collisions() []Collision {
	return r.collisions
}

// Len returns the total number of registered definitions.
func (r *Registry) Len() int {
	return len(r.types) + len(r.enums)
}
