package validate

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/c360studio/modelspec/classifier"
	"github.com/c360studio/modelspec/config"
	"github.com/c360studio/modelspec/discovery"
	"github.com/c360studio/modelspec/model"
	"github.com/c360studio/modelspec/registry"
)

// StructureValidator applies directory-level layout conventions to a
// discovered group. Structural deviations are always recoverable by
// convention, so it emits Warning and Info only, never Error.
type StructureValidator struct {
	cfg *config.Config
}

// NewStructureValidator creates a structure validator.
func NewStructureValidator(cfg *config.Config) *StructureValidator {
	return &StructureValidator{cfg: cfg}
}

// ValidateGroup checks one directory group against layout conventions.
func (v *StructureValidator) ValidateGroup(g discovery.Group) []model.Diagnostic {
	var diags []model.Diagnostic

	shared := registry.IsSharedDir(g.Dir, v.cfg.Discovery.SharedDirs)

	for _, f := range g.Files {
		if classifier.IsMetadataFile(filepath.Base(f.Path)) {
			continue
		}
		if !fileSegmentsUpperCamel(f.Path) {
			diags = append(diags, model.Warnf(f.Path,
				"file name %q should use upper-camel case in each dot-separated segment", fileBaseName(f.Path)))
		}
		if shared {
			diags = append(diags, v.checkSharedFile(f)...)
		}
	}

	if shared {
		if len(g.Subdirs) > 0 {
			diags = append(diags, model.Infof(g.Dir,
				"subdirectories are discouraged in shared definition folders (found %s)",
				strings.Join(g.Subdirs, ", ")))
		}
	} else {
		diags = append(diags, v.checkSeparation(g)...)
	}

	return diags
}

// checkSharedFile flags shared-folder files that carry entity suffixes or
// whose names do not hint at their shape.
func (v *StructureValidator) checkSharedFile(f discovery.File) []model.Diagnostic {
	var diags []model.Diagnostic

	name := strings.ToLower(fileBaseName(f.Path))
	if strings.HasSuffix(name, discovery.TypeSuffix) || strings.HasSuffix(name, discovery.BehaviorSuffix) {
		diags = append(diags, model.Warnf(f.Path,
			"shared definition files should not carry the %s or %s suffix",
			discovery.TypeSuffix, discovery.BehaviorSuffix))
	}

	if f.Kind == classifier.KindTypes && !strings.Contains(name, "types") {
		diags = append(diags, model.Infof(f.Path,
			"type-definition file names should hint at their shape (e.g. CommonTypes.yaml)"))
	}

	return diags
}

// checkSeparation applies the type/behavior separation conventions to a
// standard entity folder.
func (v *StructureValidator) checkSeparation(g discovery.Group) []model.Diagnostic {
	var diags []model.Diagnostic

	entityDocs := 0
	for _, f := range g.Files {
		if f.Kind == classifier.KindEntity {
			entityDocs++
		}
	}
	if entityDocs == 0 {
		return nil
	}

	if !g.HasTypeFile {
		diags = append(diags, model.Infof(g.Dir,
			"no type-defining file found; entity attribute definitions usually live in a *%s file",
			discovery.TypeSuffix))
	}

	if entityDocs > 1 && !g.HasBehaviorFile {
		diags = append(diags, model.Infof(g.Dir,
			"directories with multiple entity documents should separate behaviors into a dedicated *%s file",
			discovery.BehaviorSuffix))
	}

	return diags
}

// CheckFreshness compares a folder's lastReviewed date against now and
// returns a Warning once the configured review window has elapsed.
// A date that cannot be parsed yields an Info.
func CheckFreshness(path string, meta *model.FolderMetadata, now time.Time, staleAfterDays int) *model.Diagnostic {
	if meta.LastReviewed == "" {
		return nil
	}

	reviewed, ok := meta.LastReviewedTime()
	if !ok {
		d := model.Infof(path, "lastReviewed %q is not a valid %s date",
			meta.LastReviewed, model.MetadataDateFormat)
		return &d
	}

	elapsed := int(now.Sub(reviewed).Hours() / 24)
	if elapsed > staleAfterDays {
		d := model.Warnf(path,
			"metadata last reviewed %d days ago, exceeding the %d-day review window",
			elapsed, staleAfterDays)
		return &d
	}
	return nil
}
