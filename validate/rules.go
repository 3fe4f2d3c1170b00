// Package validate implements the layered rule checks of the domain model
// validation engine: directory-level structural conventions, per-shape
// schema rules, and the run orchestration that merges everything into one
// ordered diagnostic list.
package validate

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/modelspec/classifier"
	"github.com/c360studio/modelspec/config"
	"github.com/c360studio/modelspec/model"
	"github.com/c360studio/modelspec/registry"
)

// SchemaValidator dispatches per-shape rule checks. It consults the shared
// type registry to resolve attribute type references.
type SchemaValidator struct {
	cfg      *config.Config
	registry *registry.Registry
	now      func() time.Time
}

// NewSchemaValidator creates a schema validator. reg may be nil, in which
// case type-reference resolution is skipped.
func NewSchemaValidator(cfg *config.Config, reg *registry.Registry, now func() time.Time) *SchemaValidator {
	if now == nil {
		now = time.Now
	}
	return &SchemaValidator{cfg: cfg, registry: reg, now: now}
}

// ValidateFile runs the rule checks for one classified document. Malformed
// YAML produces a single Error scoped to the file and aborts only that
// file's checks. The returned ModelDefinition is non-nil only for
// entity/behavior documents that parsed successfully.
func (v *SchemaValidator) ValidateFile(path string, content []byte, kind classifier.Kind) ([]model.Diagnostic, *model.ModelDefinition) {
	var diags []model.Diagnostic
	var parsed *model.ModelDefinition

	switch kind {
	case classifier.KindEntity:
		diags, parsed = v.checkEntity(path, content)
	case classifier.KindTypes:
		diags = v.checkTypes(path, content)
	case classifier.KindEnum:
		diags = v.checkEnum(path, content)
	case classifier.KindProfiles:
		diags = v.checkProfiles(path, content)
	case classifier.KindMetadata:
		diags = v.checkMetadata(path, content)
	case classifier.KindUnknown:
		diags = v.checkUnknown(path, content)
	}

	// The abbreviation heuristic runs on every document that reached
	// shape-specific checks without a parse failure.
	if kind != classifier.KindUnknown {
		diags = append(diags, checkAbbreviations(path, content, v.cfg.Validation.Acronyms)...)
	}

	return diags, parsed
}

// checkUnknown distinguishes malformed YAML (Error) from well-formed
// content that matches no shape (Info — the file may be documentation).
func (v *SchemaValidator) checkUnknown(path string, content []byte) []model.Diagnostic {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed document: %v", err)}
	}
	return []model.Diagnostic{model.Infof(path, "content matches no known document shape; skipped")}
}

// checkProfiles validates a validation-profile-set document.
func (v *SchemaValidator) checkProfiles(path string, content []byte) []model.Diagnostic {
	var doc model.ProfileDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed profile document: %v", err)}
	}

	var diags []model.Diagnostic
	for i, p := range doc.Profiles {
		if p.Name == "" {
			diags = append(diags, model.Errorf(path, "profile %d is missing a name", i+1))
			continue
		}
		if len(p.Claims) == 0 {
			diags = append(diags, model.Warnf(path, "profile %q has no claims; it will never apply", p.Name))
		}
		for _, c := range p.Claims {
			if c.Action == "" || c.Resource == "" {
				diags = append(diags, model.Errorf(path, "profile %q has a claim missing action or resource", p.Name))
			}
		}
	}
	return diags
}

// checkMetadata validates a folder metadata document, including the
// review freshness check.
func (v *SchemaValidator) checkMetadata(path string, content []byte) []model.Diagnostic {
	var meta model.FolderMetadata
	if err := yaml.Unmarshal(content, &meta); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed metadata document: %v", err)}
	}

	var diags []model.Diagnostic
	if meta.Name == "" {
		diags = append(diags, model.Errorf(path, "metadata is missing a name"))
	}
	if d := CheckFreshness(path, &meta, v.now(), v.cfg.Validation.StaleAfterDays); d != nil {
		diags = append(diags, *d)
	}
	return diags
}
