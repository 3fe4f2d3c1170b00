package validate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/modelspec/discovery"
	"github.com/c360studio/modelspec/model"
)

// checkEntity validates an entity/behavior document: required fields,
// naming conventions, type-reference resolution, and scenario completeness.
func (v *SchemaValidator) checkEntity(path string, content []byte) ([]model.Diagnostic, *model.ModelDefinition) {
	var def model.ModelDefinition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed entity document: %v", err)}, nil
	}

	var diags []model.Diagnostic

	if def.Name == "" {
		diags = append(diags, model.Errorf(path, "entity document is missing a name"))
	} else if !strings.HasPrefix(fileBaseName(path), def.Name) {
		diags = append(diags, model.Warnf(path,
			"entity name %q should prefix the file name %q", def.Name, fileBaseName(path)))
	}

	diags = append(diags, v.checkAttributes(path, def.Attributes)...)
	diags = append(diags, v.checkBehaviors(path, def.Behaviors)...)
	diags = append(diags, checkScenarios(path, def.Scenarios)...)

	// Attribute definitions and behaviors mixed in a *.type file defeat
	// the separation convention.
	base := strings.ToLower(fileBaseName(path))
	if strings.HasSuffix(base, discovery.TypeSuffix) && len(def.Attributes) > 0 && len(def.Behaviors) > 0 {
		diags = append(diags, model.Warnf(path,
			"entity %q mixes attributes and behaviors in a *%s file; behaviors belong in a dedicated *%s file",
			def.Name, discovery.TypeSuffix, discovery.BehaviorSuffix))
	}

	return diags, &def
}

// checkAttributes validates attribute usages against required fields,
// naming conventions, flag consistency, and the shared type registry.
func (v *SchemaValidator) checkAttributes(path string, attrs []model.AttributeUsage) []model.Diagnostic {
	var diags []model.Diagnostic

	for i, a := range attrs {
		label := a.Name
		if label == "" {
			label = itemLabel("attribute", i)
			diags = append(diags, model.Errorf(path, "%s is missing a name", label))
		} else if !isLowerCamel(a.Name) {
			diags = append(diags, model.Warnf(path, "attribute %q should use lowerCamel naming", a.Name))
		}

		if a.Type == "" {
			diags = append(diags, model.Errorf(path, "%s is missing a type", label))
		} else if v.registry != nil && !v.registry.Resolve(a.Type) {
			diags = append(diags, model.Errorf(path,
				"attribute %q references unknown type %q; not found in the shared type registry", label, a.Type))
		}

		if a.Summary == "" {
			diags = append(diags, model.Errorf(path, "%s is missing a summary", label))
		}

		if a.Unique && !a.Required {
			diags = append(diags, model.Infof(path,
				"attribute %q is unique but not required; this combination may be unintentional", label))
		}
	}

	return diags
}

// checkBehaviors validates behavior declarations.
func (v *SchemaValidator) checkBehaviors(path string, behaviors []model.Behavior) []model.Diagnostic {
	var diags []model.Diagnostic

	for i, b := range behaviors {
		label := b.Name
		if label == "" {
			label = itemLabel("behavior", i)
			diags = append(diags, model.Errorf(path, "%s is missing a name", label))
		} else if !isLowerCamel(b.Name) {
			diags = append(diags, model.Warnf(path, "behavior %q should use lowerCamel naming", b.Name))
		}

		if len(b.Entities) == 0 {
			diags = append(diags, model.Warnf(path, "behavior %q has no associated entities", label))
		}
	}

	return diags
}

// checkScenarios validates that every scenario has non-empty given, when,
// and then lists.
func checkScenarios(path string, scenarios []model.Scenario) []model.Diagnostic {
	var diags []model.Diagnostic

	for i, s := range scenarios {
		label := s.Name
		if label == "" {
			label = itemLabel("scenario", i)
			diags = append(diags, model.Errorf(path, "%s is missing a name", label))
		}
		if len(s.Given) == 0 {
			diags = append(diags, model.Warnf(path, "scenario %q has an empty given list", label))
		}
		if len(s.When) == 0 {
			diags = append(diags, model.Warnf(path, "scenario %q has an empty when list", label))
		}
		if len(s.Then) == 0 {
			diags = append(diags, model.Warnf(path, "scenario %q has an empty then list", label))
		}
	}

	return diags
}

// itemLabel names an unnamed list item by position for diagnostics.
func itemLabel(kind string, index int) string {
	return fmt.Sprintf("%s #%d", kind, index+1)
}
