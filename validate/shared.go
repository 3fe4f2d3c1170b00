package validate

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/modelspec/model"
)

// checkTypes validates a shared-type-definitions document.
func (v *SchemaValidator) checkTypes(path string, content []byte) []model.Diagnostic {
	var doc model.SharedTypeDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed type-definition document: %v", err)}
	}

	var diags []model.Diagnostic
	for i, def := range doc.Types {
		label := def.Name
		if label == "" {
			label = itemLabel("type definition", i)
			diags = append(diags, model.Errorf(path, "%s is missing a name", label))
		} else if !isLowerCamel(def.Name) {
			diags = append(diags, model.Warnf(path, "type %q should use lowerCamel naming", def.Name))
		}

		if def.Base == "" {
			diags = append(diags, model.Errorf(path, "%s is missing a base type", label))
		}
	}
	return diags
}

// checkEnum validates an enumeration document. Duplicate item values
// produce exactly one Error per offending value.
func (v *SchemaValidator) checkEnum(path string, content []byte) []model.Diagnostic {
	var def model.EnumDefinition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return []model.Diagnostic{model.Errorf(path, "malformed enumeration document: %v", err)}
	}

	var diags []model.Diagnostic

	if def.Name == "" {
		diags = append(diags, model.Errorf(path, "enumeration is missing a name"))
	} else if !isUpperCamel(def.Name) {
		diags = append(diags, model.Warnf(path, "enumeration %q should use UpperCamel naming", def.Name))
	}

	if len(def.Items) == 0 {
		diags = append(diags, model.Errorf(path, "enumeration %q has no items", def.Name))
		return diags
	}

	valueCounts := make(map[int]int)
	for i, item := range def.Items {
		if item.Name == "" {
			diags = append(diags, model.Errorf(path, "%s is missing a name", itemLabel("enum item", i)))
		}
		if item.Display == "" {
			diags = append(diags, model.Errorf(path, "enum item %q is missing a display label", item.Name))
		}
		valueCounts[item.Value]++
	}

	duplicates := make([]int, 0)
	for value, count := range valueCounts {
		if count > 1 {
			duplicates = append(duplicates, value)
		}
	}
	sort.Ints(duplicates)
	for _, value := range duplicates {
		diags = append(diags, model.Errorf(path,
			"enumeration %q has duplicate value %d", def.Name, value))
	}

	return diags
}
