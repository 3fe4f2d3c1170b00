// Package classifier decides which document shape a model file represents.
//
// Classification is key-based, not substring-based: the file is first parsed
// into a tolerant YAML node tree and the top-level key set is inspected.
// Marker words appearing inside free-text summaries therefore never cause a
// misclassification.
package classifier

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies a document shape.
type Kind string

const (
	// KindEntity is an entity/behavior document (name plus attributes,
	// behaviors, or scenarios).
	KindEntity Kind = "entity"
	// KindTypes is a shared-type-definitions document (a types list).
	KindTypes Kind = "types"
	// KindEnum is an enumeration document (name plus items).
	KindEnum Kind = "enum"
	// KindProfiles is a validation-profile-set document (a profiles list).
	KindProfiles Kind = "profiles"
	// KindMetadata is a folder metadata document (reserved file name).
	KindMetadata Kind = "metadata"
	// KindUnknown is content that matches no shape. Unknown files may be
	// documentation and are reported as advisory, not as errors.
	KindUnknown Kind = "unknown"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known document shape.
func (k Kind) IsValid() bool {
	switch k {
	case KindEntity, KindTypes, KindEnum, KindProfiles, KindMetadata, KindUnknown:
		return true
	default:
		return false
	}
}

// Reserved file names that classify regardless of content.
const (
	// MetadataFileName is the reserved folder metadata file name.
	MetadataFileName = "_meta.yaml"
	// MetadataFileNameAlt is the alternate metadata file extension.
	MetadataFileNameAlt = "_meta.yml"
)

// IsMetadataFile returns true if the base file name is the reserved
// folder metadata name.
func IsMetadataFile(name string) bool {
	lower := strings.ToLower(name)
	return lower == MetadataFileName || lower == MetadataFileNameAlt
}

// Classify returns the document shape for a file. Reserved file names win
// before content is considered. Otherwise the top-level key set of the
// parsed document decides, in fixed priority order: entity, then types,
// then enum, then profiles. Content that parses but matches no shape, and
// content that does not parse at all, is KindUnknown; the rule validator
// distinguishes the two when it reparses.
func Classify(name string, content []byte) Kind {
	if IsMetadataFile(name) {
		return KindMetadata
	}

	keys, ok := topLevelKeys(content)
	if !ok {
		return KindUnknown
	}

	switch {
	case keys["name"] && (keys["attributes"] || keys["behaviors"] || keys["scenarios"]):
		return KindEntity
	case keys["types"]:
		return KindTypes
	case keys["name"] && keys["items"]:
		return KindEnum
	case keys["profiles"]:
		return KindProfiles
	default:
		return KindUnknown
	}
}

// topLevelKeys parses content tolerantly and returns the key set of the
// root mapping. Returns ok=false when the content is not parseable YAML
// or the root is not a mapping.
func topLevelKeys(content []byte) (map[string]bool, bool) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, false
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, false
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, false
	}

	keys := make(map[string]bool, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys[strings.ToLower(mapping.Content[i].Value)] = true
	}
	return keys, true
}
