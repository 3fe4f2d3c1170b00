package model

// AttributeTypeDefinition is a reusable type definition referenced by name
// from attribute usages. Definitions form extension chains via Extends.
// Cycles in extension chains are not detected.
type AttributeTypeDefinition struct {
	// Name is the type name. Convention: lowerCamel.
	Name string `yaml:"name" json:"name"`

	// Base is the underlying base type tag (string, int, decimal, bool,
	// date, datetime). Required.
	Base string `yaml:"base" json:"base"`

	// Extends optionally references another type definition by name.
	Extends string `yaml:"extends,omitempty" json:"extends,omitempty"`

	// Summary is a human-readable description.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Constraints optionally restrict the value space.
	Constraints *Constraints `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// Constraints restricts the value space of a type definition.
type Constraints struct {
	// MinLength is the minimum string length.
	MinLength *int `yaml:"minLength,omitempty" json:"minLength,omitempty"`

	// MaxLength is the maximum string length.
	MaxLength *int `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`

	// Min is the minimum numeric value.
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`

	// Max is the maximum numeric value.
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`

	// Pattern is a regular expression values must match.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Format is a named format tag (email, phone, iso8601, ...).
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Enum restricts values to a fixed set of literals.
	Enum []string `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// SharedTypeDocument is the shape of a shared-type-definitions file: a
// single top-level list of type definitions.
type SharedTypeDocument struct {
	// Types are the definitions declared by this document.
	Types []AttributeTypeDefinition `yaml:"types" json:"types"`
}

// EnumDefinition is a named enumeration of items. Item values must be
// unique within the enum.
type EnumDefinition struct {
	// Name is the enum name. Convention: UpperCamel.
	Name string `yaml:"name" json:"name"`

	// Summary is a human-readable description.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Items are the enum members, in declaration order. Must be non-empty.
	Items []EnumItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// EnumItem is a single enumeration member.
type EnumItem struct {
	// Name is the member identifier.
	Name string `yaml:"name" json:"name"`

	// Display is the human-facing label.
	Display string `yaml:"display" json:"display"`

	// Value is the member's numeric value, unique within the enum.
	Value int `yaml:"value" json:"value"`
}
