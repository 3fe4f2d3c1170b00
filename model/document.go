package model

// ModelDefinition describes one domain entity: its attributes, behaviors,
// and scenarios. Entity documents are the primary document shape in a
// model tree. The entity name should prefix the containing file's base name
// (an entity "Customer" lives in Customer.Type.yaml / Customer.Behavior.yaml).
type ModelDefinition struct {
	// Name is the entity name. Required.
	Name string `yaml:"name" json:"name"`

	// Summary is a human-readable description of the entity.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Attributes are the entity's typed fields, in declaration order.
	Attributes []AttributeUsage `yaml:"attributes,omitempty" json:"attributes,omitempty"`

	// Behaviors are the entity's behaviors, in declaration order.
	Behaviors []Behavior `yaml:"behaviors,omitempty" json:"behaviors,omitempty"`

	// Scenarios are given/when/then acceptance scenarios, in declaration order.
	Scenarios []Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// AttributeUsage is a named, typed, documented field on an entity.
// The type name must resolve against the shared type registry.
type AttributeUsage struct {
	// Name is the attribute name. Convention: lowerCamel.
	Name string `yaml:"name" json:"name"`

	// Type references a shared type or enumeration by name.
	Type string `yaml:"type" json:"type"`

	// Required indicates the attribute must be present on instances.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`

	// Unique indicates attribute values must be unique across instances.
	// Unique attributes are expected to also be required.
	Unique bool `yaml:"unique,omitempty" json:"unique,omitempty"`

	// Summary is a human-readable description. Required.
	Summary string `yaml:"summary" json:"summary"`
}

// Behavior is a named operation on one or more entities. Preconditions and
// effects are free text and validated for presence only; behaviors are
// never executed.
type Behavior struct {
	// Name is the behavior name. Convention: lowerCamel.
	Name string `yaml:"name" json:"name"`

	// Entities names the entities this behavior involves. Must be non-empty.
	Entities []string `yaml:"entities,omitempty" json:"entities,omitempty"`

	// Preconditions are conditions that must hold before the behavior runs.
	Preconditions []string `yaml:"preconditions,omitempty" json:"preconditions,omitempty"`

	// Effects are the observable outcomes of the behavior.
	Effects []string `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// Scenario is a BDD-style acceptance scenario. All three condition lists
// must be non-empty.
type Scenario struct {
	// Name is the scenario name.
	Name string `yaml:"name" json:"name"`

	// Given are the preconditions.
	Given []string `yaml:"given,omitempty" json:"given,omitempty"`

	// When are the actions performed.
	When []string `yaml:"when,omitempty" json:"when,omitempty"`

	// Then are the expected outcomes.
	Then []string `yaml:"then,omitempty" json:"then,omitempty"`
}
