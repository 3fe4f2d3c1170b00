package model

// ValidationProfile is a named, condition-scoped override set for
// attribute and behavior rules. Profiles are declared in profile-set
// documents (a top-level "profiles" list).
type ValidationProfile struct {
	// Name is the profile name. Required.
	Name string `yaml:"name" json:"name"`

	// Summary is a human-readable description.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Claims scope the profile to action/resource pairs. An empty claim
	// set is flagged but not rejected.
	Claims []Claim `yaml:"claims,omitempty" json:"claims,omitempty"`

	// AttributeOverrides maps attribute names to rule overrides.
	AttributeOverrides map[string]RuleOverride `yaml:"attributeOverrides,omitempty" json:"attributeOverrides,omitempty"`

	// BehaviorOverrides maps behavior names to rule overrides.
	BehaviorOverrides map[string]RuleOverride `yaml:"behaviorOverrides,omitempty" json:"behaviorOverrides,omitempty"`
}

// Claim is an action/resource pair scoping a validation profile.
type Claim struct {
	// Action is the action being claimed (read, write, approve, ...).
	Action string `yaml:"action" json:"action"`

	// Resource is the resource the action applies to.
	Resource string `yaml:"resource" json:"resource"`
}

// RuleOverride adjusts a single rule within a profile's scope.
type RuleOverride struct {
	// Severity overrides the rule's severity when set.
	Severity Severity `yaml:"severity,omitempty" json:"severity,omitempty"`

	// Disabled turns the rule off entirely.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// ProfileDocument is the shape of a validation-profile-set file.
type ProfileDocument struct {
	// Profiles are the profiles declared by this document.
	Profiles []ValidationProfile `yaml:"profiles" json:"profiles"`
}
