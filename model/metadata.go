package model

import "time"

// MetadataDateFormat is the date layout used by lastReviewed fields.
const MetadataDateFormat = "2006-01-02"

// FolderMetadata carries ownership, versioning, and review-date information
// for a directory of model documents. Stored in the reserved _meta.yaml file.
type FolderMetadata struct {
	// Name is the folder's logical name. Required.
	Name string `yaml:"name" json:"name"`

	// Summary is a human-readable description of the folder's contents.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Owners lists the people or teams responsible for these models.
	Owners []string `yaml:"owners,omitempty" json:"owners,omitempty"`

	// Tags are free-form labels.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Dependencies references other model folders this folder depends on.
	Dependencies []string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`

	// Version is a semantic version string for the folder's models.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Status is a lifecycle tag (draft, active, deprecated, ...).
	Status string `yaml:"status,omitempty" json:"status,omitempty"`

	// LastReviewed is the date the folder was last reviewed (YYYY-MM-DD).
	// Folders unreviewed past the freshness window are flagged.
	LastReviewed string `yaml:"lastReviewed,omitempty" json:"lastReviewed,omitempty"`
}

// LastReviewedTime parses the LastReviewed date. The second return value
// is false when the field is empty or not a valid date.
func (m *FolderMetadata) LastReviewedTime() (time.Time, bool) {
	if m.LastReviewed == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(MetadataDateFormat, m.LastReviewed)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
