package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		want     Kind
	}{
		{
			name:     "entity with attributes",
			fileName: "Customer.Type.yaml",
			content: `name: Customer
attributes:
  - name: email
    type: emailAddress
`,
			want: KindEntity,
		},
		{
			name:     "entity with behaviors",
			fileName: "Customer.Behavior.yaml",
			content: `name: Customer
behaviors:
  - name: register
`,
			want: KindEntity,
		},
		{
			name:     "entity with scenarios only",
			fileName: "Customer.yaml",
			content: `name: Customer
scenarios:
  - name: happy path
`,
			want: KindEntity,
		},
		{
			name:     "shared types",
			fileName: "CommonTypes.yaml",
			content: `types:
  - name: emailAddress
    base: string
`,
			want: KindTypes,
		},
		{
			name:     "enumeration",
			fileName: "Status.yaml",
			content: `name: Status
items:
  - name: active
    display: Active
    value: 1
`,
			want: KindEnum,
		},
		{
			name:     "profiles",
			fileName: "Profiles.yaml",
			content: `profiles:
  - name: admin
`,
			want: KindProfiles,
		},
		{
			name:     "reserved metadata name wins over content",
			fileName: "_meta.yaml",
			content: `name: Anything
attributes:
  - name: looksLikeEntity
`,
			want: KindMetadata,
		},
		{
			name:     "reserved metadata name case insensitive",
			fileName: "_META.YML",
			content:  "name: x",
			want:     KindMetadata,
		},
		{
			name:     "marker word inside free text does not classify",
			fileName: "Notes.yaml",
			content: `title: design notes
body: this file mentions attributes and profiles but defines neither
`,
			want: KindUnknown,
		},
		{
			name:     "name alone is unknown",
			fileName: "Thing.yaml",
			content:  "name: Thing",
			want:     KindUnknown,
		},
		{
			name:     "entity wins over types when both key families present",
			fileName: "Mixed.yaml",
			content: `name: Mixed
attributes:
  - name: a
types:
  - name: b
`,
			want: KindEntity,
		},
		{
			name:     "types wins over profiles",
			fileName: "Mixed.yaml",
			content: `types:
  - name: a
profiles:
  - name: b
`,
			want: KindTypes,
		},
		{
			name:     "malformed yaml",
			fileName: "Broken.yaml",
			content:  "name: [unclosed",
			want:     KindUnknown,
		},
		{
			name:     "root is a list not a mapping",
			fileName: "List.yaml",
			content:  "- one\n- two\n",
			want:     KindUnknown,
		},
		{
			name:     "empty file",
			fileName: "Empty.yaml",
			content:  "",
			want:     KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.fileName, []byte(tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_IsValid(t *testing.T) {
	for _, k := range []Kind{KindEntity, KindTypes, KindEnum, KindProfiles, KindMetadata, KindUnknown} {
		assert.True(t, k.IsValid(), "kind %s", k)
	}
	assert.False(t, Kind("document").IsValid())
}

func TestIsMetadataFile(t *testing.T) {
	assert.True(t, IsMetadataFile("_meta.yaml"))
	assert.True(t, IsMetadataFile("_meta.yml"))
	assert.True(t, IsMetadataFile("_Meta.YAML"))
	assert.False(t, IsMetadataFile("meta.yaml"))
	assert.False(t, IsMetadataFile("Customer.Type.yaml"))
}
