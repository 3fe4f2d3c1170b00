package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSharedDirs = []string{"shared", "shared-types", "enums"}
	testExcludes   = []string{"**/bin", "**/obj", "**/node_modules", "**/vendor"}
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "shared", "CommonTypes.yaml"), `types:
  - name: emailAddress
    base: string
  - name: customerId
    base: string
`)
	writeFile(t, filepath.Join(root, "enums", "Status.yaml"), `name: Status
items:
  - name: active
    display: Active
    value: 1
`)
	// Entity documents outside shared folders must not register.
	writeFile(t, filepath.Join(root, "customer", "Customer.Type.yaml"), `name: Customer
attributes:
  - name: email
    type: emailAddress
    summary: contact address
`)

	reg := Load(root, testSharedDirs, testExcludes, nil)

	assert.Equal(t, 3, reg.Len())
	assert.True(t, reg.Resolve("emailAddress"))
	assert.True(t, reg.Resolve("customerId"))
	assert.True(t, reg.Resolve("Status"))
	assert.False(t, reg.Resolve("Customer"))
	assert.Empty(t, reg.Collisions())

	def, ok := reg.Type("emailAddress")
	require.True(t, ok)
	assert.Equal(t, "string", def.Base)

	enum, ok := reg.Enum("Status")
	require.True(t, ok)
	assert.Len(t, enum.Items, 1)
}

func TestLoad_ParentNamedShared(t *testing.T) {
	root := t.TempDir()

	// Files directly under a subdirectory of a shared folder still load.
	writeFile(t, filepath.Join(root, "shared", "billing", "BillingTypes.yaml"), `types:
  - name: invoiceNumber
    base: string
`)

	reg := Load(root, testSharedDirs, testExcludes, nil)
	assert.True(t, reg.Resolve("invoiceNumber"))
}

func TestLoad_Collision(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "shared", "A.yaml"), `types:
  - name: emailAddress
    base: string
`)
	writeFile(t, filepath.Join(root, "shared", "B.yaml"), `types:
  - name: emailAddress
    base: string
    extends: trimmedString
`)

	reg := Load(root, testSharedDirs, testExcludes, nil)

	require.Len(t, reg.Collisions(), 1)
	c := reg.Collisions()[0]
	assert.Equal(t, "emailAddress", c.Name)
	assert.NotEqual(t, c.First, c.Second)

	// Last write wins for lookup.
	assert.True(t, reg.Resolve("emailAddress"))
}

func TestLoad_SkipsUnparseableFiles(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "shared", "Broken.yaml"), "types: [unclosed")
	writeFile(t, filepath.Join(root, "shared", "Good.yaml"), `types:
  - name: goodType
    base: int
`)

	reg := Load(root, testSharedDirs, testExcludes, nil)

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Resolve("goodType"))
}

func TestLoad_SkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()

	// Shared folders under excluded or dot directories must not register.
	writeFile(t, filepath.Join(root, "vendor", "shared", "VendorTypes.yaml"), `types:
  - name: vendoredType
    base: string
`)
	writeFile(t, filepath.Join(root, ".cache", "enums", "Stale.yaml"), `name: Stale
items:
  - name: old
    display: Old
    value: 1
`)
	writeFile(t, filepath.Join(root, "shared", "GoodTypes.yaml"), `types:
  - name: goodType
    base: string
`)

	reg := Load(root, testSharedDirs, testExcludes, nil)

	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Resolve("goodType"))
	assert.False(t, reg.Resolve("vendoredType"))
	assert.False(t, reg.Resolve("Stale"))
}

func TestLoad_MissingRoot(t *testing.T) {
	reg := Load(filepath.Join(t.TempDir(), "nope"), testSharedDirs, testExcludes, nil)
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Resolve("anything"))
}

func TestIsSharedDir(t *testing.T) {
	tests := []struct {
		dir  string
		want bool
	}{
		{"/repo/models/shared", true},
		{"/repo/models/Shared", true},
		{"/repo/models/enums", true},
		{"/repo/models/shared/billing", true},
		{"/repo/models/customer", false},
		{"/repo/models", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSharedDir(tt.dir, testSharedDirs))
		})
	}
}
