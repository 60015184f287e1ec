package dist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conan-Kudo/pydist/pkg/dist"
	"github.com/Conan-Kudo/pydist/pkg/pyver"
)

func makeDescriptor(t *testing.T) *dist.Descriptor {
	t.Helper()

	ver, err := pyver.New("0.34")
	require.NoError(t, err)
	return &dist.Descriptor{
		Name:        "netplan",
		Version:     ver,
		Summary:     "Backend-agnostic network configuration in YAML",
		Description: "netplan\n=========\nBackend-agnostic network configuration in YAML",
		Author:      "Canonical Engineering",
		AuthorEmail: "ubuntu-dev@lists.ubuntu.com",
		Homepage:    "https://code.launchpad.net/netplan",
		License:     "GPLv3+",
		Packages:    []string{"netplan", "netplan.cli"},
		DataFiles: []dist.DataFile{
			{Dir: "etc/netplan", Files: []string{"default.yaml", "extra.yaml"}},
		},
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	d := makeDescriptor(t)

	var buf bytes.Buffer
	err := dist.WriteMetadata(&buf, d)
	require.NoError(t, err)

	got, err := dist.ReadMetadata(&buf)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestMetadataIsLineOriented(t *testing.T) {
	var buf bytes.Buffer
	err := dist.WriteMetadata(&buf, makeDescriptor(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "netplan")
	assert.Contains(t, out, "0.34")
	assert.Contains(t, out, "GPLv3+")
	// the multi-line description is folded onto a single line
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "description") {
			assert.Contains(t, line, `netplan\n=========`)
		}
	}
}

func TestMetadataDeterministic(t *testing.T) {
	d := makeDescriptor(t)

	var first, second bytes.Buffer
	require.NoError(t, dist.WriteMetadata(&first, d))
	require.NoError(t, dist.WriteMetadata(&second, d))
	assert.Equal(t, first.String(), second.String())
}

func TestMetadataEmptyDataFiles(t *testing.T) {
	ver, err := pyver.New("0.34")
	require.NoError(t, err)
	d := &dist.Descriptor{Name: "netplan", Version: ver}

	var buf bytes.Buffer
	require.NoError(t, dist.WriteMetadata(&buf, d))
	got, err := dist.ReadMetadata(&buf)
	require.NoError(t, err)
	assert.Empty(t, got.DataFiles)
	assert.Empty(t, got.Packages)
	assert.Equal(t, d, got)
}

func TestReadMetadataBadVersion(t *testing.T) {
	_, err := dist.ReadMetadata(strings.NewReader("name = x\nversion = bogus\n"))
	assert.ErrorContains(t, err, "invalid version in metadata")
}
