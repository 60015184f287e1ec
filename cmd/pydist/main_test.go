package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conan-Kudo/pydist/cmd/pydist"
)

func makeProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	for _, dir := range []string{"netplan/cli", "tests"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0755))
	}
	for _, file := range []string{
		"netplan/__init__.py",
		"netplan/cli/__init__.py",
		"tests/__init__.py",
		"tests/test_cli.py",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, file), nil, 0644))
	}
	setupYAML := `name: netplan
version: "0.34"
summary: Backend-agnostic network configuration in YAML
author: Canonical Engineering
author_email: ubuntu-dev@lists.ubuntu.com
homepage: https://code.launchpad.net/netplan
license: GPLv3+
packages:
  exclude: [tests]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "setup.yaml"), []byte(setupYAML), 0644))
	return tmpDir
}

func TestDescribeSmoke(t *testing.T) {
	proj := makeProject(t)

	restore := main.MockOsArgs([]string{"describe", filepath.Join(proj, "setup.yaml")})
	defer restore()

	var fakeStdout bytes.Buffer
	restore = main.MockOsStdout(&fakeStdout)
	defer restore()

	err := main.Run()
	require.NoError(t, err)
	assert.Contains(t, fakeStdout.String(), "name: netplan\n")
	assert.Contains(t, fakeStdout.String(), "version: 0.34\n")
	assert.Contains(t, fakeStdout.String(), "license: GPLv3+\n")
	assert.Contains(t, fakeStdout.String(), "packages: netplan netplan.cli\n")
	assert.NotContains(t, fakeStdout.String(), "tests")
}

func TestDescribeJSON(t *testing.T) {
	proj := makeProject(t)

	restore := main.MockOsArgs([]string{"describe", "--format=json", filepath.Join(proj, "setup.yaml")})
	defer restore()

	var fakeStdout bytes.Buffer
	restore = main.MockOsStdout(&fakeStdout)
	defer restore()

	err := main.Run()
	require.NoError(t, err)
	assert.Contains(t, fakeStdout.String(), `"name":"netplan"`)
	assert.Contains(t, fakeStdout.String(), `"version":"0.34"`)
}

func TestValidateSmoke(t *testing.T) {
	proj := makeProject(t)
	cfgPath := filepath.Join(proj, "setup.yaml")

	restore := main.MockOsArgs([]string{"validate", cfgPath})
	defer restore()

	var fakeStdout bytes.Buffer
	restore = main.MockOsStdout(&fakeStdout)
	defer restore()

	err := main.Run()
	require.NoError(t, err)
	assert.Contains(t, fakeStdout.String(), "is valid")
}

func TestValidateBadVersion(t *testing.T) {
	proj := makeProject(t)
	cfgPath := filepath.Join(proj, "setup.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("name: netplan\nversion: bogus\n"), 0644))

	restore := main.MockOsArgs([]string{"validate", cfgPath})
	defer restore()

	err := main.Run()
	assert.ErrorContains(t, err, `invalid version for "netplan"`)
}

func TestListPackagesSmoke(t *testing.T) {
	proj := makeProject(t)

	restore := main.MockOsArgs([]string{"list-packages", "--exclude", "tests", proj})
	defer restore()

	var fakeStdout bytes.Buffer
	restore = main.MockOsStdout(&fakeStdout)
	defer restore()

	err := main.Run()
	require.NoError(t, err)
	assert.Equal(t, "netplan\nnetplan.cli\n", fakeStdout.String())
}

func TestWriteMetadataSmoke(t *testing.T) {
	proj := makeProject(t)
	outPath := filepath.Join(proj, "METADATA")

	restore := main.MockOsArgs([]string{
		"write-metadata", "--output", outPath, filepath.Join(proj, "setup.yaml"),
	})
	defer restore()

	err := main.Run()
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "netplan")
	assert.Contains(t, string(content), "0.34")
	assert.Contains(t, string(content), "GPLv3+")
}
