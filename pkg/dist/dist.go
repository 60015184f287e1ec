// Package dist declares, loads and validates distribution descriptors:
// the static metadata and the package-discovery rule an external
// packaging toolchain consumes to produce an installable artifact.
package dist

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Conan-Kudo/pydist/pkg/pkgfind"
	"github.com/Conan-Kudo/pydist/pkg/pyver"
)

// DataFile maps a list of extra files to the directory they get
// installed into.
type DataFile struct {
	Dir   string
	Files []string
}

// Config holds the declared metadata and the discovery rule of a
// distribution, i.e. everything the project author writes down. The
// package list is not part of it, it is computed by Describe.
type Config struct {
	Name        string
	Version     string
	Summary     string
	Description string
	Author      string
	AuthorEmail string
	Homepage    string
	License     string

	Exclude   []string
	DataFiles []DataFile
}

// Descriptor is the fully populated form handed to the packaging
// toolchain. It is a plain value with no behavior beyond serialization,
// constructed once per build invocation and then discarded.
type Descriptor struct {
	Name        string
	Version     *pyver.Version
	Summary     string
	Description string
	Author      string
	AuthorEmail string
	Homepage    string
	License     string

	Packages  []string
	DataFiles []DataFile
}

// Validate fails fast on configurations the packaging toolchain would
// choke on: missing name, missing or malformed version, bad data-file
// target directories.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("distribution name must not be empty")
	}
	if _, err := pyver.New(c.Version); err != nil {
		return fmt.Errorf("invalid version for %q: %w", c.Name, err)
	}
	for _, df := range c.DataFiles {
		if err := checkDataFileDir(df.Dir); err != nil {
			return err
		}
	}
	return nil
}

// checkDataFileDir rejects target directories that would escape the
// install prefix. Relative and absolute targets are both accepted, the
// toolchain anchors relative ones at its prefix.
func checkDataFileDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("data file target directory must not be empty")
	}
	cleaned := path.Clean(dir)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("data file target directory %q escapes the install root", dir)
	}
	return nil
}

// Describe computes the full descriptor for the given config against the
// given source tree. This is deterministic: the same tree and the same
// config always produce an identical descriptor. No files are written,
// producing the artifact is the toolchain's job.
func Describe(fsys fs.FS, c *Config) (*Descriptor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ver, err := pyver.New(c.Version)
	if err != nil {
		return nil, err
	}

	pkgs, err := pkgfind.Find(fsys, c.Exclude)
	if err != nil {
		return nil, fmt.Errorf("cannot discover packages for %q: %w", c.Name, err)
	}
	if len(pkgs) == 0 {
		logrus.Warnf("no importable packages found for %q", c.Name)
	}

	return &Descriptor{
		Name:        c.Name,
		Version:     ver,
		Summary:     c.Summary,
		Description: c.Description,
		Author:      c.Author,
		AuthorEmail: c.AuthorEmail,
		Homepage:    c.Homepage,
		License:     c.License,
		Packages:    pkgs,
		DataFiles:   c.DataFiles,
	}, nil
}
