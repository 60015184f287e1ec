// Package pkgfind discovers importable Python packages in a source tree.
package pkgfind

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// packageMarker is the file that makes a directory an importable package.
const packageMarker = "__init__.py"

func fileExists(fsys fs.FS, filepath string) bool {
	_, err := fs.Stat(fsys, filepath)
	return err == nil
}

// compileExcludes compiles the given exclude patterns. Glob like patterns
// (?, *) are supported, see fnmatch(3). The "." package separator is
// honored, so "net*" matches "netplan" but not "netplan.cli".
func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, len(patterns))
	for i, p := range patterns {
		gl, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs[i] = gl
	}
	return globs, nil
}

// Find walks the given filesystem and returns the sorted dotted module
// paths of all importable packages, i.e. directories that carry an
// "__init__.py" marker all the way up from the root.
//
// A package whose dotted path matches one of the exclude patterns is
// dropped together with its entire subtree, so an excluded name can never
// leak back in through a subpackage. An exclude pattern that matches
// nothing is a no-op.
//
// The walk is deterministic: the same tree and the same excludes always
// produce the same list.
func Find(fsys fs.FS, excludes []string) ([]string, error) {
	globs, err := compileExcludes(excludes)
	if err != nil {
		return nil, err
	}

	matched := make([]bool, len(globs))
	var pkgs []string
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." || !d.IsDir() {
			return nil
		}
		// a directory without the marker is not importable and neither
		// is anything below it
		if !fileExists(fsys, path.Join(p, packageMarker)) {
			return fs.SkipDir
		}
		name := strings.ReplaceAll(p, "/", ".")
		for i, gl := range globs {
			if gl.Match(name) {
				matched[i] = true
				return fs.SkipDir
			}
		}
		pkgs = append(pkgs, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot scan package root: %w", err)
	}

	for i, ok := range matched {
		if !ok {
			logrus.Debugf("exclude pattern %q matched no package", excludes[i])
		}
	}

	sort.Strings(pkgs)
	return pkgs, nil
}
