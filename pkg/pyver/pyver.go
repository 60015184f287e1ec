// Package pyver provides string-backed distribution versions with
// well-defined ordering semantics.
//
// Versions are always carried as strings, never as numbers: a numeric
// literal cannot distinguish "0.34" from "0.340" and sorts them as equal,
// which breaks any downstream tooling that needs to order releases.
package pyver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-version"
)

// Version is a parsed distribution version. The original input string is
// preserved verbatim and is the canonical serialized form.
type Version struct {
	v *version.Version
}

// New parses s into a Version. Empty or unparseable inputs are rejected.
func New(s string) (*Version, error) {
	if s == "" {
		return nil, fmt.Errorf("version must not be empty")
	}
	v, err := version.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse version %q: %w", s, err)
	}
	return &Version{v: v}, nil
}

// String returns the exact string the version was parsed from.
func (ver *Version) String() string {
	return ver.v.Original()
}

// Segments returns the numeric segments of the version, zero padded to
// three, e.g. [0, 34, 0] for "0.34" but [0, 340, 0] for "0.340".
func (ver *Version) Segments() []int {
	return ver.v.Segments()
}

// Compare returns -1, 0, or 1 if ver is smaller, equal, or larger than
// other.
func (ver *Version) Compare(other *Version) int {
	return ver.v.Compare(other.v)
}

// LessThan returns true if ver is smaller than other.
func (ver *Version) LessThan(other *Version) bool {
	return ver.v.LessThan(other.v)
}

// Sort sorts the given list of version strings taking version semantics
// into account (i.e. sorting 0.34 lower than 0.340).
//
// Invalid versions will create errors but the sorting continues and
// invalid values are sorted lower than anything else (so the result is
// still usable in a {G,T}UI).
func Sort(versions []string) error {
	var errs []error

	slices.SortFunc(versions, func(a, b string) int {
		ver1, err := New(a)
		if err != nil {
			errs = append(errs, err)
			return -1
		}
		ver2, err := New(b)
		if err != nil {
			errs = append(errs, err)
			return -1
		}
		return ver1.Compare(ver2)
	})
	return errors.Join(errs...)
}
