package dist

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/Conan-Kudo/pydist/pkg/pyver"
)

// The descriptor is mirrored into a plain key-value metadata file so that
// tooling which does not execute build code can still discover name,
// version and friends. The file is line oriented, so multi-line fields are
// folded with \n escapes on write and unfolded on read.

const listSeparator = ", "

func foldNewlines(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func unfoldNewlines(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// WriteMetadata writes the plain-text metadata form of the given
// descriptor to w. The output is deterministic, identical descriptors
// produce byte-identical files.
func WriteMetadata(w io.Writer, d *Descriptor) error {
	f := ini.Empty()

	sec := f.Section("")
	sec.Key("name").SetValue(d.Name)
	sec.Key("version").SetValue(d.Version.String())
	sec.Key("summary").SetValue(d.Summary)
	sec.Key("description").SetValue(foldNewlines(d.Description))
	sec.Key("author").SetValue(d.Author)
	sec.Key("author_email").SetValue(d.AuthorEmail)
	sec.Key("homepage").SetValue(d.Homepage)
	sec.Key("license").SetValue(d.License)
	sec.Key("packages").SetValue(strings.Join(d.Packages, listSeparator))

	for i, df := range d.DataFiles {
		dsec := f.Section(fmt.Sprintf("data_files.%d", i))
		dsec.Key("dir").SetValue(df.Dir)
		dsec.Key("files").SetValue(strings.Join(df.Files, listSeparator))
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write metadata: %w", err)
	}
	return nil
}

// ReadMetadata parses a metadata file written by WriteMetadata back into
// a descriptor.
func ReadMetadata(r io.Reader) (*Descriptor, error) {
	f, err := ini.Load(io.NopCloser(r))
	if err != nil {
		return nil, fmt.Errorf("cannot read metadata: %w", err)
	}

	sec := f.Section("")
	ver, err := pyver.New(sec.Key("version").String())
	if err != nil {
		return nil, fmt.Errorf("invalid version in metadata: %w", err)
	}

	d := &Descriptor{
		Name:        sec.Key("name").String(),
		Version:     ver,
		Summary:     sec.Key("summary").String(),
		Description: unfoldNewlines(sec.Key("description").String()),
		Author:      sec.Key("author").String(),
		AuthorEmail: sec.Key("author_email").String(),
		Homepage:    sec.Key("homepage").String(),
		License:     sec.Key("license").String(),
	}
	if v := sec.Key("packages").String(); v != "" {
		d.Packages = strings.Split(v, listSeparator)
	}

	for _, dsec := range f.ChildSections("data_files") {
		df := DataFile{Dir: dsec.Key("dir").String()}
		if v := dsec.Key("files").String(); v != "" {
			df.Files = strings.Split(v, listSeparator)
		}
		d.DataFiles = append(d.DataFiles, df)
	}

	return d, nil
}
