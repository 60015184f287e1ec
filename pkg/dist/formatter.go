package dist

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	// we cannot use "maps" yet, as it needs go1.23
	"golang.org/x/exp/maps"
)

// OutputFormat contains the valid output formats for formatting descriptors
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = ""
	OutputFormatText    OutputFormat = "text"
	OutputFormatJSON    OutputFormat = "json"
)

// DescriptorFormatter will format the given descriptor to the given io.Writer
type DescriptorFormatter interface {
	Output(io.Writer, *Descriptor) error
}

var supportedFormatters = map[string]DescriptorFormatter{
	string(OutputFormatDefault): &textDescriptorFormatter{},
	string(OutputFormatText):    &textDescriptorFormatter{},
	string(OutputFormatJSON):    &jsonDescriptorFormatter{},
}

// SupportedOutputFormats returns a list of supported output formats
func SupportedOutputFormats() []string {
	keys := maps.Keys(supportedFormatters)
	sort.Strings(keys)
	return keys
}

// NewDescriptorFormatter will create a formatter based on the given format.
func NewDescriptorFormatter(format OutputFormat) (DescriptorFormatter, error) {
	df, ok := supportedFormatters[string(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported formatter %q", format)
	}
	return df, nil
}

type textDescriptorFormatter struct{}

func (*textDescriptorFormatter) Output(w io.Writer, d *Descriptor) error {
	lines := []struct{ key, value string }{
		{"name", d.Name},
		{"version", d.Version.String()},
		{"summary", d.Summary},
		// folded onto one line, the output stays line oriented
		{"description", foldNewlines(d.Description)},
		{"author", d.Author},
		{"author_email", d.AuthorEmail},
		{"homepage", d.Homepage},
		{"license", d.License},
		{"packages", strings.Join(d.Packages, " ")},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.key, l.value); err != nil {
			return err
		}
	}
	for _, df := range d.DataFiles {
		if _, err := fmt.Fprintf(w, "data_files: %s <- %s\n", df.Dir, strings.Join(df.Files, " ")); err != nil {
			return err
		}
	}
	return nil
}

type jsonDescriptorFormatter struct{}

type dataFileJSON struct {
	Dir   string   `json:"dir"`
	Files []string `json:"files"`
}

type descriptorJSON struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Author      string         `json:"author,omitempty"`
	AuthorEmail string         `json:"author_email,omitempty"`
	Homepage    string         `json:"homepage,omitempty"`
	License     string         `json:"license,omitempty"`
	Packages    []string       `json:"packages"`
	DataFiles   []dataFileJSON `json:"data_files,omitempty"`
}

func (*jsonDescriptorFormatter) Output(w io.Writer, d *Descriptor) error {
	out := descriptorJSON{
		Name:        d.Name,
		Version:     d.Version.String(),
		Summary:     d.Summary,
		Description: d.Description,
		Author:      d.Author,
		AuthorEmail: d.AuthorEmail,
		Homepage:    d.Homepage,
		License:     d.License,
		Packages:    d.Packages,
	}
	for _, df := range d.DataFiles {
		out.DataFiles = append(out.DataFiles, dataFileJSON{Dir: df.Dir, Files: df.Files})
	}

	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
