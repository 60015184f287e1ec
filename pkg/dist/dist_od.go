package dist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type configOnDisk struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Version     string `json:"version" toml:"version" yaml:"version"`
	Summary     string `json:"summary,omitempty" toml:"summary,omitempty" yaml:"summary,omitempty"`
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" toml:"author,omitempty" yaml:"author,omitempty"`
	AuthorEmail string `json:"author_email,omitempty" toml:"author_email,omitempty" yaml:"author_email,omitempty"`
	Homepage    string `json:"homepage,omitempty" toml:"homepage,omitempty" yaml:"homepage,omitempty"`
	License     string `json:"license,omitempty" toml:"license,omitempty" yaml:"license,omitempty"`

	Packages  *packagesOnDisk  `json:"packages,omitempty" toml:"packages,omitempty" yaml:"packages,omitempty"`
	DataFiles []dataFileOnDisk `json:"data_files,omitempty" toml:"data_files,omitempty" yaml:"data_files,omitempty"`
}

type packagesOnDisk struct {
	Exclude []string `json:"exclude,omitempty" toml:"exclude,omitempty" yaml:"exclude,omitempty"`
}

type dataFileOnDisk struct {
	Dir   string   `json:"dir" toml:"dir" yaml:"dir"`
	Files []string `json:"files" toml:"files" yaml:"files"`
}

// Load reads a distribution config from the given path. The format is
// selected via the file extension, supported are YAML, JSON and TOML.
// Unknown fields are an error in all three formats.
func Load(cfgPath string) (*Config, error) {
	f, err := os.Open(cfgPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := filepath.Ext(cfgPath); ext {
	case ".yaml", ".yml":
		return parseYAMLFromReader(f, cfgPath)
	case ".json":
		return parseJSONFromReader(f, cfgPath)
	case ".toml":
		return parseTOMLFromReader(f, cfgPath)
	default:
		return nil, fmt.Errorf("unsupported file format %q", ext)
	}
}

func parseYAMLFromReader(r io.Reader, what string) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cod configOnDisk
	if err := dec.Decode(&cod); err != nil {
		return nil, fmt.Errorf("cannot decode config %q: %w", what, err)
	}
	// a second document means the file is not a single descriptor
	switch err := dec.Decode(&configOnDisk{}); err {
	case io.EOF:
	case nil:
		return nil, fmt.Errorf("cannot support multiple configs from %q", what)
	default:
		return nil, fmt.Errorf("cannot parse trailing data in config %q: %w", what, err)
	}

	return cfgFromCod(&cod), nil
}

func parseJSONFromReader(r io.Reader, what string) (*Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cod configOnDisk
	if err := dec.Decode(&cod); err != nil {
		return nil, fmt.Errorf("cannot decode config %q: %w", what, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("cannot support multiple configs from %q", what)
	}

	return cfgFromCod(&cod), nil
}

func parseTOMLFromReader(r io.Reader, what string) (*Config, error) {
	var cod configOnDisk
	md, err := toml.NewDecoder(r).Decode(&cod)
	if err != nil {
		return nil, fmt.Errorf("cannot decode config %q: %w", what, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys %v in config %q", undecoded, what)
	}

	return cfgFromCod(&cod), nil
}

func cfgFromCod(cod *configOnDisk) *Config {
	var c Config

	c.Name = cod.Name
	c.Version = cod.Version
	c.Summary = cod.Summary
	c.Description = cod.Description
	c.Author = cod.Author
	c.AuthorEmail = cod.AuthorEmail
	c.Homepage = cod.Homepage
	c.License = cod.License
	if cod.Packages != nil {
		c.Exclude = cod.Packages.Exclude
	}
	for _, df := range cod.DataFiles {
		c.DataFiles = append(c.DataFiles, DataFile{Dir: df.Dir, Files: df.Files})
	}

	return &c
}
