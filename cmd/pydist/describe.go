package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Conan-Kudo/pydist/pkg/dist"
)

// packageRoot falls back to the config file's directory so that plain
// "pydist describe" works from a project checkout.
func packageRoot(cfgPath, root string) string {
	if root != "" {
		return root
	}
	return filepath.Dir(cfgPath)
}

func describeConfig(w io.Writer, cfgPath, root, format string) error {
	cfg, err := dist.Load(cfgPath)
	if err != nil {
		return err
	}

	desc, err := dist.Describe(os.DirFS(packageRoot(cfgPath, root)), cfg)
	if err != nil {
		return err
	}

	fmter, err := dist.NewDescriptorFormatter(dist.OutputFormat(format))
	if err != nil {
		return fmt.Errorf("cannot output descriptor: %w", err)
	}
	return fmter.Output(w, desc)
}
