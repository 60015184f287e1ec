package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Conan-Kudo/pydist/pkg/dist"
)

func validateConfig(w io.Writer, cfgPath, root string) error {
	cfg, err := dist.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(packageRoot(cfgPath, root)); err != nil {
		return fmt.Errorf("cannot use package root: %w", err)
	}

	fmt.Fprintf(w, "%s is valid\n", cfgPath)
	return nil
}
