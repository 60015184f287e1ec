package main

import (
	"io"
	"os"

	"github.com/Conan-Kudo/pydist/pkg/dist"
)

func writeMetadata(w io.Writer, cfgPath, root, outputPath string) error {
	cfg, err := dist.Load(cfgPath)
	if err != nil {
		return err
	}

	desc, err := dist.Describe(os.DirFS(packageRoot(cfgPath, root)), cfg)
	if err != nil {
		return err
	}

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return dist.WriteMetadata(w, desc)
}
