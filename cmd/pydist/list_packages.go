package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Conan-Kudo/pydist/pkg/pkgfind"
)

func listPackages(w io.Writer, root string, excludes []string) error {
	pkgs, err := pkgfind.Find(os.DirFS(root), excludes)
	if err != nil {
		return err
	}

	for _, p := range pkgs {
		fmt.Fprintln(w, p)
	}
	return nil
}
