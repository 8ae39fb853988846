// Package compiletest type-checks small programs against the module's own
// sources, so tests can assert that misuse is rejected at build time.
package compiletest

import (
	"bufio"
	"fmt"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Checker resolves module packages from source, third-party packages through
// the go command and the standard library through the source importer.
type Checker struct {
	root    string
	modPath string
	fset    *token.FileSet
	std     types.Importer
	pkgs    map[string]*types.Package
}

// New finds the enclosing module of the working directory.
func New() (*Checker, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("compiletest: no go.mod above working directory")
		}
		dir = parent
	}
	modPath, err := readModulePath(filepath.Join(dir, "go.mod"))
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	return &Checker{
		root:    dir,
		modPath: modPath,
		fset:    fset,
		std:     importer.ForCompiler(fset, "source", nil),
		pkgs:    map[string]*types.Package{},
	}, nil
}

func readModulePath(gomod string) (string, error) {
	f, err := os.Open(gomod)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "module "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", fmt.Errorf("compiletest: %s has no module line", gomod)
}

// Check type-checks src, a complete file of package main, and returns every
// error the type checker reports.
func (c *Checker) Check(src string) []error {
	file, err := parser.ParseFile(c.fset, "main.go", src, 0)
	if err != nil {
		return []error{err}
	}
	var errs []error
	conf := types.Config{
		Importer: c,
		Error:    func(err error) { errs = append(errs, err) },
	}
	conf.Check("main", c.fset, []*ast.File{file}, nil)
	return errs
}

// Import implements types.Importer.
func (c *Checker) Import(path string) (*types.Package, error) {
	if pkg, ok := c.pkgs[path]; ok {
		return pkg, nil
	}
	dir, err := c.dir(path)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return c.std.Import(path)
	}
	files, err := c.parseDir(dir)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: c}
	pkg, err := conf.Check(path, c.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("compiletest: %s: %w", path, err)
	}
	c.pkgs[path] = pkg
	return pkg, nil
}

// dir returns the source directory of path, or "" for the standard library.
func (c *Checker) dir(path string) (string, error) {
	if path == c.modPath {
		return c.root, nil
	}
	if rest, ok := strings.CutPrefix(path, c.modPath+"/"); ok {
		return filepath.Join(c.root, filepath.FromSlash(rest)), nil
	}
	first, _, _ := strings.Cut(path, "/")
	if !strings.Contains(first, ".") {
		return "", nil
	}
	cmd := exec.Command("go", "list", "-f", "{{.Dir}}", path)
	cmd.Dir = c.root
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("compiletest: locating %s: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Checker) parseDir(dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if ok, err := build.Default.MatchFile(dir, name); err != nil || !ok {
			continue
		}
		f, err := parser.ParseFile(c.fset, filepath.Join(dir, name), nil, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
