// Package cfdeclare generates the per-type boilerplate of foreign object
// wrappers: the handle struct embedding its base, the Class variable, the
// Retained method and the As narrowing function.
package cfdeclare

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Header opens every generated file.
const Header = "// Code generated by cfdeclare. DO NOT EDIT."

const module = "github.com/hsiuhsiu/cfkit-go"

// qualifiers maps the package names generated code may reference to their
// import paths.
var qualifiers = map[string]string{
	"arc":      module + "/pkg/cfkit/arc",
	"bindings": module + "/internal/bindings",
	"cf":       module + "/pkg/cfkit/cf",
	"ns":       module + "/pkg/cfkit/ns",
}

var qualifierRE = regexp.MustCompile(`\b([a-z][A-Za-z0-9_]*)\.`)

// ErrBadType reports a malformed Name:ForeignName:Tag argument.
var ErrBadType = errors.New("cfdeclare: type must be Name:ForeignName:Tag")

// Type is one wrapper to generate.
type Type struct {
	// Name is the Go type name, e.g. String.
	Name string
	// Foreign is the native type or class name, e.g. CFString.
	Foreign string
	// Tag is the expression passed to Declare as the runtime tag source.
	Tag string
}

// ParseType parses a Name:ForeignName:Tag argument.
func ParseType(arg string) (Type, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return Type{}, fmt.Errorf("%w: %q", ErrBadType, arg)
	}
	t := Type{Name: parts[0], Foreign: parts[1], Tag: parts[2]}
	if !token.IsIdentifier(t.Name) || !token.IsExported(t.Name) {
		return Type{}, fmt.Errorf("%w: %q is not an exported identifier", ErrBadType, t.Name)
	}
	return t, nil
}

// Config describes one generated file.
type Config struct {
	Package string
	// Base is the embedded handle type, e.g. Type or cf.Type.
	Base string
	// Declare is the class constructor, e.g. Declare or cf.Declare.
	Declare string
	Types   []Type
}

// withDefaults fills an empty Base with Type and an empty Declare with
// Declare.
func (c Config) withDefaults() Config {
	if c.Base == "" {
		c.Base = "Type"
	}
	if c.Declare == "" {
		c.Declare = "Declare"
	}
	return c
}

// ParseArgs parses a cfdeclare command line, as written after the command
// name in a go:generate directive. out is the -out flag value.
func ParseArgs(args []string, stderr io.Writer) (cfg Config, out string, err error) {
	fs := flag.NewFlagSet("cfdeclare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Package, "package", "", "package name of the generated file")
	fs.StringVar(&cfg.Base, "base", "Type", "embedded base handle type")
	fs.StringVar(&cfg.Declare, "declare", "Declare", "class constructor function")
	fs.StringVar(&out, "out", "", "output file (default stdout)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: cfdeclare [flags] Name:ForeignName:Tag...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, "", err
	}
	for _, arg := range fs.Args() {
		t, err := ParseType(arg)
		if err != nil {
			return Config{}, "", err
		}
		cfg.Types = append(cfg.Types, t)
	}
	return cfg, out, nil
}

var fileTmpl = template.Must(template.New("file").Parse(`{{.Header}}

package {{.Package}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{range .Types}}
// {{.Name}} is a {{.Foreign}} handle.
type {{.Name}} struct{ {{$.Base}} }

// {{.Name}}Class carries the ownership machinery of {{.Name}}.
var {{.Name}}Class = {{$.Declare}}("{{.Foreign}}", {{.Tag}}, func(b {{$.Base}}) {{.Name}} { return {{.Name}}{b} })

// Retained returns a new owner of the {{.Foreign}}.
func (v {{.Name}}) Retained() *arc.R[{{.Name}}] { return {{.Name}}Class.Retain(v) }

// As{{.Name}} narrows obj to {{.Name}} if its runtime type is {{.Foreign}}.
func As{{.Name}}(obj arc.Object) ({{.Name}}, bool) { return {{.Name}}Class.TryAs(obj) }
{{end}}`))

// Generate renders and formats the file for cfg.
func Generate(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("cfdeclare: bad package name %q", cfg.Package)
	}
	if len(cfg.Types) == 0 {
		return nil, errors.New("cfdeclare: no types")
	}
	seen := make(map[string]bool)
	for _, t := range cfg.Types {
		if seen[t.Name] {
			return nil, fmt.Errorf("cfdeclare: %s declared twice", t.Name)
		}
		seen[t.Name] = true
	}
	imps, err := importsFor(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = fileTmpl.Execute(&buf, struct {
		Config
		Header  string
		Imports []string
	}{cfg, Header, imps})
	if err != nil {
		return nil, fmt.Errorf("cfdeclare: render: %w", err)
	}
	out, err := imports.Process(cfg.Package+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cfdeclare: format: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

// importsFor collects the import paths of every package qualifier the
// generated code uses. arc is always needed.
func importsFor(cfg Config) ([]string, error) {
	exprs := []string{cfg.Base, cfg.Declare}
	for _, t := range cfg.Types {
		exprs = append(exprs, t.Tag)
	}
	set := map[string]bool{qualifiers["arc"]: true}
	for _, e := range exprs {
		for _, m := range qualifierRE.FindAllStringSubmatch(e, -1) {
			q := m[1]
			if q == cfg.Package {
				continue
			}
			path, ok := qualifiers[q]
			if !ok {
				return nil, fmt.Errorf("cfdeclare: unknown package qualifier %q in %q", q, e)
			}
			set[path] = true
		}
	}
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}
