package internalcheck

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"

	"github.com/hsiuhsiu/cfkit-go/internal/cfdeclare"
)

const module = "github.com/hsiuhsiu/cfkit-go"

func loadModule(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode, Tests: false}, module+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	return pkgs
}

// allFiles includes files excluded by build constraints, so darwin-only cgo
// files are checked on every platform.
func allFiles(pkg *packages.Package) []string {
	files := append([]string{}, pkg.GoFiles...)
	for _, f := range pkg.IgnoredFiles {
		if strings.HasSuffix(f, ".go") {
			files = append(files, f)
		}
	}
	return files
}

func TestForeignCallsStayInBindings(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedFiles)
	fset := token.NewFileSet()

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == module+"/internal/bindings" {
			continue
		}
		for _, path := range allFiles(pkg) {
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if p == "C" || p == "unsafe" {
					findings = append(findings, fmt.Sprintf("%s: imports %q", fset.Position(imp.Pos()), p))
				}
			}
		}
	}
	if len(findings) > 0 {
		t.Fatalf("foreign call policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

const generateCmd = "//go:generate go run "

func TestGeneratedDeclarationsAreCurrent(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedFiles)

	checked := 0
	for _, pkg := range pkgs {
		for _, path := range allFiles(pkg) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			name := filepath.Base(path)
			if strings.HasPrefix(name, "zz_generated.") && !bytes.HasPrefix(src, []byte(cfdeclare.Header+"\n")) {
				t.Errorf("%s: generated file lacks %q", path, cfdeclare.Header)
			}
			for _, line := range strings.Split(string(src), "\n") {
				if !strings.HasPrefix(line, generateCmd) || !strings.Contains(line, "internal/cmd/cfdeclare") {
					continue
				}
				fields := strings.Fields(strings.TrimPrefix(line, generateCmd))
				cfg, out, err := cfdeclare.ParseArgs(fields[1:], io.Discard)
				if err != nil {
					t.Fatalf("%s: %v", path, err)
				}
				want, err := cfdeclare.Generate(cfg)
				if err != nil {
					t.Fatalf("%s: %v", path, err)
				}
				got, err := os.ReadFile(filepath.Join(filepath.Dir(path), out))
				if err != nil {
					t.Fatalf("%s: %v", path, err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("%s is stale; run go generate in %s", out, pkg.PkgPath)
				}
				checked++
			}
		}
	}
	if checked == 0 {
		t.Fatal("no cfdeclare directives found")
	}
}

// ownedPrefixes are the names under which a function may hand its caller a
// retain count: constructors, Core Foundation style copies, and explicit
// retains.
var ownedPrefixes = []string{"New", "Copy", "Create", "Retain", "Adopt"}

func TestOwnedResultsFollowNamingRule(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo)

	var findings []string
	for _, pkg := range pkgs {
		if !strings.HasPrefix(pkg.PkgPath, module+"/pkg/") {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || !fn.Name.IsExported() {
					continue
				}
				obj, ok := pkg.TypesInfo.Defs[fn.Name].(*types.Func)
				if !ok || !returnsOwned(obj.Type().(*types.Signature)) {
					continue
				}
				if !hasOwnedPrefix(fn.Name.Name) {
					findings = append(findings, fmt.Sprintf("%s: %s returns an owned reference", pkg.Fset.Position(fn.Pos()), fn.Name.Name))
				}
			}
		}
	}
	if len(findings) > 0 {
		t.Fatalf("ownership naming violation (use New/Copy/Create/Retain):\n%s", strings.Join(findings, "\n"))
	}
}

func returnsOwned(sig *types.Signature) bool {
	res := sig.Results()
	for i := 0; i < res.Len(); i++ {
		ptr, ok := res.At(i).Type().(*types.Pointer)
		if !ok {
			continue
		}
		named, ok := ptr.Elem().(*types.Named)
		if !ok {
			continue
		}
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == module+"/pkg/cfkit/arc" && obj.Name() == "R" {
			return true
		}
	}
	return false
}

func hasOwnedPrefix(name string) bool {
	for _, p := range ownedPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// interfaceMethods implement standard interfaces and are documented there.
var interfaceMethods = map[string]bool{"String": true, "Error": true, "Unwrap": true}

func TestExportedFunctionsAreDocumented(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedFiles)
	fset := token.NewFileSet()

	var findings []string
	for _, pkg := range pkgs {
		if !strings.HasPrefix(pkg.PkgPath, module+"/pkg/") {
			continue
		}
		for _, path := range allFiles(pkg) {
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || !fn.Name.IsExported() || fn.Doc != nil {
					continue
				}
				if fn.Recv != nil && (!receiverExported(fn.Recv) || interfaceMethods[fn.Name.Name]) {
					continue
				}
				findings = append(findings, fmt.Sprintf("%s: %s has no doc comment", fset.Position(fn.Pos()), fn.Name.Name))
			}
		}
	}
	if len(findings) > 0 {
		t.Fatalf("undocumented exported functions:\n%s", strings.Join(findings, "\n"))
	}
}

func receiverExported(recv *ast.FieldList) bool {
	if len(recv.List) == 0 {
		return false
	}
	expr := recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.IsExported()
		default:
			return false
		}
	}
}
