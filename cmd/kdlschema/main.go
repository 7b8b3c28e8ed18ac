package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"go/ast"
	"go/parser"
	"go/token"

	json "github.com/goccy/go-json"

	kdlschema "github.com/reoring/kdlschema"
	gen "github.com/reoring/kdlschema/internal/gen"
	"github.com/reoring/kdlschema/manifest"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	case "manifest":
		manifestCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kdlschema CLI\n\nUsage:\n  kdlschema compile -type T1[,T2,...] -o out.go [-pkgdir dir]\n  kdlschema manifest -in schema.{yaml,kdl} [-json] [-pkg name] [-o out]\n\nNotes:\n  - compile reads `kdl:\"<role>\"` struct tags from Go source and generates decode plans.\n  - manifest compiles an external YAML/KDL schema manifest.")
}

// compileCmd parses Go source in -pkgdir, classifies the named struct types by
// their kdl struct tags, and renders generated decode plans.
func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var typesCSV string
	var out string
	var pkgdir string
	fs.StringVar(&typesCSV, "type", "", "comma-separated type names to compile")
	fs.StringVar(&out, "o", "", "output filename")
	fs.StringVar(&pkgdir, "pkgdir", ".", "directory of the package that declares the types")
	_ = fs.Parse(args)
	if typesCSV == "" || out == "" {
		fs.Usage()
		os.Exit(2)
	}
	types := splitCSV(typesCSV)

	pkg, decls, err := collectStructDecls(pkgdir, types)
	if err != nil {
		fatalf("compile: %v", err)
	}

	var plans []*kdlschema.DecodePlan
	for _, d := range decls {
		plan, err := kdlschema.CompileStruct(d)
		if err != nil {
			reportAndExit(err, "")
		}
		plans = append(plans, plan)
	}

	code, err := gen.RenderFile(gen.File{Package: pkg, Plans: plans})
	if err != nil {
		fatalf("generate: %v", err)
	}
	writeOutput(out, code)
}

// manifestCmd loads a YAML/KDL schema manifest, compiles every declaration,
// and emits generated Go or JSON plans.
func manifestCmd(args []string) {
	fs := flag.NewFlagSet("manifest", flag.ExitOnError)
	var in string
	var out string
	var pkg string
	var asJSON bool
	fs.StringVar(&in, "in", "", "manifest file (.yaml, .yml or .kdl)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.StringVar(&pkg, "pkg", "main", "package name for generated Go")
	fs.BoolVar(&asJSON, "json", false, "emit compiled plans as JSON instead of Go")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	src := ""
	if data, err := os.ReadFile(in); err == nil {
		src = string(data)
	}

	f, err := manifest.Load(in)
	if err != nil {
		reportAndExit(err, src)
	}
	compiled, err := manifest.Compile(f)
	if err != nil {
		reportAndExit(err, src)
	}

	var code []byte
	if asJSON {
		code, err = json.MarshalIndent(compiled, "", "  ")
		if err != nil {
			fatalf("encoding JSON: %v", err)
		}
		code = append(code, '\n')
	} else {
		code, err = gen.RenderFile(gen.File{Package: pkg, Plans: compiled.Plans, Enums: compiled.Enums})
		if err != nil {
			fatalf("generate: %v", err)
		}
	}
	if out == "" {
		_, _ = os.Stdout.Write(code)
		return
	}
	writeOutput(out, code)
}

// collectStructDecls parses the package in dir and extracts declarations for
// the named struct types. Field roles come from `kdl:"<role>"` tags; untagged
// fields are extras; pointer-typed fields are optional.
func collectStructDecls(dir string, types []string) (string, []kdlschema.StructDecl, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return "", nil, fmt.Errorf("no Go package found in %s", dir)
	}

	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	pkgName := ""
	found := make(map[string]kdlschema.StructDecl)
	var ds kdlschema.Diagnostics
	for name, pkg := range pkgs {
		if strings.HasSuffix(name, "_test") {
			continue
		}
		pkgName = name
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || ts.Name == nil || !want[ts.Name.Name] {
						continue
					}
					st, ok := ts.Type.(*ast.StructType)
					if !ok || st.Fields == nil {
						continue
					}
					sd, more := structDeclFromAST(fset, ts.Name.Name, st)
					ds = kdlschema.AppendDiagnostics(ds, more...)
					found[ts.Name.Name] = sd
				}
			}
		}
	}
	if len(ds) > 0 {
		return "", nil, ds
	}

	decls := make([]kdlschema.StructDecl, 0, len(types))
	for _, t := range types {
		sd, ok := found[t]
		if !ok {
			return "", nil, fmt.Errorf("type %s: not found or not a struct in %s", t, dir)
		}
		decls = append(decls, sd)
	}
	return pkgName, decls, nil
}

// structDeclFromAST converts one struct type into a declaration list.
func structDeclFromAST(fset *token.FileSet, name string, st *ast.StructType) (kdlschema.StructDecl, kdlschema.Diagnostics) {
	sd := kdlschema.StructDecl{Name: name}
	var ds kdlschema.Diagnostics
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 || field.Names[0] == nil {
			continue // embedded fields are not decodable slots
		}
		fieldName := field.Names[0].Name
		span := spanAt(fset.Position(field.Pos()))

		tagValue := ""
		if field.Tag != nil {
			tagLit := strings.Trim(field.Tag.Value, "`")
			tagValue = reflect.StructTag(tagLit).Get("kdl")
		}
		role, ok := kdlschema.ParseRole(tagValue)
		if !ok {
			msg := fmt.Sprintf("unknown role %q for field %q (expected argument, arguments, property, properties, or children)", tagValue, fieldName)
			ds = kdlschema.AppendDiagnostics(ds, kdlschema.Diagnostic{
				Code:    kdlschema.CodeInvalidRole,
				Message: msg,
				Labels:  []kdlschema.Label{{Message: msg, Span: span}},
			})
			continue
		}

		_, isPtr := field.Type.(*ast.StarExpr)
		sd.Fields = append(sd.Fields, kdlschema.FieldDecl{
			Name:     fieldName,
			Optional: isPtr,
			Role:     role,
			Span:     span,
		})
	}
	return sd, ds
}

func spanAt(pos token.Position) kdlschema.Span {
	return kdlschema.Span{File: pos.Filename, Line: pos.Line, Col: pos.Column}
}

// reportAndExit prints diagnostics (with caret snippets when src is known) or
// a plain error, then exits with status 2.
func reportAndExit(err error, src string) {
	if ds, ok := kdlschema.AsDiagnostics(err); ok {
		for _, d := range ds {
			if src != "" {
				fmt.Fprint(os.Stderr, kdlschema.RenderWithSource(d, src))
			} else {
				fmt.Fprint(os.Stderr, kdlschema.Render(d))
			}
		}
		os.Exit(2)
	}
	fatalf("%v", err)
}

func writeOutput(out string, code []byte) {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
