// Package props extracts property documentation from Go struct
// declarations.
package props

import (
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-drift/docskit/pkg/widgets"
)

var defaultsTo = regexp.MustCompile(`Defaults to ([^.]+?)\.(\s|$)`)

// Extract returns one PropDef per exported field of the struct typeName
// declared in the package in dir. Embedded fields are skipped.
//
// The description is the field's doc comment (or trailing comment) on one
// line. The default comes from a `default:"..."` tag or a "Defaults to X."
// sentence in the comment. A `docs:"required"` tag marks the field required.
func Extract(dir, typeName string) ([]widgets.PropDef, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(info fs.FileInfo) bool {
		return !strings.HasSuffix(info.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}

	for _, pkg := range pkgs {
		files := make([]*ast.File, 0, len(pkg.Files))
		for _, f := range pkg.Files {
			files = append(files, f)
		}
		docPkg, err := doc.NewFromFiles(fset, files, "example.com/"+pkg.Name, doc.PreserveAST)
		if err != nil {
			return nil, err
		}
		for _, t := range docPkg.Types {
			if t.Name != typeName {
				continue
			}
			st, ok := structOf(t.Decl, typeName)
			if !ok {
				return nil, fmt.Errorf("%s is not a struct type", typeName)
			}
			return fields(st), nil
		}
	}
	return nil, fmt.Errorf("type %s not found in %s", typeName, dir)
}

func structOf(decl *ast.GenDecl, name string) (*ast.StructType, bool) {
	for _, spec := range decl.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok || ts.Name.Name != name {
			continue
		}
		st, ok := ts.Type.(*ast.StructType)
		return st, ok
	}
	return nil, false
}

func fields(st *ast.StructType) []widgets.PropDef {
	var defs []widgets.PropDef
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		description := commentText(field.Doc)
		if description == "" {
			description = commentText(field.Comment)
		}
		tag := fieldTag(field)
		def := tag.Get("default")
		if def == "" {
			if m := defaultsTo.FindStringSubmatch(description); m != nil {
				def = strings.Trim(m[1], `"`)
			}
		}
		required := false
		for _, opt := range strings.Split(tag.Get("docs"), ",") {
			if opt == "required" {
				required = true
			}
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			defs = append(defs, widgets.PropDef{
				Name:        name.Name,
				Type:        types.ExprString(field.Type),
				Default:     def,
				Description: description,
				Required:    required,
			})
		}
	}
	return defs
}

func commentText(group *ast.CommentGroup) string {
	if group == nil {
		return ""
	}
	return strings.Join(strings.Fields(group.Text()), " ")
}

func fieldTag(field *ast.Field) reflect.StructTag {
	if field.Tag == nil {
		return ""
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(raw)
}
