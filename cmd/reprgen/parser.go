// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// annotation marks a struct for generation when it appears in the struct's
// doc comment.
const annotation = "mucodec:repr"

// mucodecPath is the import path of the representation library.
const mucodecPath = "github.com/mugraph-payments/mucodec"

// FieldKind selects how a field is copied in and out of the byte image.
type FieldKind int

const (
	// KindInt is a fixed-width integer stored little-endian.
	KindInt FieldKind = iota
	// KindByteArray is a [N]byte copied verbatim.
	KindByteArray
	// KindRepr is a value with its own PutBytes and SetBytes methods.
	KindRepr
)

// ParsedField is one struct field with its position in the byte image.
type ParsedField struct {
	Name   string    // Field name
	Type   string    // Type expression as written
	Kind   FieldKind // Copy strategy
	Width  int       // Number of bytes
	Offset int       // First byte of the field
}

// ParsedStruct is an annotated struct and its computed layout.
type ParsedStruct struct {
	Name   string
	Fields []ParsedField
	Size   int
}

// ParseResult contains the annotated structs of one source file.
type ParseResult struct {
	PackageName string
	MucodecName string // Local name of the mucodec import, empty if not imported
	Structs     []ParsedStruct
}

// intWidths lists the integer types stored with encoding/binary.
var intWidths = map[string]int{
	"uint8": 1, "byte": 1, "int8": 1,
	"uint16": 2, "int16": 2,
	"uint32": 4, "int32": 4,
	"uint64": 8, "int64": 8,
}

// bytesAliases are the fixed-size buffer aliases exported by mucodec.
var bytesAliases = map[string]int{
	"Bytes16": 16, "Bytes20": 20, "Bytes24": 24,
	"Bytes32": 32, "Bytes48": 48, "Bytes64": 64,
}

// listElems maps packed list aliases to their element type and width.
var listElems = map[string]struct {
	elem  string
	width int
}{
	"ListU16": {"uint16", 2},
	"ListU32": {"uint32", 4},
	"ListU64": {"uint64", 8},
}

// Parse reads filename, or src if it is non-nil, and computes the layout of
// every annotated struct.
func Parse(filename string, src any) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parse file")
	}

	result := &ParseResult{PackageName: file.Name.Name}
	for _, imp := range file.Imports {
		importPath, _ := strconv.Unquote(imp.Path.Value)
		if importPath != mucodecPath {
			continue
		}
		result.MucodecName = path.Base(importPath)
		if imp.Name != nil {
			result.MucodecName = imp.Name.Name
		}
	}

	r := &resolver{
		specs:   make(map[string]*ast.TypeSpec),
		sizes:   make(map[string]int),
		visit:   make(map[string]bool),
		mucodec: result.MucodecName,
	}
	var order []string
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			ts := spec.(*ast.TypeSpec)
			if !hasAnnotation(ts.Doc) && !(len(genDecl.Specs) == 1 && hasAnnotation(genDecl.Doc)) {
				continue
			}
			if ts.TypeParams != nil {
				return nil, errors.Newf("type %s: generic structs are not supported", ts.Name.Name)
			}
			if _, ok := ts.Type.(*ast.StructType); !ok {
				return nil, errors.Newf("type %s: only struct types can be annotated", ts.Name.Name)
			}
			r.specs[ts.Name.Name] = ts
			order = append(order, ts.Name.Name)
		}
	}

	for _, name := range order {
		ps, err := r.layout(name)
		if err != nil {
			return nil, err
		}
		result.Structs = append(result.Structs, ps)
	}
	return result, nil
}

func hasAnnotation(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	// Text() drops directive comments, so look at the raw lines.
	for _, c := range doc.List {
		if strings.Contains(c.Text, annotation) {
			return true
		}
	}
	return false
}

// resolver computes struct sizes, following references between annotated
// structs of the same file.
type resolver struct {
	specs   map[string]*ast.TypeSpec
	sizes   map[string]int
	visit   map[string]bool
	mucodec string
}

func (r *resolver) layout(name string) (ParsedStruct, error) {
	ts := r.specs[name]
	st := ts.Type.(*ast.StructType)

	ps := ParsedStruct{Name: name}
	offset := 0
	for _, field := range st.Fields.List {
		typ := exprToString(field.Type)
		if len(field.Names) == 0 {
			return ps, errors.Newf("%s: embedded field %s is not supported", name, typ)
		}
		kind, width, err := r.fieldWidth(field.Type)
		if err != nil {
			return ps, errors.Wrapf(err, "%s.%s", name, field.Names[0].Name)
		}
		for _, fn := range field.Names {
			ps.Fields = append(ps.Fields, ParsedField{
				Name:   fn.Name,
				Type:   typ,
				Kind:   kind,
				Width:  width,
				Offset: offset,
			})
			offset += width
		}
	}
	ps.Size = offset
	return ps, nil
}

// structSize returns the size of another annotated struct, rejecting
// layouts that contain themselves.
func (r *resolver) structSize(name string) (int, error) {
	if size, ok := r.sizes[name]; ok {
		return size, nil
	}
	if r.visit[name] {
		return 0, errors.Newf("recursive layout through %s", name)
	}
	r.visit[name] = true
	defer delete(r.visit, name)

	ps, err := r.layout(name)
	if err != nil {
		return 0, err
	}
	r.sizes[name] = ps.Size
	return ps.Size, nil
}

func (r *resolver) fieldWidth(expr ast.Expr) (FieldKind, int, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if w, ok := intWidths[t.Name]; ok {
			return KindInt, w, nil
		}
		if _, ok := r.specs[t.Name]; ok {
			size, err := r.structSize(t.Name)
			return KindRepr, size, err
		}

	case *ast.ArrayType:
		if n, ok := arrayLen(t); ok && isByte(t.Elt) {
			return KindByteArray, n, nil
		}

	case *ast.SelectorExpr:
		if !r.isMucodec(t.X) {
			break
		}
		if n, ok := bytesAliases[t.Sel.Name]; ok {
			return KindRepr, n, nil
		}
		if t.Sel.Name == "Uint256" {
			return KindRepr, 32, nil
		}

	case *ast.IndexExpr:
		sel, ok := t.X.(*ast.SelectorExpr)
		if !ok || !r.isMucodec(sel.X) {
			break
		}
		arr, ok := t.Index.(*ast.ArrayType)
		if !ok {
			break
		}
		n, ok := arrayLen(arr)
		if !ok {
			break
		}
		if sel.Sel.Name == "Bytes" && isByte(arr.Elt) {
			return KindRepr, n, nil
		}
		if le, ok := listElems[sel.Sel.Name]; ok {
			if id, ok := arr.Elt.(*ast.Ident); ok && id.Name == le.elem {
				return KindRepr, n*le.width + 1, nil
			}
		}
	}
	return 0, 0, errors.Newf("unsupported field type %s", exprToString(expr))
}

func (r *resolver) isMucodec(x ast.Expr) bool {
	id, ok := x.(*ast.Ident)
	return ok && r.mucodec != "" && id.Name == r.mucodec
}

// arrayLen returns N for an array type with a literal length.
func arrayLen(t *ast.ArrayType) (int, bool) {
	lit, ok := t.Len.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return int(n), true
}

func isByte(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

// exprToString renders a type expression for messages and generated code.
func exprToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return exprToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + exprToString(t.Elt)
		}
		return "[" + exprToString(t.Len) + "]" + exprToString(t.Elt)
	case *ast.BasicLit:
		return t.Value
	case *ast.IndexExpr:
		return exprToString(t.X) + "[" + exprToString(t.Index) + "]"
	case *ast.MapType:
		return "map[" + exprToString(t.Key) + "]" + exprToString(t.Value)
	case *ast.InterfaceType:
		return "interface{...}"
	case *ast.FuncType:
		return "func(...)"
	case *ast.ChanType:
		return "chan " + exprToString(t.Value)
	default:
		return "?"
	}
}
