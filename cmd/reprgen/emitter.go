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
	"bytes"
	"fmt"
	"unicode"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"
)

// Emit renders the generated file for result. filename is only used to
// resolve imports while formatting.
func Emit(result *ParseResult, filename string) ([]byte, error) {
	mc := result.MucodecName
	if mc == "" {
		mc = "mucodec"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by reprgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", result.PackageName)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"encoding/binary\"\n\n")
	if mc == "mucodec" {
		fmt.Fprintf(&buf, "\t%q\n", mucodecPath)
	} else {
		fmt.Fprintf(&buf, "\t%s %q\n", mc, mucodecPath)
	}
	fmt.Fprintf(&buf, ")\n\n")

	for _, ps := range result.Structs {
		emitStruct(&buf, ps, mc)
	}

	// imports.Process also drops encoding/binary when no field needs it.
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "format generated code:\n%s", buf.String())
	}
	return formatted, nil
}

func emitStruct(buf *bytes.Buffer, ps ParsedStruct, mc string) {
	recv := receiverName(ps.Name)

	fmt.Fprintf(buf, "// Size implements %s.Repr.\n", mc)
	fmt.Fprintf(buf, "func (%s %s) Size() int { return %d }\n\n", recv, ps.Name, ps.Size)

	fmt.Fprintf(buf, "// PutBytes implements %s.Repr.\n", mc)
	fmt.Fprintf(buf, "func (%s %s) PutBytes(dst []byte) {\n", recv, ps.Name)
	fmt.Fprintf(buf, "\tif len(dst) != %d {\n", ps.Size)
	fmt.Fprintf(buf, "\t\tpanic(%s.NewInvalidDataSizeError(%d, len(dst)))\n", mc, ps.Size)
	fmt.Fprintf(buf, "\t}\n")
	for _, f := range ps.Fields {
		emitPut(buf, recv, f)
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// SetBytes implements %s.ReprPtr.\n", mc)
	fmt.Fprintf(buf, "func (%s *%s) SetBytes(src []byte) error {\n", recv, ps.Name)
	fmt.Fprintf(buf, "\tif len(src) != %d {\n", ps.Size)
	fmt.Fprintf(buf, "\t\treturn %s.NewInvalidDataSizeError(%d, len(src))\n", mc, ps.Size)
	fmt.Fprintf(buf, "\t}\n")
	for _, f := range ps.Fields {
		emitSet(buf, recv, f)
	}
	fmt.Fprintf(buf, "\treturn nil\n")
	fmt.Fprintf(buf, "}\n\n")
}

func emitPut(buf *bytes.Buffer, recv string, f ParsedField) {
	end := f.Offset + f.Width
	switch f.Kind {
	case KindInt:
		if f.Width == 1 {
			fmt.Fprintf(buf, "\tdst[%d] = byte(%s.%s)\n", f.Offset, recv, f.Name)
			return
		}
		bits := f.Width * 8
		fmt.Fprintf(buf, "\tbinary.LittleEndian.PutUint%d(dst[%d:%d], uint%d(%s.%s))\n",
			bits, f.Offset, end, bits, recv, f.Name)
	case KindByteArray:
		fmt.Fprintf(buf, "\tcopy(dst[%d:%d], %s.%s[:])\n", f.Offset, end, recv, f.Name)
	case KindRepr:
		fmt.Fprintf(buf, "\t%s.%s.PutBytes(dst[%d:%d])\n", recv, f.Name, f.Offset, end)
	}
}

func emitSet(buf *bytes.Buffer, recv string, f ParsedField) {
	end := f.Offset + f.Width
	switch f.Kind {
	case KindInt:
		if f.Width == 1 {
			fmt.Fprintf(buf, "\t%s.%s = %s(src[%d])\n", recv, f.Name, f.Type, f.Offset)
			return
		}
		fmt.Fprintf(buf, "\t%s.%s = %s(binary.LittleEndian.Uint%d(src[%d:%d]))\n",
			recv, f.Name, f.Type, f.Width*8, f.Offset, end)
	case KindByteArray:
		fmt.Fprintf(buf, "\tcopy(%s.%s[:], src[%d:%d])\n", recv, f.Name, f.Offset, end)
	case KindRepr:
		fmt.Fprintf(buf, "\tif err := %s.%s.SetBytes(src[%d:%d]); err != nil {\n", recv, f.Name, f.Offset, end)
		fmt.Fprintf(buf, "\t\treturn err\n")
		fmt.Fprintf(buf, "\t}\n")
	}
}

// receiverName returns the lowercased first letter of a type name.
func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "r"
}
