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
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Generator runs parsing and emission for one input file.
type Generator struct {
	InputFile  string       // Input Go source file
	OutputFile string       // Output file (defaults to <input>_repr.go)
	Logger     *slog.Logger // Progress logger, nil to discard
}

// Run writes the generated file and returns its path.
func (g *Generator) Run() (string, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	result, err := Parse(g.InputFile, nil)
	if err != nil {
		return "", errors.Wrap(err, "parse input")
	}
	if len(result.Structs) == 0 {
		return "", errors.Newf("no structs annotated with %s found in %s", annotation, g.InputFile)
	}

	out := g.OutputFile
	if out == "" {
		out = strings.TrimSuffix(g.InputFile, ".go") + "_repr.go"
	}

	src, err := Emit(result, out)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return "", errors.Wrap(err, "write output")
	}

	for _, ps := range result.Structs {
		logger.Info("generated representation",
			slog.String("type", ps.Name),
			slog.Int("size", ps.Size),
			slog.Int("fields", len(ps.Fields)))
	}
	return out, nil
}
