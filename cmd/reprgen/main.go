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

// Command reprgen generates fixed-size byte representations for Go structs.
//
// Usage:
//
//	reprgen -input record.go                  # writes record_repr.go
//	reprgen -input record.go -output gen.go
//
// Or via go:generate:
//
//	//go:generate reprgen -input $GOFILE
//
// Every struct whose doc comment contains mucodec:repr gets Size, PutBytes
// and SetBytes methods, so it satisfies mucodec.Repr and its pointer
// satisfies mucodec.ReprPtr. Fields are laid out in declaration order with
// no gaps.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	inputFile  = flag.String("input", "", "Input Go source file (required)")
	outputFile = flag.String("output", "", "Output file (default: input file name with _repr.go suffix)")
	verbose    = flag.Bool("v", false, "Log each generated type")
)

func main() {
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gen := &Generator{
		InputFile:  *inputFile,
		OutputFile: *outputFile,
		Logger:     logger,
	}

	out, err := gen.Run()
	if err != nil {
		logger.Error("reprgen failed", slog.String("input", *inputFile), slog.Any("err", err))
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", out)
}
