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

package mucodec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	require.Contains(t, buf.String(), "mucodec: logger configured")

	buf.Reset()
	_, err := BytesFromHex[[2]byte]("zzzz")
	require.Error(t, err)
	require.Contains(t, buf.String(), "mucodec: decode rejected")
	require.Contains(t, buf.String(), "op=from_hex")

	buf.Reset()
	_, err = BytesFromHex[[2]byte]("beef")
	require.NoError(t, err)
	require.Empty(t, buf.String())

	SetLogger(nil)
	buf.Reset()
	_, err = BytesFromHex[[2]byte]("zzzz")
	require.Error(t, err)
	require.Empty(t, buf.String())
}
