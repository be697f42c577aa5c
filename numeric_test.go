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
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestIntText(t *testing.T) {
	require.Equal(t, "0100", IntToHex(uint16(1)))
	require.Equal(t, "efbeadde", IntToHex(uint32(0xdeadbeef)))
	require.Equal(t, "ffffffffffffffff", IntToHex(int64(-1)))
	require.Equal(t, "AQA=", IntToBase64(uint16(1)))
	require.Equal(t, "/w==", IntToBase64(uint8(255)))

	v, err := IntFromHex[uint32]("efbeadde")
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), v)

	n, err := IntFromHex[int64]("ffffffffffffffff")
	require.NoError(t, err)
	require.Equal(t, int64(-1), n)

	s, err := IntFromBase64[int16]("AIA=")
	require.NoError(t, err)
	require.Equal(t, int16(math.MinInt16), s)

	_, err = IntFromHex[uint16]("01")
	require.True(t, errors.Is(err, ErrInvalidDataSize))

	_, err = IntFromBase64[uint16]("A!A=")
	require.True(t, errors.Is(err, ErrInvalidBase64Character))
}

func TestIntRoundTrip(t *testing.T) {
	r := testRand()
	for range 100 {
		x := r.Uint64()

		u, err := IntFromHex[uint64](IntToHex(x))
		require.NoError(t, err)
		require.Equal(t, x, u)

		i, err := IntFromBase64[int32](IntToBase64(int32(x)))
		require.NoError(t, err)
		require.Equal(t, int32(x), i)
	}
}

func TestUint256(t *testing.T) {
	one := NewUint256(1)
	require.Equal(t, 32, one.Size())
	b := ToBytes(one)
	require.Equal(t, byte(1), b[0])
	require.True(t, isZeroBytes(b[1:]))
	require.Equal(t, "1", one.String())

	maxVal, err := Uint256FromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	require.Equal(t, "ff", ToHex(maxVal)[:2])
	require.True(t, isZeroBytes(ToBytes(NewUint256(0))))

	big, err := Uint256FromDecimal("340282366920938463463374607431768211457")
	require.NoError(t, err)
	back, err := FromHex[Uint256](ToHex(big))
	require.NoError(t, err)
	require.Equal(t, big.String(), back.String())
	require.Equal(t, "340282366920938463463374607431768211457", back.String())

	back, err = FromBase64[Uint256](ToBase64(big))
	require.NoError(t, err)
	require.True(t, Equal(big, back))

	_, err = Uint256FromDecimal("12a")
	require.Error(t, err)

	var u Uint256
	require.True(t, errors.Is(u.SetBytes(make([]byte, 16)), ErrInvalidDataSize))
}
