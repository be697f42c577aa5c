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
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/mugraph-payments/mucodec/hwy/contrib/workerpool"
)

// batchSize is the number of values a worker claims at a time.
const batchSize = 64

var defaultPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0)
})

func poolOrDefault(pool *workerpool.Pool) *workerpool.Pool {
	if pool == nil {
		return defaultPool()
	}
	return pool
}

// ToHexAll hex-encodes every value on pool, or on a shared GOMAXPROCS pool
// if pool is nil. out[i] is the encoding of values[i].
func ToHexAll[T Repr](pool *workerpool.Pool, values []T) []string {
	return encodeAll(pool, values, ToHex[T])
}

// ToBase64All is ToHexAll for base64.
func ToBase64All[T Repr](pool *workerpool.Pool, values []T) []string {
	return encodeAll(pool, values, ToBase64[T])
}

func encodeAll[T Repr](pool *workerpool.Pool, values []T, encode func(T) string) []string {
	out := make([]string, len(values))
	poolOrDefault(pool).ParallelForAtomicBatched(len(values), batchSize, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = encode(values[i])
		}
	})
	return out
}

// FromHexAll decodes every string on pool. If any string fails, the error
// of the lowest failing index is returned, wrapped with that index.
func FromHexAll[T any, P ReprPtr[T]](pool *workerpool.Pool, texts []string) ([]T, error) {
	return decodeAll(pool, texts, FromHex[T, P])
}

// FromBase64All is FromHexAll for base64.
func FromBase64All[T any, P ReprPtr[T]](pool *workerpool.Pool, texts []string) ([]T, error) {
	return decodeAll(pool, texts, FromBase64[T, P])
}

func decodeAll[T any](pool *workerpool.Pool, texts []string, decode func(string) (T, error)) ([]T, error) {
	out := make([]T, len(texts))
	err := poolOrDefault(pool).ParallelForErr(len(texts), func(start, end int) error {
		for i := start; i < end; i++ {
			v, err := decode(texts[i])
			if err != nil {
				return errors.Wrapf(err, "value %d", i)
			}
			out[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
