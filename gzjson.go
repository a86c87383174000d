// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package gzjson reads and writes gzip-compressed JSON files. Files are
// written as a single-member gzip stream whose payload is compact UTF-8
// JSON text, conventionally stored with a `.json.gz` extension. The
// package holds no state between calls; concurrent calls on different
// files are safe, while access to the same path is left to the caller to
// coordinate.
package gzjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/optakt/gzjson/codec/gzon"
)

var codec = gzon.NewCodec()

// Read reads the gzip-compressed JSON file at the given path and parses
// its contents into the provided destination, which must be a non-nil
// pointer. Decoding into a *interface{} yields the generic shapes of the
// payload: string-keyed maps, slices, strings, booleans, json.Number and
// nil.
//
// Any failure — missing file, invalid gzip stream, payload that is not
// valid UTF-8 JSON, or any other I/O fault — is returned as a *ReadError
// carrying the path and the underlying cause. The operation is
// all-or-nothing: on error the destination holds no usable result.
func Read[P Path](path P, value interface{}) error {
	name := string(path)

	compressed, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return newReadError(fmt.Sprintf("file not found: %s", name), name, err)
	}
	if err != nil {
		return newReadError(fmt.Sprintf("could not read file %s: %s", name, err), name, err)
	}

	data, err := codec.Decompress(compressed)
	if err != nil {
		return newReadError(fmt.Sprintf("invalid gzip format in %s: %s", name, err), name, err)
	}

	err = codec.Decode(data, value)
	if err != nil {
		return newReadError(fmt.Sprintf("invalid JSON payload in %s: %s", name, err), name, err)
	}

	log.Debug().
		Str("path", name).
		Int("compressed_bytes", len(compressed)).
		Int("decompressed_bytes", len(data)).
		Msg("file read")

	return nil
}

// Write serializes the given value as compact JSON, compresses it with
// gzip at the default level, and writes it to the given path, creating the
// file if absent and overwriting it otherwise. The write is not atomic: a
// failure partway through may leave a partial file behind, and callers
// that need atomic replacement must stage through a temporary file
// themselves.
//
// A value whose type has no JSON representation fails with the encoder's
// own *json.UnsupportedTypeError rather than a *WriteError, so input bugs
// stay distinguishable from environment failures at the call site. Every
// other failure is returned as a *WriteError carrying the path and the
// underlying cause.
func Write[P Path](path P, value interface{}) error {
	name := string(path)

	data, err := codec.Encode(value)
	var unsupported *json.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return err
	}
	if err != nil {
		return newWriteError(fmt.Sprintf("could not serialize value for %s: %s", name, err), name, err)
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return newWriteError(fmt.Sprintf("could not compress data for %s: %s", name, err), name, err)
	}

	err = os.WriteFile(name, compressed, 0644)
	if errors.Is(err, fs.ErrPermission) {
		return newWriteError(fmt.Sprintf("permission denied writing to %s", name), name, err)
	}
	if err != nil {
		return newWriteError(fmt.Sprintf("could not write file %s: %s", name, err), name, err)
	}

	log.Debug().
		Str("path", name).
		Int("decompressed_bytes", len(data)).
		Int("compressed_bytes", len(compressed)).
		Msg("file written")

	return nil
}
