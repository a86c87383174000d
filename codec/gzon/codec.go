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

package gzon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

// Codec combines compact JSON encoding with gzip compression. The encoded
// payload is UTF-8 JSON text without whitespace between tokens and without
// escape sequences for characters that UTF-8 represents directly, so files
// stay small and remain recoverable with standard tools.
type Codec struct {
	level int
}

// NewCodec creates a new Codec using the default gzip compression level.
func NewCodec() *Codec {

	c := Codec{
		level: gzip.DefaultCompression,
	}

	return &c
}

// Encode serializes the given value into compact JSON text. Serialization
// errors are returned as produced by the encoder, so callers can tell a
// value with no JSON representation apart from other failures.
func (c *Codec) Encode(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(value)
	if err != nil {
		return nil, err
	}

	// The encoder terminates each value with a newline, which would break
	// the no-whitespace guarantee of the payload.
	data := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})

	return data, nil
}

// Decode parses the given JSON text into the provided value. The payload
// must be valid UTF-8 and must contain exactly one JSON value. When the
// destination is untyped, numbers decode as json.Number, so integers
// survive decoding without truncation.
func (c *Codec) Decode(data []byte, value interface{}) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("payload is not valid UTF-8 text")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	err := decoder.Decode(value)
	if err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected data after JSON value")
	}

	return nil
}

// Compress compresses the given data into a single-member gzip stream at
// the codec's compression level.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("could not initialize compressor: %w", err)
	}
	_, err = writer.Write(data)
	if err != nil {
		return nil, fmt.Errorf("could not compress data: %w", err)
	}
	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("could not finalize compressed stream: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress recovers the original bytes from a gzip stream.
func (c *Codec) Decompress(compressed []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Marshal encodes the given value into compact JSON and compresses it.
func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	data, err := c.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("could not compress data: %w", err)
	}
	return compressed, nil
}

// Unmarshal decompresses the given gzip stream and parses the recovered
// JSON text into the provided value.
func (c *Codec) Unmarshal(compressed []byte, value interface{}) error {
	data, err := c.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("could not decompress data: %w", err)
	}
	err = c.Decode(data, value)
	if err != nil {
		return fmt.Errorf("could not decode value: %w", err)
	}
	return nil
}
