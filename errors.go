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

package gzjson

// ReadError indicates that reading a gzip-compressed JSON file failed. It
// carries a human-readable message, the path of the file involved and the
// underlying cause, which remains reachable through errors.Is and
// errors.As.
type ReadError struct {
	Message string
	Path    string
	cause   error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause of the read failure.
func (e *ReadError) Unwrap() error {
	return e.cause
}

// WriteError indicates that writing a gzip-compressed JSON file failed. It
// carries a human-readable message, the path of the file involved and the
// underlying cause, which remains reachable through errors.Is and
// errors.As.
type WriteError struct {
	Message string
	Path    string
	cause   error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause of the write failure.
func (e *WriteError) Unwrap() error {
	return e.cause
}

func newReadError(message string, path string, cause error) *ReadError {

	e := ReadError{
		Message: message,
		Path:    path,
		cause:   cause,
	}

	return &e
}

func newWriteError(message string, path string, cause error) *WriteError {

	e := WriteError{
		Message: message,
		Path:    path,
		cause:   cause,
	}

	return &e
}
