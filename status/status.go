/*
   Copyright 2026 The Probx Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

import (
	"encoding"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Code is the validated numeric representation of an HTTP status code.
//
// It is defined as a separate type (not just int) so that other packages can
// explicitly declare which values they expect and to avoid accidental mixing
// of raw, unchecked numerals with validated ones.
//
// The representable range is 100-999, matching the wire format (three ASCII
// digits on the status line). Codes outside 100-599 are representable but
// have no registered semantics; ReasonPhrase returns a placeholder for them.
type Code uint16

// MinCode and MaxCode define the representable range for a status code.
//
// They are separate constants so that validation errors, tests, and other
// packages mirroring the same constraints can reference them.
const (
	// MinCode is the lowest representable status code. Informational
	// responses start at 100; nothing below that exists on the wire.
	MinCode = 100

	// MaxCode is the highest representable status code. The status line
	// carries exactly three digits, so 999 is the ceiling even though
	// registered codes stop at 599.
	MaxCode = 999
)

// UnknownPhrase is returned by ReasonPhrase for codes that have no
// registered reason phrase.
const UnknownPhrase = "<unknown status code>"

// ErrInvalidCode is returned when a numeral cannot represent a valid HTTP
// status code.
//
// Having a dedicated sentinel error makes it easy for callers and tests to
// detect "this is about the status numeral" vs "this is some other error".
var ErrInvalidCode = errors.New("probx: invalid status code")

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// None is the zero-value code. It is considered "not provided" and is valid
// to store in problem structs. Callers that require a concrete, validated
// code should explicitly call Validate.
var None Code = 0

// Parse validates a raw numeral and returns the corresponding Code.
//
// It fails with ErrInvalidCode when the numeral is outside the representable
// range, including 0.
func Parse(n int) (Code, error) {
	if n < MinCode || n > MaxCode {
		return None, fmt.Errorf("%w: %d", ErrInvalidCode, n)
	}
	return Code(n), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants from trusted net/http values in var
// blocks or tests.
func MustParse(n int) Code {
	c, err := Parse(n)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether the provided Code is inside the representable
// range. The zero code (None) is considered invalid here; it means the code
// is absent, not that it is a valid status.
func Validate(c Code) error {
	_, err := Parse(int(c))
	return err
}

// String returns the decimal representation of the code, e.g. "404".
func (c Code) String() string {
	return strconv.Itoa(int(c))
}

// ReasonPhrase returns the canonical reason phrase registered for the code,
// e.g. "Not Found" for 404. For codes without a registered phrase it returns
// UnknownPhrase.
func (c Code) ReasonPhrase() string {
	if phrase := http.StatusText(int(c)); phrase != "" {
		return phrase
	}
	return UnknownPhrase
}

// TypeURL returns the documentation URL conventionally used as the problem
// "type" member for this status code.
func (c Code) TypeURL() string {
	return fmt.Sprintf("https://httpstatuses.com/%d", int(c))
}

// MarshalText implements encoding.TextMarshaler.
//
// It refuses to marshal codes outside the representable range.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It parses and validates the provided numeral before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	parsed, err := Parse(n)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
