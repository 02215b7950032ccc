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

package probx

import (
	"encoding/json"
	"fmt"

	"probx.dev/probx/status"
)

// MediaTypeJSON is the recommended media type for problem-details responses
// serialized to JSON, per RFC 7807.
const MediaTypeJSON = "application/problem+json"

// DefaultStatus is the status code substituted by presenters when a problem
// carries none.
const DefaultStatus = status.Code(500)

// Problem describes a problem that can be returned by an HTTP API, based on
// RFC 7807 "Problem Details for HTTP APIs".
//
// It carries:
//   - TypeURL: URI reference identifying the problem type ("type" member;
//     absence implies "about:blank");
//   - Status: the HTTP status code generated by the origin server for this
//     occurrence (status.None when absent);
//   - Title: short, human-readable summary of the problem type. It should
//     not change from occurrence to occurrence, except for localization;
//   - Detail: human-readable explanation specific to this occurrence;
//   - Instance: URI reference identifying this specific occurrence;
//   - extensions: additional members that must be JSON values, accessed
//     through the WithValue/JSONValue family.
//
// All mutation helpers (WithX) return a shallow copy, so Problem instances
// can be safely shared and extended in a functional style. The extension map
// is always copied before insertion, never mutated in place.
//
// When decoding a received payload the status numeral may be invalid. In
// that case Status is left at status.None instead of failing the decode, so
// the recipient still has access to the remaining fields.
type Problem struct {
	// TypeURL is the "type" member. Empty means absent.
	TypeURL string

	// Status is the "status" member. status.None means absent.
	Status status.Code

	// Title is the "title" member. Empty means absent.
	Title string

	// Detail is the "detail" member. Empty means absent.
	Detail string

	// Instance is the "instance" member. Empty means absent.
	Instance string

	// extensions holds the additional members, keyed by member name, each
	// stored in its serialized JSON form. Values are serialized on insert,
	// so the stored form is always valid JSON.
	extensions map[string]json.RawMessage
}

// Empty returns a Problem without any member set.
//
// Prefer one of the other constructors which ensure that a status code is
// set. If no status is set and the problem is turned into a response, the
// status silently defaults to DefaultStatus.
func Empty() *Problem {
	return &Problem{}
}

// New returns a Problem with only the status set.
func New(c status.Code) *Problem {
	return Empty().WithStatus(c)
}

// TryNew is the variant of New that accepts a raw numeral.
//
// It fails with status.ErrInvalidCode when the numeral cannot represent a
// valid HTTP status code.
func TryNew(n int) (*Problem, error) {
	c, err := status.Parse(n)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// NewWithTitle returns a Problem with the status set and the title derived
// from the status code's canonical reason phrase. Codes without a registered
// phrase get the status.UnknownPhrase placeholder.
func NewWithTitle(c status.Code) *Problem {
	return New(c).WithTitle(c.ReasonPhrase())
}

// TryNewWithTitle is the variant of NewWithTitle that accepts a raw numeral.
//
// It fails with status.ErrInvalidCode when the numeral cannot represent a
// valid HTTP status code.
func TryNewWithTitle(n int) (*Problem, error) {
	c, err := status.Parse(n)
	if err != nil {
		return nil, err
	}
	return NewWithTitle(c), nil
}

// NewWithTitleAndType returns a Problem with the status, title, and type URL
// all derived from the status code. The type URL points at the status code's
// documentation page, e.g. "https://httpstatuses.com/503".
func NewWithTitleAndType(c status.Code) *Problem {
	return NewWithTitle(c).WithTypeURL(c.TypeURL())
}

// TryNewWithTitleAndType is the variant of NewWithTitleAndType that accepts
// a raw numeral.
//
// It fails with status.ErrInvalidCode when the numeral cannot represent a
// valid HTTP status code.
func TryNewWithTitleAndType(n int) (*Problem, error) {
	c, err := status.Parse(n)
	if err != nil {
		return nil, err
	}
	return NewWithTitleAndType(c), nil
}

// WithStatus returns a shallow copy of p with the given status set.
// The original problem is not modified.
func (p *Problem) WithStatus(c status.Code) *Problem {
	cp := *p
	cp.Status = c
	return &cp
}

// TryWithStatus is the variant of WithStatus that accepts a raw numeral.
//
// It fails with status.ErrInvalidCode when the numeral cannot represent a
// valid HTTP status code. On failure the original problem is returned
// unchanged alongside the error.
func (p *Problem) TryWithStatus(n int) (*Problem, error) {
	c, err := status.Parse(n)
	if err != nil {
		return p, err
	}
	return p.WithStatus(c), nil
}

// WithTypeURL returns a shallow copy of p with the "type" member set.
func (p *Problem) WithTypeURL(typeURL string) *Problem {
	cp := *p
	cp.TypeURL = typeURL
	return &cp
}

// WithTitle returns a shallow copy of p with the "title" member set.
func (p *Problem) WithTitle(title string) *Problem {
	cp := *p
	cp.Title = title
	return &cp
}

// WithDetail returns a shallow copy of p with the "detail" member set.
func (p *Problem) WithDetail(detail string) *Problem {
	cp := *p
	cp.Detail = detail
	return &cp
}

// WithInstance returns a shallow copy of p with the "instance" member set.
func (p *Problem) WithInstance(instance string) *Problem {
	cp := *p
	cp.Instance = instance
	return &cp
}

// StatusOrDefault returns the problem's status code, or DefaultStatus when
// the problem carries none. This is the effective status a presenter must
// use when transmitting the problem as a response.
func (p *Problem) StatusOrDefault() status.Code {
	if p.Status == status.None {
		return DefaultStatus
	}
	return p.Status
}

// Error implements the built-in error interface, so a Problem can travel
// through error-returning call chains.
//
// The format is a single diagnostic line: the status numeral (or the literal
// "<no status>" when absent) followed by title and/or detail joined with
// " - ". When neither title nor detail is present the type URL is appended
// instead, if there is one.
func (p *Problem) Error() string {
	var head string
	if p.Status == status.None {
		head = "<no status>"
	} else {
		head = p.Status.String()
	}

	switch {
	case p.Title != "" && p.Detail != "":
		return fmt.Sprintf("%s - %s - %s", head, p.Title, p.Detail)
	case p.Title != "":
		return fmt.Sprintf("%s - %s", head, p.Title)
	case p.Detail != "":
		return fmt.Sprintf("%s - %s", head, p.Detail)
	}

	if p.TypeURL != "" {
		return fmt.Sprintf("%s - %s", head, p.TypeURL)
	}
	return head
}

// String implements fmt.Stringer with the same single-line rendering as
// Error.
func (p *Problem) String() string {
	return p.Error()
}
