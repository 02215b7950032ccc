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

package apierror

import (
	"fmt"

	"github.com/google/uuid"

	"probx.dev/probx"
	"probx.dev/probx/status"
)

// APIError is the handler-facing error type of probx.
//
// It carries:
//   - Status: the HTTP status code this error should produce (required);
//   - Title: short summary of the error class; when empty, the status
//     code's canonical reason phrase is used on conversion;
//   - Message: the client-facing explanation of this occurrence (becomes
//     the problem "detail" member);
//   - TypeURL / Instance: optional problem "type" and "instance" members;
//   - Fields: arbitrary key/value payload exposed as problem extensions;
//   - Cause: wrapped underlying error for debugging / unwrapping. The cause
//     is never exposed to the client.
//
// All mutation helpers (WithX) return a shallow copy, so APIError instances
// can be safely shared and modified in a functional style.
type APIError struct {
	// Status is the HTTP status code for this error.
	Status status.Code

	// Title is the short, stable summary of the error class.
	Title string

	// Message is the human-readable, occurrence-specific explanation.
	Message string

	// TypeURL identifies the problem type, if the API documents one.
	TypeURL string

	// Instance identifies this specific occurrence, e.g. "urn:uuid:...".
	Instance string

	// Fields is an optional, shallow map of extra values exposed to API
	// clients as problem extensions. The map is treated as immutable:
	// WithField/WithFields always copy it.
	Fields map[string]any

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for APIError.
//
// Usage:
//
//	return apierror.E(status.MustParse(404), "order does not exist",
//	    apierror.WithFieldOption("order_id", id),
//	    apierror.WithCauseOption(err),
//	)
//
// It always returns a *new* APIError and applies all provided options in
// order.
func E(c status.Code, msg string, opts ...Option) *APIError {
	e := &APIError{Status: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<status>: <message>
//
// which keeps log lines scannable without duplicating the title.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// chains.
func (e *APIError) Unwrap() error { return e.Cause }

// WithTitle returns a shallow copy of e with the given title set.
func (e *APIError) WithTitle(title string) *APIError {
	cp := *e
	cp.Title = title
	return &cp
}

// WithTypeURL returns a shallow copy of e with the problem type URL set.
func (e *APIError) WithTypeURL(typeURL string) *APIError {
	cp := *e
	cp.TypeURL = typeURL
	return &cp
}

// WithInstance returns a shallow copy of e with the occurrence URI set.
func (e *APIError) WithInstance(instance string) *APIError {
	cp := *e
	cp.Instance = instance
	return &cp
}

// WithFreshInstance returns a shallow copy of e with a newly generated
// "urn:uuid:" occurrence URI. Use this when each occurrence should be
// individually addressable in logs and support tickets.
func (e *APIError) WithFreshInstance() *APIError {
	return e.WithInstance("urn:uuid:" + uuid.NewString())
}

// WithField returns a shallow copy of e with one extra key/value in Fields.
//
// The method always copies the map to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *APIError) WithField(k string, v any) *APIError {
	cp := *e
	if len(cp.Fields) == 0 {
		cp.Fields = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Fields)+1)
	for k0, v0 := range cp.Fields {
		m[k0] = v0
	}
	m[k] = v
	cp.Fields = m
	return &cp
}

// WithFields returns a shallow copy of e with all provided kv merged into
// Fields, with kv taking precedence on key conflicts.
func (e *APIError) WithFields(kv map[string]any) *APIError {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Fields)+len(kv))
	for k0, v0 := range cp.Fields {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Fields = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *APIError) WithCause(err error) *APIError {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// Problem converts the error into the RFC 7807 value to send to the client.
//
// The title falls back to the status code's canonical reason phrase when
// none was set. Fields become problem extensions; entries under reserved
// member names or with unserializable values are silently dropped, matching
// the non-failing extension setter. The cause is deliberately not carried
// over.
func (e *APIError) Problem() *probx.Problem {
	title := e.Title
	if title == "" {
		title = e.Status.ReasonPhrase()
	}

	p := probx.New(e.Status).
		WithTitle(title).
		WithDetail(e.Message)
	if e.TypeURL != "" {
		p = p.WithTypeURL(e.TypeURL)
	}
	if e.Instance != "" {
		p = p.WithInstance(e.Instance)
	}
	for k, v := range e.Fields {
		p = p.WithValue(k, v)
	}
	return p
}
