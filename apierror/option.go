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

// Option is a functional option for constructing or transforming an
// APIError. It always takes an *APIError and returns a (possibly new)
// *APIError.
type Option func(*APIError) *APIError

// WithTitleOption sets the title on the error being constructed.
// Intended to be used with E(...).
func WithTitleOption(title string) Option {
	return func(e *APIError) *APIError {
		return e.WithTitle(title)
	}
}

// WithTypeURLOption sets the problem type URL on construction.
// Intended to be used with E(...).
func WithTypeURLOption(typeURL string) Option {
	return func(e *APIError) *APIError {
		return e.WithTypeURL(typeURL)
	}
}

// WithInstanceOption sets the occurrence URI on construction.
// Intended to be used with E(...).
func WithInstanceOption(instance string) Option {
	return func(e *APIError) *APIError {
		return e.WithInstance(instance)
	}
}

// WithFreshInstanceOption generates a new "urn:uuid:" occurrence URI on
// construction. Intended to be used with E(...).
func WithFreshInstanceOption() Option {
	return func(e *APIError) *APIError {
		return e.WithFreshInstance()
	}
}

// WithFieldOption adds a single field key/value on construction.
// Intended to be used with E(...).
func WithFieldOption(k string, v any) Option {
	return func(e *APIError) *APIError {
		return e.WithField(k, v)
	}
}

// WithFieldsOption merges multiple field key/values on construction.
// Intended to be used with E(...).
func WithFieldsOption(kv map[string]any) Option {
	return func(e *APIError) *APIError {
		return e.WithFields(kv)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *APIError) *APIError {
		return e.WithCause(err)
	}
}
