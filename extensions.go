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
	"errors"
	"fmt"
	"sort"
)

// ErrReservedKey is returned when an extension key collides with one of the
// RFC 7807 member names or the internal container name.
var ErrReservedKey = errors.New("probx: reserved extension key")

// reservedKeys are the member names that can never be used as extension
// keys: the five fixed RFC 7807 members plus the internal container name.
var reservedKeys = map[string]struct{}{
	"type":       {},
	"status":     {},
	"title":      {},
	"detail":     {},
	"instance":   {},
	"extensions": {},
}

// TryWithValue returns a shallow copy of p with the value stored under the
// given extension key, overwriting any previous entry for that key.
//
// It fails with ErrReservedKey when the key is one of the fixed member
// names, and with a wrapped encoding error when the value cannot be
// serialized to JSON. On failure the original problem is returned unchanged
// alongside the error; no partial mutation ever happens.
func (p *Problem) TryWithValue(key string, value any) (*Problem, error) {
	if _, ok := reservedKeys[key]; ok {
		return p, fmt.Errorf("%w: %q", ErrReservedKey, key)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return p, fmt.Errorf("probx: encode extension %q: %w", key, err)
	}

	cp := *p
	ext := make(map[string]json.RawMessage, len(p.extensions)+1)
	for k, v := range p.extensions {
		ext[k] = v
	}
	ext[key] = raw
	cp.extensions = ext
	return &cp, nil
}

// WithValue is the non-failing variant of TryWithValue. When the key is
// reserved or the value cannot be serialized, the original problem is
// returned unchanged.
func (p *Problem) WithValue(key string, value any) *Problem {
	cp, _ := p.TryWithValue(key, value)
	return cp
}

// JSONValue returns the serialized JSON stored under the given extension
// key, without attempting any conversion. The second return value reports
// whether the key exists.
func (p *Problem) JSONValue(key string) (json.RawMessage, bool) {
	raw, ok := p.extensions[key]
	return raw, ok
}

// Keys returns a snapshot of all extension key names currently stored,
// sorted for deterministic iteration. The slice is freshly allocated on
// each call.
func (p *Problem) Keys() []string {
	keys := make([]string, 0, len(p.extensions))
	for k := range p.extensions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValueAs deserializes the extension stored under the given key into T.
//
// The second return value is false when the key does not exist or the
// stored JSON does not deserialize into T. A type mismatch is reported as
// absence, never as an error.
func ValueAs[T any](p *Problem, key string) (T, bool) {
	var out T
	raw, ok := p.extensions[key]
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
