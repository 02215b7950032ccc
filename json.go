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

// MarshalJSON implements json.Marshaler.
//
// The wire form is a single flat JSON object: the fixed RFC 7807 members
// with absent fields omitted entirely (no explicit null), the status as its
// plain numeral, and every extension member merged alongside. Extension keys
// can never collide with fixed members because reserved names are rejected
// at insertion time.
func (p *Problem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.extensions)+5)
	for k, v := range p.extensions {
		m[k] = v
	}
	if p.TypeURL != "" {
		m["type"] = p.TypeURL
	}
	if p.Status != status.None {
		m["status"] = uint16(p.Status)
	}
	if p.Title != "" {
		m["title"] = p.Title
	}
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Unknown top-level members are captured into the extension map rather than
// rejected. An invalid status numeral does not fail the decode: the status
// is left absent so the rest of the payload stays recoverable, and out-of-
// range numerals are dropped the same way. Any other structural error (the
// input is not an object, a fixed member has the wrong type, a syntax error)
// fails the decode.
func (p *Problem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("probx: decode problem: %w", err)
	}

	decoded := Problem{}
	for key, value := range raw {
		switch key {
		case "type":
			if err := json.Unmarshal(value, &decoded.TypeURL); err != nil {
				return fmt.Errorf("probx: decode %q member: %w", key, err)
			}
		case "status":
			decoded.Status = decodeStatus(value)
		case "title":
			if err := json.Unmarshal(value, &decoded.Title); err != nil {
				return fmt.Errorf("probx: decode %q member: %w", key, err)
			}
		case "detail":
			if err := json.Unmarshal(value, &decoded.Detail); err != nil {
				return fmt.Errorf("probx: decode %q member: %w", key, err)
			}
		case "instance":
			if err := json.Unmarshal(value, &decoded.Instance); err != nil {
				return fmt.Errorf("probx: decode %q member: %w", key, err)
			}
		default:
			if decoded.extensions == nil {
				decoded.extensions = make(map[string]json.RawMessage, len(raw))
			}
			decoded.extensions[key] = value
		}
	}

	*p = decoded
	return nil
}

// decodeStatus converts a raw "status" member into a status code, absorbing
// every failure into absence. An invalid numeral in a received payload must
// not cost the recipient the rest of the problem.
func decodeStatus(raw json.RawMessage) status.Code {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return status.None
	}
	c, err := status.Parse(n)
	if err != nil {
		return status.None
	}
	return c
}

// FromJSON parses a JSON object into a Problem, per the UnmarshalJSON
// contract.
func FromJSON(data []byte) (*Problem, error) {
	p := Empty()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}

// JSONBytes serializes the problem to its canonical JSON wire form.
//
// Extension values are validated at insertion time, so for any problem built
// through this package's API the returned error is always nil.
func (p *Problem) JSONBytes() ([]byte, error) {
	return json.Marshal(p)
}

// JSONString serializes the problem to its canonical JSON wire form as a
// string.
func (p *Problem) JSONString() (string, error) {
	b, err := p.JSONBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
