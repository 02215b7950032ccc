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

	"go.uber.org/zap/zapcore"

	"probx.dev/probx/status"
)

// Ensure Problem integrates with zap's structured logging.
var _ zapcore.ObjectMarshaler = (*Problem)(nil)

// MarshalLogObject implements zapcore.ObjectMarshaler so problems can be
// logged as structured fields via zap.Object("problem", p).
//
// Absent members are omitted, mirroring the JSON wire form. Extension values
// are decoded from their stored JSON before being handed to the encoder so
// log sinks see structured data, not escaped strings.
func (p *Problem) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if p.TypeURL != "" {
		enc.AddString("type", p.TypeURL)
	}
	if p.Status != status.None {
		enc.AddUint16("status", uint16(p.Status))
	}
	if p.Title != "" {
		enc.AddString("title", p.Title)
	}
	if p.Detail != "" {
		enc.AddString("detail", p.Detail)
	}
	if p.Instance != "" {
		enc.AddString("instance", p.Instance)
	}

	for _, key := range p.Keys() {
		var value any
		if err := json.Unmarshal(p.extensions[key], &value); err != nil {
			return err
		}
		if err := enc.AddReflected(key, value); err != nil {
			return err
		}
	}
	return nil
}
