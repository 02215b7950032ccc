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

package grpcx

import (
	"encoding/json"

	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"probx.dev/probx"
)

// ToStatus converts a problem into a gRPC status.
//
// The gRPC code is derived from the problem's effective HTTP status (500
// when the problem carries none), and the full problem object is attached as
// a structpb.Struct detail so clients can recover every member, extensions
// included, with FromError.
//
// The status message is the problem's single-line diagnostic rendering.
func ToStatus(p *probx.Problem) *gstatus.Status {
	if p == nil {
		return nil
	}

	base := gstatus.New(CodeFromHTTP(int(p.StatusOrDefault())), p.Error())

	detail, err := structDetail(p)
	if err != nil {
		return base
	}
	// Try to attach the problem as a detail. If it fails — return base.
	if with, err := base.WithDetails(detail); err == nil {
		return with
	}
	return base
}

// ToError converts a problem into a gRPC error, ready to be returned from a
// handler or interceptor.
func ToError(p *probx.Problem) error {
	return ToStatus(p).Err()
}

// FromError pulls a problem out of a gRPC error, if one was attached by
// ToStatus. Useful in tests and client code.
func FromError(err error) (*probx.Problem, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		raw, err := s.MarshalJSON()
		if err != nil {
			continue
		}
		p, err := probx.FromJSON(raw)
		if err != nil {
			continue
		}
		return p, true
	}
	return nil, false
}

// structDetail renders the problem's JSON wire form as a structpb.Struct so
// it can ride along as a status detail.
func structDetail(p *probx.Problem) (*structpb.Struct, error) {
	raw, err := p.JSONBytes()
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}
