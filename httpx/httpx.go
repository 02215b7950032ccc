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

package httpx

import (
	"net/http"
	"strconv"

	"probx.dev/probx"
)

// fallbackBody is written when the problem itself fails to serialize. The
// stored extension values are validated at insertion time, so this path is
// unreachable for problems built through the probx API.
const fallbackBody = `{"status":500,"title":"Internal Server Error"}`

// Write serializes the problem and writes it as an HTTP response.
//
// The response carries Content-Type "application/problem+json", an explicit
// Content-Length, and the problem's effective status code (500 when the
// problem carries none).
//
// No redaction or filtering is performed here: whatever is present in the
// problem is exposed as-is. Handlers should apply policies before calling
// Write if needed.
func Write(rw http.ResponseWriter, p *probx.Problem) {
	if p == nil {
		return
	}

	st := int(p.StatusOrDefault())
	body, err := p.JSONBytes()
	if err != nil {
		st = int(probx.DefaultStatus)
		body = []byte(fallbackBody)
	}

	rw.Header().Set("Content-Type", probx.MediaTypeJSON)
	rw.Header().Set("Content-Length", strconv.Itoa(len(body)))
	rw.WriteHeader(st)
	_, _ = rw.Write(body)
}

// Handler returns an http.Handler that responds with the given problem on
// every request. Useful for mounting fixed error endpoints and in tests.
func Handler(p *probx.Problem) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		Write(rw, p)
	})
}
