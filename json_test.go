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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probx.dev/probx/status"
)

func TestJSON_EncodeExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    *Problem
		want string
	}{
		{
			name: "status and explicit title",
			p:    New(status.MustParse(404)).WithTitle("Not Found"),
			want: `{"status":404,"title":"Not Found"}`,
		},
		{
			name: "derived title",
			p:    NewWithTitle(status.MustParse(404)),
			want: `{"status":404,"title":"Not Found"}`,
		},
		{
			name: "derived title and type",
			p:    NewWithTitleAndType(status.MustParse(503)),
			want: `{"status":503,"title":"Service Unavailable","type":"https://httpstatuses.com/503"}`,
		},
		{
			name: "empty problem",
			p:    Empty(),
			want: `{}`,
		},
		{
			name: "all members",
			p: New(status.MustParse(422)).
				WithTitle("Out of credit").
				WithDetail("Balance is 30, that costs 50.").
				WithTypeURL("https://example.com/probs/out-of-credit").
				WithInstance("/account/12345/msgs/abc").
				WithValue("balance", 30),
			want: `{"balance":30,"detail":"Balance is 30, that costs 50.","instance":"/account/12345/msgs/abc","status":422,"title":"Out of credit","type":"https://example.com/probs/out-of-credit"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.p.JSONString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON_AbsentMembersOmitted(t *testing.T) {
	t.Parallel()

	got, err := New(status.MustParse(404)).JSONString()
	require.NoError(t, err)

	// Omitted entirely, not serialized as null.
	assert.NotContains(t, got, "detail")
	assert.NotContains(t, got, "null")
	assert.Equal(t, `{"status":404}`, got)
}

func TestJSON_RoundTrip_FixedFields(t *testing.T) {
	t.Parallel()

	in := New(status.MustParse(422)).
		WithTitle("Out of credit").
		WithDetail("Balance is 30, that costs 50.").
		WithTypeURL("https://example.com/probs/out-of-credit").
		WithInstance("/account/12345/msgs/abc")

	data, err := in.JSONBytes()
	require.NoError(t, err)

	out, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJSON_RoundTrip_Extensions(t *testing.T) {
	t.Parallel()

	in := NewWithTitle(status.MustParse(429)).
		WithValue("balance", 30).
		WithValue("accounts", []string{"/a/1", "/a/2"}).
		WithValue("meta", map[string]any{"retriable": true})

	data, err := in.JSONBytes()
	require.NoError(t, err)

	out, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, in.Keys(), out.Keys())

	balance, ok := ValueAs[int](out, "balance")
	require.True(t, ok)
	assert.Equal(t, 30, balance)

	accounts, ok := ValueAs[[]string](out, "accounts")
	require.True(t, ok)
	assert.Equal(t, []string{"/a/1", "/a/2"}, accounts)

	meta, ok := ValueAs[map[string]any](out, "meta")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"retriable": true}, meta)
}

func TestJSON_UnknownMembersBecomeExtensions(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"type": "https://example.com/probs/out-of-credit",
		"status": 403,
		"title": "Forbidden",
		"balance": 30,
		"accounts": ["/account/12345"]
	}`)

	p, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, status.Code(403), p.Status)
	assert.Equal(t, "Forbidden", p.Title)
	assert.Equal(t, []string{"accounts", "balance"}, p.Keys())

	balance, ok := ValueAs[int](p, "balance")
	require.True(t, ok)
	assert.Equal(t, 30, balance)
}

func TestJSON_StatusTolerance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"out of range", `{"status":99999,"title":"Strange","detail":"kept"}`},
		{"zero", `{"status":0,"title":"Strange","detail":"kept"}`},
		{"negative", `{"status":-1,"title":"Strange","detail":"kept"}`},
		{"fractional", `{"status":404.5,"title":"Strange","detail":"kept"}`},
		{"not a number", `{"status":"teapot","title":"Strange","detail":"kept"}`},
		{"null", `{"status":null,"title":"Strange","detail":"kept"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := FromJSON([]byte(tt.data))
			require.NoError(t, err)

			// The invalid status is absorbed into absence; siblings survive.
			assert.Equal(t, status.None, p.Status)
			assert.Equal(t, "Strange", p.Title)
			assert.Equal(t, "kept", p.Detail)
			assert.Empty(t, p.Keys())
		})
	}
}

func TestJSON_DecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"not an object", `[1,2,3]`},
		{"bare string", `"problem"`},
		{"syntax error", `{"status":404`},
		{"mistyped title", `{"title":17}`},
		{"mistyped type", `{"type":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestJSON_ExtensionsMemberIsCaptured(t *testing.T) {
	t.Parallel()

	// A top-level "extensions" member in a received payload is just another
	// unknown member; only the setter API refuses the name.
	p, err := FromJSON([]byte(`{"status":400,"extensions":{"a":1}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"extensions"}, p.Keys())
}
