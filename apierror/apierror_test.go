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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probx.dev/probx"
	"probx.dev/probx/status"
)

func TestE(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	e := E(status.MustParse(404), "order does not exist",
		WithFieldOption("order_id", "42"),
		WithCauseOption(cause),
	)

	assert.Equal(t, status.Code(404), e.Status)
	assert.Equal(t, "order does not exist", e.Message)
	assert.Equal(t, "42", e.Fields["order_id"])
	assert.Equal(t, cause, e.Cause)
	assert.Equal(t, "404: order does not exist", e.Error())
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("row not found")
	e := E(status.MustParse(404), "order does not exist").WithCause(cause)

	assert.ErrorIs(t, e, cause)
	assert.Equal(t, cause, errors.Unwrap(e))
}

func TestAPIError_CopyOnWrite(t *testing.T) {
	t.Parallel()

	e1 := E(status.MustParse(400), "bad input").WithField("k1", 1)
	e2 := e1.WithField("k2", 2)

	assert.Len(t, e1.Fields, 1)
	assert.Len(t, e2.Fields, 2)
	assert.NotContains(t, e1.Fields, "k2")
}

func TestAPIError_WithFields_Merge(t *testing.T) {
	t.Parallel()

	e := E(status.MustParse(400), "bad input").WithFields(map[string]any{"a": 1})
	e2 := e.WithFields(map[string]any{"a": 3, "b": 2})

	assert.Equal(t, 1, e.Fields["a"])
	assert.Equal(t, 3, e2.Fields["a"])
	assert.Equal(t, 2, e2.Fields["b"])
}

func TestAPIError_WithFreshInstance(t *testing.T) {
	t.Parallel()

	e := E(status.MustParse(500), "boom", WithFreshInstanceOption())

	require.True(t, strings.HasPrefix(e.Instance, "urn:uuid:"))

	e2 := e.WithFreshInstance()
	assert.NotEqual(t, e.Instance, e2.Instance)
}

func TestProblem_Conversion(t *testing.T) {
	t.Parallel()

	e := E(status.MustParse(404), "order does not exist",
		WithTypeURLOption("https://example.com/probs/missing-order"),
		WithInstanceOption("/orders/42"),
		WithFieldOption("order_id", "42"),
		WithCauseOption(errors.New("row not found")),
	)

	p := e.Problem()

	assert.Equal(t, status.Code(404), p.Status)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, "order does not exist", p.Detail)
	assert.Equal(t, "https://example.com/probs/missing-order", p.TypeURL)
	assert.Equal(t, "/orders/42", p.Instance)

	orderID, ok := probx.ValueAs[string](p, "order_id")
	require.True(t, ok)
	assert.Equal(t, "42", orderID)

	// The cause stays server-side.
	body, err := p.JSONString()
	require.NoError(t, err)
	assert.NotContains(t, body, "row not found")
}

func TestProblem_Conversion_ExplicitTitle(t *testing.T) {
	t.Parallel()

	p := E(status.MustParse(404), "gone", WithTitleOption("Missing Order")).Problem()

	assert.Equal(t, "Missing Order", p.Title)
}

func TestProblem_Conversion_DropsBadFields(t *testing.T) {
	t.Parallel()

	e := E(status.MustParse(400), "bad input").
		WithField("status", 999).
		WithField("callback", func() {}).
		WithField("field", "name")

	p := e.Problem()

	assert.Equal(t, []string{"field"}, p.Keys())
	assert.Equal(t, status.Code(400), p.Status)
}
