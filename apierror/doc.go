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

// Package apierror provides an error type for API handlers that converts
// into a probx.Problem.
//
// An APIError is what handler code returns: it wraps the underlying cause
// for logs and errors.Is/As chains, carries the status code and the
// client-facing message, and collects structured fields that end up as
// problem extensions. At the transport edge, Problem() produces the RFC 7807
// value that httpx or grpcx presenters can write out.
package apierror
