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

// Package status provides parsing and validation for HTTP status codes as
// they appear in problem-details payloads.
//
// A status.Code is a numeric HTTP status code that is known to be inside the
// representable range (100-999). Codes are meant to be:
//
//   - constructed from trusted net/http constants via MustParse, or
//   - parsed from untrusted numerals via Parse, which reports ErrInvalidCode
//     instead of ever producing an out-of-range value.
//
// The zero value None ("no status") is valid to store in problem structs and
// means "not provided". Callers that require a concrete code should check
// with Validate or fall back to a default themselves.
package status
