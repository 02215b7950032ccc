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
	"net/http"

	gcodes "google.golang.org/grpc/codes"
)

// httpToGRPC maps HTTP status codes with a distinct gRPC counterpart. Codes
// not listed here fall back to their class in CodeFromHTTP.
var httpToGRPC = map[int]gcodes.Code{
	http.StatusBadRequest:                   gcodes.InvalidArgument,
	http.StatusUnauthorized:                 gcodes.Unauthenticated,
	http.StatusForbidden:                    gcodes.PermissionDenied,
	http.StatusNotFound:                     gcodes.NotFound,
	http.StatusRequestTimeout:               gcodes.DeadlineExceeded,
	http.StatusConflict:                     gcodes.Aborted,
	http.StatusPreconditionFailed:           gcodes.FailedPrecondition,
	http.StatusRequestedRangeNotSatisfiable: gcodes.OutOfRange,
	http.StatusTooManyRequests:              gcodes.ResourceExhausted,
	499:                                     gcodes.Canceled, // client closed request
	http.StatusInternalServerError:          gcodes.Internal,
	http.StatusNotImplemented:               gcodes.Unimplemented,
	http.StatusServiceUnavailable:           gcodes.Unavailable,
	http.StatusGatewayTimeout:               gcodes.DeadlineExceeded,
}

// CodeFromHTTP resolves an HTTP status code into the gRPC code used when a
// problem crosses a gRPC boundary. Unlisted codes map by class: 2xx to OK,
// 4xx to InvalidArgument, 5xx to Internal, anything else to Unknown.
func CodeFromHTTP(httpStatus int) gcodes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	switch {
	case httpStatus >= 200 && httpStatus < 300:
		return gcodes.OK
	case httpStatus >= 400 && httpStatus < 500:
		return gcodes.InvalidArgument
	case httpStatus >= 500 && httpStatus < 600:
		return gcodes.Internal
	default:
		return gcodes.Unknown
	}
}
