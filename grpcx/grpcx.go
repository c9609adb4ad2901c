/*
   Copyright 2025 The Errwire Authors

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
	"context"
	"errors"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"errwire.dev/errwire"
	"errwire.dev/errwire/apis"
	"errwire.dev/errwire/diag"
	"errwire.dev/errwire/metadata"
)

// Domain identifies this runtime in errdetails.ErrorInfo payloads.
const Domain = "errwire.dev"

// ToStatus converts an error record into a gRPC status with rich details:
//
//   - errdetails.ErrorInfo carrying the code, kind and Prod-safe metadata;
//   - errdetails.RetryInfo when the record carries retry advice;
//   - errdetails.Help when the record carries a Public doc link.
//
// Disclosure follows Prod rules: gRPC clients are external by default, so
// only None-policy fields and non-redacted messages cross this boundary.
func ToStatus(e *errwire.Error, m apis.Mapper) *gstatus.Status {
	msg := e.Message
	if e.Policy == errwire.Redact || msg == "" {
		msg = e.Kind.Label()
	}
	base := gstatus.New(m.GRPCStatus(e.Code, e.Kind), msg)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: map[string]string{"kind": e.Kind.String()},
	}
	for entry := range e.Meta.AllWithRedaction() {
		if entry.Redaction == metadata.None {
			info.Metadata[entry.Name] = entry.Value.String()
		}
	}

	details := []protoadapt.MessageV1{info}

	if e.Retry != nil {
		details = append(details, &errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(e.Retry.AfterSeconds) * time.Second),
		})
	}
	if doc, ok := e.Diagnostics().VisibleDoc(diag.Public); ok {
		details = append(details, &errdetails.Help{
			Links: []*errdetails.Help_Link{{Description: doc.Title, Url: doc.URL}},
		})
	}

	with, err := base.WithDetails(details...)
	if err != nil {
		// Details are advisory; the bare status still carries code + message.
		return base
	}
	return with
}

// UnaryServerInterceptor maps error records returned by handlers into gRPC
// statuses via the given registry. Errors that are not errwire records pass
// through untouched.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var e *errwire.Error
		if !errors.As(err, &e) {
			return nil, err
		}
		return nil, ToStatus(e, m).Err()
	}
}

// ExtractErrorInfo pulls the errwire ErrorInfo out of a gRPC error, if
// present. Useful in clients and tests.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}
