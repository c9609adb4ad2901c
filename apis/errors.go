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

package apis

// CodedError is an error classified by a stable, machine-readable code.
//
// The returned value must be non-empty and already normalized by the
// errwire/code rules. Boundaries treat unknown or empty codes as internal
// errors rather than trying to repair them.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable code, e.g. "not_found".
	ErrorCode() string
}

// KindedError is an error carrying a semantic category alongside its code.
// The kind answers "what class of failure", the code "which exact failure".
type KindedError interface {
	error

	// ErrorKind returns the category's wire name, e.g. "NotFound".
	ErrorKind() string
}

// CausedError exposes the direct underlying cause explicitly. The stdlib
// Unwrap contract is the primary traversal mechanism; this interface exists
// for boundaries that want the relationship spelled out without reaching
// for errors.As.
type CausedError interface {
	error

	// Cause returns the immediate underlying error, or nil.
	Cause() error
}
