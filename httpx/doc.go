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

// Package httpx writes error records to HTTP boundaries as RFC 9457
// problem-details responses.
//
// The status comes from the protocol mapping registry, the body from the
// record filtered by the active display mode, and retry advice and auth
// challenges surface as their conventional headers (Retry-After,
// WWW-Authenticate).
package httpx
