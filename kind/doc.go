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

// Package kind declares the closed semantic categories of errwire error
// records.
//
// A kind answers "what class of failure is this?" (NotFound, Validation,
// Timeout, ...) while the code from errwire.dev/errwire/code answers "which
// exact failure is this?". Each kind owns a canonical default code, a stable
// wire name, and a human label used as message fallback.
package kind
