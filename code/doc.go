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

// Package code provides parsing, normalization and validation for errwire
// error codes, plus the built-in catalog.
//
// A code is the machine-readable identity of an error, such as "not_found"
// or "token_expired". Codes are:
//
//   - short and stable across releases;
//   - lowercased, underscore-separated;
//   - safe to embed in JSON, metrics labels, and registry keys.
//
// The empty code is never valid: every error record carries a non-empty
// code, defaulted from its kind when not set explicitly.
package code
