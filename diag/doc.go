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

// Package diag holds the advisory diagnostics bundle of an error record:
// hints, suggestions, a documentation link and related codes, each tagged
// with an ordered visibility tier (DevOnly < Internal < Public).
//
// Diagnostics never influence error identity or protocol mapping; they only
// enrich what a renderer may show, filtered by the active display mode's
// minimum tier.
package diag
