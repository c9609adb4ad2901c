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

// Package render turns error records into their per-mode wire forms.
//
// Prod emits the minimum-disclosure JSON object; Staging adds a bounded
// source chain and transformation-redacted metadata; Local emits the full
// labeled text block for a developer terminal, with optional ANSI color
// that decorates but never alters the text.
//
// Renderers never fail: advisory content that cannot serialize is omitted,
// and a redacted message falls back to the kind's label where text is
// required.
package render
