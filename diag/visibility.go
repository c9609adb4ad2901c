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

package diag

// Visibility is the ordered disclosure tier of a diagnostic item. An item
// is visible under a minimum tier m when item tier >= m, so DevOnly items
// surface only where everything surfaces (local development) and Public
// items surface everywhere.
type Visibility uint8

const (
	// DevOnly restricts the item to the developer terminal. This is the
	// default for pushed items: diagnostics opt in to wider disclosure,
	// never out of it.
	DevOnly Visibility = iota

	// Internal allows the item on semi-trusted surfaces such as staging.
	Internal

	// Public allows the item anywhere, including production wire output.
	Public
)

// String returns the tier name used in Local rendering.
func (v Visibility) String() string {
	switch v {
	case DevOnly:
		return "dev-only"
	case Internal:
		return "internal"
	case Public:
		return "public"
	}
	return "dev-only"
}
