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

// Package mode resolves and caches the process-wide display mode
// (Prod, Local or Staging) that governs how error records render at
// transport boundaries.
//
// Resolution consults, in order: the ERRWIRE_MODE override, the presence of
// an orchestration marker (KUBERNETES_SERVICE_HOST), and finally the build
// mode (the dev build tag selects Local, release builds select Prod). The
// result is cached for the life of the process.
package mode
