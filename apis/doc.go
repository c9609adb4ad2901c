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

// Package apis defines the public contracts between the errwire core and
// its transport adapters: small error-classification interfaces and the
// Mapper/Status pair produced by the protocol mapping registry.
//
// Adapters (httpx, grpcx, user code) target these interfaces instead of the
// concrete record type, so the core can evolve without breaking them. The
// package stays tiny on purpose: interfaces and view types only, no heavy
// dependencies.
package apis
