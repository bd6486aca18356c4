// Copyright 2025 SIH-25 contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package weather

import "errors"

var (
	// ErrAPIKeyRequired indicates that an API key was not provided.
	ErrAPIKeyRequired = errors.New("weather api key is required")

	// ErrLocationNotFound indicates the geocoder returned no match.
	ErrLocationNotFound = errors.New("location not found")

	// ErrRequestFailed indicates a non-200 response from the weather API.
	ErrRequestFailed = errors.New("weather request failed")
)
