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


package language

import "errors"

var (
	// ErrDetectorRequired indicates that a language detector was not provided.
	ErrDetectorRequired = errors.New("language detector is required")

	// ErrTranslatorRequired indicates that a translator was not provided.
	ErrTranslatorRequired = errors.New("translator is required")
)
