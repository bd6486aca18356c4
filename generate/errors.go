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


package generate

import "errors"

var (
	// ErrGeneratorRequired indicates that an LLM generator was not provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrInvalidMinWords indicates a non-positive quality gate.
	ErrInvalidMinWords = errors.New("minWords must be greater than 0")
)
