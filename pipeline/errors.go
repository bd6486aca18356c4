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


package pipeline

import "errors"

var (
	// ErrLanguageStageRequired indicates that a language stage was not provided.
	ErrLanguageStageRequired = errors.New("language stage is required")

	// ErrRetrieverRequired indicates that a retriever was not provided.
	ErrRetrieverRequired = errors.New("retriever is required")

	// ErrGeneratorRequired indicates that a generator was not provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrSpeechStageRequired indicates that a speech stage was not provided.
	ErrSpeechStageRequired = errors.New("speech stage is required")

	// ErrInvalidStageTimeout indicates a non-positive stage timeout.
	ErrInvalidStageTimeout = errors.New("stage timeout must be greater than 0")
)
