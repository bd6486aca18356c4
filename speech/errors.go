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


package speech

import "errors"

var (
	// ErrSynthesizerRequired indicates that a speech synthesizer was not provided.
	ErrSynthesizerRequired = errors.New("speech synthesizer is required")

	// ErrArtifactStoreRequired indicates that an artifact store was not provided.
	ErrArtifactStoreRequired = errors.New("artifact store is required")
)
