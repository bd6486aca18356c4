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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a KnowledgeDocument failed validation.
	ErrInvalidDocument = errors.New("invalid knowledge document")

	// ErrEmptyQuestion indicates the Question field is empty after normalization.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrEmptyAnswer indicates the Answer field is empty after normalization.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrEmptyQuery indicates a request arrived without a query.
	ErrEmptyQuery = errors.New("query is required")

	// ErrEmptyLocation indicates a request arrived without a location.
	ErrEmptyLocation = errors.New("location is required")
)
