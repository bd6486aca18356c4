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

import "fmt"

// ValidateDocument validates a KnowledgeDocument according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//   - Answer must not be empty
//   - Id must match the content hash of (Question, Answer)
//
// NOT validated:
//   - Embedding (can be empty until the ingestor computes it)
//   - SourceOrdinal (diagnostics only)
func ValidateDocument(doc *KnowledgeDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyQuestion)
	}

	if doc.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyAnswer)
	}

	if doc.Id != DocumentID(doc.Question, doc.Answer) {
		return fmt.Errorf("%w: id does not match content", ErrInvalidDocument)
	}

	return nil
}

// NewDocument builds a KnowledgeDocument from already-normalized texts,
// deriving its content-addressed identity.
func NewDocument(question, answer string, ordinal int) *KnowledgeDocument {
	return &KnowledgeDocument{
		Id:            DocumentID(question, answer),
		Question:      question,
		Answer:        answer,
		SourceOrdinal: ordinal,
	}
}
