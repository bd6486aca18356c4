package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
		{
			name:    "non-latin content",
			content: "धान के लिए कौन सा खाद अच्छा है?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent(%q) not deterministic: %d != %d", tt.content, id1, id2)
			}
		})
	}
}

func TestIDFromContent_DifferentContent(t *testing.T) {
	id1 := IDFromContent("what fertilizer for rice")
	id2 := IDFromContent("what fertilizer for wheat")

	if id1 == id2 {
		t.Errorf("different content produced the same ID: %d", id1)
	}
}

func TestDocumentID(t *testing.T) {
	// Identity must be stable across invocations and match the separator scheme.
	id1 := DocumentID("question text", "answer text")
	id2 := DocumentID("question text", "answer text")
	if id1 != id2 {
		t.Fatalf("DocumentID not deterministic: %d != %d", id1, id2)
	}

	if DocumentID("question text", "answer text") != IDFromContent("question text|answer text") {
		t.Error("DocumentID does not match the question|answer hashing scheme")
	}

	// Swapping question and answer must change the identity.
	if DocumentID("a", "b") == DocumentID("b", "a") {
		t.Error("swapped question/answer collided")
	}
}
