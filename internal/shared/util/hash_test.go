package util

import "testing"

func TestContentHash(t *testing.T) {
	data := []byte("Jane Doe resume")
	got := ContentHash(data)
	if got != ContentHash(data) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if got == ContentHash([]byte("other")) {
		t.Fatalf("expected different hash for different content")
	}
}
