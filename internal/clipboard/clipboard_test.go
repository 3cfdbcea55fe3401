package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
)

func TestCopy(t *testing.T) {
	if !Supported() {
		t.Skip("clipboard not available in this environment")
	}

	const text = "banana"
	if err := Copy(text); err != nil {
		t.Fatalf("Copy(%q) returned error: %v", text, err)
	}

	got, err := clipboard.ReadAll()
	if err != nil {
		t.Fatalf("clipboard.ReadAll() returned error: %v", err)
	}
	if got != text {
		t.Errorf("clipboard content = %q, want %q", got, text)
	}
}

func TestCopy_SpecialCharacters(t *testing.T) {
	if !Supported() {
		t.Skip("clipboard not available in this environment")
	}

	const text = `Press [RETURN] to exit && echo "done"`
	if err := Copy(text); err != nil {
		t.Fatalf("Copy(%q) returned error: %v", text, err)
	}

	got, err := clipboard.ReadAll()
	if err != nil {
		t.Fatalf("clipboard.ReadAll() returned error: %v", err)
	}
	if got != text {
		t.Errorf("clipboard content = %q, want %q", got, text)
	}
}
