package blob

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResumeStoreRoundTrip(t *testing.T) {
	s, err := NewResumeStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := s.Save([]byte("blob"), "My CV (final).PDF")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if ext := filepath.Ext(path); ext != ".pdf" {
		t.Fatalf("ext = %q, want sanitized .pdf", ext)
	}
	if strings.Contains(filepath.Base(path), "My CV") {
		t.Fatalf("original name leaked into %q", path)
	}

	data, err := s.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if string(data) != "blob" {
		t.Fatalf("data = %q", data)
	}

	if err := s.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := s.Open(path); err == nil {
		t.Fatal("open after remove should fail")
	}
}

func TestResumeStoreRefusesEscapes(t *testing.T) {
	s, err := NewResumeStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, path := range []string{"/etc/passwd", "../outside", filepath.Join("..", "..", "x")} {
		if _, err := s.Open(path); err == nil {
			t.Errorf("Open(%q) should refuse paths outside the store", path)
		}
		if err := s.Remove(path); err == nil {
			t.Errorf("Remove(%q) should refuse paths outside the store", path)
		}
	}
}
