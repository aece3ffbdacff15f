package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPutThenDeleteByURL(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads")

	res, err := l.Put(context.Background(), strings.NewReader("img-bytes"), PutInput{Filename: "photo.png"})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !strings.HasPrefix(res.URL, "/uploads/") || !strings.HasSuffix(res.Key, ".png") {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := os.Stat(filepath.Join(dir, res.Key)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	// Delete takes the public URL, not the key
	if err := l.Delete(context.Background(), res.URL); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, res.Key)); !os.IsNotExist(err) {
		t.Errorf("expected file removed, stat err=%v", err)
	}
}

func TestAllowedImage(t *testing.T) {
	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "d.webp", "e.gif"} {
		if !AllowedImage(name) {
			t.Errorf("expected %q to be allowed", name)
		}
	}
	for _, name := range []string{"notes.txt", "archive.zip", "noext"} {
		if AllowedImage(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
