package filesystem

import (
	"bytes"
	"testing"

	"github.com/kasperdew/stroom/test"
)

func TestLocalReadWriteRoundTrip(t *testing.T) {
	fs := NewLocal(t.TempDir())

	content := []byte("hello, stroom")
	test.NoError(t, fs.WriteFile("greeting.txt", content))

	got, err := fs.ReadFile("greeting.txt")
	test.NoError(t, err)
	if !bytes.Equal(got, content) {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestLocalReadMissingFile(t *testing.T) {
	fs := NewLocal(t.TempDir())

	_, err := fs.ReadFile("nope.txt")
	test.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalFileExists(t *testing.T) {
	fs := NewLocal(t.TempDir())

	exists, err := fs.FileExists("nope.txt")
	test.NoError(t, err)
	test.Equal(t, false, exists)

	test.NoError(t, fs.WriteFile("yep.txt", []byte("x")))
	exists, err = fs.FileExists("yep.txt")
	test.NoError(t, err)
	test.Equal(t, true, exists)
}

func TestLocalConfinesPathsToRoot(t *testing.T) {
	root := t.TempDir()
	fs := NewLocal(root)

	escapes := []string{
		"../outside.txt",
		"../../etc/passwd",
		"sub/../../outside.txt",
	}
	for _, name := range escapes {
		if _, err := fs.ReadFile(name); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
		if err := fs.WriteFile(name, []byte("x")); err == nil {
			t.Errorf("expected write to %q to be rejected", name)
		}
	}
}

func TestLocalEmptyRootRejectsEverything(t *testing.T) {
	fs := NewLocal("")

	_, err := fs.ReadFile("anything.txt")
	test.ErrorIs(t, err, ErrInvalidPath)
}
