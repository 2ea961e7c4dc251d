package helper

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo (1).png", "my_photo__1_.png"},
		{"../../etc/passwd", "passwd"},
		{"", "file"},
		{"..", "file"},
		{"résumé.pdf", "r_sum_.pdf"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUniqueFilenameNoCollisions(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := UniqueFilename("photo.png")
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		if !strings.HasSuffix(name, "_photo.png") {
			t.Fatalf("original name lost: %q", name)
		}
	}
}
