package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// SanitizeFilename keeps letters, digits, dot, underscore and dash;
// everything else becomes an underscore. Any path components are
// stripped first.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') || char == '.' || char == '_' || char == '-' {
			b.WriteRune(char)
		} else {
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "file"
	}
	return out
}

// UniqueFilename prefixes the sanitized name with a timestamp and a
// random hex tag so concurrent uploads never collide on disk.
func UniqueFilename(name string) string {
	tag := make([]byte, 4)
	rand.Read(tag)
	return fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), hex.EncodeToString(tag), SanitizeFilename(name))
}
