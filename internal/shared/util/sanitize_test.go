package util

import (
	"strings"
	"testing"
)

func TestCleanFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"  resume.docx  ", "resume.docx"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\jane\CV.docx`, "CV.docx"},
		{"line\nbreak.txt", "linebreak.txt"},
		{"", "upload"},
		{"..", "upload"},
		{"/", "upload"},
	}
	for _, tc := range cases {
		if got := CleanFileName(tc.in); got != tc.want {
			t.Fatalf("CleanFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanFileNameCapsLength(t *testing.T) {
	got := CleanFileName(strings.Repeat("é", 200) + ".txt")
	if len(got) > maxFileNameLen {
		t.Fatalf("expected at most %d bytes, got %d", maxFileNameLen, len(got))
	}
	if !strings.HasPrefix(got, "é") {
		t.Fatalf("expected valid utf-8 prefix, got %q", got[:4])
	}
}
