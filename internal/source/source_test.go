package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain", []byte("var a = 1;"), "var a = 1;"},
		{"utf8 bom", []byte("\xef\xbb\xbfvar a;"), "var a;"},
		{"utf16 le", []byte{0xff, 0xfe, 'a', 0, '=', 0, '1', 0}, "a=1"},
		{"utf16 be", []byte{0xfe, 0xff, 0, 'a', 0, ';'}, "a;"},
		{"non ascii", []byte("s = \"\xc3\xa9\""), "s = \"\u00e9\""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 'x', 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("Read() = %q", got)
	}
	if _, err := Read(filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
