package manifest_test

import (
	"errors"
	"testing"

	"skeinsum/internal/manifest"
)

func TestParse_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		want      manifest.Entry
		malformed bool
	}{
		{
			name: "text mode",
			line: "00ff  a.txt\n",
			want: manifest.Entry{Hex: "00ff", Filename: "a.txt", Mode: manifest.Text},
		},
		{
			name: "binary mode",
			line: "00ff *a.bin\n",
			want: manifest.Entry{Hex: "00ff", Filename: "a.bin", Mode: manifest.Binary},
		},
		{
			name: "no terminator",
			line: "ABCD  upper.txt",
			want: manifest.Entry{Hex: "ABCD", Filename: "upper.txt", Mode: manifest.Text},
		},
		{
			name: "crlf terminator",
			line: "abcd  dos.txt\r\n",
			want: manifest.Entry{Hex: "abcd", Filename: "dos.txt", Mode: manifest.Text},
		},
		{
			name: "filename with spaces and asterisk",
			line: "abcd  my *odd* file \n",
			want: manifest.Entry{Hex: "abcd", Filename: "my *odd* file ", Mode: manifest.Text},
		},
		{
			name: "filename starting with space",
			line: "abcd * x\n",
			want: manifest.Entry{Hex: "abcd", Filename: " x", Mode: manifest.Binary},
		},
		{name: "empty", line: "\n", malformed: true},
		{name: "blank", line: "   \n", malformed: true},
		{name: "odd digest", line: "abc  file\n", malformed: true},
		{name: "non hex digest", line: "zz  file\n", malformed: true},
		{name: "no separator", line: "abcd\n", malformed: true},
		{name: "single separator", line: "abcd file\n", malformed: true},
		{name: "missing filename", line: "abcd  \n", malformed: true},
		{name: "missing filename binary", line: "abcd *\n", malformed: true},
		{name: "tab separator", line: "abcd\t\tfile\n", malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.Parse(tt.line)
			if tt.malformed {
				var me *manifest.MalformedLineError
				if !errors.As(err, &me) {
					t.Fatalf("expected *MalformedLineError, got %v (entry %+v)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("entry mismatch:\n got: %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := manifest.Format("abcd", "f.txt", manifest.Text); got != "abcd  f.txt\n" {
		t.Fatalf("text format: got %q", got)
	}
	if got := manifest.Format("abcd", "f.bin", manifest.Binary); got != "abcd *f.bin\n" {
		t.Fatalf("binary format: got %q", got)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	names := []string{
		"plain",
		"with space",
		" leading",
		"trailing ",
		"*star",
		"dir/sub/file.tar.gz",
		"unicode-é中",
		"-",
	}
	hexes := []string{"00", "0123456789abcdef", "DEADBEEF"}

	for _, name := range names {
		for _, hx := range hexes {
			for _, mode := range []manifest.Mode{manifest.Text, manifest.Binary} {
				got, err := manifest.Parse(manifest.Format(hx, name, mode))
				if err != nil {
					t.Fatalf("Parse(Format(%q, %q, %v)): %v", hx, name, mode, err)
				}
				want := manifest.Entry{Hex: hx, Filename: name, Mode: mode}
				if got != want {
					t.Fatalf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
				}
			}
		}
	}
}
