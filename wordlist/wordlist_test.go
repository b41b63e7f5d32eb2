package wordlist

import (
	"io"
	"strings"
	"testing"
)

func TestReaderNext(t *testing.T) {
	reader := NewReader(strings.NewReader("זומער  קינדער\nשבת"))
	want := []string{"זומער", "קינדער", "שבת"}
	for _, token := range want {
		got, err := reader.Next()
		if err != nil {
			t.Fatal(err)
		}
		if got != token {
			t.Errorf("Next() = %q, want %q", got, token)
		}
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next() after last token = %v, want io.EOF", err)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("repeated Next() at end = %v, want io.EOF", err)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	reader := NewReader(strings.NewReader("  \n\t "))
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next() on blank input = %v, want io.EOF", err)
	}
}

func TestSplit(t *testing.T) {
	var out strings.Builder
	if err := Split(strings.NewReader("זומער קינדער\nשבת"), &out); err != nil {
		t.Fatal(err)
	}
	want := "זומער\nקינדער\nשבת\n"
	if out.String() != want {
		t.Errorf("Split wrote %q, want %q", out.String(), want)
	}
}
