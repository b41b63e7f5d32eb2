// Package wordlist tokenizes running text into the one-word-per-line
// lists consumed by the syllabifier's word-list mode.
package wordlist

import (
	"bufio"
	"io"
)

// Reader streams whitespace-delimited tokens from running text.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps r for token-by-token reading.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner}
}

// Next returns the next token.
// It returns io.EOF when the stream is exhausted.
func (r *Reader) Next() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Split copies r to w as a word list, one token per line.
func Split(r io.Reader, w io.Writer) error {
	reader := NewReader(r)
	buffered := bufio.NewWriter(w)
	for {
		token, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := buffered.WriteString(token + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}
