package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrMalformedInput = errors.New("malformed input")

// tokenReader reads whitespace separated values and latches the first
// failure, so parsing code can read a whole unit and check Err() once.
type tokenReader struct {
	sc      *bufio.Scanner
	pending string
	hasTok  bool
	err     error
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (r *tokenReader) Err() error {
	return r.err
}

// More reports whether another token is available without consuming it.
// It never latches an error on a clean end of input.
func (r *tokenReader) More() bool {
	if r.err != nil {
		return false
	}
	if r.hasTok {
		return true
	}
	if !r.sc.Scan() {
		r.err = r.sc.Err()
		return false
	}
	r.pending = r.sc.Text()
	r.hasTok = true
	return true
}

func (r *tokenReader) next() string {
	if r.err != nil {
		return ""
	}
	if r.hasTok {
		r.hasTok = false
		return r.pending
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = err
		} else {
			r.err = fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
		}
		return ""
	}
	return r.sc.Text()
}

func (r *tokenReader) ReadString() string {
	return r.next()
}

func (r *tokenReader) ReadInt() int {
	tok := r.next()
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		r.err = fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
		return 0
	}
	return n
}

func (r *tokenReader) ReadInt64() int64 {
	tok := r.next()
	if r.err != nil {
		return 0
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
		return 0
	}
	return n
}
