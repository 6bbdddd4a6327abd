package main

import (
	"fmt"
	"io"
)

// connectivity answers an obfuscated stream of merge and reachability
// queries over a fixed universe of elements. Query operands are XOR
// encoded against an accumulator that grows with the component count
// after every query, so each query can only be decoded once all
// previous ones have been processed.
type connectivity struct {
	sets *UnionFind
	size int
	acc  int64
}

func newConnectivity(size int) (*connectivity, error) {
	if size < 1 {
		return nil, fmt.Errorf("universe size must be positive: %d", size)
	}
	return &connectivity{
		sets: NewUnionFind(size),
		size: size,
	}, nil
}

// decode recovers the real element pair from an encoded one, using the
// accumulator as it stood before the current query. The smaller index
// always comes first.
func (c *connectivity) decode(a, b int64) (int, int, error) {
	x := (a ^ c.acc) % int64(c.size)
	y := (b ^ c.acc) % int64(c.size)
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("element index out of range: %d, %d", x, y)
	}
	if x > y {
		x, y = y, x
	}
	return int(x), int(y), nil
}

// Step processes the query at position i of the stream. Even positions
// merge the decoded pair, odd positions report whether the pair is
// connected (answered is true and connected holds the answer). The
// accumulator grows by the component count either way.
func (c *connectivity) Step(i int, a, b int64) (answered, connected bool, err error) {
	x, y, err := c.decode(a, b)
	if err != nil {
		return false, false, err
	}
	if i%2 == 0 {
		c.sets.Merge(x, y)
	} else {
		answered = true
		connected = c.sets.Find(x) == c.sets.Find(y)
	}
	c.acc += int64(c.sets.Count())
	return answered, connected, nil
}

// runConnect reads a problem (universe size, query count, then the
// encoded query pairs) and writes one 0/1 line per reachability query.
func runConnect(in io.Reader, out io.Writer) error {
	r := newTokenReader(in)
	size := r.ReadInt()
	queries := r.ReadInt()
	if r.Err() != nil {
		return fmt.Errorf("cannot read problem header: %w", r.Err())
	}
	if queries < 0 {
		return fmt.Errorf("%w: negative query count: %d", ErrMalformedInput, queries)
	}
	conn, err := newConnectivity(size)
	if err != nil {
		return err
	}
	for i := 0; i < queries; i++ {
		a := r.ReadInt64()
		b := r.ReadInt64()
		if r.Err() != nil {
			return fmt.Errorf("cannot read query %d: %w", i, r.Err())
		}
		answered, connected, err := conn.Step(i, a, b)
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		if answered {
			if connected {
				fmt.Fprintln(out, 1)
			} else {
				fmt.Fprintln(out, 0)
			}
		}
	}
	return nil
}
