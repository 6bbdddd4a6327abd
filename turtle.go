package main

import (
	"fmt"
	"io"
	"sort"
)

// maxProgram bounds the instruction string length, matching the inputs
// the course hands out.
const maxProgram = 100

// Mark is a position visited by the turtle.
type Mark struct {
	X, Y int
}

// parseDistance reads leading decimal digits and returns the value and
// the number of bytes consumed. No digits means distance zero.
func parseDistance(s string) (int, int) {
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, i
}

// Walk runs a compass program such as "N10E5S3" from the origin and
// returns every visited position, the start included.
func Walk(program string) ([]Mark, error) {
	if len(program) > maxProgram {
		return nil, fmt.Errorf("%w: program longer than %d bytes", ErrMalformedInput, maxProgram)
	}
	x, y := 0, 0
	marks := []Mark{{0, 0}}
	for i := 0; i < len(program); {
		dir := program[i]
		i++
		dist, digits := parseDistance(program[i:])
		i += digits
		switch dir {
		case 'N':
			y += dist
		case 'S':
			y -= dist
		case 'E':
			x += dist
		case 'W':
			x -= dist
		default:
			return nil, fmt.Errorf("%w: unknown direction %q", ErrMalformedInput, string(dir))
		}
		marks = append(marks, Mark{x, y})
	}
	return marks, nil
}

func sortMarks(marks []Mark) {
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].X != marks[j].X {
			return marks[i].X < marks[j].X
		}
		return marks[i].Y < marks[j].Y
	})
}

func writeMarks(w io.Writer, marks []Mark) {
	for i, m := range marks {
		fmt.Fprintf(w, "%2d: %d %d\n", i, m.X, m.Y)
	}
}

func runTurtle(program string, out io.Writer) error {
	marks, err := Walk(program)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "marks (placed order) -----")
	writeMarks(out, marks)
	sortMarks(marks)
	fmt.Fprintln(out, "marks (sorted) -----")
	writeMarks(out, marks)
	return nil
}
