package main

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// MaxStudents bounds the roster size, matching the data files the
// course hands out.
const MaxStudents = 100

type Student struct {
	Id       int
	Name     string
	English  int
	Math     int
	Japanese int
	Total    int

	next *Student
}

// Roster is a singly linked list of students in insertion order.
type Roster struct {
	head *Student
	size int
}

func LoadRoster(path string) (*Roster, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	roster, err := ReadRoster(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roster, nil
}

// ReadRoster parses whitespace separated records of the form
// "id name english math japanese" until the end of input.
func ReadRoster(r io.Reader) (*Roster, error) {
	roster := &Roster{}
	var tail *Student
	tr := newTokenReader(r)
	for tr.More() {
		s := &Student{}
		s.Id = tr.ReadInt()
		s.Name = tr.ReadString()
		s.English = tr.ReadInt()
		s.Math = tr.ReadInt()
		s.Japanese = tr.ReadInt()
		if tr.Err() != nil {
			return nil, fmt.Errorf("cannot read student %d: %w", roster.size+1, tr.Err())
		}
		if roster.size >= MaxStudents {
			return nil, fmt.Errorf("too many students, the roster holds at most %d", MaxStudents)
		}
		if tail == nil {
			roster.head = s
		} else {
			tail.next = s
		}
		tail = s
		roster.size++
	}
	if tr.Err() != nil {
		return nil, tr.Err()
	}
	roster.RecomputeTotals()
	return roster, nil
}

func (r *Roster) Len() int {
	return r.size
}

// RecomputeTotals refreshes every total from the three scores.
func (r *Roster) RecomputeTotals() {
	for p := r.head; p != nil; p = p.next {
		p.Total = p.English + p.Math + p.Japanese
	}
}

// InsertAfter links s behind the student carrying the given id.
func (r *Roster) InsertAfter(id int, s *Student) error {
	if r.size >= MaxStudents {
		return fmt.Errorf("the roster is full (%d students)", MaxStudents)
	}
	p := r.head
	for p != nil && p.Id != id {
		p = p.next
	}
	if p == nil {
		return fmt.Errorf("no student with id %d", id)
	}
	s.next = p.next
	p.next = s
	r.size++
	return nil
}

// DeleteAfter removes and returns the student following the first one
// with the given name.
func (r *Roster) DeleteAfter(name string) (*Student, error) {
	p := r.head
	for p != nil && p.Name != name {
		p = p.next
	}
	if p == nil {
		return nil, fmt.Errorf("no student named %q", name)
	}
	if p.next == nil {
		return nil, fmt.Errorf("%q is the last student, nothing follows it", name)
	}
	del := p.next
	p.next = del.next
	del.next = nil
	r.size--
	return del, nil
}

// Records returns a flat copy of the list in insertion order.
func (r *Roster) Records() []Student {
	recs := make([]Student, 0, r.size)
	for p := r.head; p != nil; p = p.next {
		s := *p
		s.next = nil
		recs = append(recs, s)
	}
	return recs
}

// Sorted returns a flat copy sorted by total score, best first.
func (r *Roster) Sorted() []Student {
	recs := r.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Total > recs[j].Total
	})
	return recs
}

func writeStudents(w io.Writer, recs []Student) {
	fmt.Fprintln(w, "/////////////////////////////////////////////////////")
	fmt.Fprintf(w, "%6s %-14s %4s %4s %4s %4s\n", "id", "name", "eng", "math", "jpn", "sum")
	for _, s := range recs {
		fmt.Fprintf(w, "%6d %-14s %4d %4d %4d %4d\n",
			s.Id, s.Name, s.English, s.Math, s.Japanese, s.Total)
	}
	fmt.Fprintln(w)
}

func writeRosterReport(w io.Writer, roster *Roster) {
	fmt.Fprintln(w, "---------- insertion order ----------")
	writeStudents(w, roster.Records())
	fmt.Fprintln(w, "---------- by total score ----------")
	writeStudents(w, roster.Sorted())
}

// runStudents prints the roster then runs the interactive editing loop
// until quit or end of input.
func runStudents(roster *Roster, in io.Reader, out io.Writer) error {
	writeRosterReport(out, roster)
	tr := newTokenReader(in)
	for {
		fmt.Fprint(out, "\n1:push, 2:pop, 3:quit --> ")
		if !tr.More() {
			// End of input quits the session.
			return tr.Err()
		}
		choice := tr.ReadInt()
		if tr.Err() != nil {
			return tr.Err()
		}
		switch choice {
		case 1:
			fmt.Fprint(out, "insert after student id: ")
			prev := tr.ReadInt()
			s := &Student{}
			fmt.Fprint(out, "student id: ")
			s.Id = tr.ReadInt()
			fmt.Fprint(out, "student name: ")
			s.Name = tr.ReadString()
			fmt.Fprint(out, "english score: ")
			s.English = tr.ReadInt()
			fmt.Fprint(out, "math score: ")
			s.Math = tr.ReadInt()
			fmt.Fprint(out, "japanese score: ")
			s.Japanese = tr.ReadInt()
			if tr.Err() != nil {
				return tr.Err()
			}
			if err := roster.InsertAfter(prev, s); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			roster.RecomputeTotals()
			writeRosterReport(out, roster)
		case 2:
			fmt.Fprint(out, "delete after student name: ")
			name := tr.ReadString()
			if tr.Err() != nil {
				return tr.Err()
			}
			del, err := roster.DeleteAfter(name)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "deleted %d %s\n", del.Id, del.Name)
			writeRosterReport(out, roster)
		case 3:
			return nil
		default:
			fmt.Fprintln(out, "unknown choice")
		}
	}
}
