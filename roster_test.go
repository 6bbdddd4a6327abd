package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterFixture = `
1001 HYOGO_CHIKA 132 163 43
1002 MOTOYAMA_TAEKO 74 185 99
1003 HIGASHI_NADAO 148 198 83
1004 ASHIYA_RIE 133 99 98
`

func readRosterString(t *testing.T, s string) *Roster {
	t.Helper()
	roster, err := ReadRoster(strings.NewReader(s))
	require.NoError(t, err)
	return roster
}

func rosterIds(recs []Student) []int {
	ids := make([]int, len(recs))
	for i, s := range recs {
		ids[i] = s.Id
	}
	return ids
}

func TestReadRoster(t *testing.T) {
	roster := readRosterString(t, rosterFixture)
	require.Equal(t, 4, roster.Len())

	recs := roster.Records()
	if diff := cmp.Diff([]int{1001, 1002, 1003, 1004}, rosterIds(recs)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	// Totals are filled in on load.
	assert.Equal(t, 338, recs[0].Total)
	assert.Equal(t, 429, recs[2].Total)
}

func TestReadRosterErrors(t *testing.T) {
	t.Run("truncated record", func(t *testing.T) {
		_, err := ReadRoster(strings.NewReader("1001 HYOGO_CHIKA 132 163"))
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("non integer score", func(t *testing.T) {
		_, err := ReadRoster(strings.NewReader("1001 HYOGO_CHIKA 132 abc 43"))
		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("empty input", func(t *testing.T) {
		roster, err := ReadRoster(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, roster.Len())
	})

	t.Run("too many students", func(t *testing.T) {
		input := &bytes.Buffer{}
		for i := 0; i <= MaxStudents; i++ {
			fmt.Fprintf(input, "%d S%d 1 2 3\n", 1001+i, i)
		}
		_, err := ReadRoster(input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many students")
	})
}

func TestRosterInsertAfter(t *testing.T) {
	roster := readRosterString(t, rosterFixture)

	err := roster.InsertAfter(1002, &Student{Id: 1010, Name: "YAMADA",
		English: 100, Math: 155, Japanese: 180})
	require.NoError(t, err)
	roster.RecomputeTotals()

	require.Equal(t, 5, roster.Len())
	recs := roster.Records()
	if diff := cmp.Diff([]int{1001, 1002, 1010, 1003, 1004}, rosterIds(recs)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, 435, recs[2].Total)

	t.Run("unknown id", func(t *testing.T) {
		err := roster.InsertAfter(9999, &Student{Id: 1011, Name: "NOBODY"})
		require.Error(t, err)
		assert.Equal(t, 5, roster.Len())
	})
}

func TestRosterDeleteAfter(t *testing.T) {
	t.Run("middle", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		del, err := roster.DeleteAfter("MOTOYAMA_TAEKO")
		require.NoError(t, err)
		assert.Equal(t, 1003, del.Id)
		assert.Equal(t, []int{1001, 1002, 1004}, rosterIds(roster.Records()))
	})

	t.Run("after head", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		del, err := roster.DeleteAfter("HYOGO_CHIKA")
		require.NoError(t, err)
		assert.Equal(t, 1002, del.Id)
	})

	t.Run("unknown name", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		_, err := roster.DeleteAfter("NOBODY")
		require.Error(t, err)
		assert.Equal(t, 4, roster.Len())
	})

	t.Run("last student", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		_, err := roster.DeleteAfter("ASHIYA_RIE")
		require.Error(t, err)
	})
}

func TestRosterSorted(t *testing.T) {
	roster := readRosterString(t, rosterFixture)
	// 429, 358, 338, 330
	want := []int{1003, 1002, 1001, 1004}
	if diff := cmp.Diff(want, rosterIds(roster.Sorted())); diff != "" {
		t.Fatalf("unexpected sort (-want +got):\n%s", diff)
	}
	// The list itself is untouched.
	assert.Equal(t, []int{1001, 1002, 1003, 1004}, rosterIds(roster.Records()))
}

func TestRunStudents(t *testing.T) {
	t.Run("push pop quit", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		session := "1\n1004 1010 YAMADA 100 155 180\n2\nHYOGO_CHIKA\n3\n"
		out := &bytes.Buffer{}
		err := runStudents(roster, strings.NewReader(session), out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "1010 YAMADA")
		assert.Contains(t, out.String(), "deleted 1002 MOTOYAMA_TAEKO")
		assert.Equal(t, []int{1001, 1003, 1004, 1010}, rosterIds(roster.Records()))
	})

	t.Run("end of input quits", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		err := runStudents(roster, strings.NewReader(""), &bytes.Buffer{})
		require.NoError(t, err)
	})

	t.Run("bad delete keeps running", func(t *testing.T) {
		roster := readRosterString(t, rosterFixture)
		session := "2\nNOBODY\n3\n"
		out := &bytes.Buffer{}
		err := runStudents(roster, strings.NewReader(session), out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "no student named")
		assert.Equal(t, 4, roster.Len())
	})
}

func TestLoadRoster(t *testing.T) {
	roster, err := LoadRoster("testdata/students.txt")
	require.NoError(t, err)
	assert.Equal(t, 9, roster.Len())
	assert.Equal(t, 1003, roster.Sorted()[0].Id)
}
