package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

var (
	app = kingpin.New("classwork", "small classroom exercise tools")
)

var (
	studentsCmd  = app.Command("students", "edit a student roster interactively")
	studentsPath = studentsCmd.Arg("path", "roster file path").Required().String()
)

func studentsFn() error {
	roster, err := LoadRoster(*studentsPath)
	if err != nil {
		return err
	}
	return runStudents(roster, os.Stdin, os.Stdout)
}

var (
	turtleCmd  = app.Command("turtle", "trace a compass instruction string")
	turtleProg = turtleCmd.Arg("program", "instruction string, read from stdin if missing").String()
)

func turtleFn() error {
	program := *turtleProg
	if program == "" {
		r := newTokenReader(os.Stdin)
		program = r.ReadString()
		if r.Err() != nil {
			return fmt.Errorf("cannot read program: %w", r.Err())
		}
	}
	return runTurtle(program, os.Stdout)
}

var (
	connectCmd  = app.Command("connect", "answer obfuscated connectivity queries")
	connectPath = connectCmd.Arg("path", "query file path, read from stdin if missing").String()
)

func connectFn() error {
	var in io.Reader = os.Stdin
	if *connectPath != "" {
		fp, err := os.Open(*connectPath)
		if err != nil {
			return err
		}
		defer fp.Close()
		in = fp
	}
	return runConnect(in, os.Stdout)
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	switch cmd {
	case studentsCmd.FullCommand():
		return studentsFn()
	case turtleCmd.FullCommand():
		return turtleFn()
	case connectCmd.FullCommand():
		return connectFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
