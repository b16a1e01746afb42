// Command fib runs FibLang programs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/yhirose/fiblang/pkg/interpreter"
	"github.com/yhirose/fiblang/pkg/parser"
	"github.com/yhirose/fiblang/pkg/runtime"
)

const historyFile = ".fiblang_history"

// Exit codes, one per failure category.
const (
	exitOK    = 0
	exitUsage = 1
	exitOpen  = 2
	exitParse = 3
	exitEval  = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return exitOK
	case "repl":
		return runREPL(stdout, stderr)
	case "run":
		if len(args) != 2 {
			printUsage(stderr)
			return exitUsage
		}
		return runFile(args[1], stdout, stderr)
	default:
		return runFile(args[0], stdout, stderr)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: fib [run] <source file path>")
	fmt.Fprintln(w, "       fib repl")
}

func runFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "can't open the source file: %v\n", err)
		return exitOpen
	}
	program, err := parser.Parse(string(source))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitParse
	}
	interp := interpreter.NewWithStdout(stdout)
	if _, err := interp.Run(program); err != nil {
		fmt.Fprintln(stderr, err)
		return exitEval
	}
	return exitOK
}

func runREPL(stdout, stderr io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyPath = filepath.Join(home, historyFile)
		if f, err := os.Open(historyPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(stdout, "FibLang REPL. Ctrl+D or :quit exits.")
	interp := interpreter.NewWithStdout(stdout)
	for {
		line, err := ln.Prompt("fib> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Fprintln(stdout)
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}
		ln.AppendHistory(line)

		program, err := parser.Parse(line)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		// Definitions land in the session-global environment, so they
		// persist across lines.
		val, err := interp.Run(program)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if val.Kind() != runtime.KindNil {
			fmt.Fprintln(stdout, runtime.Display(val))
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
	return exitOK
}
