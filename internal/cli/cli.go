package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"nota/internal/notes"
)

// Run executes the CLI with the given arguments and returns the process
// exit code.
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "check", "c":
		return runCheck(cmdArgs, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stdout)
		return 1
	}
}

// runCheck validates note fields without launching the TUI, for use from
// scripts. Exit code 1 when either field is invalid.
func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "Note title to validate")
	content := fs.String("content", "", "Note text to validate")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	exitCode := 0
	if err := notes.ValidateTitle(*title); err != nil {
		fmt.Fprintf(stdout, "title: %s\n", err)
		exitCode = 1
	}
	if err := notes.ValidateContent(*content); err != nil {
		fmt.Fprintf(stdout, "content: %s\n", err)
		exitCode = 1
	}

	if exitCode == 0 {
		fmt.Fprintln(stdout, "ok")
	}
	return exitCode
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `nota - Minimal personal note manager

Usage: nota [flags] [command]

Commands:
  check, c    Validate note fields without starting the TUI
              nota check --title "My Title" --content "Hello"
              Prints one violation per field; exit code 1 on any violation.

  help        Show this help message

Flags:
      --preview-length <n>   Characters of note text shown in list rows
      --no-confirm-delete    Delete notes without a confirmation prompt

Running nota without arguments launches the interactive TUI.`)
}
