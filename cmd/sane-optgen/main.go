package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vast-data/sane-optgen/core"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err and returns the exit code for it. Descriptor faults
// are printed with their stack so the failing build points at the generator.
func reportError(w io.Writer, err error) int {
	if exitErr, ok := err.(*ExitError); ok {
		fmt.Fprintln(w, exitErr.Message)
		return exitErr.Code
	}
	if core.IsParseErr(err) {
		fmt.Fprintf(w, "sane-optgen: %+v\n", err)
		return 1
	}
	fmt.Fprintf(w, "sane-optgen: %v\n", err)
	return 1
}
