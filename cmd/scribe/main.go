package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes.
const (
	ExitSuccess = 0
	ExitPartial = 1 // transcript produced, some chunks failed
	ExitError   = 2 // fatal pipeline or configuration error
)

// partialFailureError indicates a transcript was produced but some chunks
// are gaps.
type partialFailureError struct {
	message string
}

func (e *partialFailureError) Error() string { return e.message }

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var partial *partialFailureError
		if errors.As(err, &partial) {
			os.Exit(ExitPartial)
		}
		os.Exit(ExitError)
	}
}
