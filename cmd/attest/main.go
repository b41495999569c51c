package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Exit codes: a failed verdict is a completed comparison, distinct from the
// pipeline itself breaking.
const (
	exitVerdictFailed = 1
	exitPipelineError = 2
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	if isVerdictError(err) {
		os.Exit(exitVerdictFailed)
	}
	os.Exit(exitPipelineError)
}

func isVerdictError(err error) bool {
	return errors.Is(err, errVerificationFailed) || errors.Is(err, errFingerprintsDiffer)
}
