package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harlowdev/pygit/internal/repo"
)

// reportErr prints a diagnostic for err and returns the exit code the
// command should terminate with: 2 for a usage error (per spec.md §7's
// Usage kind), 1 for everything else.
func reportErr(err error) int {
	fmt.Fprintf(os.Stderr, "error: %v\n", err) //nolint:gosec // CLI stderr, not web output
	var re *repo.RepoError
	if errors.As(err, &re) && re.Kind == repo.KindUsage {
		return 2
	}
	return 1
}
