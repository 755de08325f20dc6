package main

import (
	"fmt"

	"github.com/harlowdev/pygit/internal/repo"
)

func runRebase(r *repo.Repository, args []string) int {
	if len(args) != 1 {
		return reportErr(repo.NewUsageError("rebase", "expected exactly one <branch>"))
	}
	if err := r.Rebase(args[0]); err != nil {
		return reportErr(err)
	}
	fmt.Printf("Successfully rebased onto %s\n", args[0])
	return 0
}
