package main

import (
	"fmt"
	"sort"

	"github.com/harlowdev/pygit/internal/repo"
)

func runMerge(r *repo.Repository, args []string) int {
	if len(args) != 1 {
		return reportErr(repo.NewUsageError("merge", "expected exactly one <branch>"))
	}
	result, err := r.Merge(args[0])
	if err != nil {
		return reportErr(err)
	}
	switch {
	case result.AlreadyUpToDate:
		fmt.Println("Already up to date.")
	case result.FastForward:
		fmt.Printf("Fast-forward to %s\n", result.CommitID.Short())
	case result.Conflicted:
		sort.Strings(result.ConflictPaths)
		fmt.Println("Automatic merge failed; fix conflicts and commit the result.")
		for _, p := range result.ConflictPaths {
			fmt.Printf("CONFLICT: %s\n", p)
		}
		return 1
	default:
		fmt.Printf("Merge made by the three-way strategy: %s\n", result.CommitID.Short())
	}
	return 0
}
