package main

import "github.com/harlowdev/pygit/internal/repo"

func runRm(r *repo.Repository, args []string) int {
	if len(args) != 1 {
		return reportErr(repo.NewUsageError("rm", "expected exactly one path"))
	}
	if err := r.Rm(args[0]); err != nil {
		return reportErr(err)
	}
	return 0
}
