package main

import "github.com/harlowdev/pygit/internal/repo"

func runAdd(r *repo.Repository, args []string) int {
	if len(args) != 1 {
		return reportErr(repo.NewUsageError("add", "expected exactly one path"))
	}
	if err := r.Add(args[0]); err != nil {
		return reportErr(err)
	}
	return 0
}
