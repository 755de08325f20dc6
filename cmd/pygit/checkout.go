package main

import "github.com/harlowdev/pygit/internal/repo"

func runCheckout(r *repo.Repository, args []string) int {
	if len(args) != 1 {
		return reportErr(repo.NewUsageError("checkout", "expected exactly one <name>"))
	}
	if err := r.Checkout(args[0]); err != nil {
		return reportErr(err)
	}
	return 0
}
