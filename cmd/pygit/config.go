package main

import (
	"fmt"

	"github.com/harlowdev/pygit/internal/repo"
)

func runConfig(r *repo.Repository, args []string) int {
	if len(args) < 1 || len(args) > 2 {
		return reportErr(repo.NewUsageError("config", "expected <key> [<value>]"))
	}
	key := args[0]
	if len(args) == 1 {
		value, ok := r.Config().Get(key)
		if !ok {
			return 1
		}
		fmt.Println(value)
		return 0
	}
	if err := r.Config().Set(key, args[1]); err != nil {
		return reportErr(err)
	}
	return 0
}
