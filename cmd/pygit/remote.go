package main

import (
	"fmt"
	"sort"

	"github.com/harlowdev/pygit/internal/repo"
)

func runRemote(r *repo.Repository, args []string) int {
	if len(args) == 0 {
		remotes := r.Config().Remotes()
		names := make([]string, 0, len(remotes))
		for name := range remotes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return 0
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			return reportErr(repo.NewUsageError("remote", "expected add <name> <url>"))
		}
		if err := r.Config().AddRemote(args[1], args[2]); err != nil {
			return reportErr(err)
		}
		return 0
	case "remove":
		if len(args) != 2 {
			return reportErr(repo.NewUsageError("remote", "expected remove <name>"))
		}
		if err := r.Config().RemoveRemote(args[1]); err != nil {
			return reportErr(err)
		}
		return 0
	default:
		return reportErr(repo.NewUsageError("remote", "expected add|remove or no arguments"))
	}
}
