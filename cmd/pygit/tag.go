package main

import (
	"fmt"
	"sort"

	"github.com/harlowdev/pygit/internal/repo"
)

func runTag(r *repo.Repository, args []string) int {
	var message string
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "-m" {
			if i+1 >= len(args) {
				return reportErr(repo.NewUsageError("tag", "-m requires a message"))
			}
			i++
			message = args[i]
			continue
		}
		rest = append(rest, args[i])
	}

	if len(rest) == 0 {
		names, err := r.ListTags()
		if err != nil {
			return reportErr(err)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return 0
	}
	if len(rest) > 2 {
		return reportErr(repo.NewUsageError("tag", "expected [-m <msg>] [<name> [<target>]]"))
	}
	target := "HEAD"
	if len(rest) == 2 {
		target = rest[1]
	}
	if _, err := r.CreateTag(rest[0], target, message); err != nil {
		return reportErr(err)
	}
	return 0
}
