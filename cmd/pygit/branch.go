package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harlowdev/pygit/internal/repo"
	"github.com/harlowdev/pygit/internal/termcolor"
)

func runBranch(r *repo.Repository, args []string, cw *termcolor.Writer) int {
	var deleteName string
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "-d" || args[i] == "-D" {
			if i+1 >= len(args) {
				return reportErr(repo.NewUsageError("branch", "-d requires a branch name"))
			}
			i++
			deleteName = args[i]
			continue
		}
		rest = append(rest, args[i])
	}

	if deleteName != "" {
		if err := r.DeleteBranch(deleteName); err != nil {
			return reportErr(err)
		}
		fmt.Printf("Deleted branch %s\n", deleteName)
		return 0
	}

	if len(rest) == 0 {
		return listBranches(r, cw)
	}
	if len(rest) > 2 {
		return reportErr(repo.NewUsageError("branch", "expected <name> [<start>]"))
	}
	start := ""
	if len(rest) == 2 {
		start = rest[1]
	}
	if _, err := r.CreateBranch(rest[0], start); err != nil {
		return reportErr(err)
	}
	return 0
}

func listBranches(r *repo.Repository, cw *termcolor.Writer) int {
	names, err := r.ListBranches()
	if err != nil {
		return reportErr(err)
	}
	sort.Strings(names)

	current := ""
	if ref, detached, _, err := r.HeadRef(); err != nil {
		return reportErr(err)
	} else if !detached {
		current = strings.TrimPrefix(ref, "refs/heads/")
	}

	for _, name := range names {
		if name == current {
			fmt.Printf("* %s\n", cw.Green(name))
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
	return 0
}
