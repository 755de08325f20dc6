package main

import (
	"fmt"

	"github.com/harlowdev/pygit/internal/repo"
)

func runStash(r *repo.Repository, args []string) int {
	sub := "push"
	rest := args
	if len(args) > 0 {
		switch args[0] {
		case "push", "list", "pop", "apply":
			sub = args[0]
			rest = args[1:]
		}
	}

	switch sub {
	case "push":
		message := ""
		if len(rest) > 0 {
			message = rest[0]
		}
		ok, entry, err := r.StashPush(message)
		if err != nil {
			return reportErr(err)
		}
		if !ok {
			fmt.Println("No local changes to save")
			return 0
		}
		fmt.Printf("Saved working directory state: %s\n", entry.CommitID.Short())
		return 0
	case "list":
		entries, err := r.StashList()
		if err != nil {
			return reportErr(err)
		}
		for i, e := range entries {
			fmt.Printf("stash@{%d}: %s\n", i, e.Message)
		}
		return 0
	case "apply":
		entry, err := r.StashApply()
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("Applied stash@{0}: %s\n", entry.Message)
		return 0
	case "pop":
		entry, err := r.StashPop()
		if err != nil {
			return reportErr(err)
		}
		fmt.Printf("Dropped stash@{0}: %s\n", entry.Message)
		return 0
	default:
		return reportErr(repo.NewUsageError("stash", "expected push|list|pop|apply"))
	}
}
