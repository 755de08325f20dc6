package main

import (
	"fmt"

	"github.com/harlowdev/pygit/internal/repo"
)

func runCommit(r *repo.Repository, args []string) int {
	var message string
	var haveMessage bool

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-m" && i+1 < len(args):
			i++
			message = args[i]
			haveMessage = true
		default:
			return reportErr(repo.NewUsageError("commit", "unknown option: "+args[i]))
		}
	}
	if !haveMessage {
		return reportErr(repo.NewUsageError("commit", "missing -m <message>"))
	}

	var parents []repo.Hash
	if headID, ok, err := r.HeadCommit(); err != nil {
		return reportErr(err)
	} else if ok {
		parents = []repo.Hash{headID}
	}

	before, _, _ := r.HeadCommit()
	id, err := r.Commit(message, parents)
	if err != nil {
		return reportErr(err)
	}
	if id == before {
		fmt.Println("nothing to commit, working tree matches HEAD")
		return 0
	}
	fmt.Printf("[%s] %s\n", id.Short(), firstLine(message))
	return 0
}
