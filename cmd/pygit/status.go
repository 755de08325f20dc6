package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harlowdev/pygit/internal/repo"
)

func runStatus(r *repo.Repository, args []string) int {
	porcelain := false
	for _, arg := range args {
		if arg == "-s" || arg == "--porcelain" {
			porcelain = true
		} else {
			return reportErr(repo.NewUsageError("status", "unknown option: "+arg))
		}
	}

	status, err := r.Status()
	if err != nil {
		return reportErr(err)
	}
	sort.Slice(status.Files, func(i, j int) bool {
		return status.Files[i].Path < status.Files[j].Path
	})

	if porcelain {
		for _, f := range status.Files {
			fmt.Println(repo.PorcelainLine(f))
		}
		return 0
	}
	return printLongStatus(r, status)
}

func printLongStatus(r *repo.Repository, status *repo.WorkingTreeStatus) int {
	headRef, detached, rawHead, err := r.HeadRef()
	if err != nil {
		return reportErr(err)
	}
	if !detached {
		fmt.Printf("On branch %s\n", strings.TrimPrefix(headRef, "refs/heads/"))
	} else {
		fmt.Printf("HEAD detached at %s\n", rawHead.Short())
	}

	var staged, unstaged, untracked []repo.FileState
	for _, f := range status.Files {
		if f.Untracked {
			untracked = append(untracked, f)
			continue
		}
		if f.StagedStatus != "" {
			staged = append(staged, f)
		}
		if f.WorkStatus != "" {
			unstaged = append(unstaged, f)
		}
	}

	if len(staged) > 0 {
		fmt.Println("Changes to be committed:")
		for _, f := range staged {
			fmt.Printf("\t%s%s\n", statusPrefix(f.StagedStatus), f.Path)
		}
		fmt.Println()
	}
	if len(unstaged) > 0 {
		fmt.Println("Changes not staged for commit:")
		for _, f := range unstaged {
			fmt.Printf("\t%s%s\n", statusPrefix(f.WorkStatus), f.Path)
		}
		fmt.Println()
	}
	if len(untracked) > 0 {
		fmt.Println("Untracked files:")
		for _, f := range untracked {
			fmt.Printf("\t%s\n", f.Path)
		}
		fmt.Println()
	}
	if len(staged) == 0 && len(unstaged) == 0 && len(untracked) == 0 {
		fmt.Println("nothing to commit, working tree clean")
	}
	return 0
}

func statusPrefix(s string) string {
	switch s {
	case "added":
		return "new file:   "
	case "modified":
		return "modified:   "
	case "deleted":
		return "deleted:    "
	default:
		return ""
	}
}
