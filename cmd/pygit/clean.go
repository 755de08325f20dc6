package main

import (
	"fmt"

	"github.com/harlowdev/pygit/internal/repo"
)

func runClean(r *repo.Repository, args []string) int {
	dryRun, force, includeDirs := false, false, false
	for _, arg := range args {
		switch arg {
		case "-n", "--dry-run":
			dryRun = true
		case "-f", "--force":
			force = true
		case "-d":
			includeDirs = true
		default:
			return reportErr(repo.NewUsageError("clean", "unknown option: "+arg))
		}
	}
	if !dryRun && !force {
		return reportErr(repo.NewUsageError("clean", "refusing to clean without -n or -f"))
	}

	result, err := r.Clean(dryRun, includeDirs)
	if err != nil {
		return reportErr(err)
	}
	verb := "Removing"
	if dryRun {
		verb = "Would remove"
	}
	for _, f := range result.Files {
		fmt.Printf("%s %s\n", verb, f)
	}
	for _, d := range result.Dirs {
		fmt.Printf("%s %s/\n", verb, d)
	}
	return 0
}
