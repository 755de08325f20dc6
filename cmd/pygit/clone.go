package main

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/harlowdev/pygit/internal/progress"
	"github.com/harlowdev/pygit/internal/repo"
)

func runClone(args []string, logger *slog.Logger) int {
	if len(args) < 1 || len(args) > 2 {
		return reportErr(repo.NewUsageError("clone", "expected <url> [<dir>]"))
	}
	url := args[0]
	src := strings.TrimPrefix(url, "file://")

	var dir string
	if len(args) == 2 {
		dir = args[1]
	} else {
		dir = path.Base(strings.TrimSuffix(src, "/"))
	}

	spinner := progress.New(fmt.Sprintf("Cloning into %q...", dir))
	spinner.Start()
	r, err := repo.Clone(src, dir, logger)
	spinner.Stop()
	if err != nil {
		return reportErr(err)
	}
	fmt.Printf("Cloned into %s\n", r.Root())
	return 0
}
