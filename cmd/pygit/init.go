package main

import (
	"fmt"
	"log/slog"

	"github.com/harlowdev/pygit/internal/repo"
)

func runInit(args []string, logger *slog.Logger) int {
	dir := "."
	if len(args) > 1 {
		return reportErr(repo.NewUsageError("init", "too many arguments"))
	}
	if len(args) == 1 {
		dir = args[0]
	}

	r, err := repo.Init(dir, logger)
	if err != nil {
		return reportErr(err)
	}
	fmt.Printf("Initialized empty pygit repository in %s\n", r.MetaDir())
	return 0
}
