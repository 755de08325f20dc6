package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/harlowdev/pygit/internal/repo"
	"github.com/harlowdev/pygit/internal/termcolor"
)

func runDiff(r *repo.Repository, args []string, cw *termcolor.Writer) int {
	staged := false
	for _, arg := range args {
		if arg == "--staged" {
			staged = true
		} else {
			return reportErr(repo.NewUsageError("diff", "unknown option: "+arg))
		}
	}

	var fromTree, toTree repo.Tree
	var err error
	if staged {
		fromTree, err = headTree(r)
		if err != nil {
			return reportErr(err)
		}
		toTree = r.Index()
	} else {
		fromTree = r.Index()
		toTree, err = r.WorkdirTree()
		if err != nil {
			return reportErr(err)
		}
		// WorkdirTree only hashes files; store the content of changed files
		// so FileDiffBlobs can read both sides.
		changed := repo.DiffTrees(fromTree, toTree)
		for _, p := range append(changed.Added, changed.Modified...) {
			content, err := os.ReadFile(filepath.Join(r.Root(), filepath.FromSlash(p)))
			if err != nil {
				return reportErr(err)
			}
			if _, err := r.WriteBlob(content); err != nil {
				return reportErr(err)
			}
		}
	}

	delta := repo.DiffTrees(fromTree, toTree)
	return printDiff(r, fromTree, toTree, delta, cw)
}

func headTree(r *repo.Repository) (repo.Tree, error) {
	headID, ok, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	if !ok {
		return repo.Tree{}, nil
	}
	treeID, err := r.TreeOf(headID)
	if err != nil {
		return nil, err
	}
	return r.ReadTree(treeID)
}

func printDiff(r *repo.Repository, fromTree, toTree repo.Tree, delta repo.TreeDelta, cw *termcolor.Writer) int {
	printPath := func(path string, fromID, toID repo.Hash) int {
		fmt.Println(cw.Bold(fmt.Sprintf("diff --pygit a/%s b/%s", path, path)))
		fileDiff, err := r.FileDiffBlobs(fromID, toID, "a/"+path, "b/"+path)
		if err != nil {
			fmt.Printf("warning: %v\n", err)
			return 0
		}
		if fileDiff.IsBinary {
			fmt.Println("Binary files differ")
			return 0
		}
		if fromID == "" {
			fmt.Println(cw.Bold("--- /dev/null"))
		} else {
			fmt.Println(cw.Bold("--- " + fileDiff.FromLabel))
		}
		if toID == "" {
			fmt.Println(cw.Bold("+++ /dev/null"))
		} else {
			fmt.Println(cw.Bold("+++ " + fileDiff.ToLabel))
		}
		for _, hunk := range fileDiff.Hunks {
			fmt.Println(cw.Cyan(fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldLines, hunk.NewStart, hunk.NewLines)))
			for _, line := range hunk.Lines {
				switch line.Type {
				case repo.LineContext:
					fmt.Printf(" %s\n", line.Content)
				case repo.LineAdd:
					fmt.Println(cw.Green("+" + line.Content))
				case repo.LineDel:
					fmt.Println(cw.Red("-" + line.Content))
				}
			}
		}
		return 0
	}

	sort.Strings(delta.Added)
	sort.Strings(delta.Deleted)
	sort.Strings(delta.Modified)

	for _, path := range delta.Added {
		printPath(path, "", toTree[path])
	}
	for _, path := range delta.Deleted {
		printPath(path, fromTree[path], "")
	}
	for _, path := range delta.Modified {
		printPath(path, fromTree[path], toTree[path])
	}
	return 0
}
