package main

import (
	"fmt"
	"strings"

	"github.com/harlowdev/pygit/internal/present"
	"github.com/harlowdev/pygit/internal/repo"
	"github.com/harlowdev/pygit/internal/termcolor"
)

func runShow(r *repo.Repository, args []string, cw *termcolor.Writer) int {
	rev := "HEAD"
	if len(args) > 1 {
		return reportErr(repo.NewUsageError("show", "expected at most one <ref>"))
	}
	if len(args) == 1 {
		rev = args[0]
	}

	id, err := r.ResolveToCommit(rev)
	if err != nil {
		return reportErr(err)
	}
	c, err := r.ReadCommit(id)
	if err != nil {
		return reportErr(err)
	}

	decorations, err := buildDecorations(r, cw)
	if err != nil {
		return reportErr(err)
	}
	decor := ""
	if d, ok := decorations[c.ID]; ok {
		decor = " " + cw.Yellow("(") + d + cw.Yellow(")")
	}

	fmt.Printf("%s %s%s\n", cw.Yellow("commit"), cw.Yellow(string(c.ID)), decor)
	if len(c.Parents) > 1 {
		parentStrs := make([]string, len(c.Parents))
		for j, p := range c.Parents {
			parentStrs[j] = p.Short()
		}
		fmt.Printf("Merge: %s\n", strings.Join(parentStrs, " "))
	}
	fmt.Printf("Author: %s <%s>\n", c.Author.Name, c.Author.Email)
	fmt.Printf("Date:   %s\n", c.Author.When.Format("Mon Jan 2 15:04:05 2006 -0700"))
	fmt.Println()
	fmt.Println(indentLines(present.Render(c.Message)))

	if len(c.Parents) > 1 {
		return 0
	}

	toTree, err := r.ReadTree(c.Tree)
	if err != nil {
		return reportErr(err)
	}
	fromTree := repo.Tree{}
	if len(c.Parents) == 1 {
		parent, err := r.ReadCommit(c.Parents[0])
		if err != nil {
			return reportErr(err)
		}
		fromTree, err = r.ReadTree(parent.Tree)
		if err != nil {
			return reportErr(err)
		}
	}

	delta := repo.DiffTrees(fromTree, toTree)

	fmt.Println()
	return printDiff(r, fromTree, toTree, delta, cw)
}
