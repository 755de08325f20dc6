package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harlowdev/pygit/internal/present"
	"github.com/harlowdev/pygit/internal/repo"
	"github.com/harlowdev/pygit/internal/termcolor"
)

func runLog(r *repo.Repository, args []string, cw *termcolor.Writer) int {
	maxCount := 0
	oneline := false

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--oneline":
			oneline = true
		case args[i] == "-n" && i+1 < len(args):
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return reportErr(repo.NewUsageError("log", "invalid -n value: "+args[i]))
			}
			maxCount = n
		case strings.HasPrefix(args[i], "-n"):
			n, err := strconv.Atoi(args[i][2:])
			if err != nil {
				return reportErr(repo.NewUsageError("log", "invalid -n value: "+args[i][2:]))
			}
			maxCount = n
		default:
			return reportErr(repo.NewUsageError("log", "unknown option: "+args[i]))
		}
	}

	headID, ok, err := r.HeadCommit()
	if err != nil {
		return reportErr(err)
	}
	if !ok {
		return 0
	}
	commits, err := r.FirstParentHistory(headID)
	if err != nil {
		return reportErr(err)
	}
	if maxCount > 0 && len(commits) > maxCount {
		commits = commits[:maxCount]
	}

	decorations, err := buildDecorations(r, cw)
	if err != nil {
		return reportErr(err)
	}

	for i, c := range commits {
		decor := ""
		if d, ok := decorations[c.ID]; ok {
			decor = " " + cw.Yellow("(") + d + cw.Yellow(")")
		}

		if oneline {
			fmt.Printf("%s%s %s\n", cw.Yellow(c.ID.Short()), decor, firstLine(c.Message))
			continue
		}
		if i > 0 {
			fmt.Println()
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
	}

	return 0
}

func indentLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

// buildDecorations groups branch, tag, and HEAD labels by the commit id they
// point at, for display as "(HEAD -> main, tag: v1)" alongside log entries.
func buildDecorations(r *repo.Repository, cw *termcolor.Writer) (map[repo.Hash]string, error) {
	result := make(map[repo.Hash]string)

	headRef, detached, rawHead, err := r.HeadRef()
	if err != nil {
		return nil, err
	}
	headBranch := strings.TrimPrefix(headRef, "refs/heads/")

	type decoInfo struct {
		headArrow string
		branches  []string
		tags      []string
	}
	byHash := map[repo.Hash]*decoInfo{}
	getInfo := func(h repo.Hash) *decoInfo {
		info, ok := byHash[h]
		if !ok {
			info = &decoInfo{}
			byHash[h] = info
		}
		return info
	}

	branchNames, err := r.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, name := range branchNames {
		id, ok, err := r.BranchCommit(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		info := getInfo(id)
		if !detached && name == headBranch {
			info.headArrow = cw.BoldCyan("HEAD -> ") + cw.Green(name)
		} else {
			info.branches = append(info.branches, cw.Green(name))
		}
	}

	tagNames, err := r.ListTags()
	if err != nil {
		return nil, err
	}
	for _, name := range tagNames {
		id, err := r.ResolveToCommit(name)
		if err != nil {
			continue
		}
		info := getInfo(id)
		info.tags = append(info.tags, cw.Yellow("tag: "+name))
	}

	if detached {
		getInfo(rawHead).headArrow = cw.BoldCyan("HEAD")
	}

	for hash, info := range byHash {
		var parts []string
		if info.headArrow != "" {
			parts = append(parts, info.headArrow)
		}
		parts = append(parts, info.branches...)
		parts = append(parts, info.tags...)
		if len(parts) > 0 {
			result[hash] = strings.Join(parts, cw.Yellow(", "))
		}
	}
	return result, nil
}

func firstLine(msg string) string {
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		return msg[:idx]
	}
	return msg
}
