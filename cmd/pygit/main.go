package main

import (
	"fmt"
	"os"

	"github.com/harlowdev/pygit/internal/cliapp"
	"github.com/harlowdev/pygit/internal/repo"
	"github.com/harlowdev/pygit/internal/termcolor"
)

var version = "0.1.0"

func main() {
	gf, args := parseGlobalFlags(os.Args[1:])

	for _, a := range args {
		if a == "--version" {
			fmt.Printf("pygit version %s\n", version)
			os.Exit(0)
		}
	}

	cw := termcolor.NewWriter(os.Stdout, gf.colorMode)
	logger := newLogger()

	app := cliapp.NewApp("pygit", version)
	app.Stderr = os.Stderr

	// r is populated after dispatch determines the matched command needs
	// a repository (NeedsRepo); the Run closures below capture this pointer.
	var r *repo.Repository

	app.Register(&cliapp.Command{
		Name:    "init",
		Summary: "Create an empty pygit repository",
		Usage:   "pygit init [<directory>]",
		Run:     func(args []string) int { return runInit(args, logger) },
	})

	app.Register(&cliapp.Command{
		Name:      "add",
		Summary:   "Stage a file",
		Usage:     "pygit add <path>",
		NeedsRepo: true,
		Run:       func(args []string) int { return runAdd(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "rm",
		Summary:   "Unstage and remove a tracked file",
		Usage:     "pygit rm <path>",
		NeedsRepo: true,
		Run:       func(args []string) int { return runRm(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "commit",
		Summary:   "Record staged changes",
		Usage:     "pygit commit -m <message>",
		Examples:  []string{`pygit commit -m "first commit"`},
		NeedsRepo: true,
		Run:       func(args []string) int { return runCommit(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "status",
		Summary:   "Show working tree status",
		Usage:     "pygit status [-s|--porcelain]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runStatus(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "log",
		Summary:   "Show commit history",
		Usage:     "pygit log [--oneline] [-n <count>]",
		Examples:  []string{"pygit log", "pygit log --oneline -n5"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runLog(r, args, cw) },
	})

	app.Register(&cliapp.Command{
		Name:      "branch",
		Summary:   "List, create, or delete branches",
		Usage:     "pygit branch [<name> [<start>]] | branch -d <name>",
		Examples:  []string{"pygit branch", "pygit branch topic", "pygit branch -d topic"},
		NeedsRepo: true,
		Run:       func(args []string) int { return runBranch(r, args, cw) },
	})

	app.Register(&cliapp.Command{
		Name:      "checkout",
		Summary:   "Switch HEAD and the working tree to a branch, tag, or commit",
		Usage:     "pygit checkout <name>",
		NeedsRepo: true,
		Run:       func(args []string) int { return runCheckout(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "tag",
		Summary:   "List, or create lightweight/annotated tags",
		Usage:     "pygit tag [-m <msg>] [<name> [<target>]]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runTag(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "diff",
		Summary:   "Show changes between the index and the working tree",
		Usage:     "pygit diff [--staged]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runDiff(r, args, cw) },
	})

	app.Register(&cliapp.Command{
		Name:      "merge",
		Summary:   "Merge a branch into the current branch",
		Usage:     "pygit merge <branch>",
		NeedsRepo: true,
		Run:       func(args []string) int { return runMerge(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "rebase",
		Summary:   "Replay the current branch's unique commits onto another branch",
		Usage:     "pygit rebase <branch>",
		NeedsRepo: true,
		Run:       func(args []string) int { return runRebase(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "stash",
		Summary:   "Stash or restore working-tree changes",
		Usage:     "pygit stash {push|list|pop|apply}",
		NeedsRepo: true,
		Run:       func(args []string) int { return runStash(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "clean",
		Summary:   "Remove untracked files from the working tree",
		Usage:     "pygit clean [-n] [-f] [-d]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runClean(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "config",
		Summary:   "Get or set a repository config value",
		Usage:     "pygit config <key> [<value>]",
		Examples:  []string{"pygit config user.name", `pygit config user.name "Ada Lovelace"`},
		NeedsRepo: true,
		Run:       func(args []string) int { return runConfig(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:      "show",
		Summary:   "Show a commit's details and diff",
		Usage:     "pygit show [<ref>]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runShow(r, args, cw) },
	})

	app.Register(&cliapp.Command{
		Name:      "remote",
		Summary:   "List, add, or remove remotes",
		Usage:     "pygit remote [add <name> <url>|remove <name>]",
		NeedsRepo: true,
		Run:       func(args []string) int { return runRemote(r, args) },
	})

	app.Register(&cliapp.Command{
		Name:    "clone",
		Summary: "Clone a local repository into a new directory",
		Usage:   "pygit clone <url> [<dir>]",
		Run:     func(args []string) int { return runClone(args, logger) },
	})

	if len(args) > 0 {
		cmd := app.Lookup(args[0])
		if cmd != nil && cmd.NeedsRepo {
			var err error
			r, err = repo.Open(".", logger)
			if err != nil {
				os.Exit(reportErr(err))
			}
		}
	}

	os.Exit(app.Run(args, cw))
}
