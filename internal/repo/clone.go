package repo

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Clone copies every object and ref, plus the user identity and remotes from
// the config, of the repository at srcDir into a freshly initialized
// repository at dstDir, then checks out whatever HEAD pointed to in the
// source. Only local source directories are supported and nothing is fetched
// over a network. The clone's origin remote is set to file://<source root>;
// the source's other remotes are copied, and its own origin entry is not.
func Clone(srcDir, dstDir string, logger *slog.Logger) (*Repository, error) {
	srcRoot, err := Locate(srcDir)
	if err != nil {
		return nil, err
	}
	src, err := openAt(srcRoot, logger)
	if err != nil {
		return nil, err
	}

	dst, err := Init(dstDir, logger)
	if err != nil {
		return nil, err
	}

	srcObjects := filepath.Join(src.MetaDir(), "objects")
	dstObjects := filepath.Join(dst.MetaDir(), "objects")
	if err := copyTree(srcObjects, dstObjects); err != nil {
		return nil, newErr(KindIOFault, "Clone", srcObjects, err)
	}

	branchNames, err := src.ListBranches()
	if err != nil {
		return nil, err
	}
	for _, name := range branchNames {
		id, ok, err := src.BranchCommit(name)
		if err != nil {
			return nil, err
		}
		if ok {
			if err := dst.refs.UpdateBranch(name, id); err != nil {
				return nil, err
			}
		}
	}
	tagNames, err := src.ListTags()
	if err != nil {
		return nil, err
	}
	for _, name := range tagNames {
		id, ok, err := src.refs.TagTarget(name)
		if err != nil {
			return nil, err
		}
		if ok {
			if err := dst.refs.CreateTagRef(name, id); err != nil {
				return nil, err
			}
		}
	}

	headRef, detached, rawHead, err := src.HeadRef()
	if err != nil {
		return nil, err
	}
	if !detached {
		if err := dst.refs.UpdateHead(headRef, false); err != nil {
			return nil, err
		}
	} else {
		if err := dst.refs.UpdateHead(string(rawHead), true); err != nil {
			return nil, err
		}
	}

	if name, ok := src.config.Get("user.name"); ok {
		if err := dst.config.Set("user.name", name); err != nil {
			return nil, err
		}
	}
	if email, ok := src.config.Get("user.email"); ok {
		if err := dst.config.Set("user.email", email); err != nil {
			return nil, err
		}
	}
	for remoteName, url := range src.config.Remotes() {
		if remoteName == "origin" {
			continue
		}
		if err := dst.config.AddRemote(remoteName, url); err != nil {
			return nil, err
		}
	}
	if err := dst.config.AddRemote("origin", "file://"+src.Root()); err != nil {
		return nil, err
	}

	if name, ok, err := dst.currentBranch(); err != nil {
		return nil, err
	} else if ok {
		if _, hasCommit, _ := dst.BranchCommit(name); hasCommit {
			if err := dst.Checkout(name); err != nil {
				return nil, err
			}
		}
	} else if detached {
		if err := dst.Checkout(string(rawHead)); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
