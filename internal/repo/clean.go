package repo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CleanResult lists the untracked paths a Clean call removed or would remove.
type CleanResult struct {
	Files []string
	Dirs  []string
}

// Clean deletes untracked files (and, if includeDirs is set, untracked
// directories) from the working tree, per the original's clean command:
// a path is untracked when it is absent from the index and not ignored. With
// dryRun set nothing is removed; the paths that would be removed are still
// reported.
func (r *Repository) Clean(dryRun, includeDirs bool) (*CleanResult, error) {
	indexTree := r.Index()
	ignore := loadIgnoreMatcher(r.root)

	result := &CleanResult{}
	dirSeen := map[string]bool{}

	err := filepath.Walk(r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == r.root {
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if info.Name() == MetaDirName {
				return filepath.SkipDir
			}
			if ignore.isIgnored(rel, true) {
				return filepath.SkipDir
			}
			if includeDirs && !trackedUnder(indexTree, rel) && !dirSeen[rel] {
				dirSeen[rel] = true
				result.Dirs = append(result.Dirs, rel)
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.isIgnored(rel, false) {
			return nil
		}
		if _, tracked := indexTree[rel]; !tracked {
			result.Files = append(result.Files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, newErr(KindIOFault, "Clean", r.root, err)
	}
	sort.Strings(result.Files)
	sort.Strings(result.Dirs)

	if dryRun {
		return result, nil
	}

	for _, f := range result.Files {
		if err := os.Remove(filepath.Join(r.root, filepath.FromSlash(f))); err != nil && !os.IsNotExist(err) {
			return nil, newErr(KindIOFault, "Clean", f, err)
		}
	}
	for _, d := range result.Dirs {
		if err := os.RemoveAll(filepath.Join(r.root, filepath.FromSlash(d))); err != nil {
			return nil, newErr(KindIOFault, "Clean", d, err)
		}
	}
	return result, nil
}

func trackedUnder(t Tree, dir string) bool {
	prefix := dir + "/"
	for path := range t {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
