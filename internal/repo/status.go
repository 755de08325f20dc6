package repo

// FileState describes how one path differs across the HEAD tree, the index,
// and the working tree.
type FileState struct {
	Path string

	// StagedStatus describes the change staged relative to HEAD:
	// "added", "modified", "deleted", or "" for no staged change.
	StagedStatus string

	// WorkStatus describes the change on disk relative to the index:
	// "modified", "deleted", or "" for no unstaged change.
	WorkStatus string

	// Untracked is true when the path exists on disk but is absent from the
	// index entirely. WorkStatus is "" in that case; StagedStatus is
	// "deleted" if HEAD still has the path and "" otherwise.
	Untracked bool
}

// WorkingTreeStatus is the full three-tree status, per spec.md §4.13/§8
// invariant 6: every path that differs between any pair of {HEAD, index,
// working tree} appears exactly once.
type WorkingTreeStatus struct {
	Files []FileState
}

// Status computes the working tree status by comparing HEAD's tree against
// the index, then the index against a fresh Scan of the working tree.
// Unlike a bare filesystem walk, untracked-file detection respects
// .gitignore, since Scan is the same ignore-aware component clean uses.
func (r *Repository) Status() (*WorkingTreeStatus, error) {
	headTree := Tree{}
	if headID, ok, err := r.HeadCommit(); err != nil {
		return nil, err
	} else if ok {
		headTreeID, err := r.TreeOf(headID)
		if err != nil {
			return nil, err
		}
		headTree, err = r.ReadTree(headTreeID)
		if err != nil {
			return nil, err
		}
	}

	indexTree := r.Index()
	workdirTree, err := r.WorkdirTree()
	if err != nil {
		return nil, err
	}

	results := map[string]*FileState{}
	get := func(path string) *FileState {
		fs, ok := results[path]
		if !ok {
			fs = &FileState{Path: path}
			results[path] = fs
		}
		return fs
	}

	for path, indexBlob := range indexTree {
		headBlob, inHead := headTree[path]
		switch {
		case !inHead:
			get(path).StagedStatus = "added"
		case headBlob != indexBlob:
			get(path).StagedStatus = "modified"
		}
	}
	for path := range headTree {
		if _, inIndex := indexTree[path]; !inIndex {
			get(path).StagedStatus = "deleted"
		}
	}

	for path, indexBlob := range indexTree {
		workBlob, onDisk := workdirTree[path]
		switch {
		case !onDisk:
			get(path).WorkStatus = "deleted"
		case workBlob != indexBlob:
			get(path).WorkStatus = "modified"
		}
	}
	for path := range workdirTree {
		if _, tracked := indexTree[path]; !tracked {
			get(path).Untracked = true
		}
	}

	status := &WorkingTreeStatus{Files: make([]FileState, 0, len(results))}
	for _, fs := range results {
		status.Files = append(status.Files, *fs)
	}
	return status, nil
}

// PorcelainLine renders a status entry in the teacher's two-column porcelain
// form: a staged-status column, an unstaged-status column, then the path.
// '?' marks untracked, ' ' marks no change in that column.
func PorcelainLine(fs FileState) string {
	code := func(s string) byte {
		switch s {
		case "added":
			return 'A'
		case "modified":
			return 'M'
		case "deleted":
			return 'D'
		default:
			return ' '
		}
	}
	if fs.Untracked {
		return "?? " + fs.Path
	}
	line := []byte{code(fs.StagedStatus), code(fs.WorkStatus), ' '}
	return string(line) + fs.Path
}
