package repo

// CreateBranch creates a new branch ref named name pointing at start (any
// name resolvable by Resolve, defaulting to HEAD when start is ""). Fails
// with KindAlreadyExists if name is already a branch.
func (r *Repository) CreateBranch(name, start string) (Hash, error) {
	if _, ok, err := r.BranchCommit(name); err != nil {
		return "", err
	} else if ok {
		return "", newErr(KindAlreadyExists, "CreateBranch", name, nil)
	}

	if start == "" {
		start = "HEAD"
	}
	target, err := r.ResolveToCommit(start)
	if err != nil {
		return "", err
	}
	if err := r.refs.UpdateBranch(name, target); err != nil {
		return "", err
	}
	return target, nil
}

// DeleteBranch removes branch ref name, per the original's -d safety check:
// refusing to delete the currently checked-out branch, and refusing to
// delete a branch whose tip is not an ancestor of HEAD (i.e. has unmerged
// commits). Fails with KindNotFound if name does not exist.
func (r *Repository) DeleteBranch(name string) error {
	target, ok, err := r.BranchCommit(name)
	if err != nil {
		return err
	}
	if !ok {
		return newErr(KindNotFound, "DeleteBranch", name, nil)
	}

	if current, attached, err := r.currentBranch(); err != nil {
		return err
	} else if attached && current == name {
		return newErr(KindUsage, "DeleteBranch", name, nil)
	}

	headID, headOK, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if headOK && headID != target {
		headAncestors, err := r.AncestorSet(headID)
		if err != nil {
			return err
		}
		if !headAncestors[target] {
			return newErr(KindConflict, "DeleteBranch", name, nil)
		}
	}

	return r.refs.DeleteBranch(name)
}
