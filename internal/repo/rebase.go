package repo

// Rebase replays the commits unique to HEAD's branch onto the tip of branch,
// per spec.md §4.11. Requires HEAD attached. Conflict handling inside rebase
// is not implemented: collisions between a replayed commit's tree and the
// target-derived tree are resolved by "theirs wins" (the replayed commit's
// entries overwrite on key collision) — a documented lossy limitation, not a
// bug to fix here.
func (r *Repository) Rebase(branch string) error {
	branchName, attached, err := r.currentBranch()
	if err != nil {
		return err
	}
	if !attached {
		return newErr(KindDetachedHead, "Rebase", branch, nil)
	}

	headID, ok, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if !ok {
		return newErr(KindBadRevision, "Rebase", branch, nil)
	}
	targetID, ok, err := r.BranchCommit(branch)
	if err != nil {
		return err
	}
	if !ok {
		return newErr(KindBadRevision, "Rebase", branch, nil)
	}

	base, ok, err := r.LowestCommonAncestor(headID, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return newErr(KindNoCommonAncestor, "Rebase", branch, nil)
	}

	targetAncestors, err := r.AncestorSet(targetID)
	if err != nil {
		return err
	}

	// Collect the first-parent walk from headID up to (but not including)
	// base or any commit already reachable from target, newest to oldest.
	var toReplay []*Commit
	cur := headID
	for cur != "" && cur != base && !targetAncestors[cur] {
		c, err := r.ReadCommit(cur)
		if err != nil {
			return err
		}
		toReplay = append(toReplay, c)
		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	// Reverse to chronological order.
	for i, j := 0, len(toReplay)-1; i < j; i, j = i+1, j-1 {
		toReplay[i], toReplay[j] = toReplay[j], toReplay[i]
	}

	if err := r.refs.UpdateHead(string(targetID), true); err != nil {
		return err
	}
	targetTreeID, err := r.TreeOf(targetID)
	if err != nil {
		return err
	}
	targetTree, err := r.ReadTree(targetTreeID)
	if err != nil {
		return err
	}
	oldHeadTreeID, err := r.TreeOf(headID)
	if err != nil {
		return err
	}
	oldHeadTree, err := r.ReadTree(oldHeadTreeID)
	if err != nil {
		return err
	}
	if err := r.materialize(oldHeadTree, targetTree); err != nil {
		return err
	}
	if err := r.index.Write(targetTree); err != nil {
		return err
	}

	newBase := targetID
	currentTree := targetTree.Clone()
	for _, c := range toReplay {
		commitTree, err := r.ReadTree(c.Tree)
		if err != nil {
			return err
		}
		for path, blobID := range commitTree {
			currentTree[path] = blobID
		}
		overlaid := currentTree.Clone()
		treeID, err := r.WriteTree(overlaid)
		if err != nil {
			return err
		}
		replayed := &Commit{
			Tree:      treeID,
			Parents:   []Hash{newBase},
			Author:    c.Author,
			Committer: c.Committer,
			Message:   c.Message,
		}
		id, err := r.WriteCommit(replayed)
		if err != nil {
			return err
		}
		newBase = id
	}

	if err := r.refs.UpdateBranch(branchName, newBase); err != nil {
		return err
	}
	return r.Checkout(branchName)
}
