package repo

// FirstParentHistory walks the first-parent line from id, stopping when a
// commit has no parent. Used by log.
func (r *Repository) FirstParentHistory(id Hash) ([]*Commit, error) {
	var out []*Commit
	cur := id
	for cur != "" {
		c, err := r.ReadCommit(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	return out, nil
}

// AncestorSet does a breadth-first walk over all parent edges from id,
// returning the closed set of reachable commit ids (including id itself).
// Cycles are impossible since commit ids hash their parents, but the walk
// still tracks visited ids defensively.
func (r *Repository) AncestorSet(id Hash) (map[Hash]bool, error) {
	visited := map[Hash]bool{}
	if id == "" {
		return visited, nil
	}
	queue := []Hash{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		c, err := r.ReadCommit(cur)
		if err != nil {
			return nil, err
		}
		for _, p := range c.Parents {
			if !visited[p] {
				queue = append(queue, p)
			}
		}
	}
	return visited, nil
}

// LowestCommonAncestor computes ancestor_set(a), then does a breadth-first
// walk from b, returning the first id found in that set. Returns ok=false if
// no common ancestor exists.
func (r *Repository) LowestCommonAncestor(a, b Hash) (id Hash, ok bool, err error) {
	ancestorsA, err := r.AncestorSet(a)
	if err != nil {
		return "", false, err
	}
	if ancestorsA[b] {
		return b, true, nil
	}

	visited := map[Hash]bool{}
	queue := []Hash{b}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if ancestorsA[cur] {
			return cur, true, nil
		}
		c, err := r.ReadCommit(cur)
		if err != nil {
			return "", false, err
		}
		for _, p := range c.Parents {
			if !visited[p] {
				queue = append(queue, p)
			}
		}
	}
	return "", false, nil
}
