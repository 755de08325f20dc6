package repo

import "strings"

// isHex reports whether s consists solely of hex digits.
func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Resolve turns a user-supplied name into an object id, following the
// first-match-wins algorithm from spec.md §4.4: HEAD, then branch, then tag,
// then hex-prefix scan. It returns whatever kind of object the name names
// (commit, or an annotated tag object); use ResolveToCommit to peel tags.
func (r *Repository) Resolve(name string) (Hash, error) {
	if strings.EqualFold(name, "HEAD") {
		id, ok, err := r.HeadCommit()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", newErr(KindBadRevision, "Resolve", name, nil)
		}
		return id, nil
	}

	if id, ok, err := r.BranchCommit(name); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	if id, ok, err := r.refs.TagTarget(name); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	if len(name) >= 4 && len(name) <= 40 && isHex(name) {
		return r.resolvePrefix(name)
	}

	return "", newErr(KindBadRevision, "Resolve", name, nil)
}

// resolvePrefix scans every stored object id for a unique prefix match.
func (r *Repository) resolvePrefix(prefix string) (Hash, error) {
	ids, err := r.store.allIDs()
	if err != nil {
		return "", err
	}
	var match Hash
	count := 0
	for _, id := range ids {
		if strings.HasPrefix(string(id), prefix) {
			match = id
			count++
			if count > 1 {
				return "", newErr(KindAmbiguous, "Resolve", prefix, nil)
			}
		}
	}
	if count == 0 {
		return "", newErr(KindBadRevision, "Resolve", prefix, nil)
	}
	return match, nil
}

// ResolveToCommit resolves name like Resolve, then peels any annotated tag
// indirections until a commit is reached.
func (r *Repository) ResolveToCommit(name string) (Hash, error) {
	id, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return r.peelToCommit(id)
}

func (r *Repository) peelToCommit(id Hash) (Hash, error) {
	for {
		kind, body, err := r.store.read(id)
		if err != nil {
			return "", err
		}
		switch kind {
		case KindCommit:
			return id, nil
		case KindTag:
			tag, err := decodeTag(body, id)
			if err != nil {
				return "", err
			}
			id = tag.Object
		default:
			return "", newErr(KindBadRevision, "ResolveToCommit", string(id), nil)
		}
	}
}
