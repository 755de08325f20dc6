package repo

import "time"

// CreateTag writes refs/tags/<name> per spec.md §4.3: a lightweight tag
// (empty message) stores target's commit id directly; an annotated tag
// (non-empty message) first writes a tag object pointing at target and
// stores the tag object's id instead. Fails with KindAlreadyExists if the
// tag name is already taken.
func (r *Repository) CreateTag(name, targetName, message string) (Hash, error) {
	target, err := r.ResolveToCommit(targetName)
	if err != nil {
		return "", err
	}

	if message == "" {
		if err := r.refs.CreateTagRef(name, target); err != nil {
			return "", err
		}
		return target, nil
	}

	nameID, email := r.config.Identity()
	tag := &Tag{
		Object:  target,
		Type:    KindCommit,
		Name:    name,
		Tagger:  Signature{Name: nameID, Email: email, When: time.Now()},
		Message: message,
	}
	id, err := r.WriteTag(tag)
	if err != nil {
		return "", err
	}
	if err := r.refs.CreateTagRef(name, id); err != nil {
		return "", err
	}
	return id, nil
}
