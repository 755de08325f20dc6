package repo

import "testing"

func TestCommitCreatesRootWithNoParents(t *testing.T) {
	r := newTestRepo(t)
	writeWorkdirFile(t, r, "a.txt", "one")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	id, err := r.Commit("first", nil)
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	c, err := r.ReadCommit(id)
	if err != nil {
		t.Fatalf("ReadCommit() error: %v", err)
	}
	if len(c.Parents) != 0 {
		t.Errorf("Parents = %v, want none for a root commit", c.Parents)
	}
	if c.Message != "first" {
		t.Errorf("Message = %q, want first", c.Message)
	}
}

func TestCommitAdvancesAttachedBranch(t *testing.T) {
	r := newTestRepo(t)
	id := commitFile(t, r, "a.txt", "one", "first")

	branchID, ok, err := r.BranchCommit(DefaultBranch)
	if err != nil || !ok || branchID != id {
		t.Errorf("BranchCommit() = (%s, %v, %v), want %s", branchID, ok, err, id)
	}
}

func TestCommitNoOpWhenIndexMatchesParentTree(t *testing.T) {
	r := newTestRepo(t)
	id := commitFile(t, r, "a.txt", "one", "first")

	// Commit again with no staged changes: the index still matches the
	// parent's tree, so no new object or ref should be written.
	again, err := r.Commit("second", []Hash{id})
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
	if again != id {
		t.Errorf("Commit() with unchanged index = %s, want %s (no-op)", again, id)
	}
}

func TestCommitUsesConfiguredIdentity(t *testing.T) {
	r := newTestRepo(t)
	if err := r.config.Set("user.name", "Ada"); err != nil {
		t.Fatal(err)
	}
	if err := r.config.Set("user.email", "ada@example.com"); err != nil {
		t.Fatal(err)
	}
	id := commitFile(t, r, "a.txt", "one", "first")

	c, err := r.ReadCommit(id)
	if err != nil {
		t.Fatal(err)
	}
	if c.Author.Name != "Ada" || c.Author.Email != "ada@example.com" {
		t.Errorf("Author = %+v, want Ada <ada@example.com>", c.Author)
	}
}
