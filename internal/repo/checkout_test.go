package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckoutSwitchesAttachedBranch(t *testing.T) {
	r := newTestRepo(t)
	c1 := commitFile(t, r, "a.txt", "one", "first")
	if err := r.refs.UpdateBranch("feature", c1); err != nil {
		t.Fatal(err)
	}

	if err := r.Checkout("feature"); err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}
	ref, detached, _, err := r.HeadRef()
	if err != nil {
		t.Fatal(err)
	}
	if detached || ref != "refs/heads/feature" {
		t.Errorf("HeadRef() = (%q, %v), want refs/heads/feature attached", ref, detached)
	}
}

func TestCheckoutDetachesAtRawCommit(t *testing.T) {
	r := newTestRepo(t)
	c1 := commitFile(t, r, "a.txt", "one", "first")
	commitFile(t, r, "a.txt", "two", "second")

	if err := r.Checkout(string(c1)); err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}
	_, detached, raw, err := r.HeadRef()
	if err != nil {
		t.Fatal(err)
	}
	if !detached || raw != c1 {
		t.Errorf("HeadRef() = (detached=%v, raw=%s), want (true, %s)", detached, raw, c1)
	}
}

func TestCheckoutMaterializesFilesAndPrunesStale(t *testing.T) {
	r := newTestRepo(t)
	mainID := commitFile(t, r, "a.txt", "one", "first")
	if err := r.refs.UpdateBranch("feature", mainID); err != nil {
		t.Fatal(err)
	}
	if err := r.Checkout("feature"); err != nil {
		t.Fatal(err)
	}
	if err := r.Rm("a.txt"); err != nil {
		t.Fatal(err)
	}
	commitFile(t, r, "b.txt", "two", "second")

	if err := r.Checkout(DefaultBranch); err != nil {
		t.Fatalf("Checkout(main) error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(r.Root(), "a.txt")); err != nil {
		t.Error("expected a.txt restored on checking out main")
	}
	if _, err := os.Stat(filepath.Join(r.Root(), "b.txt")); !os.IsNotExist(err) {
		t.Error("expected b.txt absent after checking out main, which never had it")
	}
}

func TestCheckoutUnknownNameFails(t *testing.T) {
	r := newTestRepo(t)
	if err := r.Checkout("no-such-branch"); err == nil {
		t.Error("expected error checking out an unknown name")
	}
}
