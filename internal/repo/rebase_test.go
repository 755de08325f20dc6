package repo

import "testing"

func TestRebaseReplaysOntoTarget(t *testing.T) {
	r := newTestRepo(t)
	base := commitFile(t, r, "shared.txt", "base", "base")
	if err := r.refs.UpdateBranch("feature", base); err != nil {
		t.Fatal(err)
	}

	mainTip := commitFile(t, r, "main.txt", "main change", "on main")

	if err := r.Checkout("feature"); err != nil {
		t.Fatal(err)
	}
	commitFile(t, r, "feature.txt", "feature change", "on feature")

	if err := r.Rebase(DefaultBranch); err != nil {
		t.Fatalf("Rebase() error: %v", err)
	}

	newTip, ok, err := r.BranchCommit("feature")
	if err != nil || !ok {
		t.Fatalf("BranchCommit(feature) = (%s, %v, %v)", newTip, ok, err)
	}
	ancestors, err := r.AncestorSet(newTip)
	if err != nil {
		t.Fatal(err)
	}
	if !ancestors[mainTip] {
		t.Error("expected feature's new tip to have main's tip as an ancestor after rebase")
	}

	treeID, err := r.TreeOf(newTip)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := r.ReadTree(treeID)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"shared.txt", "main.txt", "feature.txt"} {
		if _, ok := tree[path]; !ok {
			t.Errorf("rebased tree missing %q", path)
		}
	}
}

func TestRebaseRequiresAttachedHead(t *testing.T) {
	r := newTestRepo(t)
	base := commitFile(t, r, "a.txt", "one", "first")
	if err := r.refs.UpdateBranch("feature", base); err != nil {
		t.Fatal(err)
	}
	if err := r.Checkout(string(base)); err != nil {
		t.Fatal(err)
	}

	if err := r.Rebase("feature"); err == nil {
		t.Error("expected error rebasing from a detached HEAD")
	}
}

func TestRebaseNoCommonAncestorFails(t *testing.T) {
	r1 := newTestRepo(t)
	commitFile(t, r1, "a.txt", "one", "first")

	// Simulate two histories with no shared base by pointing a second branch
	// directly at a root commit that shares no ancestry: use an orphan-style
	// commit built by hand with no parent and a different tree.
	blobID, err := r1.WriteBlob([]byte("unrelated"))
	if err != nil {
		t.Fatal(err)
	}
	treeID, err := r1.WriteTree(Tree{"u.txt": blobID})
	if err != nil {
		t.Fatal(err)
	}
	name, email := r1.config.Identity()
	orphan := &Commit{Tree: treeID, Author: Signature{Name: name, Email: email}, Committer: Signature{Name: name, Email: email}, Message: "orphan"}
	orphanID, err := r1.WriteCommit(orphan)
	if err != nil {
		t.Fatal(err)
	}
	if err := r1.refs.UpdateBranch("orphan-branch", orphanID); err != nil {
		t.Fatal(err)
	}

	if err := r1.Rebase("orphan-branch"); err == nil {
		t.Error("expected error rebasing onto a branch with no common ancestor")
	}
}
