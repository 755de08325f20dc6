package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLayout(t *testing.T) {
	dir := t.TempDir()
	r, err := Init(dir, nil)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	for _, sub := range []string{"objects", filepath.Join("refs", "heads"), filepath.Join("refs", "tags")} {
		if info, err := os.Stat(filepath.Join(r.MetaDir(), sub)); err != nil || !info.IsDir() {
			t.Errorf("expected %s to exist as a directory", sub)
		}
	}
	ref, detached, _, err := r.HeadRef()
	if err != nil {
		t.Fatalf("HeadRef() error: %v", err)
	}
	if detached || ref != "refs/heads/"+DefaultBranch {
		t.Errorf("HeadRef() = (%q, %v), want refs/heads/%s attached", ref, detached, DefaultBranch)
	}
}

func TestInitTwiceFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir, nil); err != nil {
		t.Fatal(err)
	}
	_, err := Init(dir, nil)
	if err == nil {
		t.Fatal("expected error re-initializing an existing repository")
	}
	re, ok := err.(*RepoError)
	if !ok || re.Kind != KindAlreadyExists {
		t.Errorf("expected KindAlreadyExists, got %v", err)
	}
}

func TestLocateWalksUpward(t *testing.T) {
	root := t.TempDir()
	if _, err := Init(root, nil); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Locate(nested)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if found != root {
		t.Errorf("Locate() = %q, want %q", found, root)
	}
}

func TestLocateFailsOutsideRepo(t *testing.T) {
	if _, err := Locate(t.TempDir()); err == nil {
		t.Error("expected error locating a repository outside any .pygit tree")
	}
}

func TestOpenAndWriteReadObjects(t *testing.T) {
	r := newTestRepo(t)

	blobID, err := r.WriteBlob([]byte("hello"))
	if err != nil {
		t.Fatalf("WriteBlob() error: %v", err)
	}
	content, err := r.ReadBlob(blobID)
	if err != nil {
		t.Fatalf("ReadBlob() error: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("ReadBlob() = %q, want hello", content)
	}

	tree := Tree{"a.txt": blobID}
	treeID, err := r.WriteTree(tree)
	if err != nil {
		t.Fatalf("WriteTree() error: %v", err)
	}
	got, err := r.ReadTree(treeID)
	if err != nil {
		t.Fatalf("ReadTree() error: %v", err)
	}
	if got["a.txt"] != blobID {
		t.Errorf("ReadTree() = %v, want %v", got, tree)
	}
}

func TestCommitHelperAdvancesBranch(t *testing.T) {
	r := newTestRepo(t)
	id := commitFile(t, r, "a.txt", "one", "first")

	headID, ok, err := r.HeadCommit()
	if err != nil || !ok {
		t.Fatalf("HeadCommit() = (%s, %v, %v)", headID, ok, err)
	}
	if headID != id {
		t.Errorf("HeadCommit() = %s, want %s", headID, id)
	}

	branchID, ok, err := r.BranchCommit(DefaultBranch)
	if err != nil || !ok || branchID != id {
		t.Errorf("BranchCommit() = (%s, %v, %v), want %s", branchID, ok, err, id)
	}
}
