package repo

import "testing"

func TestDiffTreesAddedDeletedModified(t *testing.T) {
	from := Tree{
		"a.txt": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"b.txt": "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
	}
	to := Tree{
		"a.txt": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"b.txt": "cccccccccccccccccccccccccccccccccccccccc",
		"d.txt": "dddddddddddddddddddddddddddddddddddddddd",
	}
	delta := DiffTrees(from, to)

	if len(delta.Added) != 1 || delta.Added[0] != "d.txt" {
		t.Errorf("Added = %v, want [d.txt]", delta.Added)
	}
	if len(delta.Modified) != 1 || delta.Modified[0] != "b.txt" {
		t.Errorf("Modified = %v, want [b.txt]", delta.Modified)
	}
	if len(delta.Deleted) != 0 {
		t.Errorf("Deleted = %v, want none", delta.Deleted)
	}
}

func TestDiffTreesDeletion(t *testing.T) {
	from := Tree{"a.txt": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	to := Tree{}
	delta := DiffTrees(from, to)
	if len(delta.Deleted) != 1 || delta.Deleted[0] != "a.txt" {
		t.Errorf("Deleted = %v, want [a.txt]", delta.Deleted)
	}
}

func TestFileDiffContentIdentical(t *testing.T) {
	content := []byte("line1\nline2\nline3\n")
	fd := FileDiffContent(content, content, "a", "a")
	if len(fd.Hunks) != 0 {
		t.Errorf("expected no hunks for identical content, got %d", len(fd.Hunks))
	}
}

func TestFileDiffContentSingleLineChange(t *testing.T) {
	from := []byte("one\ntwo\nthree\n")
	to := []byte("one\nTWO\nthree\n")
	fd := FileDiffContent(from, to, "a", "b")

	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	var adds, dels int
	for _, l := range fd.Hunks[0].Lines {
		switch l.Type {
		case LineAdd:
			adds++
		case LineDel:
			dels++
		}
	}
	if adds != 1 || dels != 1 {
		t.Errorf("hunk has %d adds, %d dels, want 1 and 1", adds, dels)
	}
}

func TestFileDiffContentAddedFile(t *testing.T) {
	fd := FileDiffContent(nil, []byte("new\n"), "/dev/null", "b")
	if len(fd.Hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(fd.Hunks))
	}
	if fd.Hunks[0].Lines[0].Type != LineAdd {
		t.Errorf("expected an added line, got %v", fd.Hunks[0].Lines[0].Type)
	}
}

func TestFileDiffContentBinaryDetection(t *testing.T) {
	binary := []byte{0x00, 0x01, 0x02}
	fd := FileDiffContent(binary, []byte("text\n"), "a", "b")
	if !fd.IsBinary {
		t.Error("expected IsBinary for content containing a NUL byte")
	}
	if len(fd.Hunks) != 0 {
		t.Error("expected no hunks for a binary diff")
	}
}

func TestFileDiffBlobsViaRepository(t *testing.T) {
	r := newTestRepo(t)
	fromID, err := r.WriteBlob([]byte("line1\nline2\n"))
	if err != nil {
		t.Fatal(err)
	}
	toID, err := r.WriteBlob([]byte("line1\nline2 changed\n"))
	if err != nil {
		t.Fatal(err)
	}

	fd, err := r.FileDiffBlobs(fromID, toID, "a", "b")
	if err != nil {
		t.Fatalf("FileDiffBlobs() error: %v", err)
	}
	if len(fd.Hunks) != 1 {
		t.Errorf("expected 1 hunk, got %d", len(fd.Hunks))
	}
}
