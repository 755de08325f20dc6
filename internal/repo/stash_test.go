package repo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStashPushResetsToHeadAndPopRestores(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a.txt", "committed", "first")

	writeWorkdirFile(t, r, "a.txt", "dirty")
	writeWorkdirFile(t, r, "new.txt", "untracked-but-staged")
	if err := r.Add("new.txt"); err != nil {
		t.Fatal(err)
	}

	ok, entry, err := r.StashPush("wip")
	if err != nil {
		t.Fatalf("StashPush() error: %v", err)
	}
	if !ok || entry == nil {
		t.Fatal("expected StashPush to report a saved stash")
	}
	if entry.Message != "wip" {
		t.Errorf("entry.Message = %q, want wip", entry.Message)
	}

	content, err := os.ReadFile(filepath.Join(r.Root(), "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "committed" {
		t.Errorf("a.txt after stash push = %q, want committed (reset to HEAD)", content)
	}
	if _, ok := r.Index()["new.txt"]; ok {
		t.Error("expected new.txt removed from index after stash push")
	}

	popped, err := r.StashPop()
	if err != nil {
		t.Fatalf("StashPop() error: %v", err)
	}
	if popped.CommitID != entry.CommitID {
		t.Errorf("StashPop() returned %+v, want the entry just pushed", popped)
	}

	content, err = os.ReadFile(filepath.Join(r.Root(), "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "dirty" {
		t.Errorf("a.txt after pop = %q, want dirty (restored)", content)
	}
	if _, ok := r.Index()["new.txt"]; !ok {
		t.Error("expected new.txt restored to the index after pop")
	}

	list, err := r.StashList()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("StashList() after pop = %v, want empty", list)
	}
}

func TestStashPushNothingToSave(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a.txt", "one", "first")

	ok, entry, err := r.StashPush("nothing")
	if err != nil {
		t.Fatalf("StashPush() error: %v", err)
	}
	if ok || entry != nil {
		t.Errorf("StashPush() with a clean tree = (%v, %+v), want (false, nil)", ok, entry)
	}
}

func TestStashApplyKeepsEntry(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a.txt", "committed", "first")
	writeWorkdirFile(t, r, "a.txt", "dirty")

	if _, _, err := r.StashPush("wip"); err != nil {
		t.Fatal(err)
	}

	if _, err := r.StashApply(); err != nil {
		t.Fatalf("StashApply() error: %v", err)
	}
	list, err := r.StashList()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("StashList() after apply = %v, want 1 entry retained", list)
	}
}

func TestStashListOrderingNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "a.txt", "committed", "first")

	writeWorkdirFile(t, r, "a.txt", "dirty-1")
	if _, _, err := r.StashPush("first stash"); err != nil {
		t.Fatal(err)
	}
	writeWorkdirFile(t, r, "a.txt", "dirty-2")
	if _, _, err := r.StashPush("second stash"); err != nil {
		t.Fatal(err)
	}

	list, err := r.StashList()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("StashList() = %v, want 2 entries", list)
	}
	if list[0].Message != "second stash" || list[1].Message != "first stash" {
		t.Errorf("StashList() order = [%q, %q], want newest first", list[0].Message, list[1].Message)
	}
}

func TestStashApplyOnEmptyStashFails(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.StashApply(); err == nil {
		t.Error("expected error applying from an empty stash")
	}
}

func TestFormatParseStashMessageRoundTrip(t *testing.T) {
	workdirTree := Hash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	raw := formatStashMessage(workdirTree, "my message")

	got, msg, ok := parseStashMessage(raw)
	if !ok {
		t.Fatal("expected parseStashMessage to recognize a well-formed trailer")
	}
	if got != workdirTree {
		t.Errorf("parsed workdir tree = %s, want %s", got, workdirTree)
	}
	if msg != "my message" {
		t.Errorf("parsed message = %q, want %q", msg, "my message")
	}
}
