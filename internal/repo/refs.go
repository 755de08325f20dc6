package repo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// refs manages the reference namespace under <meta>/{HEAD,refs/...}.
// Every mutation is a single-file write-to-temp-then-rename, per spec.md §5's
// crash-consistency guidance; there is no locking, matching the single-process
// assumption the spec states explicitly.
type refs struct {
	metaDir string
}

func newRefs(metaDir string) *refs {
	return &refs{metaDir: metaDir}
}

func (r *refs) headPath() string       { return filepath.Join(r.metaDir, "HEAD") }
func (r *refs) branchPath(n string) string { return filepath.Join(r.metaDir, "refs", "heads", n) }
func (r *refs) tagPath(n string) string    { return filepath.Join(r.metaDir, "refs", "tags", n) }
func (r *refs) stashPath() string      { return filepath.Join(r.metaDir, "refs", "stash") }

// writeFileAtomic writes content atomically via temp-file-then-rename.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newErr(KindIOFault, "writeFile", path, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return newErr(KindIOFault, "writeFile", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return newErr(KindIOFault, "writeFile", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return newErr(KindIOFault, "writeFile", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return newErr(KindIOFault, "writeFile", path, err)
	}
	return nil
}

func readFileTrim(path string) (string, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is repo-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, newErr(KindIOFault, "readFile", path, err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// HeadRef returns the ref path HEAD points at when attached, or "" when
// detached (in which case the raw return value carries the commit id).
func (r *refs) HeadRef() (ref string, detached bool, raw Hash, err error) {
	content, ok, err := readFileTrim(r.headPath())
	if err != nil {
		return "", false, "", err
	}
	if !ok {
		return "", false, "", newErr(KindNotARepository, "HeadRef", r.headPath(), nil)
	}
	if rest, found := strings.CutPrefix(content, "ref: "); found {
		return strings.TrimSpace(rest), false, "", nil
	}
	h, err := NewHash(content)
	if err != nil {
		return "", false, "", newErr(KindCorrupt, "HeadRef", r.headPath(), err)
	}
	return "", true, h, nil
}

// HeadCommit resolves HEAD through one level of indirection, returning
// ("", false, nil) for an empty repository with no commits yet.
func (r *refs) HeadCommit() (Hash, bool, error) {
	ref, detached, raw, err := r.HeadRef()
	if err != nil {
		return "", false, err
	}
	if detached {
		return raw, true, nil
	}
	content, ok, err := readFileTrim(filepath.Join(r.metaDir, filepath.FromSlash(ref)))
	if err != nil {
		return "", false, err
	}
	if !ok || content == "" {
		return "", false, nil
	}
	h, err := NewHash(content)
	if err != nil {
		return "", false, newErr(KindCorrupt, "HeadCommit", ref, err)
	}
	return h, true, nil
}

// UpdateHead rewrites HEAD as an attached ref or a raw detached id.
func (r *refs) UpdateHead(target string, detached bool) error {
	var content string
	if detached {
		content = target + "\n"
	} else {
		content = "ref: " + target + "\n"
	}
	return writeFileAtomic(r.headPath(), []byte(content))
}

// BranchCommit reads refs/heads/<name>, returning ok=false if missing.
func (r *refs) BranchCommit(name string) (Hash, bool, error) {
	content, ok, err := readFileTrim(r.branchPath(name))
	if err != nil || !ok || content == "" {
		return "", false, err
	}
	h, err := NewHash(content)
	if err != nil {
		return "", false, newErr(KindCorrupt, "BranchCommit", name, err)
	}
	return h, true, nil
}

// UpdateBranch creates or moves a branch ref.
func (r *refs) UpdateBranch(name string, target Hash) error {
	return writeFileAtomic(r.branchPath(name), []byte(string(target)+"\n"))
}

// DeleteBranch removes a branch ref file.
func (r *refs) DeleteBranch(name string) error {
	if err := os.Remove(r.branchPath(name)); err != nil {
		if os.IsNotExist(err) {
			return newErr(KindNotFound, "DeleteBranch", name, err)
		}
		return newErr(KindIOFault, "DeleteBranch", name, err)
	}
	return nil
}

// ListBranches returns all branch names, sorted.
func (r *refs) ListBranches() ([]string, error) {
	return listRefNames(filepath.Join(r.metaDir, "refs", "heads"))
}

// TagTarget reads refs/tags/<name>, returning ok=false if missing.
func (r *refs) TagTarget(name string) (Hash, bool, error) {
	content, ok, err := readFileTrim(r.tagPath(name))
	if err != nil || !ok || content == "" {
		return "", false, err
	}
	h, err := NewHash(content)
	if err != nil {
		return "", false, newErr(KindCorrupt, "TagTarget", name, err)
	}
	return h, true, nil
}

// CreateTagRef writes refs/tags/<name>, failing with KindAlreadyExists if present.
func (r *refs) CreateTagRef(name string, target Hash) error {
	if _, ok, _ := r.TagTarget(name); ok {
		return newErr(KindAlreadyExists, "CreateTagRef", name, nil)
	}
	return writeFileAtomic(r.tagPath(name), []byte(string(target)+"\n"))
}

// ListTags returns all tag names, sorted.
func (r *refs) ListTags() ([]string, error) {
	return listRefNames(filepath.Join(r.metaDir, "refs", "tags"))
}

func listRefNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, newErr(KindIOFault, "listRefNames", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadStash returns the LIFO stash list, newest first.
func (r *refs) ReadStash() ([]Hash, error) {
	content, ok, err := readFileTrim(r.stashPath())
	if err != nil {
		return nil, err
	}
	if !ok || content == "" {
		return nil, nil
	}
	lines := strings.Split(content, "\n")
	ids := make([]Hash, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		h, err := NewHash(l)
		if err != nil {
			return nil, newErr(KindCorrupt, "ReadStash", l, err)
		}
		ids = append(ids, h)
	}
	return ids, nil
}

// WriteStash persists the LIFO stash list, newest first.
func (r *refs) WriteStash(ids []Hash) error {
	if len(ids) == 0 {
		_ = os.Remove(r.stashPath())
		return nil
	}
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(string(id))
		b.WriteByte('\n')
	}
	return writeFileAtomic(r.stashPath(), []byte(b.String()))
}
