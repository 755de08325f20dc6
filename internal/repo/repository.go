// Package repo implements the repository data engine: a content-addressed
// object store, the reference namespace, the index, the commit DAG, and the
// mutation algorithms (commit, merge, rebase, stash, checkout) built on top
// of them. Command dispatch and output formatting live outside this package.
package repo

import (
	"log/slog"
	"os"
	"path/filepath"
)

// MetaDirName is the name of the repository's meta directory, the pygit
// analogue of ".git".
const MetaDirName = ".pygit"

// DefaultBranch is the branch HEAD is attached to by a fresh init.
const DefaultBranch = "main"

// Repository is a handle to one repository, bound to an explicit root rather
// than relying on process CWD (spec.md's "Global CWD coupling" design note:
// the CLI binds CWD once at startup and threads the handle through).
type Repository struct {
	root    string
	metaDir string

	store  *store
	refs   *refs
	index  *index
	config *Config

	log *slog.Logger
}

// Locate walks upward from start looking for a MetaDirName directory,
// returning the repository root (the meta directory's parent). It does not
// open the repository.
func Locate(start string) (root string, err error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", newErr(KindIOFault, "Locate", start, err)
	}
	cur := abs
	for {
		meta := filepath.Join(cur, MetaDirName)
		if info, statErr := os.Stat(meta); statErr == nil && info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", newErr(KindNotARepository, "Locate", start, nil)
		}
		cur = parent
	}
}

// Open locates and opens the repository containing start. logger may be nil,
// in which case a discard logger is used; library code never calls
// slog.Default() itself so tests can inject their own sink.
func Open(start string, logger *slog.Logger) (*Repository, error) {
	root, err := Locate(start)
	if err != nil {
		return nil, err
	}
	return openAt(root, logger)
}

func openAt(root string, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	metaDir := filepath.Join(root, MetaDirName)
	cfg, err := loadConfig(metaDir)
	if err != nil {
		return nil, err
	}
	return &Repository{
		root:    root,
		metaDir: metaDir,
		store:   newStore(metaDir),
		refs:    newRefs(metaDir),
		index:   newIndex(metaDir),
		config:  cfg,
		log:     logger,
	}, nil
}

// Init creates a fresh repository rooted at dir: the meta directory,
// objects/, refs/heads/, an empty index, and HEAD pointing at refs/heads/main.
// Re-init on an existing repository fails with KindAlreadyExists.
func Init(dir string, logger *slog.Logger) (*Repository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, newErr(KindIOFault, "Init", dir, err)
	}
	metaDir := filepath.Join(abs, MetaDirName)
	if info, statErr := os.Stat(metaDir); statErr == nil && info.IsDir() {
		return nil, newErr(KindAlreadyExists, "Init", abs, nil)
	}

	for _, sub := range []string{"objects", filepath.Join("refs", "heads"), filepath.Join("refs", "tags")} {
		if err := os.MkdirAll(filepath.Join(metaDir, sub), 0o755); err != nil {
			return nil, newErr(KindIOFault, "Init", sub, err)
		}
	}

	r, err := openAt(abs, logger)
	if err != nil {
		return nil, err
	}
	if err := r.refs.UpdateHead("refs/heads/"+DefaultBranch, false); err != nil {
		return nil, err
	}
	if err := r.index.Write(Tree{}); err != nil {
		return nil, err
	}
	return r, nil
}

// Root returns the repository's working-directory root.
func (r *Repository) Root() string { return r.root }

// MetaDir returns the repository's meta directory path.
func (r *Repository) MetaDir() string { return r.metaDir }

// Config returns the repository's config store.
func (r *Repository) Config() *Config { return r.config }

// Logger returns the logger this Repository was opened with.
func (r *Repository) Logger() *slog.Logger { return r.log }

// ReadTree reads and decodes a tree object.
func (r *Repository) ReadTree(id Hash) (Tree, error) {
	if id == "" {
		return Tree{}, nil
	}
	kind, body, err := r.store.read(id)
	if err != nil {
		return nil, err
	}
	if kind != KindTree {
		return nil, newErr(KindCorrupt, "ReadTree", string(id), nil)
	}
	return decodeTree(body)
}

// WriteTree encodes and stores a tree object, returning its id.
func (r *Repository) WriteTree(t Tree) (Hash, error) {
	body, err := encodeTree(t)
	if err != nil {
		return "", newErr(KindIOFault, "WriteTree", "", err)
	}
	return r.store.write(KindTree, body)
}

// ReadBlob reads raw blob content.
func (r *Repository) ReadBlob(id Hash) ([]byte, error) {
	kind, body, err := r.store.read(id)
	if err != nil {
		return nil, err
	}
	if kind != KindBlob {
		return nil, newErr(KindCorrupt, "ReadBlob", string(id), nil)
	}
	return body, nil
}

// WriteBlob stores raw content as a blob, returning its id.
func (r *Repository) WriteBlob(content []byte) (Hash, error) {
	return r.store.write(KindBlob, content)
}

// ReadCommit reads and decodes a commit object.
func (r *Repository) ReadCommit(id Hash) (*Commit, error) {
	kind, body, err := r.store.read(id)
	if err != nil {
		return nil, err
	}
	if kind != KindCommit {
		return nil, newErr(KindCorrupt, "ReadCommit", string(id), nil)
	}
	return decodeCommit(body, id)
}

// WriteCommit encodes and stores a commit object, returning its id.
func (r *Repository) WriteCommit(c *Commit) (Hash, error) {
	id, err := r.store.write(KindCommit, encodeCommit(c))
	if err != nil {
		return "", err
	}
	c.ID = id
	return id, nil
}

// ReadTag reads and decodes a tag object.
func (r *Repository) ReadTag(id Hash) (*Tag, error) {
	kind, body, err := r.store.read(id)
	if err != nil {
		return nil, err
	}
	if kind != KindTag {
		return nil, newErr(KindCorrupt, "ReadTag", string(id), nil)
	}
	return decodeTag(body, id)
}

// WriteTag encodes and stores a tag object, returning its id.
func (r *Repository) WriteTag(t *Tag) (Hash, error) {
	id, err := r.store.write(KindTag, encodeTag(t))
	if err != nil {
		return "", err
	}
	t.ID = id
	return id, nil
}

// TreeOf parses the tree id out of a commit, without decoding the full tree.
func (r *Repository) TreeOf(commitID Hash) (Hash, error) {
	c, err := r.ReadCommit(commitID)
	if err != nil {
		return "", err
	}
	return c.Tree, nil
}

// HeadRef reports whether HEAD is attached (and to what ref) or detached
// (and at what raw id).
func (r *Repository) HeadRef() (ref string, detached bool, raw Hash, err error) {
	return r.refs.HeadRef()
}

// HeadCommit resolves HEAD to a commit id. ok is false for a fresh repository
// with no commits yet.
func (r *Repository) HeadCommit() (Hash, bool, error) {
	return r.refs.HeadCommit()
}

// BranchCommit reads refs/heads/<name>.
func (r *Repository) BranchCommit(name string) (Hash, bool, error) {
	return r.refs.BranchCommit(name)
}

// ListBranches returns all branch names, sorted.
func (r *Repository) ListBranches() ([]string, error) {
	return r.refs.ListBranches()
}

// ListTags returns all tag names, sorted.
func (r *Repository) ListTags() ([]string, error) {
	return r.refs.ListTags()
}

// Index exposes the staging-area reader/writer.
func (r *Repository) Index() Tree { return r.index.Read() }

// WriteIndex overwrites the persisted index.
func (r *Repository) WriteIndex(t Tree) error { return r.index.Write(t) }

// currentBranch returns the branch name HEAD is attached to, or "" if detached.
func (r *Repository) currentBranch() (string, bool, error) {
	ref, detached, _, err := r.HeadRef()
	if err != nil {
		return "", false, err
	}
	if detached {
		return "", false, nil
	}
	const prefix = "refs/heads/"
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):], true, nil
	}
	return "", false, nil
}
