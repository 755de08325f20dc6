package repo

import "fmt"

// Kind classifies a RepoError so callers can branch on failure category
// without string-matching messages.
type Kind int

const (
	// KindUnknown is the zero value; never returned by this package.
	KindUnknown Kind = iota
	// KindNotARepository means no .pygit directory was found.
	KindNotARepository
	// KindBadRevision means a name did not resolve to any object.
	KindBadRevision
	// KindAmbiguous means a hex prefix matched more than one object.
	KindAmbiguous
	// KindNotFound means a referenced object, ref, or file is missing.
	KindNotFound
	// KindAlreadyExists means a create operation collided with an existing name.
	KindAlreadyExists
	// KindCorrupt means an object's header or compressed body could not be parsed.
	KindCorrupt
	// KindDetachedHead means an operation required an attached HEAD.
	KindDetachedHead
	// KindNoCommonAncestor means merge/rebase found no LCA.
	KindNoCommonAncestor
	// KindConflict means a merge produced conflicts; not fatal, but no commit was made.
	KindConflict
	// KindUsage means the caller supplied invalid arguments.
	KindUsage
	// KindIOFault means an underlying filesystem operation failed.
	KindIOFault
)

// String returns a lowercase label for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNotARepository:
		return "not a repository"
	case KindBadRevision:
		return "bad revision"
	case KindAmbiguous:
		return "ambiguous"
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindCorrupt:
		return "corrupt"
	case KindDetachedHead:
		return "detached head"
	case KindNoCommonAncestor:
		return "no common ancestor"
	case KindConflict:
		return "conflict"
	case KindUsage:
		return "usage"
	case KindIOFault:
		return "io fault"
	default:
		return "unknown"
	}
}

// RepoError is the single error type this package returns. It carries a Kind
// so command-surface code can map failures to exit codes, plus an optional
// wrapped cause for diagnostics.
type RepoError struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "checkout", "resolve"
	Target  string // the name/path/id involved, if any
	Err     error  // wrapped cause, may be nil
}

func (e *RepoError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Target != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RepoError) Unwrap() error { return e.Err }

// Is reports whether target is a *RepoError with the same Kind, so callers
// can write errors.Is(err, &RepoError{Kind: KindNotFound}).
func (e *RepoError) Is(target error) bool {
	t, ok := target.(*RepoError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind Kind, op, target string, cause error) *RepoError {
	return &RepoError{Kind: kind, Op: op, Target: target, Err: cause}
}

// NewUsageError builds a KindUsage error for the command surface to report
// missing flags or wrong arity, per spec.md §7.
func NewUsageError(op, target string) *RepoError {
	return newErr(KindUsage, op, target, nil)
}
