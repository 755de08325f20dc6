package repo

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Hash is a 40-character hex-encoded SHA-1 object id.
type Hash string

// NewHash validates s as a 40-character hex string.
func NewHash(s string) (Hash, error) {
	if len(s) != 40 {
		return "", fmt.Errorf("invalid hash length: %d", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("invalid hash: %w", err)
	}
	return Hash(s), nil
}

// Short returns the first 7 characters of the hash, or the whole thing if shorter.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h)[:7]
}

// Empty reports whether h carries no id.
func (h Hash) Empty() bool { return h == "" }

// ObjectKind identifies one of the four object shapes stored in the object store.
type ObjectKind string

const (
	KindBlob   ObjectKind = "blob"
	KindTree   ObjectKind = "tree"
	KindCommit ObjectKind = "commit"
	KindTag    ObjectKind = "tag"
)

// Signature is a free-form identity plus a timestamp, as carried on a commit's
// author/committer lines and a tag's tagger line.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// String renders the signature the way it is written into an object body:
// "Name <email> unix-seconds +zzzz".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.When.Unix(), s.When.Format("-0700"))
}

// ParseSignature parses a line previously produced by Signature.String.
func ParseSignature(line string) (Signature, error) {
	open := strings.LastIndex(line, "<")
	close := strings.LastIndex(line, ">")
	if open < 0 || close < open {
		return Signature{}, fmt.Errorf("invalid signature line: %q", line)
	}
	name := strings.TrimSpace(line[:open])
	email := line[open+1 : close]
	rest := strings.Fields(strings.TrimSpace(line[close+1:]))
	if len(rest) == 0 {
		return Signature{}, fmt.Errorf("invalid signature line: missing timestamp: %q", line)
	}
	var unixTime int64
	if _, err := fmt.Sscanf(rest[0], "%d", &unixTime); err != nil {
		return Signature{}, fmt.Errorf("invalid signature line: bad timestamp: %q", line)
	}
	loc := time.UTC
	if len(rest) >= 2 {
		if z := parseZone(rest[1]); z != nil {
			loc = z
		}
	}
	return Signature{Name: name, Email: email, When: time.Unix(unixTime, 0).In(loc)}, nil
}

func parseZone(tz string) *time.Location {
	if len(tz) != 5 {
		return nil
	}
	sign := 1
	switch tz[0] {
	case '-':
		sign = -1
	case '+':
	default:
		return nil
	}
	var hours, mins int
	if _, err := fmt.Sscanf(tz[1:3], "%d", &hours); err != nil {
		return nil
	}
	if _, err := fmt.Sscanf(tz[3:5], "%d", &mins); err != nil {
		return nil
	}
	return time.FixedZone(tz, sign*(hours*3600+mins*60))
}

// Commit is the metadata record for one point in the commit DAG.
type Commit struct {
	ID        Hash
	Tree      Hash
	Parents   []Hash
	Author    Signature
	Committer Signature
	Message   string
}

// Tag is an annotated-tag object pointing at another object.
type Tag struct {
	ID      Hash
	Object  Hash
	Type    ObjectKind
	Name    string
	Tagger  Signature
	Message string
}

// Tree is the in-memory form of a tree object: a flat path -> blob id mapping.
// Directory structure is implied entirely by '/' separators in keys.
type Tree map[string]Hash

// Clone returns a shallow copy of the mapping.
func (t Tree) Clone() Tree {
	c := make(Tree, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}
