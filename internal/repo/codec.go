package repo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// encodeTree canonically serializes a flat path->blob mapping. Go's
// encoding/json sorts map[string]Hash keys on Marshal, which gives us a
// deterministic byte stream for free: identical mappings always produce
// identical object ids, regardless of insertion order.
func encodeTree(t Tree) ([]byte, error) {
	if t == nil {
		t = Tree{}
	}
	return json.Marshal(t)
}

func decodeTree(body []byte) (Tree, error) {
	var t Tree
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if t == nil {
		t = Tree{}
	}
	return t, nil
}

// encodeCommit writes the line-oriented grammar from spec.md §6. A root
// commit (no parents) omits the parent line entirely rather than writing a
// sentinel, and the parser below treats zero parent lines as "root".
func encodeCommit(c *Commit) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "tree %s\n", c.Tree)
	for _, p := range c.Parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "author %s\n", c.Author.String())
	fmt.Fprintf(&b, "committer %s\n", c.Committer.String())
	b.WriteByte('\n')
	b.WriteString(c.Message)
	return b.Bytes()
}

func decodeCommit(body []byte, id Hash) (*Commit, error) {
	c := &Commit{ID: id}
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	inMessage := false
	var msg []string

	for scanner.Scan() {
		line := scanner.Text()
		if inMessage {
			msg = append(msg, line)
			continue
		}
		if line == "" {
			inMessage = true
			continue
		}
		switch {
		case strings.HasPrefix(line, "tree "):
			h, err := NewHash(strings.TrimPrefix(line, "tree "))
			if err != nil {
				return nil, fmt.Errorf("decode commit %s: invalid tree: %w", id, err)
			}
			c.Tree = h
		case strings.HasPrefix(line, "parent "):
			h, err := NewHash(strings.TrimPrefix(line, "parent "))
			if err != nil {
				return nil, fmt.Errorf("decode commit %s: invalid parent: %w", id, err)
			}
			c.Parents = append(c.Parents, h)
		case strings.HasPrefix(line, "author "):
			sig, err := ParseSignature(strings.TrimPrefix(line, "author "))
			if err != nil {
				return nil, fmt.Errorf("decode commit %s: %w", id, err)
			}
			c.Author = sig
		case strings.HasPrefix(line, "committer "):
			sig, err := ParseSignature(strings.TrimPrefix(line, "committer "))
			if err != nil {
				return nil, fmt.Errorf("decode commit %s: %w", id, err)
			}
			c.Committer = sig
		}
	}
	c.Message = strings.TrimSuffix(strings.Join(msg, "\n"), "\n")
	return c, nil
}

func encodeTag(t *Tag) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "object %s\n", t.Object)
	fmt.Fprintf(&b, "type %s\n", t.Type)
	fmt.Fprintf(&b, "tag %s\n", t.Name)
	fmt.Fprintf(&b, "tagger %s\n", t.Tagger.String())
	b.WriteByte('\n')
	b.WriteString(t.Message)
	return b.Bytes()
}

func decodeTag(body []byte, id Hash) (*Tag, error) {
	t := &Tag{ID: id}
	scanner := bufio.NewScanner(bytes.NewReader(body))
	inMessage := false
	var msg []string

	for scanner.Scan() {
		line := scanner.Text()
		if inMessage {
			msg = append(msg, line)
			continue
		}
		if line == "" {
			inMessage = true
			continue
		}
		switch {
		case strings.HasPrefix(line, "object "):
			h, err := NewHash(strings.TrimPrefix(line, "object "))
			if err != nil {
				return nil, fmt.Errorf("decode tag %s: invalid object: %w", id, err)
			}
			t.Object = h
		case strings.HasPrefix(line, "type "):
			t.Type = ObjectKind(strings.TrimPrefix(line, "type "))
		case strings.HasPrefix(line, "tag "):
			t.Name = strings.TrimPrefix(line, "tag ")
		case strings.HasPrefix(line, "tagger "):
			sig, err := ParseSignature(strings.TrimPrefix(line, "tagger "))
			if err != nil {
				return nil, fmt.Errorf("decode tag %s: %w", id, err)
			}
			t.Tagger = sig
		}
	}
	t.Message = strings.TrimSuffix(strings.Join(msg, "\n"), "\n")
	return t, nil
}
