package repo

import (
	"bytes"
	"compress/zlib"
	"crypto/sha1" //nolint:gosec // the object id format is specified to use SHA-1
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxDecompressedSize caps the size of any single decompressed object, the
// same defensive limit the teacher's loose-object reader applies.
const maxDecompressedSize = 256 * 1024 * 1024

// store is the content-addressed object store rooted at <meta>/objects.
// Every method is a thin wrapper around a single file; the store itself
// holds no in-memory cache.
type store struct {
	dir string
}

func newStore(metaDir string) *store {
	return &store{dir: filepath.Join(metaDir, "objects")}
}

func (s *store) path(id Hash) string {
	return filepath.Join(s.dir, string(id))
}

// frame builds the "<kind> <len>\0<body>" byte stream and its id.
func frame(kind ObjectKind, body []byte) (Hash, []byte) {
	header := fmt.Sprintf("%s %d\x00", kind, len(body))
	buf := make([]byte, 0, len(header)+len(body))
	buf = append(buf, header...)
	buf = append(buf, body...)
	sum := sha1.Sum(buf) //nolint:gosec // object id format is specified to use SHA-1
	return Hash(hex.EncodeToString(sum[:])), buf
}

// write computes the id of kind+body, writes the compressed stream if not
// already present, and returns the id. Writes are idempotent.
func (s *store) write(kind ObjectKind, body []byte) (Hash, error) {
	id, framed := frame(kind, body)
	dst := s.path(id)
	if _, err := os.Stat(dst); err == nil {
		return id, nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", newErr(KindIOFault, "store.write", dst, err)
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(framed); err != nil {
		_ = zw.Close()
		return "", newErr(KindIOFault, "store.write", dst, err)
	}
	if err := zw.Close(); err != nil {
		return "", newErr(KindIOFault, "store.write", dst, err)
	}

	tmp, err := os.CreateTemp(s.dir, "obj-*.tmp")
	if err != nil {
		return "", newErr(KindIOFault, "store.write", dst, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(compressed.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", newErr(KindIOFault, "store.write", dst, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", newErr(KindIOFault, "store.write", dst, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return "", newErr(KindIOFault, "store.write", dst, err)
	}
	return id, nil
}

// read decompresses and unframes the object with the given id.
func (s *store) read(id Hash) (ObjectKind, []byte, error) {
	f, err := os.Open(s.path(id)) //nolint:gosec // id is validated hex, path is repo-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, newErr(KindNotFound, "store.read", string(id), err)
		}
		return "", nil, newErr(KindIOFault, "store.read", string(id), err)
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(zr, maxDecompressedSize+1)); err != nil {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), err)
	}
	if buf.Len() > maxDecompressedSize {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), fmt.Errorf("object exceeds %d bytes", maxDecompressedSize))
	}

	data := buf.Bytes()
	nul := bytes.IndexByte(data, 0)
	if nul < 0 {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), fmt.Errorf("missing header terminator"))
	}
	header := string(data[:nul])
	var kindStr string
	var length int
	if _, err := fmt.Sscanf(header, "%s %d", &kindStr, &length); err != nil {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), fmt.Errorf("malformed header %q", header))
	}
	body := data[nul+1:]
	if len(body) != length {
		return "", nil, newErr(KindCorrupt, "store.read", string(id), fmt.Errorf("length mismatch: header says %d, got %d", length, len(body)))
	}
	return ObjectKind(kindStr), body, nil
}

// has reports whether an object with the given id exists without reading it.
func (s *store) has(id Hash) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}

// allIDs returns every object id currently stored, used by prefix resolution.
func (s *store) allIDs() ([]Hash, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, newErr(KindIOFault, "store.allIDs", s.dir, err)
	}
	ids := make([]Hash, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) == 40 {
			ids = append(ids, Hash(name))
		}
	}
	return ids, nil
}
