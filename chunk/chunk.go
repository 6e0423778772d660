// Package chunk abstracts the archive container that stores named,
// versioned binary blobs alongside a capture. The container format itself
// is owned by external tooling; readers in this module only need presence
// checks, the declared format version, and the raw bytes.
package chunk

import "fmt"

// File is a handle to an opened archive of named chunks.
type File interface {
	// Contains reports whether a chunk with the given name is present.
	Contains(name string) bool
	// Version returns the declared format version of the named chunk.
	Version(name string) (uint32, error)
	// Read returns a copy of the named chunk's payload bytes.
	Read(name string) ([]byte, error)
}

// Mem is an in-memory File. It backs tests and lets standalone documents
// (a bare JSON file on disk) be fed through the archive code path.
type Mem struct {
	chunks map[string]memChunk
}

type memChunk struct {
	version uint32
	data    []byte
}

// NewMem returns an empty in-memory archive.
func NewMem() *Mem {
	return &Mem{chunks: make(map[string]memChunk)}
}

// Add stores a chunk under name, replacing any previous chunk of that name.
// The payload is copied.
func (m *Mem) Add(name string, version uint32, data []byte) {
	m.chunks[name] = memChunk{version: version, data: append([]byte(nil), data...)}
}

// Contains reports whether a chunk with the given name is present.
func (m *Mem) Contains(name string) bool {
	_, ok := m.chunks[name]
	return ok
}

// Version returns the declared format version of the named chunk.
func (m *Mem) Version(name string) (uint32, error) {
	c, ok := m.chunks[name]
	if !ok {
		return 0, fmt.Errorf("archive has no chunk named %q", name)
	}
	return c.version, nil
}

// Read returns a copy of the named chunk's payload bytes.
func (m *Mem) Read(name string) ([]byte, error) {
	c, ok := m.chunks[name]
	if !ok {
		return nil, fmt.Errorf("archive has no chunk named %q", name)
	}
	return append([]byte(nil), c.data...), nil
}
