// Package flash models pixel data that lives in a read-only address space.
//
// Some targets keep constant patterns in memory that normal loads can't
// reach and must be read through byte, word or double-word accessors. A
// Source exposes exactly those accessors. Bytes is the plain in-memory
// form; File maps a pattern file read-only.
package flash

import (
	"encoding/binary"
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// Source is a read-only region addressed by byte offset. Word and DWord
// read little-endian lanes starting at off.
type Source interface {
	Byte(off int) byte
	Word(off int) uint16
	DWord(off int) uint32
}

// Bytes is a Source over ordinary memory.
type Bytes []byte

func (b Bytes) Byte(off int) byte {
	return b[off]
}

func (b Bytes) Word(off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

func (b Bytes) DWord(off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

// File is a pattern file mapped read-only into memory.
type File struct {
	f *os.File
	m mmap.MMap
}

// Open maps the file at path. Empty files can't be mapped and are rejected.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open pattern file: %v", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close() // Ignore error
		return nil, fmt.Errorf("couldn't stat pattern file: %v", err)
	}
	if st.Size() == 0 {
		f.Close() // Ignore error
		return nil, fmt.Errorf("pattern file %s is empty", path)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close() // Ignore error
		return nil, fmt.Errorf("couldn't map pattern file: %v", err)
	}
	return &File{f, m}, nil
}

// Len is the mapped size in bytes.
func (pf *File) Len() int {
	return len(pf.m)
}

func (pf *File) Byte(off int) byte {
	return Bytes(pf.m).Byte(off)
}

func (pf *File) Word(off int) uint16 {
	return Bytes(pf.m).Word(off)
}

func (pf *File) DWord(off int) uint32 {
	return Bytes(pf.m).DWord(off)
}

// Close unmaps the file. The File must not be read afterwards.
func (pf *File) Close() error {
	err := pf.m.Unmap()
	pf.m = nil
	te := pf.f.Close()
	if err != nil {
		return fmt.Errorf("couldn't unmap pattern file: %v", err)
	}
	return te
}
