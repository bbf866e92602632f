package sim

import (
	"encoding/binary"
	"io/ioutil"
	"os"
)

// WordStore is an in-memory 16-bit word store with a physical
// write counter and an optional file image for persistence
// across runs.
type WordStore struct {
	data   []byte
	writes int
}

func (s *WordStore) init(size int) {
	if size&1 != 0 {
		size++
	}
	s.data = make([]byte, size)
}

// ReadWord implements hal.Store.
func (s *WordStore) ReadWord(addr int) uint16 {
	return binary.LittleEndian.Uint16(s.data[addr:])
}

// WriteWord implements hal.Store.
func (s *WordStore) WriteWord(addr int, v uint16) {
	binary.LittleEndian.PutUint16(s.data[addr:], v)
	s.writes++
}

// Writes reports the number of physical word writes performed.
func (s *WordStore) Writes() int { return s.writes }

// LoadImage restores store content from a file image. A missing
// file leaves the store erased.
func (s *WordStore) LoadImage(path string) error {
	b, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	copy(s.data, b)
	return nil
}

// SaveImage writes store content to a file image.
func (s *WordStore) SaveImage(path string) error {
	return ioutil.WriteFile(path, s.data, 0644)
}
