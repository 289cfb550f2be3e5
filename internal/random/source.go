package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand"
	"sync"
)

// Source produces uniformly distributed 64-bit values.
type Source interface {
	Uint64() (uint64, error)
}

// Entropy reads every value from an entropy reader,
// so a broken reader is reported on the draw that hit it.
type Entropy struct {
	reader io.Reader
}

var _ Source = (*Entropy)(nil)

// A nil reader means crypto/rand.
func NewEntropy(reader io.Reader) *Entropy {
	if reader == nil {
		reader = cryptorand.Reader
	}

	return &Entropy{
		reader: reader,
	}
}

func (e *Entropy) Uint64() (uint64, error) {
	var res uint64

	err := binary.Read(e.reader, binary.BigEndian, &res)

	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSource, err)
	}

	return res, nil
}

// Seeded is a reproducible math/rand based source. Goroutine-safe.
type Seeded struct {
	mu  sync.Mutex
	rnd *mathrand.Rand
}

var _ Source = (*Seeded)(nil)

func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rnd: mathrand.New(mathrand.NewSource(seed)),
	}
}

// Seeds a math/rand source from crypto/rand.
func NewCryptoSeeded() (*Seeded, error) {
	randomKey := make([]byte, 8)

	_, err := cryptorand.Read(randomKey)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	return NewSeeded(int64(binary.BigEndian.Uint64(randomKey))), nil
}

func (s *Seeded) Uint64() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Uint64(), nil
}
