package main

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/Giulio2002/sha3"
)

// session is one running hash computation.
type session interface {
	io.Writer
	// Digest ends absorption and returns n output bytes. Fixed-output
	// hashes ignore n.
	Digest(n int) ([]byte, error)
}

type fixedSession struct{ *sha3.Hasher }

func (s fixedSession) Digest(int) ([]byte, error) { return s.Finalize() }

type xofSession struct{ *sha3.Shake }

func (s xofSession) Digest(n int) ([]byte, error) { return s.Squeeze(n) }

type algorithm struct {
	// defaultLen is the output length in bytes when none is requested.
	defaultLen int
	xof        bool
	open       func() session
}

var algorithms = map[string]algorithm{
	"224":       {sha3.Size224, false, func() session { return fixedSession{sha3.New224()} }},
	"256":       {sha3.Size256, false, func() session { return fixedSession{sha3.New256()} }},
	"384":       {sha3.Size384, false, func() session { return fixedSession{sha3.New384()} }},
	"512":       {sha3.Size512, false, func() session { return fixedSession{sha3.New512()} }},
	"keccak256": {sha3.Size256, false, func() session { return fixedSession{sha3.NewLegacyKeccak256()} }},
	"shake128":  {32, true, func() session { return xofSession{sha3.NewShake128()} }},
	"shake256":  {64, true, func() session { return xofSession{sha3.NewShake256()} }},
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return algorithm{}, errors.Errorf("unknown algorithm %q, want one of %v", name, algorithmNames())
	}
	return a, nil
}

// sum hashes msg in one go.
func (a algorithm) sum(msg []byte, n int) []byte {
	s := a.open()
	if _, err := s.Write(msg); err != nil {
		panic(err)
	}
	d, err := s.Digest(n)
	if err != nil {
		panic(err)
	}
	return d
}
