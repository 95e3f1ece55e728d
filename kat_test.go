package sha3

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Giulio2002/sha3/internal/kat"
)

func fixedOutput(fn func([]byte) []byte) func([]byte, int) []byte {
	return func(msg []byte, _ int) []byte { return fn(msg) }
}

var katFiles = map[string]func([]byte, int) []byte{
	"SHA3_224": fixedOutput(func(m []byte) []byte { d := Sum224(m); return d[:] }),
	"SHA3_256": fixedOutput(func(m []byte) []byte { d := Sum256(m); return d[:] }),
	"SHA3_384": fixedOutput(func(m []byte) []byte { d := Sum384(m); return d[:] }),
	"SHA3_512": fixedOutput(func(m []byte) []byte { d := Sum512(m); return d[:] }),
	"SHAKE128": ShakeSum128,
	"SHAKE256": ShakeSum256,
}

func checkKnownAnswerFile(t *testing.T, name string, fn func([]byte, int) []byte, minVectors int) {
	t.Helper()
	set, err := kat.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(set.Vectors), minVectors)
	for _, m := range set.Verify(fn) {
		t.Errorf("%s vector %d (Len = %d): got %x, want %x", name, m.Index, m.Vector.Len, m.Got, m.Vector.Digest)
	}
}

func TestShortMsgFiles(t *testing.T) {
	for prefix, fn := range katFiles {
		t.Run(prefix, func(t *testing.T) {
			// Every byte length from 0 up to one full block.
			checkKnownAnswerFile(t, prefix+"ShortMsg.rsp", fn, 73)
		})
	}
}

func TestLongMsgFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("long messages")
	}
	for _, prefix := range []string{"SHA3_224", "SHA3_256", "SHA3_384", "SHA3_512"} {
		t.Run(prefix, func(t *testing.T) {
			checkKnownAnswerFile(t, prefix+"LongMsg.rsp", katFiles[prefix], 40)
		})
	}
}

func TestVariableOutFiles(t *testing.T) {
	for _, prefix := range []string{"SHAKE128", "SHAKE256"} {
		t.Run(prefix, func(t *testing.T) {
			checkKnownAnswerFile(t, prefix+"VariableOut.rsp", katFiles[prefix], 60)
		})
	}
}
