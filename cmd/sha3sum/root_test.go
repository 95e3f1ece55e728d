package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Giulio2002/sha3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := NewRootCmd()
	var out bytes.Buffer
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestHashStdin(t *testing.T) {
	out, err := run(t, "abc")
	require.NoError(t, err)
	require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532  -\n", out)

	out, err = run(t, "abc", "-a", "512", "-")
	require.NoError(t, err)
	want := sha3.Sum512([]byte("abc"))
	require.Equal(t, hex.EncodeToString(want[:])+"  -\n", out)
}

func TestHashFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o644))
	data := bytes.Repeat([]byte{0x5a}, 10000)
	require.NoError(t, os.WriteFile(b, data, 0o644))

	out, err := run(t, "", "--algorithm", "keccak256", a, b)
	require.NoError(t, err)
	wantA := sha3.LegacyKeccak256([]byte("hello"))
	wantB := sha3.LegacyKeccak256(data)
	require.Equal(t,
		hex.EncodeToString(wantA[:])+"  "+a+"\n"+hex.EncodeToString(wantB[:])+"  "+b+"\n",
		out)

	_, err = run(t, "", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestHashRelativeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("notes.txt", []byte("abc"), 0o644))

	out, err := run(t, "", "notes.txt")
	require.NoError(t, err)
	require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532  notes.txt\n", out)
}

func TestAlgorithmSum(t *testing.T) {
	msg := []byte("one shot")
	d224, d256, d384, d512 := sha3.Sum224(msg), sha3.Sum256(msg), sha3.Sum384(msg), sha3.Sum512(msg)
	k256 := sha3.LegacyKeccak256(msg)
	for name, want := range map[string][]byte{
		"224":       d224[:],
		"256":       d256[:],
		"384":       d384[:],
		"512":       d512[:],
		"keccak256": k256[:],
		"shake128":  sha3.ShakeSum128(msg, 32),
		"shake256":  sha3.ShakeSum256(msg, 64),
	} {
		a, err := lookup(name)
		require.NoError(t, err)
		require.Equal(t, want, a.sum(msg, a.defaultLen), name)
	}
}

func TestShakeLength(t *testing.T) {
	out, err := run(t, "abc", "-a", "shake256", "-l", "200")
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(sha3.ShakeSum256([]byte("abc"), 200))+"  -\n", out)

	out, err = run(t, "", "-a", "shake128")
	require.NoError(t, err)
	require.Equal(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26  -\n", out)
}

func TestFlagErrors(t *testing.T) {
	_, err := run(t, "", "-a", "md5")
	require.ErrorContains(t, err, "unknown algorithm")

	_, err = run(t, "", "-a", "256", "-l", "10")
	require.ErrorContains(t, err, "--length")

	_, err = run(t, "", "-a", "shake128", "-l", "-1")
	require.ErrorContains(t, err, "negative")
}

func TestKatCommand(t *testing.T) {
	testdata := filepath.Join("..", "..", "testdata")
	for algo, file := range map[string]string{
		"224":      "SHA3_224ShortMsg.rsp",
		"256":      "SHA3_256ShortMsg.rsp",
		"384":      "SHA3_384ShortMsg.rsp",
		"512":      "SHA3_512ShortMsg.rsp",
		"shake128": "SHAKE128ShortMsg.rsp",
		"shake256": "SHAKE256ShortMsg.rsp",
	} {
		out, err := run(t, "", "kat", algo, filepath.Join(testdata, file))
		require.NoError(t, err, algo)
		require.Contains(t, out, "passed")
	}

	// The SHA3-256 answers do not hold for Keccak-256.
	out, err := run(t, "", "kat", "keccak256", filepath.Join(testdata, "SHA3_256ShortMsg.rsp"))
	require.ErrorContains(t, err, "137 vectors failed")
	require.Contains(t, out, "0/137 passed")

	for algo, file := range map[string]string{
		"shake128": "SHAKE128VariableOut.rsp",
		"shake256": "SHAKE256VariableOut.rsp",
	} {
		out, err := run(t, "", "kat", algo, filepath.Join(testdata, file))
		require.NoError(t, err, algo)
		require.Contains(t, out, "60/60 passed")
	}

	_, err = run(t, "", "kat", "256")
	require.Error(t, err)
}
