// Package kat reads NIST CAVP byte-oriented known-answer files (.rsp) for
// SHA-3 and SHAKE: the ShortMsg and LongMsg layouts with a Len line per
// vector, and the SHAKE VariableOut layout where the "[Input Length = N]"
// header gives the message length and each vector carries its Outputlen.
package kat

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vector is a single known answer.
type Vector struct {
	// Len is the message length in bits.
	Len int
	Msg []byte
	// OutputBits is the expected output length in bits.
	OutputBits int
	Digest     []byte
}

// Set is the content of one .rsp file.
type Set struct {
	// Length is the output length in bits from the file header, or 0 when
	// every vector carries its own.
	Length  int
	Vectors []Vector
}

// Mismatch describes a vector whose computed output differs from the file.
type Mismatch struct {
	Index  int
	Vector Vector
	Got    []byte
}

// Load parses the .rsp file at path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return set, nil
}

// Parse reads .rsp content from r. Comments and blank lines are skipped;
// every vector ends with its MD (SHA-3) or Output (SHAKE) line.
func Parse(r io.Reader) (*Set, error) {
	set := &Set{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16<<20)

	var (
		cur                   Vector
		haveLen, haveMsg      bool
		lineNo, vectorOutBits int
		// inputBits is the "[Input Length = N]" header, -1 when absent.
		inputBits = -1
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Headers without a value, like "[Tested for ...]", are ignored.
			key, val, _ := splitAssign(strings.Trim(line, "[]"))
			switch key {
			case "L", "Outputlen":
				n, err := strconv.Atoi(val)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: header %s", lineNo, key)
				}
				set.Length = n
			case "Input Length":
				n, err := strconv.Atoi(val)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: header %s", lineNo, key)
				}
				if n < 0 || n%8 != 0 {
					return nil, errors.Errorf("line %d: input length %d is not byte oriented", lineNo, n)
				}
				inputBits = n
			}
			continue
		}

		key, val, ok := splitAssign(line)
		if !ok {
			return nil, errors.Errorf("line %d: expected key = value, got %q", lineNo, line)
		}
		switch key {
		case "Len":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: Len", lineNo)
			}
			if n < 0 || n%8 != 0 {
				return nil, errors.Errorf("line %d: bit length %d is not byte oriented", lineNo, n)
			}
			cur.Len = n
			haveLen = true
		case "Outputlen":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: Outputlen", lineNo)
			}
			vectorOutBits = n
		case "Msg":
			if !haveLen {
				if inputBits < 0 {
					return nil, errors.Errorf("line %d: Msg without Len", lineNo)
				}
				cur.Len = inputBits
			}
			msg, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: Msg", lineNo)
			}
			if len(msg) < cur.Len/8 {
				return nil, errors.Errorf("line %d: Msg has %d bytes, Len wants %d", lineNo, len(msg), cur.Len/8)
			}
			// A zero-length message is written as "00".
			cur.Msg = bytes.Clone(msg[:cur.Len/8])
			haveMsg = true
		case "MD", "Output":
			if !haveMsg {
				return nil, errors.Errorf("line %d: %s without Msg", lineNo, key)
			}
			digest, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: %s", lineNo, key)
			}
			cur.Digest = digest
			switch {
			case vectorOutBits > 0:
				cur.OutputBits = vectorOutBits
			case set.Length > 0:
				cur.OutputBits = set.Length
			default:
				cur.OutputBits = len(digest) * 8
			}
			if cur.OutputBits != len(digest)*8 {
				return nil, errors.Errorf("line %d: %s has %d bits, expected %d", lineNo, key, len(digest)*8, cur.OutputBits)
			}
			set.Vectors = append(set.Vectors, cur)
			cur = Vector{}
			haveLen, haveMsg, vectorOutBits = false, false, 0
		default:
			// COUNT and other bookkeeping keys.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if haveLen || haveMsg {
		return nil, errors.Errorf("line %d: truncated vector", lineNo)
	}
	return set, nil
}

// Verify runs fn on every vector and returns the ones whose output differs.
// fn receives the message and the expected output length in bytes.
func (s *Set) Verify(fn func(msg []byte, outLen int) []byte) []Mismatch {
	var bad []Mismatch
	for i, v := range s.Vectors {
		got := fn(v.Msg, v.OutputBits/8)
		if !bytes.Equal(got, v.Digest) {
			bad = append(bad, Mismatch{Index: i, Vector: v, Got: got})
		}
	}
	return bad
}

func splitAssign(s string) (key, val string, ok bool) {
	key, val, ok = strings.Cut(s, "=")
	return strings.TrimSpace(key), strings.TrimSpace(val), ok
}
