// File: binary.go
// Role: the three-file binary loader (<base>.config/.idx/.adj).
//
// The wire format is explicit and portable: little-endian uint64
// offsets in .idx, little-endian uint32 neighbor ids in .adj. Readers
// that memory-map these files at native word widths are not portable
// across platforms; fixed-width reads are.
package ioadj

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pargraph/graph"
)

// LoadBinary reads base+".config" (a single decimal integer n),
// base+".idx" (n little-endian uint64 out-offsets), and base+".adj"
// (m little-endian uint32 neighbor ids, m inferred from file size) and
// assembles a graph.Graph. symmetric asserts .adj already lists every
// edge in both directions, as LoadText does.
func LoadBinary(base string, symmetric bool) (*graph.Graph, error) {
	n, err := readConfig(base + ".config")
	if err != nil {
		return nil, err
	}

	offsets, err := readOffsets(base+".idx", n)
	if err != nil {
		return nil, err
	}

	neighbors, err := readNeighbors(base + ".adj")
	if err != nil {
		return nil, err
	}
	m := len(neighbors)

	b := graph.NewBuilder(n)
	if symmetric {
		b.AlreadySymmetric()
	}
	for u := 0; u < n; u++ {
		lo := int(offsets[u])
		hi := m
		if u+1 < n {
			hi = int(offsets[u+1])
		}
		if lo < 0 || hi > m || lo > hi {
			return nil, fmt.Errorf("ioadj: offset range [%d,%d) out of bounds for vertex %d: %w", lo, hi, u, ErrSizeMismatch)
		}
		for _, v := range neighbors[lo:hi] {
			b.AddEdge(uint32(u), v, 0)
		}
	}

	return b.Build(), nil
}

func readConfig(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("ioadj: reading %s: %w", path, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("ioadj: parsing %s: %w", path, ErrSizeMismatch)
	}
	return n, nil
}

func readOffsets(path string, n int) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioadj: opening %s: %w", path, err)
	}
	defer f.Close()

	offsets := make([]uint64, n)
	r := bufio.NewReader(f)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("ioadj: reading %s: %w", path, ErrTruncated)
	}
	return offsets, nil
}

func readNeighbors(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioadj: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("ioadj: stat %s: %w", path, err)
	}
	if info.Size()%4 != 0 {
		return nil, fmt.Errorf("ioadj: %s size %d not a multiple of 4: %w", path, info.Size(), ErrSizeMismatch)
	}

	neighbors := make([]uint32, info.Size()/4)
	r := bufio.NewReader(f)
	if err := binary.Read(r, binary.LittleEndian, neighbors); err != nil && err != io.EOF {
		return nil, fmt.Errorf("ioadj: reading %s: %w", path, ErrTruncated)
	}
	return neighbors, nil
}
