package cli

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// codec selects the stream compression of a matrix file.
type codec string

const (
	codecNone codec = "none"
	codecZstd codec = "zstd"
	codecLZ4  codec = "lz4"
)

func parseCodec(s string) (codec, error) {
	switch c := codec(s); c {
	case codecNone, codecZstd, codecLZ4:
		return c, nil
	case "":
		return codecNone, nil
	default:
		return "", fmt.Errorf("unknown compression %q (want none, zstd or lz4)", s)
	}
}

// writeMatrix stores m as: uint32 N, then N rows of N little-endian float64,
// the whole stream compressed with c.
func writeMatrix(w io.Writer, m [][]float64, c codec) (err error) {
	var (
		sink   io.Writer = w
		closer io.Closer
	)
	switch c {
	case codecZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		sink, closer = enc, enc
	case codecLZ4:
		enc := lz4.NewWriter(w)
		sink, closer = enc, enc
	}
	if closer != nil {
		defer func() {
			if cerr := closer.Close(); err == nil {
				err = cerr
			}
		}()
	}

	bw := bufio.NewWriter(sink)
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(m)))
	if _, err := bw.Write(buf[:4]); err != nil {
		return err
	}
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("matrix row %d has %d entries, want %d", i, len(row), len(m))
		}
		for _, d := range row {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(d))
			if _, err := bw.Write(buf[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// readMatrix is the inverse of writeMatrix. The stored size must equal want,
// the face count of the mesh the matrix belongs to; nothing is allocated
// for a mismatching header.
func readMatrix(r io.Reader, c codec, want int) ([][]float64, error) {
	src := r
	switch c {
	case codecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	case codecLZ4:
		src = lz4.NewReader(r)
	}

	br := bufio.NewReader(src)
	var buf [8]byte
	if _, err := io.ReadFull(br, buf[:4]); err != nil {
		return nil, err
	}
	n := int(binary.LittleEndian.Uint32(buf[:4]))
	if n != want {
		return nil, fmt.Errorf("matrix holds %d faces, mesh has %d", n, want)
	}
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if _, err := io.ReadFull(br, buf[:]); err != nil {
				return nil, fmt.Errorf("matrix row %d col %d: %w", i, j, err)
			}
			m[i][j] = math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))
		}
	}

	return m, nil
}
