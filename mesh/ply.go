package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// element is one "element <name> <count>" header entry.
type element struct {
	name  string
	count int
}

// ReadPLY parses an ASCII PLY stream and builds the mesh.
//
// Only the "vertex" and "face" elements are interpreted; other elements are
// skipped line by line. The first three values of a vertex line are x, y, z.
// A face line must start with the count 3 followed by three vertex ids.
func ReadPLY(r io.Reader, opts ...Option) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	elems, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	var (
		vertices []Vec3
		faces    [][3]int32
	)
	for _, el := range elems {
		for i := 0; i < el.count; i++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: %s %d of %d: unexpected end of file", ErrSyntax, el.name, i, el.count)
			}
			fields := strings.Fields(sc.Text())
			switch el.name {
			case "vertex":
				v, err := parseVertex(fields)
				if err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				vertices = append(vertices, v)
			case "face":
				f, err := parseFace(fields)
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				faces = append(faces, f)
			}
		}
	}

	return Build(vertices, faces, opts...)
}

func readHeader(sc *bufio.Scanner) ([]element, error) {
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "ply" {
		return nil, fmt.Errorf("%w: missing magic line", ErrBadHeader)
	}

	var elems []element
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) < 2 || fields[1] != "ascii" {
				return nil, fmt.Errorf("%w: only ascii format is supported", ErrBadHeader)
			}
		case "element":
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: %q", ErrBadHeader, sc.Text())
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad element count %q", ErrBadHeader, fields[2])
			}
			elems = append(elems, element{name: fields[1], count: n})
		case "end_header":
			return elems, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: missing end_header", ErrBadHeader)
}

func parseVertex(fields []string) (Vec3, error) {
	var v Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: want 3 coordinates, got %d fields", ErrSyntax, len(fields))
	}
	for i := 0; i < 3; i++ {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return v, fmt.Errorf("%w: %q", ErrBadVertex, fields[i])
		}
		v[i] = x
	}

	return v, nil
}

func parseFace(fields []string) ([3]int32, error) {
	var f [3]int32
	if len(fields) == 0 {
		return f, fmt.Errorf("%w: empty face line", ErrSyntax)
	}
	if fields[0] != "3" {
		return f, fmt.Errorf("%w: %s vertices", ErrNotTriangle, fields[0])
	}
	if len(fields) < 4 {
		return f, fmt.Errorf("%w: want 3 vertex ids, got %d", ErrSyntax, len(fields)-1)
	}
	for i := 0; i < 3; i++ {
		id, err := strconv.ParseInt(fields[i+1], 10, 32)
		if err != nil {
			return f, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		f[i] = int32(id)
	}

	return f, nil
}
