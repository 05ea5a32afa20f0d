package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// LabelColor maps a patch label to a display color. Neighboring labels get
// clearly different colors; the palette repeats after 60 labels.
func LabelColor(label int) [3]uint8 {
	if label < 0 {
		label = -label
	}
	return [3]uint8{
		uint8(60 * (label%4 + 1)),
		uint8(80 * ((label+1)%3 + 1)),
		uint8(50 * ((label+2)%5 + 1)),
	}
}

// WritePLY writes m as ASCII PLY. When labels is non-nil it must hold one
// label per face, and every face line carries the LabelColor of its label as
// red, green and blue properties. The output is readable by ReadPLY.
func WritePLY(w io.Writer, m *Mesh, labels []int) error {
	if labels != nil && len(labels) != len(m.Faces) {
		return fmt.Errorf("%w: %d labels, %d faces", ErrLabelCount, len(labels), len(m.Faces))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat ascii 1.0\n")
	fmt.Fprintf(bw, "element vertex %d\nproperty float x\nproperty float y\nproperty float z\n", len(m.Vertices))
	fmt.Fprintf(bw, "element face %d\nproperty list uchar int vertex_indices\n", len(m.Faces))
	if labels != nil {
		fmt.Fprintf(bw, "property uchar red\nproperty uchar green\nproperty uchar blue\n")
	}
	fmt.Fprintf(bw, "end_header\n")

	var buf []byte
	for _, v := range m.Vertices {
		buf = buf[:0]
		for i, x := range v {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	for f, face := range m.Faces {
		fmt.Fprintf(bw, "3 %d %d %d", face.V[0], face.V[1], face.V[2])
		if labels != nil {
			c := LabelColor(labels[f])
			fmt.Fprintf(bw, " %d %d %d", c[0], c[1], c[2])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
