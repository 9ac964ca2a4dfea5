package gltransform

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ByteSize is the size of the uniform memory image returned by Bytes
const ByteSize = 16 * 4

// Array returns a copy of the 16 elements in row-major order.
func (t Transform) Array() [16]float32 {
	return t.m
}

// Mat4 returns the elements typed for mathgl. The memory layout is unchanged, so the
// result can be passed to gl.UniformMatrix4fv with transpose=false.
func (t Transform) Mat4() mgl32.Mat4 {
	return t.m
}

// Row returns row r (0..3).
func (t Transform) Row(r int) [4]float32 {
	return [4]float32{t.m[r*4], t.m[r*4+1], t.m[r*4+2], t.m[r*4+3]}
}

// At returns the element at row r, column c.
func (t Transform) At(r, c int) float32 {
	return t.m[r*4+c]
}

// Bytes returns the 64 byte little-endian image of the array, in index order.
func (t Transform) Bytes() []byte {
	return t.AppendBytes(make([]byte, 0, ByteSize))
}

// AppendBytes appends the 64 byte little-endian image of the array to dst.
func (t Transform) AppendBytes(dst []byte) []byte {
	for _, v := range t.m {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// Equal reports whether all 16 elements are exactly equal.
func (t Transform) Equal(o Transform) bool {
	return t.m == o.m
}

// ApproxEqual reports whether every element differs from o's by at most epsilon.
// A NaN element never compares equal.
func (t Transform) ApproxEqual(o Transform, epsilon float32) bool {
	for i := range t.m {
		if !(mgl32.Abs(t.m[i]-o.m[i]) <= epsilon) {
			return false
		}
	}
	return true
}

// String prints the matrix as four rows.
// mathgl prints its own (column-major) rows, which are our columns, hence the transpose.
func (t Transform) String() string {
	return t.m.Transpose().String()
}
