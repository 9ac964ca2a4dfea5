package gltransform

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestRowAndAt(t *testing.T) {
	tr := FromArray([16]float32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	})

	for r := 0; r < 4; r++ {
		row := tr.Row(r)
		for c := 0; c < 4; c++ {
			want := float32(r*4 + c)
			if row[c] != want {
				t.Errorf("Row(%d)[%d] = %v, want %v", r, c, row[c], want)
			}
			if got := tr.At(r, c); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestMat4_SameLayout(t *testing.T) {
	tr := Identity().Translate(2, 3, 4).RotateY(0.25)

	if [16]float32(tr.Mat4()) != tr.Array() {
		t.Errorf("Mat4() = %v, want the row-major array %v", tr.Mat4(), tr.Array())
	}

	// mathgl reads the translation from its fourth column, i.e. indices 12..14
	m := Identity().Translate(2, 3, 4).Mat4()
	if col := m.Col(3); col[0] != 2 || col[1] != 3 || col[2] != 4 {
		t.Errorf("mathgl translation column = %v, want [2 3 4 1]", col)
	}
}

func TestBytes(t *testing.T) {
	tr := Identity().Translate(2, 3, 4).Scale(0.5, -1, 8)
	raw := tr.Array()
	data := tr.Bytes()

	if len(data) != ByteSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(data), ByteSize)
	}

	for i := range raw {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != raw[i] {
			t.Errorf("float %d = %v, want %v", i, got, raw[i])
		}
	}
}

func TestBytes_IdentityImage(t *testing.T) {
	data := Identity().Bytes()

	// 1.0f is 0x3f800000, stored little-endian
	one := []byte{0x00, 0x00, 0x80, 0x3f}
	for _, i := range []int{0, 5, 10, 15} {
		if got := data[i*4 : i*4+4]; string(got) != string(one) {
			t.Errorf("bytes of element %d = % x, want % x", i, got, one)
		}
	}
	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 11, 12, 13, 14} {
		if got := data[i*4 : i*4+4]; string(got) != "\x00\x00\x00\x00" {
			t.Errorf("bytes of element %d = % x, want zeros", i, got)
		}
	}
}

func TestAppendBytes(t *testing.T) {
	prefix := []byte("uniform:")
	tr := Identity().RotateX(1)

	out := tr.AppendBytes(prefix)
	if len(out) != len(prefix)+ByteSize {
		t.Fatalf("len(AppendBytes()) = %d, want %d", len(out), len(prefix)+ByteSize)
	}
	if string(out[:len(prefix)]) != "uniform:" {
		t.Errorf("prefix overwritten: %q", out[:len(prefix)])
	}
	if string(out[len(prefix):]) != string(tr.Bytes()) {
		t.Error("appended image differs from Bytes()")
	}
}

func TestEqual(t *testing.T) {
	a := Identity().Translate(1, 2, 3)
	b := Identity().Translate(1, 2, 3)
	c := Identity().Translate(1, 2, 3.0001)

	if !a.Equal(b) {
		t.Error("identical transforms should be equal")
	}
	if a.Equal(c) {
		t.Error("different transforms should not be equal")
	}
}

func TestApproxEqual(t *testing.T) {
	a := Identity().Translate(1, 2, 3)

	tests := []struct {
		name    string
		other   Transform
		epsilon float32
		want    bool
	}{
		{"same", a, 0, true},
		{"within epsilon", Identity().Translate(1, 2, 3.0000005), 1e-6, true},
		{"outside epsilon", Identity().Translate(1, 2, 3.01), 1e-6, false},
		{"NaN element", Identity().Translate(1, 2, float32(math.NaN())), 1e6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ApproxEqual(tt.other, tt.epsilon); got != tt.want {
				t.Errorf("ApproxEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString_RowMajor(t *testing.T) {
	s := Identity().Translate(2, 3, 4).String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("String() has %d lines, want 4:\n%s", len(lines), s)
	}

	want := []string{"2.000000", "3.000000", "4.000000", "1.000000"}
	got := strings.Fields(lines[3])
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("last row = %v, want %v", got, want)
	}
}
