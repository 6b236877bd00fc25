// Package beam applies isotropic Gaussian smoothing to 2D sky maps,
// emulating a telescope beam of a given standard deviation in pixels.
package beam

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/synchro/internal/field"
)

// Kernel support extends to 4 standard deviations on each side.
const truncate = 4.0

// Convolve smooths the map with an isotropic Gaussian of standard
// deviation sd pixels, using two separable 1D passes with reflected
// boundaries. The map's unit is re-attached unchanged: convolution never
// alters unit semantics. sd <= 0 means a pencil beam and returns the input
// untouched.
func Convolve(m *field.Map, sd float64) *field.Map {
	if sd <= 0 {
		return m
	}

	kernel := gaussianKernel(sd)
	nx, ny := m.Shape()

	// Pass along rows (second index), then columns.
	tmp := make([]float64, nx*ny)
	src := m.Values()
	for i := 0; i < nx; i++ {
		convolveLine(src[i*ny:(i+1)*ny], tmp[i*ny:(i+1)*ny], kernel)
	}

	out := field.NewMap(nx, ny, m.Unit())
	dst := out.Values()
	col := make([]float64, nx)
	res := make([]float64, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			col[i] = tmp[i*ny+j]
		}
		convolveLine(col, res, kernel)
		for i := 0; i < nx; i++ {
			dst[i*ny+j] = res[i]
		}
	}
	return out
}

func gaussianKernel(sd float64) []float64 {
	r := int(truncate*sd + 0.5)
	k := make([]float64, 2*r+1)
	for i := -r; i <= r; i++ {
		k[i+r] = math.Exp(-0.5 * float64(i) * float64(i) / (sd * sd))
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// convolveLine writes the 1D convolution of src with kernel into dst,
// reflecting indices at both edges (d c b a | a b c d | d c b a).
func convolveLine(src, dst, kernel []float64) {
	n := len(src)
	r := len(kernel) / 2
	for i := 0; i < n; i++ {
		sum := 0.0
		for t := -r; t <= r; t++ {
			sum += kernel[t+r] * src[reflect(i+t, n)]
		}
		dst[i] = sum
	}
}

func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
