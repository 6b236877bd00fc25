package angle

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAngle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Angle Suite")
}

var _ = Describe("Normalize", func() {
	DescribeTable("wraps representative values into (-pi, pi]",
		func(theta, want float64) {
			Expect(Normalize(theta)).To(BeNumerically("~", want, 1e-12))
		},
		Entry("zero", 0.0, 0.0),
		Entry("small positive", 1.0, 1.0),
		Entry("small negative", -1.0, -1.0),
		Entry("just above pi", 3.5, 3.5-2*math.Pi),
		Entry("just below -pi", -3.5, 2*math.Pi-3.5),
		Entry("one full turn", 2*math.Pi, 0.0),
		Entry("many turns", 1.0+20*math.Pi, 1.0),
		Entry("many negative turns", -1.0-20*math.Pi, -1.0),
		Entry("huge angle", 1e9, math.Mod(1e9, 2*math.Pi)),
		Entry("huge negative angle", -1e9, math.Mod(-1e9, 2*math.Pi)),
	)

	It("is 2*pi periodic", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 1000; i++ {
			theta := (rng.Float64() - 0.5) * 20
			n := float64(rng.Intn(2001) - 1000)
			Expect(Normalize(theta + 2*math.Pi*n)).To(BeNumerically("~", Normalize(theta), 1e-9))
		}
	})

	It("always lands in (-pi, pi]", func() {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 10000; i++ {
			theta := (rng.Float64() - 0.5) * 1e6
			got := Normalize(theta)
			Expect(got).To(BeNumerically(">", -math.Pi))
			Expect(got).To(BeNumerically("<=", math.Pi))
		}
	})

	It("maps both branch-cut boundaries to +pi exactly", func() {
		Expect(Normalize(math.Pi)).To(Equal(math.Pi))
		Expect(Normalize(-math.Pi)).To(Equal(math.Pi))
	})

	It("agrees bit-for-bit with the iterative reference at and near the boundary", func() {
		// One reduction step at most: math.Mod is exact and the single
		// subtraction/addition is exactly representable, so the two
		// formulations cannot diverge here.
		cases := []float64{
			0, math.Pi, -math.Pi,
			3 * math.Pi, -3 * math.Pi,
			math.Nextafter(math.Pi, math.Inf(1)),
			math.Nextafter(math.Pi, math.Inf(-1)),
			math.Nextafter(-math.Pi, math.Inf(1)),
			math.Nextafter(-math.Pi, math.Inf(-1)),
		}
		for _, theta := range cases {
			Expect(Normalize(theta)).To(Equal(normalizeIterative(theta)), "theta=%v", theta)
		}
	})

	It("stays within rounding of the iterative reference a few periods out", func() {
		// Beyond one period the iterative loop accumulates one rounding
		// per subtraction, so only closeness is guaranteed.
		for _, theta := range []float64{5 * math.Pi, -7 * math.Pi, 9.5 * math.Pi, -11.25 * math.Pi} {
			Expect(Normalize(theta)).To(BeNumerically("~", normalizeIterative(theta), 1e-12))
		}
	})
})

var _ = Describe("SmallestDiff", func() {
	DescribeTable("picks the smallest-magnitude representative modulo pi",
		func(diff, want float64) {
			Expect(SmallestDiff(diff)).To(BeNumerically("~", want, 1e-12))
		},
		Entry("zero", 0.0, 0.0),
		Entry("within half-period", 1.0, 1.0),
		Entry("exactly pi", math.Pi, 0.0),
		Entry("exactly -pi", -math.Pi, 0.0),
		Entry("just above half-period", 1.6, 1.6-math.Pi),
		Entry("several periods out", 10.0, 10.0-3*math.Pi),
		Entry("negative, several periods", -10.0, 3*math.Pi-10.0),
	)

	It("keeps the boundary representatives under strict-improvement ties", func() {
		// Shifting +-pi/2 by a period gives an equal magnitude, not a
		// smaller one, so the input representative survives.
		Expect(SmallestDiff(math.Pi / 2)).To(Equal(math.Pi / 2))
		Expect(SmallestDiff(-math.Pi / 2)).To(Equal(-math.Pi / 2))
	})

	It("is bounded by half a period", func() {
		rng := rand.New(rand.NewSource(13))
		for i := 0; i < 10000; i++ {
			diff := (rng.Float64() - 0.5) * 100
			got := SmallestDiff(diff)
			Expect(math.Abs(got)).To(BeNumerically("<=", math.Pi/2+1e-12))
		}
	})
})
