package induction_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/faraday/internal/induction"
)

var _ = Describe("Core", func() {
	var core *induction.Core

	BeforeEach(func() {
		core = induction.NewCore(induction.DefaultParams())
		core.SetTurns(5)
	})

	Context("sweeping the magnet from -150 to 0 in one second", func() {
		type point struct{ x, emf float64 }
		var points []point

		BeforeEach(func() {
			points = points[:0]
			core.Step(0, -150)
			const frames = 600
			for i := 1; i <= frames; i++ {
				x := -150 + 150*float64(i)/frames
				out, ok := core.Step(float64(i)*1000/frames, x)
				Expect(ok).To(BeTrue())
				points = append(points, point{x, out.EMF})
			}
		})

		It("rises smoothly from a small value up to the peak", func() {
			peak := 0
			for i, p := range points {
				if math.Abs(p.emf) > math.Abs(points[peak].emf) {
					peak = i
				}
			}
			Expect(peak).To(BeNumerically(">", 100))
			Expect(math.Abs(points[0].emf)).To(BeNumerically("<", 0.5*math.Abs(points[peak].emf)))
			for i := 1; i <= peak; i++ {
				Expect(math.Abs(points[i].emf)).To(BeNumerically(">", math.Abs(points[i-1].emf)),
					"frame %d at x=%.2f", i, points[i].x)
			}
		})

		It("falls back to zero at the coil centre", func() {
			Expect(math.Abs(points[len(points)-1].emf)).To(BeNumerically("<", 1e-9))
			Expect(math.Abs(points[len(points)-1].x)).To(BeNumerically("<", 1e-9))
		})

		It("peaks where the flux slope is steepest", func() {
			best := points[0]
			for _, p := range points[10:] {
				if math.Abs(p.emf) > math.Abs(best.emf) {
					best = p
				}
			}
			want := -induction.FluxWidth / math.Sqrt2
			Expect(best.x).To(BeNumerically("~", want, 2))
			Expect(best.emf).NotTo(BeZero())
		})

		It("never exceeds the history bound", func() {
			Expect(core.HistoryLen()).To(BeNumerically("<=", induction.HistoryCapacity))
		})
	})

	Context("holding the magnet still", func() {
		It("settles velocity and displayed EMF to zero", func() {
			core.Step(0, 90)
			for i := 1; i <= 200; i++ {
				core.Step(float64(i)*16, 90)
			}
			st := core.State()
			Expect(st.Velocity).To(BeNumerically("~", 0, 1e-6))
			Expect(st.EMFDisplay).To(BeNumerically("~", 0, 1e-6))
			Expect(st.Flux).To(BeNumerically(">", 0))
		})
	})
})
