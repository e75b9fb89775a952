package hands_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hyperclock/internal/hands"
)

var _ = Describe("Derive", func() {
	p := hands.DefaultParams()

	It("derives the base second hand", func() {
		h := hands.Derive("base", 60, 0, p)
		Expect(h.AngularVelocity).To(BeNumerically("~", 0.10472, 1e-5))
		Expect(h.TipSpeed).To(BeNumerically("~", 0.005236, 1e-6))
		Expect(h.SpeedKMH).To(BeNumerically("~", 0.01885, 1e-5))
		Expect(h.LightRatio).To(BeNumerically("~", 1.7465e-11, 1e-14))
		Expect(hands.FormatSpeed(h.SpeedKMH)).To(Equal("0.02 km/h"))
		Expect(hands.FormatLightRatio(h.LightRatio)).To(Equal("1.75e-09 %"))
		Expect(h.Color.B).To(Equal(uint8(255)))
	})

	It("reproduces the formulas for any positive period", func() {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			period := math.Exp(r.Float64()*60 - 30)
			h := hands.Derive("x", period, i%10, p)
			omega := 2 * math.Pi / period
			Expect(h.AngularVelocity).To(Equal(omega))
			Expect(h.LightRatio).To(Equal(omega * 0.05 / 299792458))
			Expect(h.SpeedKMH).To(Equal(h.TipSpeed * 3.6))
		}
	})

	It("fades blue with generation down to a floor", func() {
		Expect(hands.Derive("g0", 60, 0, p).Color.B).To(Equal(uint8(255)))
		Expect(hands.Derive("g1", 60, 1, p).Color.B).To(Equal(uint8(215)))
		Expect(hands.Derive("g5", 60, 5, p).Color.B).To(Equal(uint8(55)))
		Expect(hands.Derive("g6", 60, 6, p).Color.B).To(Equal(uint8(50)))
		Expect(hands.Derive("g20", 60, 20, p).Color.B).To(Equal(uint8(50)))
	})

	It("flags superluminal hands regardless of generation", func() {
		for _, gen := range []int{0, 1, 3, 12} {
			h := hands.Derive("fast", 1e-10, gen, p)
			Expect(h.IsSuperluminal()).To(BeTrue())
			Expect(h.Color).To(Equal(hands.Superluminal))
			Expect(hands.RatioColor(h)).To(Equal(hands.Superluminal))
		}
	})

	It("uses the default blue for subluminal ratios", func() {
		h := hands.Derive("slow", 60, 0, p)
		Expect(h.IsSuperluminal()).To(BeFalse())
		Expect(hands.RatioColor(h)).To(Equal(hands.DefaultBlue))
	})
})

var _ = Describe("Collection", func() {
	var c *hands.Collection

	BeforeEach(func() {
		c = hands.NewCollection("base", 60, hands.DefaultParams())
	})

	It("starts with exactly the base hand", func() {
		Expect(c.Len()).To(Equal(1))
		Expect(c.Generation()).To(Equal(0))
		Expect(c.At(0).Name).To(Equal("base"))
		Expect(c.At(0).Period).To(Equal(60.0))
	})

	It("divides the period by 60 on every add", func() {
		c.Add()
		c.Add()
		c.Add()
		Expect(c.Len()).To(Equal(4))
		Expect(c.At(1).Period).To(BeNumerically("~", 1.0, 1e-12))
		Expect(c.At(2).Period).To(BeNumerically("~", 0.0166667, 1e-6))
		Expect(c.At(3).Period).To(BeNumerically("~", 0.0002778, 1e-7))
		Expect(c.At(2).TipSpeed).To(BeNumerically("~", 18.85, 0.01))
		Expect(c.At(2).Name).To(Equal("extra hand 2"))
		Expect(c.At(2).Color.B).To(BeNumerically("<", c.At(1).Color.B))
	})

	It("turns superluminal after enough additions", func() {
		for i := 0; i < 7; i++ {
			c.Add()
		}
		Expect(c.At(6).IsSuperluminal()).To(BeFalse())
		Expect(c.Last().IsSuperluminal()).To(BeTrue())
		Expect(c.Last().Color).To(Equal(hands.Superluminal))
	})

	It("undoes an add with a remove", func() {
		c.Add()
		c.Add()
		n, gen := c.Len(), c.Generation()
		c.Add()
		c.Remove()
		Expect(c.Len()).To(Equal(n))
		Expect(c.Generation()).To(Equal(gen))
	})

	It("never removes the base hand", func() {
		c.Remove()
		Expect(c.Len()).To(Equal(1))
		Expect(c.Generation()).To(Equal(0))
		c.Add()
		c.Remove()
		c.Remove()
		Expect(c.Len()).To(Equal(1))
	})

	It("renames re-added hands from the counter", func() {
		c.Add()
		c.Add()
		c.Remove()
		c.Add()
		Expect(c.Last().Name).To(Equal("extra hand 2"))
	})

	It("returns a copy from Hands", func() {
		c.Add()
		hs := c.Hands()
		hs[0].Name = "mutated"
		Expect(c.At(0).Name).To(Equal("base"))
	})

	It("honours a custom divisor and length", func() {
		c = hands.NewCollection("tower", 3600, hands.Params{LengthM: 4.2, Divisor: 10})
		c.Add()
		Expect(c.Last().Period).To(BeNumerically("~", 360, 1e-9))
		Expect(c.Last().TipSpeed).To(BeNumerically("~", 4.2*2*math.Pi/360, 1e-12))
	})
})

var _ = Describe("formatting", func() {
	DescribeTable("FormatSpeed",
		func(kmh float64, want string) {
			Expect(hands.FormatSpeed(kmh)).To(Equal(want))
		},
		Entry("small", 0.01885, "0.02 km/h"),
		Entry("just below", 999.5, "999.50 km/h"),
		Entry("threshold", 1000.0, "1.00e+03 km/h"),
		Entry("large", 2.443e9, "2.44e+09 km/h"),
	)

	DescribeTable("FormatLightRatio",
		func(ratio float64, want string) {
			Expect(hands.FormatLightRatio(ratio)).To(Equal(want))
		},
		Entry("tiny", 1.7465e-11, "1.75e-09 %"),
		Entry("fixed", 0.25, "25.0000 %"),
		Entry("above light", 48.9, "4890.0000 %"),
		Entry("just under threshold", 9e-6, "9.00e-04 %"),
	)

	It("prints periods with six decimals", func() {
		Expect(hands.FormatPeriod(60)).To(Equal("60.000000 s"))
		Expect(hands.FormatPeriod(1.0 / 60)).To(Equal("0.016667 s"))
	})
})
