package gen_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/statsoc/backdrop/internal/gen"
	"github.com/statsoc/backdrop/internal/prng"
)

func TestGenerators(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Generator Properties Suite")
}

// componentMeans averages the sampled coefficients along each basis direction.
func componentMeans(cloud *gen.PCACloud) [3]float64 {
	var sums [3]float64
	n := cloud.Count()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			sums[k] += cloud.Coeffs[i*3+k]
		}
	}
	for k := range sums {
		sums[k] /= float64(n)
	}
	return sums
}

var _ = Describe("PCA cloud", func() {
	It("keeps every point inside a generous sigma envelope", func() {
		cfg := gen.DefaultPCAConfig()
		cloud := gen.GeneratePCA(cfg, prng.New(21))
		for i := 0; i < cloud.Count(); i++ {
			for k := 0; k < 3; k++ {
				Expect(math.Abs(cloud.Coeffs[i*3+k])).To(BeNumerically("<", 8*cfg.Sigmas[k]))
			}
		}
	})

	It("has component means converging toward zero with sample count", func() {
		small := gen.DefaultPCAConfig()
		small.Count = 200
		large := gen.DefaultPCAConfig()
		large.Count = 20000

		smallMeans := componentMeans(gen.GeneratePCA(small, prng.New(4)))
		largeMeans := componentMeans(gen.GeneratePCA(large, prng.New(4)))

		for k := 0; k < 3; k++ {
			// large-sample mean should sit within a few standard errors of 0
			se := large.Sigmas[k] / math.Sqrt(float64(large.Count))
			Expect(math.Abs(largeMeans[k])).To(BeNumerically("<", 5*se))
			_ = smallMeans // small sample only needs to exist; no bound is honest
		}
	})

	It("is reproducible for a fixed seed", func() {
		cfg := gen.DefaultPCAConfig()
		a := gen.GeneratePCA(cfg, prng.New(99))
		b := gen.GeneratePCA(cfg, prng.New(99))
		Expect(a.Positions).To(Equal(b.Positions))
		Expect(a.Colors).To(Equal(b.Colors))
	})
})

var _ = Describe("Galton choices", func() {
	It("are close to a fair coin over the whole board", func() {
		cfg := gen.DefaultGaltonConfig()
		cfg.Balls = 600
		board := gen.GenerateGalton(cfg, prng.New(8))

		rights, total := 0, 0
		for _, choices := range board.Choices {
			for _, right := range choices {
				total++
				if right {
					rights++
				}
			}
		}
		Expect(float64(rights) / float64(total)).To(BeNumerically("~", 0.5, 0.03))
	})
})

var _ = Describe("Network generator", func() {
	It("never exceeds the requested link budget after dedup", func() {
		for _, seed := range []int64{3, 17, 2024} {
			cfg := gen.DefaultNetworkConfig()
			g := gen.GenerateNetwork(cfg, prng.New(seed))
			Expect(len(g.Edges)).To(BeNumerically("<", cfg.NodeCount*cfg.LinkPerNode))
			Expect(len(g.Edges)).To(BeNumerically(">", 0))
		}
	})
})
