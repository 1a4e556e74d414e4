//go:build analysis

// Command gcd-analysis benchmarks the GCD engine across input sizes and
// renders the timing distributions as an HTML report.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mathhook/mathhook/pkg/mathhook"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    cp[0],
		Median: cp[n/2],
		Max:    cp[n-1],
	}
}

// randomPoly builds a dense univariate polynomial of the given degree with
// coefficients in [-bound, bound] and a non-zero leading coefficient
func randomPoly(rng *rand.Rand, degree int, bound int64) *mathhook.Polynomial {
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(rng.Int63n(2*bound+1) - bound)
	}
	for coeffs[degree].Sign() == 0 {
		coeffs[degree] = big.NewInt(rng.Int63n(2*bound+1) - bound)
	}
	return mathhook.NewUnivariate(coeffs)
}

// mulPolys multiplies two dense univariate polynomials over the integers
func mulPolys(a, b *mathhook.Polynomial) *mathhook.Polynomial {
	out := make([]*big.Int, len(a.Coeffs)+len(b.Coeffs)-1)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for i, ca := range a.Coeffs {
		for j, cb := range b.Coeffs {
			out[i+j].Add(out[i+j], new(big.Int).Mul(ca, cb))
		}
	}
	return mathhook.NewUnivariate(out)
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newTimingChart(title string, labels []string, means, maxes []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "milliseconds per call"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("mean", toBarItems(means)).
		AddSeries("max", toBarItems(maxes)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	var (
		outDir  = flag.String("out", "analysis-out", "output directory")
		samples = flag.Int("samples", 20, "samples per degree")
		seed    = flag.Int64("seed", 1, "random seed")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o750); err != nil {
		log.Fatal(err)
	}

	engine, err := mathhook.NewEngine(nil)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	degrees := []int{4, 8, 16, 32, 64}

	var labels []string
	var means, maxes []float64
	report := make(map[string]summaryStats)

	for _, deg := range degrees {
		timings := make([]float64, 0, *samples)
		for s := 0; s < *samples; s++ {
			// Shared factor of half the degree guarantees a non-trivial GCD
			h := randomPoly(rng, deg/2, 50)
			f := mulPolys(h, randomPoly(rng, deg-deg/2, 50))
			g := mulPolys(h, randomPoly(rng, deg-deg/2, 50))

			start := time.Now()
			if _, err := engine.PolynomialGCD(f, g); err != nil {
				log.Fatalf("degree %d sample %d: %v", deg, s, err)
			}
			timings = append(timings, float64(time.Since(start).Microseconds())/1000.0)
		}

		stats := computeStats(timings)
		key := fmt.Sprintf("degree_%d", deg)
		report[key] = stats
		labels = append(labels, fmt.Sprintf("deg %d", deg))
		means = append(means, stats.Mean)
		maxes = append(maxes, stats.Max)
		fmt.Printf("%s: mean=%.3fms max=%.3fms\n", key, stats.Mean, stats.Max)
	}

	page := components.NewPage()
	page.AddCharts(newTimingChart("Univariate GCD timing by degree", labels, means, maxes))

	htmlPath := filepath.Join(*outDir, "gcd_timings.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatal(err)
	}

	jsonPath := filepath.Join(*outDir, "gcd_timings.json")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, data, 0o600); err != nil {
		log.Fatal(err)
	}

	fmt.Println("report written to", htmlPath, "and", jsonPath)
}
