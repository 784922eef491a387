package stochastic_test

import (
	"math"
	"sort"
	"testing"

	"github.com/zefrenchwan/stochkit.git/stochastic"
)

func TestRandomSourceExponentialMeanAndMedian(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large sampling scenario in short mode")
	}

	random := stochastic.NewRandomSource(7, 11)
	const rate = stochastic.Rate(2.5)
	const trials = 200_000

	samples := make([]float64, trials)
	var sum float64
	for i := 0; i < trials; i++ {
		v := float64(random.NextExponential(rate))
		samples[i] = v
		sum += v
	}

	mean := sum / trials
	expectedMean := 1 / float64(rate)
	if math.Abs(mean-expectedMean) > expectedMean*0.02 {
		t.Logf("sample mean %v too far from expected %v", mean, expectedMean)
		t.Fail()
	}

	median := approximateMedian(samples)
	expectedMedian := math.Ln2 / float64(rate)
	if math.Abs(median-expectedMedian) > expectedMedian*0.02 {
		t.Logf("sample median %v too far from expected %v", median, expectedMedian)
		t.Fail()
	}
}

func approximateMedian(samples []float64) float64 {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

func TestRandomSourceDeterministicForFixedSeed(t *testing.T) {
	a := stochastic.NewRandomSource(1, 2)
	b := stochastic.NewRandomSource(1, 2)

	for i := 0; i < 10; i++ {
		if a.NextDouble() != b.NextDouble() {
			t.Log("same seed pair should produce the same sequence")
			t.Fail()
		}
	}
}

func TestRandomSourceZeroRateExponentialIsInfinite(t *testing.T) {
	random := stochastic.NewRandomSource(1, 2)
	if !random.NextExponential(0).IsInfinite() {
		t.Log("zero rate should yield positive infinity")
		t.Fail()
	}
}
