package lottery

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stats summarizes per-value frequencies.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
}

// CoverageReport tallies how often each value shows up over repeated
// predictions with the same draw.
type CoverageReport struct {
	Game   Game `json:"game"`
	Trials int  `json:"trials"`

	// index v-1 holds the count for value v
	PrimaryFreq   []int `json:"primary_freq"`
	CompanionFreq []int `json:"companion_freq"`

	// legal values that never appeared
	MissingPrimary   []int `json:"missing_primary"`
	MissingCompanion []int `json:"missing_companion"`

	Primary   Stats `json:"primary"`   // over legal primary values only
	Companion Stats `json:"companion"` // over the whole companion pool

	// goodness of fit of companion counts against uniform
	ChiSquare        float64 `json:"chi_square"`
	DegreesOfFreedom int     `json:"dof"`
	PValue           float64 `json:"p_value"`
}

// Complete reports whether every legal value appeared at least once.
func (r CoverageReport) Complete() bool {
	return len(r.MissingPrimary) == 0 && len(r.MissingCompanion) == 0
}

// legalPrimary lists the primary values a game may emit for draw.
// Double color reuses draw numbers, so its whole pool is legal.
func legalPrimary(r Rules, draw []int) []int {
	if r.Game == GameDoubleColor {
		return seq(r.PrimaryMax)
	}
	return complement(r.PrimaryMax, draw)
}

// RunCoverage repeats Predict trials times and returns frequency stats.
func RunCoverage(g Game, draw []int, trials int, rng RandomSource) (CoverageReport, error) {
	r, ok := RulesFor(g)
	if !ok {
		return CoverageReport{}, ErrUnknownGame
	}
	if err := validateDraw(r, draw); err != nil {
		return CoverageReport{}, err
	}
	if trials <= 0 {
		return CoverageReport{Game: g}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	rep := CoverageReport{
		Game:          g,
		Trials:        trials,
		PrimaryFreq:   make([]int, r.PrimaryMax),
		CompanionFreq: make([]int, r.CompanionMax),
	}
	for i := 0; i < trials; i++ {
		preds, err := Predict(g, draw, rng)
		if err != nil {
			return CoverageReport{}, err
		}
		for _, p := range preds {
			for _, v := range p.Primary {
				if v >= 1 && v <= r.PrimaryMax {
					rep.PrimaryFreq[v-1]++
				}
			}
			for _, v := range p.Companions {
				rep.CompanionFreq[v-1]++
			}
		}
	}

	legal := legalPrimary(r, draw)
	primary := make([]int, 0, len(legal))
	for _, v := range legal {
		c := rep.PrimaryFreq[v-1]
		if c == 0 {
			rep.MissingPrimary = append(rep.MissingPrimary, v)
		}
		primary = append(primary, c)
	}
	for v, c := range rep.CompanionFreq {
		if c == 0 {
			rep.MissingCompanion = append(rep.MissingCompanion, v+1)
		}
	}

	rep.Primary = calcStats(primary)
	rep.Companion = calcStats(rep.CompanionFreq)
	rep.ChiSquare, rep.DegreesOfFreedom, rep.PValue = chiSquareUniform(rep.CompanionFreq)
	return rep, nil
}

// calcStats computes summary stats for integer counts.
func calcStats(xs []int) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	data := stats.LoadRawData(xs)
	mean, _ := stats.Mean(data)
	sd, _ := stats.StandardDeviation(data)
	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	med, _ := stats.Median(data)
	return Stats{Mean: mean, StdDev: sd, Min: lo, Max: hi, P50: med}
}

// chiSquareUniform tests counts against an equal expected count per bucket.
// A perfectly even tally yields chi=0, p=1.
func chiSquareUniform(counts []int) (chi float64, dof int, p float64) {
	if len(counts) < 2 {
		return 0, 0, 1
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 0, 1
	}
	exp := float64(total) / float64(len(counts))
	for _, c := range counts {
		d := float64(c) - exp
		chi += d * d / exp
	}
	dof = len(counts) - 1
	p = 1 - distuv.ChiSquared{K: float64(dof)}.CDF(chi)
	return chi, dof, p
}
