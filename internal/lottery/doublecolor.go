package lottery

import "sort"

// PredictDoubleColor builds 5 groups of 6 primary numbers (1..33) and one
// companion (1..16) each from the last draw.
//
// The 27 numbers missing from the draw are shuffled; the first 18 become
// groups D, E, F and the other 9 form a residual pool G. Three numbers of
// the draw are shuffled back into G, which is shuffled again and split into
// H and I. Companions are the first 5 values of a shuffled 1..16, so no
// companion repeats within one call.
func PredictDoubleColor(draw []int, rng RandomSource) ([]Prediction, error) {
	r := rules[GameDoubleColor]
	if err := validateDraw(r, draw); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	rest := complement(r.PrimaryMax, draw)
	shuffle(rng, rest)

	n := r.GroupSize
	d, e, f := rest[0:n], rest[n:2*n], rest[2*n:3*n]

	g := append([]int(nil), rest[3*n:]...)
	last := append([]int(nil), draw...)
	shuffle(rng, last)
	g = append(g, last[:3]...)
	shuffle(rng, g)
	h, i := g[0:n], g[n:2*n]

	blues := seq(r.CompanionMax)
	shuffle(rng, blues)

	groups := [][]int{d, e, f, h, i}
	out := make([]Prediction, len(groups))
	for k, grp := range groups {
		out[k] = Prediction{
			Primary:    sorted(grp),
			Companions: []int{blues[k]},
			Feature:    blues[k],
		}
	}
	return out, nil
}

// complement returns 1..n without the values in exclude, ascending.
func complement(n int, exclude []int) []int {
	skip := make(map[int]struct{}, len(exclude))
	for _, v := range exclude {
		skip[v] = struct{}{}
	}
	out := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if _, ok := skip[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// sorted returns an ascending copy.
func sorted(xs []int) []int {
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	return cp
}
