package lottery

// PredictSuperLotto builds one group per full chunk of 5 from the shuffled
// complement of the draw against 1..35 (6 groups for a valid draw). Each
// group gets an ascending companion pair from 1..12 appended; the larger
// companion is the group's feature value.
func PredictSuperLotto(draw []int, rng RandomSource) ([]Prediction, error) {
	r := rules[GameSuperLotto]
	if err := validateDraw(r, draw); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	rest := complement(r.PrimaryMax, draw)
	shuffle(rng, rest)
	chunks := chunk(rest, r.GroupSize)

	pairs := companionPairs(len(chunks), r.CompanionMax, rng)
	out := make([]Prediction, len(chunks))
	for k, c := range chunks {
		p := pairs[k]
		out[k] = Prediction{
			Primary:    sorted(c),
			Companions: []int{p[0], p[1]},
			Feature:    p[1],
		}
	}
	return out, nil
}

// chunk splits xs into consecutive slices of size; a shorter tail is dropped.
func chunk(xs []int, size int) [][]int {
	if size <= 0 {
		return nil
	}
	out := make([][]int, 0, len(xs)/size)
	for i := 0; i+size <= len(xs); i += size {
		out = append(out, xs[i:i+size])
	}
	return out
}
