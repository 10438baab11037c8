package lottery

// companionPairs returns k ascending pairs drawn from 1..poolMax.
//
// Each pass shuffles the whole pool and walks it two at a time; an odd
// leftover is dropped. Passes repeat until k pairs exist. Pairs from
// different passes are not deduplicated, so the same pair may come back.
func companionPairs(k, poolMax int, rng RandomSource) [][2]int {
	perPass := poolMax / 2
	if k <= 0 || perPass == 0 {
		return nil
	}
	passes := (k + perPass - 1) / perPass

	out := make([][2]int, 0, k)
	pool := seq(poolMax)
	for pass := 0; pass < passes; pass++ {
		shuffle(rng, pool)
		for i := 0; i+1 < len(pool) && len(out) < k; i += 2 {
			a, b := pool[i], pool[i+1]
			if a > b {
				a, b = b, a
			}
			out = append(out, [2]int{a, b})
		}
	}
	return out
}
