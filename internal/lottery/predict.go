package lottery

// Predict dispatches to the generator of game g.
func Predict(g Game, draw []int, rng RandomSource) ([]Prediction, error) {
	switch g {
	case GameDoubleColor:
		return PredictDoubleColor(draw, rng)
	case GameSuperLotto:
		return PredictSuperLotto(draw, rng)
	}
	return nil, ErrUnknownGame
}
