package genpaint

// maxPixelScore is the reward for a pixel that matches the target exactly:
// three channels of 255.
const maxPixelScore = 3 * 255

// Evaluator scores Paintings against their target. The zero value uses
// HairlineRenderer. An Evaluator holds no mutable state and is safe for
// concurrent use.
type Evaluator struct {
	Renderer Renderer
}

// Fitness renders p and scores the result against p's target. Higher is
// better; see Score.
func (e Evaluator) Fitness(p *Painting) int64 {
	r := e.Renderer
	if r == nil {
		r = HairlineRenderer{}
	}
	return Score(p.target, r.Render(p))
}

// Fitness scores p with the default Evaluator.
func Fitness(p *Painting) int64 {
	return Evaluator{}.Fitness(p)
}

// Score compares pm to target pixel by pixel. Each pixel contributes 765
// minus the sum of its channel-wise absolute differences, so the result lies
// in [0, MaxFitness(target)] and reaches the maximum only on an exact match.
// Pixels outside pm count as white.
func Score(target *Target, pm *Pixmap) int64 {
	var total int64
	for y := range target.height {
		for x := range target.width {
			diff := target.At(x, y).Diff(pm.GetPixel(int(x), int(y)))
			total += int64(maxPixelScore - diff)
		}
	}
	return total
}

// MaxFitness returns the score of a perfect match for target.
func MaxFitness(target *Target) int64 {
	return int64(maxPixelScore) * int64(target.Pixels())
}
