package value

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WeightedChoiceSource is the runtime helper dynamic weighted selections call.
const WeightedChoiceSource = `(weights: number[], random: () => number) => {
    const totalWeight = weights.reduce((acc, weight) => acc + weight, 0);
    let randomNum = random() * totalWeight;

    for (let i = 0; i < weights.length; i++) {
        if (randomNum <= weights[i]) {
            return i;
        }
        randomNum -= weights[i];
    }

    throw new Error('Something went wrong in weightedChoice.');
}`

// WeightedChoice returns the index of the first weight whose cumulative sum
// reaches r scaled by the total weight. r is expected in [0, 1).
func WeightedChoice(weights []float64, r float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	n := r * total
	for i, w := range weights {
		if n <= w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// Choose resolves a set of generator definitions. A single definition is
// resolved directly. Otherwise static backends draw one definition by
// weight now and dynamic backends defer the draw to runtime.
func Choose(b Backend, defs Definitions) (string, error) {
	switch len(defs) {
	case 0:
		return "", fmt.Errorf("%w: no generator definitions", ErrBadArguments)
	case 1:
		return b.Custom(defs[0])
	}

	weights := defs.Weights()
	if !b.Dynamic() {
		return b.Custom(defs[WeightedChoice(weights, b.Random())])
	}

	choices := make([]string, len(defs))
	for i, d := range defs {
		v, err := b.Custom(d)
		if err != nil {
			return "", err
		}
		choices[i] = "() => " + v
	}

	w, err := json.Marshal(weights)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s][weightedChoice(%s, () => %s)]()", strings.Join(choices, ", "), w, b.RandomExpr()), nil
}
