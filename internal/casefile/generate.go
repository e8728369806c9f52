package casefile

import (
	"math/rand/v2"

	"github.com/dendrascience/katas/kata"
	"github.com/google/uuid"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Generate returns count random cases spread over all three katas. Each case
// records the result the current implementation produces for it, so a later
// Run only fails if behaviour changes.
func Generate(count int, rng *rand.Rand) File {
	f := File{Cases: make([]Case, 0, count)}
	for len(f.Cases) < count {
		var c Case
		switch rng.IntN(3) {
		case 0:
			c = generateDigits(rng)
		case 1:
			c = generatePangram(rng)
		default:
			c = generateStones(rng)
		}
		c.ID = uuid.NewString()
		f.Cases = append(f.Cases, c)
	}
	return f
}

func generateDigits(rng *rand.Rand) Case {
	c := Case{Kata: KataDigits}

	// 5% invalid input to keep the error path covered
	if rng.IntN(100) < 5 {
		c.Number = -rng.IntN(1000)
		c.WantError = WantInvalidArgument
		return c
	}

	c.Number = rng.IntN(1_000_000_000) + 1
	d, _ := kata.Analyze(c.Number)
	c.Want = &d
	return c
}

func generatePangram(rng *rand.Rand) Case {
	length := rng.IntN(40) + 10
	text := make([]byte, 0, length+len(alphabet))
	for range length {
		text = append(text, alphabet[rng.IntN(len(alphabet))])
	}

	// A third of the texts are forced to be pangrams.
	if rng.IntN(3) == 0 {
		for _, i := range rng.Perm(len(alphabet)) {
			text = append(text, alphabet[i])
		}
	}

	c := Case{Kata: KataPangram, Text: string(text)}
	want := kata.IsPangram(c.Text)
	c.WantPangram = &want
	return c
}

func generateStones(rng *rand.Rand) Case {
	c := Case{Kata: KataStones, Total: rng.IntN(100)}
	n := rng.IntN(5)
	for range n {
		c.Steps = append(c.Steps, rng.IntN(12)+1)
	}
	if rng.IntN(2) == 0 {
		birds := n
		c.Birds = &birds
	}

	want, _ := kata.CountUnvisited(c.Total, c.Steps)
	c.WantUnvisited = &want
	return c
}
