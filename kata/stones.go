package kata

import "fmt"

// MaxStones is the largest total accepted by the stone functions.
const MaxStones = 1 << 26

// Visited returns the marking sieve for totalStones positions. The slice has
// length totalStones+1; index 0 is unused and always false. Position p is
// true iff some step size evenly divides p. Totals above MaxStones return
// ErrTooManyStones.
func Visited(totalStones int, stepSizes []int) ([]bool, error) {
	if totalStones < 0 {
		return nil, fmt.Errorf("%d stones: %w", totalStones, ErrNegativeStones)
	}
	if totalStones > MaxStones {
		return nil, fmt.Errorf("%d stones, limit %d: %w", totalStones, MaxStones, ErrTooManyStones)
	}
	for i, step := range stepSizes {
		if step <= 0 {
			return nil, fmt.Errorf("step %d at index %d: %w", step, i, ErrNonPositiveStep)
		}
	}

	visited := make([]bool, totalStones+1)
	for _, step := range stepSizes {
		for pos := step; pos <= totalStones; pos += step {
			visited[pos] = true
		}
	}
	return visited, nil
}

// CountUnvisited returns how many of the positions 1..totalStones are not
// a multiple of any step size. With no step sizes every stone is unvisited.
func CountUnvisited(totalStones int, stepSizes []int) (int, error) {
	visited, err := Visited(totalStones, stepSizes)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, v := range visited[1:] {
		if !v {
			count++
		}
	}
	return count, nil
}

// CountUnvisitedBirds is CountUnvisited for callers that also carry the
// number of birds. birds must equal len(stepSizes).
func CountUnvisitedBirds(birds, totalStones int, stepSizes []int) (int, error) {
	if birds != len(stepSizes) {
		return 0, fmt.Errorf("expected %d birds, got %d step sizes: %w", birds, len(stepSizes), ErrBirdCountMismatch)
	}
	return CountUnvisited(totalStones, stepSizes)
}
