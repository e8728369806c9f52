package kata

import (
	"errors"
	"math"
	"testing"
)

func TestCountUnvisited(t *testing.T) {
	tests := []struct {
		name   string
		stones int
		steps  []int
		want   int
	}{
		{name: "two birds", stones: 6, steps: []int{3, 2}, want: 2},
		{name: "even steps leave odd stones", stones: 10, steps: []int{2}, want: 5},
		{name: "step of one visits all", stones: 10, steps: []int{1, 2, 3}, want: 0},
		{name: "no birds", stones: 7, steps: nil, want: 7},
		{name: "no stones", stones: 0, steps: []int{2}, want: 0},
		{name: "step larger than range", stones: 4, steps: []int{5}, want: 4},
		{name: "duplicate steps", stones: 9, steps: []int{3, 3}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountUnvisited(tt.stones, tt.steps)
			if err != nil {
				t.Fatalf("CountUnvisited(%d, %v) unexpected error: %v", tt.stones, tt.steps, err)
			}
			if got != tt.want {
				t.Errorf("CountUnvisited(%d, %v) = %d, want %d", tt.stones, tt.steps, got, tt.want)
			}
		})
	}
}

func TestCountUnvisited_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		stones  int
		steps   []int
		wantErr error
	}{
		{name: "zero step", stones: 10, steps: []int{2, 0}, wantErr: ErrNonPositiveStep},
		{name: "negative step", stones: 10, steps: []int{-3}, wantErr: ErrNonPositiveStep},
		{name: "negative stones", stones: -1, steps: []int{1}, wantErr: ErrNegativeStones},
		{name: "above limit", stones: MaxStones + 1, steps: []int{2}, wantErr: ErrTooManyStones},
		{name: "max int", stones: math.MaxInt, steps: []int{2}, wantErr: ErrTooManyStones},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CountUnvisited(tt.stones, tt.steps)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CountUnvisited() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("CountUnvisited() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCountUnvisitedBirds(t *testing.T) {
	got, err := CountUnvisitedBirds(2, 6, []int{3, 2})
	if err != nil {
		t.Fatalf("CountUnvisitedBirds() unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("CountUnvisitedBirds() = %d, want 2", got)
	}

	_, err = CountUnvisitedBirds(3, 6, []int{3, 2})
	if !errors.Is(err, ErrBirdCountMismatch) {
		t.Errorf("CountUnvisitedBirds() error = %v, want ErrBirdCountMismatch", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("CountUnvisitedBirds() error = %v, want ErrInvalidArgument", err)
	}
}

func TestVisited(t *testing.T) {
	visited, err := Visited(6, []int{3, 2})
	if err != nil {
		t.Fatalf("Visited() unexpected error: %v", err)
	}
	want := []bool{false, false, true, true, true, false, true}
	if len(visited) != len(want) {
		t.Fatalf("len(Visited()) = %d, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Visited()[%d] = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestCountUnvisited_AtLimit(t *testing.T) {
	got, err := CountUnvisited(MaxStones, []int{1})
	if err != nil {
		t.Fatalf("CountUnvisited(MaxStones) unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("CountUnvisited(MaxStones, [1]) = %d, want 0", got)
	}
}
