package kata

import "fmt"

// Digits is the aggregate computed from the decimal digits of a number.
type Digits struct {
	Sum                int `json:"sum" yaml:"sum"`
	Product            int `json:"product" yaml:"product"`
	AbsoluteDifference int `json:"absolute_difference" yaml:"absolute_difference"`
}

// String renders the aggregate as "sum product difference".
func (d Digits) String() string {
	return fmt.Sprintf("%d %d %d", d.Sum, d.Product, d.AbsoluteDifference)
}

// Analyze returns the sum and product of the decimal digits of number,
// along with the absolute difference between them.
// A zero digit makes the product zero. Non-positive input returns
// ErrNonPositiveNumber.
func Analyze(number int) (Digits, error) {
	if number <= 0 {
		return Digits{}, fmt.Errorf("analyze %d: %w", number, ErrNonPositiveNumber)
	}

	sum, product := 0, 1
	for n := number; n > 0; n /= 10 {
		digit := n % 10
		sum += digit
		product *= digit
	}

	return Digits{
		Sum:                sum,
		Product:            product,
		AbsoluteDifference: absInt(sum - product),
	}, nil
}

// DigitsOf returns the decimal digits of number, least significant first.
func DigitsOf(number int) ([]int, error) {
	if number <= 0 {
		return nil, fmt.Errorf("digits of %d: %w", number, ErrNonPositiveNumber)
	}

	var digits []int
	for n := number; n > 0; n /= 10 {
		digits = append(digits, n%10)
	}
	return digits, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
