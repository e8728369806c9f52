package casefile

import (
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/katas/kata"
	"gopkg.in/yaml.v3"
)

// Kata names the exercise a case runs.
type Kata string

const (
	KataDigits  Kata = "digits"
	KataPangram Kata = "pangram"
	KataStones  Kata = "stones"
)

// WantInvalidArgument is the only value accepted for Case.WantError.
const WantInvalidArgument = "invalid_argument"

// File is the top-level document of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Case is one input together with its expected outcome. Which fields apply
// depends on Kata.
type Case struct {
	ID   string `yaml:"id,omitempty"`
	Kata Kata   `yaml:"kata"`

	// digits
	Number int `yaml:"number,omitempty"`

	// pangram
	Text string `yaml:"text,omitempty"`

	// stones
	Total int   `yaml:"total,omitempty"`
	Steps []int `yaml:"steps,omitempty"`
	Birds *int  `yaml:"birds,omitempty"`

	Want          *kata.Digits `yaml:"want,omitempty"`
	WantPangram   *bool        `yaml:"want_pangram,omitempty"`
	WantUnvisited *int         `yaml:"want_unvisited,omitempty"`
	WantError     string       `yaml:"want_error,omitempty"`
}

// Validate checks that the case names a known kata and carries exactly the
// expectation that kata produces.
func (c Case) Validate() error {
	if c.WantError != "" && c.WantError != WantInvalidArgument {
		return fmt.Errorf("%w: want_error must be %q, got %q", ErrInvalidCase, WantInvalidArgument, c.WantError)
	}

	switch c.Kata {
	case KataDigits:
		if c.Want == nil && c.WantError == "" {
			return fmt.Errorf("%w: digits case needs want or want_error", ErrInvalidCase)
		}
	case KataPangram:
		if c.WantPangram == nil {
			return fmt.Errorf("%w: pangram case needs want_pangram", ErrInvalidCase)
		}
		if c.WantError != "" {
			return fmt.Errorf("%w: pangram never fails, want_error is not allowed", ErrInvalidCase)
		}
	case KataStones:
		if c.WantUnvisited == nil && c.WantError == "" {
			return fmt.Errorf("%w: stones case needs want_unvisited or want_error", ErrInvalidCase)
		}
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidCase, ErrUnknownKata, c.Kata)
	}
	return nil
}

// Validate checks every case in the file.
func (f File) Validate() error {
	for i, c := range f.Cases {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a case file from r. Unknown fields are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return File{}, nil
		}
		return File{}, fmt.Errorf("decoding case file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and validates the case file at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode writes f to w as YAML.
func Encode(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes f to path, replacing any existing file.
func Save(path string, f File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
