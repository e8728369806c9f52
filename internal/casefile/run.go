package casefile

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dendrascience/katas/kata"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the outcome of a single case.
type Result struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Kata   Kata   `json:"kata"`
	Passed bool   `json:"passed"`
	Got    string `json:"got"`
	Reason string `json:"reason,omitempty"`
}

// Report summarises a run over a case file.
type Report struct {
	RunID   string   `json:"run_id"`
	Total   int      `json:"total"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the results of the failing cases.
func (r Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Run evaluates the cases of f in order. It stops early when ctx is done,
// returning the partial report together with the context error.
func Run(ctx context.Context, f File, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := Report{RunID: uuid.NewString()}
	logger = logger.With(zap.String("run_id", report.RunID))
	logger.Debug("Running case file", zap.Int("cases", len(f.Cases)))

	for i, c := range f.Cases {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run interrupted", zap.Int("completed", i), zap.Error(err))
			return report, err
		}

		res := Evaluate(c)
		res.Index = i
		report.Results = append(report.Results, res)
		report.Total++
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}

		logger.Debug("Evaluated case",
			zap.Int("index", i),
			zap.String("id", c.ID),
			zap.String("kata", string(c.Kata)),
			zap.Bool("passed", res.Passed),
			zap.String("got", res.Got))
	}

	return report, nil
}

// Evaluate runs a single case and compares the outcome with its expectation.
func Evaluate(c Case) Result {
	res := Result{ID: c.ID, Kata: c.Kata}
	if err := c.Validate(); err != nil {
		res.Got = "error"
		res.Reason = err.Error()
		return res
	}

	switch c.Kata {
	case KataDigits:
		d, err := kata.Analyze(c.Number)
		res.Got = d.String()
		if done := checkError(&res, c.WantError, err); done {
			return res
		}
		if d != *c.Want {
			res.Reason = fmt.Sprintf("analyze %d: got %s, want %s", c.Number, d, *c.Want)
			return res
		}

	case KataPangram:
		got := kata.IsPangram(c.Text)
		res.Got = strconv.FormatBool(got)
		if got != *c.WantPangram {
			res.Reason = fmt.Sprintf("pangram %q: got %t, want %t", c.Text, got, *c.WantPangram)
			return res
		}

	case KataStones:
		var (
			got int
			err error
		)
		if c.Birds != nil {
			got, err = kata.CountUnvisitedBirds(*c.Birds, c.Total, c.Steps)
		} else {
			got, err = kata.CountUnvisited(c.Total, c.Steps)
		}
		res.Got = strconv.Itoa(got)
		if done := checkError(&res, c.WantError, err); done {
			return res
		}
		if got != *c.WantUnvisited {
			res.Reason = fmt.Sprintf("stones %d %v: got %d, want %d", c.Total, c.Steps, got, *c.WantUnvisited)
			return res
		}
	}

	res.Passed = true
	return res
}

// checkError settles cases whose outcome is decided by err alone. It returns
// true when res is final.
func checkError(res *Result, wantError string, err error) bool {
	switch {
	case wantError != "" && errors.Is(err, kata.ErrInvalidArgument):
		res.Got = WantInvalidArgument
		res.Passed = true
		return true
	case wantError != "" && err == nil:
		res.Reason = fmt.Sprintf("expected %s error, got %s", wantError, res.Got)
		return true
	case err != nil:
		res.Got = "error"
		res.Reason = fmt.Sprintf("unexpected error: %v", err)
		return true
	}
	return false
}
