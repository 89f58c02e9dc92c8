package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// scenario is the decoded input: a universe size, the unions to apply in
// order, and optional connectivity queries (YAML input only).
type scenario struct {
	Size     int      `yaml:"size"`
	Strategy string   `yaml:"strategy,omitempty"`
	Unions   [][2]int `yaml:"unions"`
	Queries  [][2]int `yaml:"queries,omitempty"`
}

// parsePairs reads the whitespace-separated pair stream format:
//
//	10
//	4 3
//	3 8
//	...
//
// The first integer is N, each following pair is one union.
func parsePairs(r io.Reader) (*scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, errors.Wrapf(err, "token %q", sc.Text())
		}
		return v, true, nil
	}

	n, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("empty input: expected element count")
	}

	s := &scenario{Size: n}
	for {
		p, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return s, nil
		}
		q, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Errorf("dangling index %d: pairs need two indices", p)
		}
		s.Unions = append(s.Unions, [2]int{p, q})
	}
}

// decodeScenario reads a YAML scenario. Unknown keys are rejected.
func decodeScenario(r io.Reader) (*scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, errors.Wrap(err, "decode scenario")
	}
	return &s, nil
}
