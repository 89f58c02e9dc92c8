package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/unionfind/dsu"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// newApp builds the uf command. stdin is read when no file argument (or
// "-") is given; all results go to the app writer.
func newApp(stdin io.Reader, stdout io.Writer, logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:      "uf",
		Usage:     "replay unions over a disjoint-set and report connected components",
		ArgsUsage: "[input file, default stdin]",
		Writer:    stdout,
		ErrWriter: logger.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   dsu.WeightedQuickUnionPathCompression.String(),
				Usage:   "quick-find, quick-union, weighted-quick-union or weighted-quick-union-path-compression",
				EnvVars: []string{"UF_STRATEGY"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "input format: text (N then pairs) or yaml (scenario)",
			},
			&cli.BoolFlag{
				Name:  "sets",
				Usage: "print the final partition, largest set first",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "dump operation counters in Prometheus text format",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not echo pairs that joined two components",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logrus.InfoLevel.String(),
				Usage:   "logrus level (debug traces every merge)",
				EnvVars: []string{"UF_LOG_LEVEL"},
			},
		},
		Action: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return errors.Wrap(err, "log-level")
			}
			logger.SetLevel(level)

			in := stdin
			if path := c.Args().First(); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in = f
			}
			return run(c, in, logger)
		},
	}
}

// run decodes the input, replays it and prints the report.
func run(c *cli.Context, in io.Reader, logger *logrus.Logger) error {
	var (
		sc  *scenario
		err error
	)
	switch c.String("format") {
	case formatText:
		sc, err = parsePairs(in)
	case formatYAML:
		sc, err = decodeScenario(in)
	default:
		return errors.Errorf("unknown format %q", c.String("format"))
	}
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	name := c.String("strategy")
	if sc.Strategy != "" && !c.IsSet("strategy") {
		name = sc.Strategy
	}
	strategy, err := dsu.ParseStrategy(name)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	ds, err := dsu.New(strategy, sc.Size,
		dsu.WithLogger(logger),
		dsu.WithMetrics(dsu.NewMetrics(reg)),
	)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"strategy": strategy.String(),
		"size":     sc.Size,
		"unions":   len(sc.Unions),
	}).Debug("replaying scenario")

	out := c.App.Writer
	for _, pq := range sc.Unions {
		p, q := pq[0], pq[1]
		ok, err := ds.Connected(p, q)
		if err != nil {
			return errors.Wrapf(err, "pair %d %d", p, q)
		}
		if ok {
			continue
		}
		if err := ds.Union(p, q); err != nil {
			return errors.Wrapf(err, "pair %d %d", p, q)
		}
		if !c.Bool("quiet") {
			fmt.Fprintf(out, "%d %d\n", p, q)
		}
	}
	for _, pq := range sc.Queries {
		ok, err := ds.Connected(pq[0], pq[1])
		if err != nil {
			return errors.Wrapf(err, "query %d %d", pq[0], pq[1])
		}
		fmt.Fprintf(out, "connected(%d, %d) = %t\n", pq[0], pq[1], ok)
	}
	fmt.Fprintf(out, "%d components\n", ds.Count())

	if c.Bool("sets") {
		sets, err := dsu.SortedSets(ds)
		if err != nil {
			return err
		}
		for _, set := range sets {
			fmt.Fprintln(out, set)
		}
	}
	if c.Bool("metrics") {
		return dumpMetrics(out, reg)
	}
	return nil
}

// dumpMetrics writes every gathered family in text exposition format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
