// Command uf replays a stream of unions over a disjoint-set and reports the
// resulting connected components.
//
// Text input is an element count followed by index pairs; every pair that
// joins two components is echoed, then the component count is printed:
//
//	$ printf '10\n4 3\n3 8\n6 5\n9 4\n2 1\n8 9\n5 0\n7 2\n6 1\n1 0\n6 7\n' | uf
//	4 3
//	3 8
//	6 5
//	9 4
//	2 1
//	5 0
//	7 2
//	6 1
//	2 components
//
// YAML input (--format yaml) also carries a strategy and queries:
//
//	size: 10
//	strategy: weighted-quick-union
//	unions: [[3, 4], [4, 8]]
//	queries: [[8, 3]]
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if err := newApp(os.Stdin, os.Stdout, logger).Run(os.Args); err != nil {
		logger.WithError(err).Error("uf failed")
		os.Exit(1)
	}
}
