package benchmarks

import (
	"fmt"
	"sort"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// New returns the benchmark registered under name. numVars is ignored by
// problems with a fixed decision space.
func New(name string, numVars int) (framework.Problem, error) {
	if numVars < 2 {
		return nil, fmt.Errorf("%w: %s needs at least 2 variables, got %d", framework.ErrInvalidRange, name, numVars)
	}
	switch name {
	case ZDT1Name:
		return NewZDT1(numVars), nil
	case ZDT3Name:
		return NewZDT3(numVars), nil
	case DTLZ2Name:
		return NewDTLZ2(max(numVars, 3), 3), nil
	case SRNName:
		return NewSRN(), nil
	}
	return nil, fmt.Errorf("%w: unknown benchmark %q", framework.ErrInvalidCondition, name)
}

// Names lists the registered benchmarks in lexical order.
func Names() []string {
	names := []string{ZDT1Name, ZDT3Name, DTLZ2Name, SRNName}
	sort.Strings(names)
	return names
}
