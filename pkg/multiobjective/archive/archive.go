package archive

import (
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// DuplicatePolicy decides what happens to a candidate whose objectives and
// violation equal those of a current member.
type DuplicatePolicy string

const (
	RejectDuplicates DuplicatePolicy = "reject"
	AllowDuplicates  DuplicatePolicy = "allow"
)

// Rejection reasons reported to a Recorder.
const (
	ReasonDominated = "dominated"
	ReasonDuplicate = "duplicate"
)

// Recorder observes archive mutations.
type Recorder interface {
	Admitted(size int)
	Rejected(reason string)
	Evicted()
}

// Archive is a capacity-limited set of mutually non-dominated individuals.
// When an insertion pushes it over capacity, the estimator is recomputed over
// all members and the most crowded one is evicted; among equally crowded
// members the earliest inserted goes. Estimators implementing
// density.Tracker, such as the adaptive grid, are rebuilt after every
// membership change. A failed Add leaves the archive unchanged.
//
// Add is a compound read-modify-write and the archive is not safe for
// concurrent use; callers evaluating in parallel must serialize insertions.
type Archive struct {
	members    []*framework.Individual
	maxSize    int
	comparator framework.Comparator
	estimator  density.Estimator
	duplicates DuplicatePolicy
	logger     logr.Logger
	recorder   Recorder
}

type Option func(*Archive)

// WithComparator replaces the default DominanceComparator.
func WithComparator(c framework.Comparator) Option {
	return func(a *Archive) {
		a.comparator = c
	}
}

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(a *Archive) {
		a.duplicates = p
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(a *Archive) {
		a.recorder = r
	}
}

// New returns an empty archive holding at most maxSize members.
func New(maxSize int, estimator density.Estimator, opts ...Option) (*Archive, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: archive size must be > 0, got %d", framework.ErrInvalidRange, maxSize)
	}
	if estimator == nil {
		return nil, fmt.Errorf("%w: density estimator", framework.ErrNullArgument)
	}

	a := &Archive{
		members:    make([]*framework.Individual, 0, maxSize),
		maxSize:    maxSize,
		comparator: framework.DominanceComparator{},
		estimator:  estimator,
		duplicates: RejectDuplicates,
		logger:     klog.Background(),
		recorder:   noopRecorder{},
	}
	for _, opt := range opts {
		opt(a)
	}

	switch a.duplicates {
	case RejectDuplicates, AllowDuplicates:
	default:
		return nil, fmt.Errorf("%w: unknown duplicate policy %q", framework.ErrInvalidCondition, a.duplicates)
	}
	if a.comparator == nil {
		return nil, fmt.Errorf("%w: comparator", framework.ErrNullArgument)
	}
	if a.recorder == nil {
		a.recorder = noopRecorder{}
	}
	return a, nil
}

// Add inserts ind unless a member dominates it or, under RejectDuplicates, a
// member has equal objectives. Members dominated by ind are removed. It reports
// whether ind was inserted; an inserted individual may still be the one evicted
// when the archive overflows.
func (a *Archive) Add(ind *framework.Individual) (bool, error) {
	if ind == nil {
		return false, fmt.Errorf("%w: individual", framework.ErrNullArgument)
	}
	if len(a.members) > 0 && len(a.members[0].Objectives) != len(ind.Objectives) {
		return false, fmt.Errorf("%w: individual has %d objectives, archive holds %d", framework.ErrInvalidCondition, len(ind.Objectives), len(a.members[0].Objectives))
	}

	dominatedByCandidate := 0
	for _, member := range a.members {
		switch a.comparator.Compare(member, ind) {
		case -1:
			a.reject(ind, ReasonDominated)
			return false, nil
		case 1:
			dominatedByCandidate++
		case 0:
			if a.duplicates == RejectDuplicates && framework.EqualObjectives(member, ind) {
				a.reject(ind, ReasonDuplicate)
				return false, nil
			}
		}
	}

	// The new membership is built aside and committed only once every density
	// computation on it has succeeded.
	next := make([]*framework.Individual, 0, len(a.members)+1)
	for _, member := range a.members {
		if dominatedByCandidate == 0 || a.comparator.Compare(ind, member) >= 0 {
			next = append(next, member)
		}
	}
	next = append(next, ind)

	var evicted *framework.Individual
	if len(next) > a.maxSize {
		var err error
		if next, evicted, err = a.evict(next); err != nil {
			return false, err
		}
	}
	if tracker, ok := a.estimator.(density.Tracker); ok {
		if err := tracker.Track(next); err != nil {
			return false, fmt.Errorf("track %s membership: %w", a.estimator.Name(), err)
		}
	}
	a.members = next

	if evicted != nil {
		a.recorder.Evicted()
		a.logger.V(5).Info("Evicted crowded archive member", "estimator", a.estimator.Name(), "objectives", evicted.Objectives, "density", evicted.Density, "size", len(a.members))
	}
	a.recorder.Admitted(len(a.members))
	return true, nil
}

// Join adds every individual in order and returns how many were inserted.
func (a *Archive) Join(individuals []*framework.Individual) (int, error) {
	added := 0
	for _, ind := range individuals {
		ok, err := a.Add(ind)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// evict drops the most crowded of members, which must be a slice the archive
// does not share.
func (a *Archive) evict(members []*framework.Individual) ([]*framework.Individual, *framework.Individual, error) {
	if err := a.estimator.Compute(members); err != nil {
		return nil, nil, fmt.Errorf("compute %s density: %w", a.estimator.Name(), err)
	}
	worst := density.Worst(a.estimator, members)
	evicted := members[worst]

	copy(members[worst:], members[worst+1:])
	members[len(members)-1] = nil
	return members[:len(members)-1], evicted, nil
}

func (a *Archive) reject(ind *framework.Individual, reason string) {
	a.recorder.Rejected(reason)
	a.logger.V(6).Info("Rejected archive candidate", "reason", reason, "objectives", ind.Objectives)
}

// Refresh recomputes the estimator over the current members, e.g. before
// density-driven selection.
func (a *Archive) Refresh() error {
	return a.estimator.Compute(a.members)
}

// Solutions returns the current members in insertion order.
func (a *Archive) Solutions() []*framework.Individual {
	out := make([]*framework.Individual, len(a.members))
	copy(out, a.members)
	return out
}

// Contains reports whether a member has the same objectives and violation as ind.
func (a *Archive) Contains(ind *framework.Individual) bool {
	for _, member := range a.members {
		if framework.EqualObjectives(member, ind) {
			return true
		}
	}
	return false
}

func (a *Archive) Get(i int) *framework.Individual {
	return a.members[i]
}

func (a *Archive) Size() int {
	return len(a.members)
}

func (a *Archive) MaxSize() int {
	return a.maxSize
}

func (a *Archive) Estimator() density.Estimator {
	return a.estimator
}

type noopRecorder struct{}

func (noopRecorder) Admitted(int)    {}
func (noopRecorder) Rejected(string) {}
func (noopRecorder) Evicted()        {}
