package config

import (
	"fmt"
	"math/rand"
	"os"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/paretokit/pkg/multiobjective/archive"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

const (
	RankingFast      = "fast"
	RankingEfficient = "efficient"

	DefaultArchiveSize   = 100
	DefaultGridDivisions = 5
	DefaultKNeighbors    = 1
	DefaultOffset        = 1.0
)

// EngineConfig selects the ranking strategy, density estimator and archive
// parameters of a run.
type EngineConfig struct {
	Ranking           string                  `json:"ranking,omitempty"`
	Estimator         string                  `json:"estimator,omitempty"`
	ArchiveSize       int                     `json:"archiveSize,omitempty"`
	GridDivisions     int                     `json:"gridDivisions,omitempty"`
	KNeighbors        int                     `json:"kNeighbors,omitempty"`
	NormalizeKNN      bool                    `json:"normalizeKNN,omitempty"`
	HypervolumeOffset float64                 `json:"hypervolumeOffset,omitempty"`
	ReferencePoint    []float64               `json:"referencePoint,omitempty"`
	Duplicates        archive.DuplicatePolicy `json:"duplicates,omitempty"`
	Seed              int64                   `json:"seed,omitempty"`
}

// SetDefaults fills unset fields.
func (c *EngineConfig) SetDefaults() {
	if c.Ranking == "" {
		c.Ranking = RankingFast
	}
	if c.Estimator == "" {
		c.Estimator = density.CrowdingDistanceName
	}
	if c.ArchiveSize == 0 {
		c.ArchiveSize = DefaultArchiveSize
	}
	if c.GridDivisions == 0 {
		c.GridDivisions = DefaultGridDivisions
	}
	if c.KNeighbors == 0 {
		c.KNeighbors = DefaultKNeighbors
	}
	if c.HypervolumeOffset == 0 && len(c.ReferencePoint) == 0 {
		c.HypervolumeOffset = DefaultOffset
	}
	if c.Duplicates == "" {
		c.Duplicates = archive.RejectDuplicates
	}
}

// Validate reports every invalid field at once.
func (c *EngineConfig) Validate() error {
	var allErrs field.ErrorList
	root := field.NewPath("engine")

	switch c.Ranking {
	case RankingFast, RankingEfficient:
	default:
		allErrs = append(allErrs, field.NotSupported(root.Child("ranking"), c.Ranking, []string{RankingFast, RankingEfficient}))
	}

	estimators := []string{density.CrowdingDistanceName, density.GridName, density.KNearestNeighborName, density.HypervolumeContributionName}
	switch c.Estimator {
	case density.CrowdingDistanceName, density.GridName, density.KNearestNeighborName, density.HypervolumeContributionName:
	default:
		allErrs = append(allErrs, field.NotSupported(root.Child("estimator"), c.Estimator, estimators))
	}

	if c.ArchiveSize <= 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("archiveSize"), c.ArchiveSize, "must be > 0"))
	}
	if c.GridDivisions <= 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("gridDivisions"), c.GridDivisions, "must be > 0"))
	}
	if c.KNeighbors <= 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("kNeighbors"), c.KNeighbors, "must be > 0"))
	}
	if c.Estimator == density.HypervolumeContributionName && len(c.ReferencePoint) == 0 && c.HypervolumeOffset <= 0 {
		allErrs = append(allErrs, field.Invalid(root.Child("hypervolumeOffset"), c.HypervolumeOffset, "must be > 0 without a reference point"))
	}

	switch c.Duplicates {
	case archive.RejectDuplicates, archive.AllowDuplicates:
	default:
		allErrs = append(allErrs, field.NotSupported(root.Child("duplicates"), string(c.Duplicates),
			[]string{string(archive.RejectDuplicates), string(archive.AllowDuplicates)}))
	}

	return allErrs.ToAggregate()
}

// Load reads a YAML EngineConfig from path, applies defaults and validates it.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML (or JSON) bytes, rejecting unknown fields.
func Parse(data []byte) (*EngineConfig, error) {
	c := &EngineConfig{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("decode engine config: %w", err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Rand returns a random source seeded with Seed.
func (c *EngineConfig) Rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

func (c *EngineConfig) BuildRanker() (framework.Ranker, error) {
	switch c.Ranking {
	case RankingFast:
		return framework.FastNonDominatedSort{}, nil
	case RankingEfficient:
		return framework.EfficientNonDominatedSort{}, nil
	}
	return nil, fmt.Errorf("%w: unknown ranking %q", framework.ErrInvalidCondition, c.Ranking)
}

func (c *EngineConfig) BuildEstimator() (density.Estimator, error) {
	return density.New(c.Estimator, density.Options{
		GridDivisions:  c.GridDivisions,
		K:              c.KNeighbors,
		Normalize:      c.NormalizeKNN,
		ReferencePoint: c.ReferencePoint,
		Offset:         c.HypervolumeOffset,
	})
}

// BuildArchive returns an empty archive with a fresh estimator.
func (c *EngineConfig) BuildArchive(opts ...archive.Option) (*archive.Archive, error) {
	estimator, err := c.BuildEstimator()
	if err != nil {
		return nil, err
	}
	return archive.New(c.ArchiveSize, estimator, append([]archive.Option{archive.WithDuplicatePolicy(c.Duplicates)}, opts...)...)
}
