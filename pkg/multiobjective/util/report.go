package util

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/paretokit/apis/multiobjective/v1alpha1"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/indicators"
)

// ReportOptions describes how a ranking was produced.
type ReportOptions struct {
	Source    string
	Ranking   string
	Estimator string
	// ReferencePoint, when set, adds the first front's hypervolume.
	ReferencePoint []float64
}

// NewParetoFrontReport snapshots ranking into a report named name. Solutions
// are listed front by front, keeping each front's population order.
func NewParetoFrontReport(name string, ranking *framework.Ranking, o ReportOptions) (*v1alpha1.ParetoFrontReport, error) {
	if ranking == nil {
		return nil, fmt.Errorf("%w: ranking", framework.ErrNullArgument)
	}

	now := metav1.Now()
	report := &v1alpha1.ParetoFrontReport{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.SchemeGroupVersion.String(),
			Kind:       "ParetoFrontReport",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
			UID:  types.UID(uuid.NewString()),
		},
		Spec: v1alpha1.ParetoFrontReportSpec{
			Source:      o.Source,
			Ranking:     o.Ranking,
			Estimator:   o.Estimator,
			Solutions:   make([]v1alpha1.ParetoSolution, 0, len(ranking.Population())),
			GeneratedAt: &now,
		},
		Status: v1alpha1.ParetoFrontReportStatus{
			Phase:  v1alpha1.ParetoFrontReportPhaseCurrent,
			Fronts: ranking.NumberOfSubFronts(),
		},
	}

	for i, front := range ranking.Fronts() {
		for _, ind := range front {
			report.Spec.Solutions = append(report.Spec.Solutions, v1alpha1.ParetoSolution{
				Rank:       i,
				Objectives: append([]float64(nil), ind.Objectives...),
				Violation:  ind.Violation,
				Density:    strconv.FormatFloat(ind.Density, 'g', -1, 64),
			})
		}
		if i == 0 {
			report.Status.FirstFrontSize = len(front)
		}
	}

	if len(o.ReferencePoint) > 0 && ranking.NumberOfSubFronts() > 0 {
		first, err := ranking.SubFront(0)
		if err != nil {
			return nil, err
		}
		rows := make([][]float64, len(first))
		for i, ind := range first {
			rows[i] = ind.Objectives
		}
		hv, err := indicators.Hypervolume(rows, o.ReferencePoint)
		if err != nil {
			return nil, fmt.Errorf("hypervolume of %s: %w", name, err)
		}
		report.Spec.Hypervolume = ptr.To(hv)
		report.Spec.ReferencePoint = append([]float64(nil), o.ReferencePoint...)
	}
	return report, nil
}

// MarshalReport renders the report as YAML.
func MarshalReport(report *v1alpha1.ParetoFrontReport) ([]byte, error) {
	return yaml.Marshal(report)
}
