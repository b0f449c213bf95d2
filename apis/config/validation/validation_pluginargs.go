/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package validation

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/paretokit/apis/config"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
)

var validObjectives = map[string]bool{
	config.ObjectiveCPU:    true,
	config.ObjectiveMemory: true,
	config.ObjectivePower:  true,
}

// ValidateMultiObjectiveArgs validates that MultiObjectiveArgs are correct.
func ValidateMultiObjectiveArgs(path *field.Path, args *config.MultiObjectiveArgs) error {
	var allErrs field.ErrorList

	weightsPath := path.Child("objectiveWeights")
	enabled := len(args.ObjectiveWeights) == 0
	for name, w := range args.ObjectiveWeights {
		if !validObjectives[name] {
			allErrs = append(allErrs, field.NotSupported(weightsPath, name, []string{config.ObjectiveCPU, config.ObjectiveMemory, config.ObjectivePower}))
			continue
		}
		if w < 0 {
			allErrs = append(allErrs, field.Invalid(weightsPath.Key(name), w, "must be non-negative"))
		}
		if w > 0 {
			enabled = true
		}
	}
	if !enabled {
		allErrs = append(allErrs, field.Required(weightsPath, "at least one objective needs a positive weight"))
	}

	switch args.Estimator {
	case "", density.CrowdingDistanceName, density.KNearestNeighborName, density.HypervolumeContributionName:
	default:
		allErrs = append(allErrs, field.NotSupported(path.Child("estimator"), args.Estimator,
			[]string{density.CrowdingDistanceName, density.KNearestNeighborName, density.HypervolumeContributionName}))
	}

	return allErrs.ToAggregate()
}
