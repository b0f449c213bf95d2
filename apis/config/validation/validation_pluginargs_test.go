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
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/paretokit/apis/config"
)

func TestValidateMultiObjectiveArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    *config.MultiObjectiveArgs
		wantErr string
	}{
		{
			name: "defaults",
			args: &config.MultiObjectiveArgs{},
		},
		{
			name: "weights and knn",
			args: &config.MultiObjectiveArgs{
				ObjectiveWeights: map[string]float64{config.ObjectiveCPU: 1, config.ObjectivePower: 0.5, config.ObjectiveMemory: 0},
				Estimator:        "knn",
			},
		},
		{
			name:    "unknown objective",
			args:    &config.MultiObjectiveArgs{ObjectiveWeights: map[string]float64{"disk": 1, config.ObjectiveCPU: 1}},
			wantErr: `args.objectiveWeights: Unsupported value: "disk"`,
		},
		{
			name:    "negative weight",
			args:    &config.MultiObjectiveArgs{ObjectiveWeights: map[string]float64{config.ObjectiveCPU: -1, config.ObjectiveMemory: 1}},
			wantErr: "args.objectiveWeights[cpu]: Invalid value: -1: must be non-negative",
		},
		{
			name:    "all disabled",
			args:    &config.MultiObjectiveArgs{ObjectiveWeights: map[string]float64{config.ObjectiveCPU: 0}},
			wantErr: "args.objectiveWeights: Required value",
		},
		{
			name:    "grid estimator",
			args:    &config.MultiObjectiveArgs{Estimator: "grid"},
			wantErr: `args.estimator: Unsupported value: "grid"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMultiObjectiveArgs(field.NewPath("args"), tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
