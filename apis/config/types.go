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

package config

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Objective names understood by the MultiObjective plugin.
const (
	ObjectiveCPU    = "cpu"
	ObjectiveMemory = "memory"
	ObjectivePower  = "power"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// MultiObjectiveArgs holds arguments used to configure the MultiObjective plugin.
type MultiObjectiveArgs struct {
	metav1.TypeMeta `json:",inline"`

	// ObjectiveWeights scales each node objective before ranking. An objective
	// with weight 0, or missing from a non-empty map, is not considered.
	// An empty map enables every objective with weight 1.
	ObjectiveWeights map[string]float64 `json:"objectiveWeights,omitempty"`

	// Estimator names the density estimator ordering nodes of the same front.
	// Defaults to crowding.
	Estimator string `json:"estimator,omitempty"`
}
