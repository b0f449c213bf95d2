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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ParetoFrontReport is a cluster-scoped snapshot of a ranked population: every
// solution with its front, objective vector and density.
// +genclient
// +genclient:nonNamespaced
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName={pfr,front}
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",JSONPath=".status.phase",type=string,description="Current phase of the report"
// +kubebuilder:printcolumn:name="Fronts",JSONPath=".status.fronts",type=integer,description="Number of non-dominated fronts"
// +kubebuilder:printcolumn:name="Age",JSONPath=".metadata.creationTimestamp",type=date,description="Age is the time ParetoFrontReport was created."
type ParetoFrontReport struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ParetoFrontReportSpec   `json:"spec,omitempty"`
	Status ParetoFrontReportStatus `json:"status,omitempty"`
}

// ParetoFrontReportSpec defines the content of a ParetoFrontReport
type ParetoFrontReportSpec struct {
	// Source names what produced the population, e.g. an algorithm and problem
	Source string `json:"source"`

	// Ranking is the name of the ranking strategy used
	Ranking string `json:"ranking,omitempty"`

	// Estimator is the name of the density estimator used
	Estimator string `json:"estimator,omitempty"`

	// Solutions contains every ranked solution, best front first
	Solutions []ParetoSolution `json:"solutions"`

	// Hypervolume of the first front, when a reference point was supplied
	Hypervolume *float64 `json:"hypervolume,omitempty"`

	// ReferencePoint used for Hypervolume
	ReferencePoint []float64 `json:"referencePoint,omitempty"`

	// GeneratedAt indicates when the report was generated
	GeneratedAt *metav1.Time `json:"generatedAt"`
}

// ParetoSolution represents a single ranked solution
type ParetoSolution struct {
	// Rank is the solution front index (0 = non-dominated)
	Rank int `json:"rank"`

	// Objectives contains the objective values, minimized
	Objectives []float64 `json:"objectives"`

	// Violation is the overall constraint violation (0 = feasible)
	Violation float64 `json:"violation,omitempty"`

	// Density is the estimator score formatted as text, since crowding
	// distances of boundary solutions are infinite
	Density string `json:"density,omitempty"`
}

// ParetoFrontReportStatus defines the observed state of ParetoFrontReport
type ParetoFrontReportStatus struct {
	// Phase represents the current phase of the report
	// +kubebuilder:validation:Enum=Current;Superseded
	Phase ParetoFrontReportPhase `json:"phase,omitempty"`

	// Fronts is the number of fronts in the ranking
	Fronts int `json:"fronts,omitempty"`

	// FirstFrontSize is the number of non-dominated solutions
	FirstFrontSize int `json:"firstFrontSize,omitempty"`

	// Conditions represent the latest available observations of the report's current state
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// ParetoFrontReportPhase represents the phase of a report
type ParetoFrontReportPhase string

const (
	// ParetoFrontReportPhaseCurrent indicates the report describes the latest ranking
	ParetoFrontReportPhaseCurrent ParetoFrontReportPhase = "Current"

	// ParetoFrontReportPhaseSuperseded indicates a newer report exists
	ParetoFrontReportPhaseSuperseded ParetoFrontReportPhase = "Superseded"
)

// +kubebuilder:object:root=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// ParetoFrontReportList contains a list of ParetoFrontReport
type ParetoFrontReportList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ParetoFrontReport `json:"items"`
}
