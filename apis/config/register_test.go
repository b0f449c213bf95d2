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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
)

func TestAddToScheme(t *testing.T) {
	scheme := runtime.NewScheme()
	require.NoError(t, AddToScheme(scheme))

	obj, err := scheme.New(SchemeGroupVersion.WithKind("MultiObjectiveArgs"))
	require.NoError(t, err)
	assert.IsType(t, &MultiObjectiveArgs{}, obj)

	gvks, _, err := scheme.ObjectKinds(&MultiObjectiveArgs{})
	require.NoError(t, err)
	require.Len(t, gvks, 1)
	assert.Equal(t, SchemeGroupVersion.WithKind("MultiObjectiveArgs"), gvks[0])

	args := &MultiObjectiveArgs{ObjectiveWeights: map[string]float64{ObjectiveCPU: 2}, Estimator: "knn"}
	copied := args.DeepCopyObject().(*MultiObjectiveArgs)
	copied.ObjectiveWeights[ObjectiveCPU] = 3
	assert.Equal(t, 2.0, args.ObjectiveWeights[ObjectiveCPU])
}
