package multiobjective

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2/ktesting"
	"k8s.io/kubernetes/pkg/scheduler/framework"

	"github.com/mihai-snyk/paretokit/apis/config"
)

func createTestNode(name string, pIdle, pBusy float64, cpuCores int64, memoryGB int64) *corev1.Node {
	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Annotations: map[string]string{},
		},
		Status: corev1.NodeStatus{
			Allocatable: corev1.ResourceList{
				corev1.ResourceCPU:    *resource.NewQuantity(cpuCores, resource.DecimalSI),
				corev1.ResourceMemory: *resource.NewQuantity(memoryGB*1024*1024*1024, resource.BinarySI),
				corev1.ResourcePods:   *resource.NewQuantity(110, resource.DecimalSI),
			},
		},
	}
	if pIdle >= 0 {
		node.Annotations[PowerIdleAnnotation] = fmt.Sprintf("%.2f", pIdle)
		node.Annotations[PowerBusyAnnotation] = fmt.Sprintf("%.2f", pBusy)
	}
	return node
}

func createTestPod(name, nodeName, cpu, memory string) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "default",
		},
		Spec: corev1.PodSpec{
			NodeName: nodeName,
			Containers: []corev1.Container{
				{
					Name:  "test-container",
					Image: "nginx",
					Resources: corev1.ResourceRequirements{
						Requests: corev1.ResourceList{
							corev1.ResourceCPU:    resource.MustParse(cpu),
							corev1.ResourceMemory: resource.MustParse(memory),
						},
					},
				},
			},
		},
	}
}

func nodeInfo(node *corev1.Node, pods ...*corev1.Pod) *framework.NodeInfo {
	ni := framework.NewNodeInfo(pods...)
	ni.SetNode(node)
	return ni
}

// loadedNodes share a power profile and differ in size and load.
func loadedNodes(pIdle float64) []*framework.NodeInfo {
	return []*framework.NodeInfo{
		nodeInfo(createTestNode("low-util-node", pIdle, 200.0, 8, 32), createTestPod("load-low", "low-util-node", "800m", "1Gi")),
		nodeInfo(createTestNode("med-util-node", pIdle, 200.0, 16, 64), createTestPod("load-med", "med-util-node", "3200m", "1Gi")),
		nodeInfo(createTestNode("high-util-node", pIdle, 200.0, 32, 128), createTestPod("load-high", "high-util-node", "5600m", "1Gi")),
	}
}

func newPlugin(t *testing.T, args *config.MultiObjectiveArgs) *MultiObjective {
	t.Helper()
	_, ctx := ktesting.NewTestContext(t)
	p, err := New(ctx, args, nil)
	require.NoError(t, err)
	return p.(*MultiObjective)
}

func scoreAll(t *testing.T, p *MultiObjective, pod *corev1.Pod, nodes []*framework.NodeInfo) map[string]int64 {
	t.Helper()
	_, ctx := ktesting.NewTestContext(t)
	state := framework.NewCycleState()
	require.True(t, p.PreScore(ctx, state, pod, nodes).IsSuccess())

	scores := map[string]int64{}
	for _, n := range nodes {
		score, status := p.Score(ctx, state, pod, n.Node().Name)
		require.True(t, status.IsSuccess())
		assert.GreaterOrEqual(t, score, int64(framework.MinNodeScore))
		assert.LessOrEqual(t, score, int64(framework.MaxNodeScore))
		scores[n.Node().Name] = score
	}
	return scores
}

func TestScoreRanksNodesByParetoFront(t *testing.T) {
	p := newPlugin(t, &config.MultiObjectiveArgs{})
	assert.Equal(t, Name, p.Name())
	assert.Nil(t, p.ScoreExtensions())

	// high-util-node dominates med-util-node on every objective; low-util-node
	// trades a lower CPU load for a higher marginal power cost.
	scores := scoreAll(t, p, createTestPod("test-pod-small", "", "100m", "100Mi"), loadedNodes(140.0))
	assert.Equal(t, map[string]int64{
		"low-util-node":  framework.MaxNodeScore,
		"high-util-node": framework.MaxNodeScore,
		"med-util-node":  framework.MinNodeScore,
	}, scores)
}

func TestScoreSingleObjective(t *testing.T) {
	p := newPlugin(t, &config.MultiObjectiveArgs{ObjectiveWeights: map[string]float64{config.ObjectiveCPU: 1}})

	scores := scoreAll(t, p, createTestPod("test-pod-small", "", "100m", "100Mi"), loadedNodes(140.0))
	assert.Equal(t, map[string]int64{
		"low-util-node":  100,
		"high-util-node": 50,
		"med-util-node":  0,
	}, scores)
}

func TestPreScoreWithoutPowerProfiles(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	pod := createTestPod("test-pod-small", "", "100m", "100Mi")

	powerOnly := newPlugin(t, &config.MultiObjectiveArgs{ObjectiveWeights: map[string]float64{config.ObjectivePower: 1}})
	status := powerOnly.PreScore(ctx, framework.NewCycleState(), pod, loadedNodes(-1))
	assert.True(t, status.IsSkip())

	// Without power, high-util-node dominates med-util-node and ties low-util-node's front.
	all := newPlugin(t, &config.MultiObjectiveArgs{})
	scores := scoreAll(t, all, pod, loadedNodes(-1))
	assert.Equal(t, int64(framework.MinNodeScore), scores["med-util-node"])
	assert.Equal(t, int64(framework.MaxNodeScore), scores["high-util-node"])
}

func TestPreScoreNoNodes(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	p := newPlugin(t, &config.MultiObjectiveArgs{})
	assert.True(t, p.PreScore(ctx, framework.NewCycleState(), createTestPod("p", "", "100m", "100Mi"), nil).IsSkip())
}

func TestScoreWithoutPreScoreState(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	p := newPlugin(t, &config.MultiObjectiveArgs{})
	_, status := p.Score(ctx, framework.NewCycleState(), createTestPod("p", "", "100m", "100Mi"), "node")
	assert.False(t, status.IsSuccess())
}

func TestNewRejectsInvalidArgs(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)

	_, err := New(ctx, &corev1.Pod{}, nil)
	assert.Error(t, err)

	_, err = New(ctx, &config.MultiObjectiveArgs{Estimator: "voronoi"}, nil)
	assert.Error(t, err)
}
