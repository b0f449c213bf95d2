package multiobjective

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	v1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	resourcehelper "k8s.io/kubernetes/pkg/api/v1/resource"
	"k8s.io/kubernetes/pkg/scheduler/framework"

	"github.com/mihai-snyk/paretokit/apis/config"
	"github.com/mihai-snyk/paretokit/apis/config/validation"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/paretokit/pkg/multiobjective/density"
	mo "github.com/mihai-snyk/paretokit/pkg/multiobjective/framework"
)

// MultiObjective scores nodes by Pareto rank over per-node objectives, then by
// density within a front.
type MultiObjective struct {
	handle     framework.Handle
	objectives []objective
	estimator  string
}

var _ framework.PreScorePlugin = &MultiObjective{}
var _ framework.ScorePlugin = &MultiObjective{}

const (
	Name = "MultiObjective"

	preScoreStateKey = "PreScore" + Name

	// Node annotations describing the power profile, in watts.
	PowerIdleAnnotation = "multiobjective.x-k8s.io/power-idle"
	PowerBusyAnnotation = "multiobjective.x-k8s.io/power-busy"
)

type objective struct {
	name   string
	weight float64
}

// preScoreState maps node names to final scores. It is never mutated after
// PreScore writes it.
type preScoreState struct {
	scores map[string]int64
}

func (s *preScoreState) Clone() framework.StateData {
	return s
}

func New(ctx context.Context, obj runtime.Object, handle framework.Handle) (framework.Plugin, error) {
	logger := klog.FromContext(ctx)
	logger.V(5).Info("creating instance of MultiObjective")

	args, ok := obj.(*config.MultiObjectiveArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type MultiObjectiveArgs, got %T", obj)
	}
	if err := validation.ValidateMultiObjectiveArgs(nil, args); err != nil {
		return nil, err
	}
	logger.V(5).Info("plugin MultiObjective called with args", "objectiveWeights", args.ObjectiveWeights, "estimator", args.Estimator)

	plugin := &MultiObjective{
		handle:    handle,
		estimator: args.Estimator,
	}
	if plugin.estimator == "" {
		plugin.estimator = density.CrowdingDistanceName
	}
	for _, name := range []string{config.ObjectiveCPU, config.ObjectiveMemory, config.ObjectivePower} {
		w, set := args.ObjectiveWeights[name]
		switch {
		case len(args.ObjectiveWeights) == 0:
			w = 1
		case !set || w == 0:
			continue
		}
		plugin.objectives = append(plugin.objectives, objective{name: name, weight: w})
	}

	return plugin, nil
}

func (p *MultiObjective) Name() string {
	return Name
}

// PreScore ranks the candidate nodes as if the pod were placed on each of them
// and stores the resulting scores in the cycle state.
func (p *MultiObjective) PreScore(ctx context.Context, state *framework.CycleState, pod *v1.Pod, nodes []*framework.NodeInfo) *framework.Status {
	logger := klog.FromContext(ctx)

	if len(nodes) == 0 {
		return framework.NewStatus(framework.Skip)
	}

	objectives := p.objectives
	if !allHavePowerProfile(nodes) {
		objectives = without(objectives, config.ObjectivePower)
		logger.V(5).Info("Ignoring power objective, not every node carries a power profile", "pod", klog.KObj(pod))
	}
	if len(objectives) == 0 {
		return framework.NewStatus(framework.Skip)
	}

	requests := resourcehelper.PodRequests(pod, resourcehelper.PodResourcesOptions{})
	podCPU := requests.Cpu().MilliValue()
	podMemory := requests.Memory().Value()

	individuals := make([]*mo.Individual, len(nodes))
	names := make(map[*mo.Individual]string, len(nodes))
	for i, nodeInfo := range nodes {
		objs := make([]float64, len(objectives))
		for j, o := range objectives {
			objs[j] = o.weight * nodeObjective(o.name, nodeInfo, podCPU, podMemory)
		}
		individuals[i] = mo.NewIndividual(objs, 0)
		names[individuals[i]] = nodeInfo.Node().Name
	}

	estimator, err := density.New(p.estimator, density.Options{K: 1, Offset: 1})
	if err != nil {
		return framework.AsStatus(err)
	}
	ranking, err := mo.FastNonDominatedSort{}.ComputeRanking(individuals)
	if err != nil {
		return framework.AsStatus(err)
	}
	for _, front := range ranking.Fronts() {
		if err := estimator.Compute(front); err != nil {
			return framework.AsStatus(err)
		}
	}

	cmp := algorithms.RankingAndDensityComparator{Estimator: estimator}
	ordered := append([]*mo.Individual(nil), individuals...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return cmp.Compare(ordered[i], ordered[j]) < 0
	})

	scores := make(map[string]int64, len(ordered))
	var score int64 = framework.MaxNodeScore
	for i, ind := range ordered {
		if i > 0 && cmp.Compare(ordered[i-1], ind) != 0 {
			score = framework.MaxNodeScore - int64(i)*(framework.MaxNodeScore-framework.MinNodeScore)/int64(len(ordered)-1)
		}
		scores[names[ind]] = score
		logger.V(6).Info("Scored node", "pod", klog.KObj(pod), "node", names[ind], "objectives", ind.Objectives, "rank", ind.Rank, "density", ind.Density, "score", score)
	}

	state.Write(preScoreStateKey, &preScoreState{scores: scores})
	logger.V(5).Info("Ranked candidate nodes", "pod", klog.KObj(pod), "nodes", len(nodes), "fronts", ranking.NumberOfSubFronts())
	return nil
}

// Score reads the score PreScore computed for nodeName.
func (p *MultiObjective) Score(ctx context.Context, state *framework.CycleState, pod *v1.Pod, nodeName string) (int64, *framework.Status) {
	data, err := state.Read(preScoreStateKey)
	if err != nil {
		return 0, framework.AsStatus(fmt.Errorf("reading %q from cycleState: %w", preScoreStateKey, err))
	}
	s, ok := data.(*preScoreState)
	if !ok {
		return 0, framework.AsStatus(fmt.Errorf("invalid PreScore state, got type %T", data))
	}
	return s.scores[nodeName], nil
}

func (p *MultiObjective) ScoreExtensions() framework.ScoreExtensions {
	return nil
}

// nodeObjective returns the named objective of placing a pod with the given
// requests on the node. Lower is better.
func nodeObjective(name string, nodeInfo *framework.NodeInfo, podCPU, podMemory int64) float64 {
	switch name {
	case config.ObjectiveCPU:
		return utilization(nodeInfo.Requested.MilliCPU+podCPU, nodeInfo.Allocatable.MilliCPU)
	case config.ObjectiveMemory:
		return utilization(nodeInfo.Requested.Memory+podMemory, nodeInfo.Allocatable.Memory)
	case config.ObjectivePower:
		idle, busy, _ := powerProfile(nodeInfo.Node())
		return (busy - idle) * utilization(podCPU, nodeInfo.Allocatable.MilliCPU)
	}
	return 0
}

func utilization(used, allocatable int64) float64 {
	if allocatable <= 0 {
		return 1
	}
	return float64(used) / float64(allocatable)
}

func powerProfile(node *v1.Node) (idle, busy float64, ok bool) {
	if node == nil {
		return 0, 0, false
	}
	idleValue, okIdle := node.Annotations[PowerIdleAnnotation]
	busyValue, okBusy := node.Annotations[PowerBusyAnnotation]
	if !okIdle || !okBusy {
		return 0, 0, false
	}
	idle, errIdle := strconv.ParseFloat(idleValue, 64)
	busy, errBusy := strconv.ParseFloat(busyValue, 64)
	if errIdle != nil || errBusy != nil || busy < idle {
		return 0, 0, false
	}
	return idle, busy, true
}

func allHavePowerProfile(nodes []*framework.NodeInfo) bool {
	for _, n := range nodes {
		if _, _, ok := powerProfile(n.Node()); !ok {
			return false
		}
	}
	return true
}

func without(objectives []objective, name string) []objective {
	out := make([]objective, 0, len(objectives))
	for _, o := range objectives {
		if o.name != name {
			out = append(out, o)
		}
	}
	return out
}
