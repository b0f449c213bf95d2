package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/paretokit/apis/multiobjective/v1alpha1"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewFrontctlCommand(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestHypervolumeCommand(t *testing.T) {
	front := writeFile(t, "front.txt", "1 3\n2 2\n3 1\n")
	refSet := writeFile(t, "ref.txt", "# reference\n4,0\n0,4\n")

	out, err := execute(t, "hypervolume", "--front", front, "--reference-point", "4,4")
	require.NoError(t, err)
	assert.Equal(t, "6.000000\n", out)

	out, err = execute(t, "hypervolume", "--front", front, "--reference-set", refSet)
	require.NoError(t, err)
	assert.Equal(t, "6.000000\n", out)

	_, err = execute(t, "hypervolume", "--front", front)
	assert.Error(t, err)

	_, err = execute(t, "hypervolume", "--front", filepath.Join(t.TempDir(), "missing.txt"), "--reference-point", "4,4")
	assert.Error(t, err)
}

func TestReadFrontIsCached(t *testing.T) {
	path := writeFile(t, "front.txt", "1 2\n")
	first, err := readFront(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	second, err := readFront(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankCommand(t *testing.T) {
	front := writeFile(t, "population.txt", "3 3\n1 3\n2 2\n3 1\n")
	engine := writeFile(t, "engine.yaml", "ranking: efficient\nestimator: crowding\n")
	report := filepath.Join(t.TempDir(), "report.yaml")
	plots := t.TempDir()

	out, err := execute(t, "rank", "--front", front, "--config", engine, "--report", report,
		"--reference-point", "4,4", "--plot-dir", plots)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"FRONT", "SIZE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "1"}, strings.Fields(lines[2]))
	assert.Contains(t, out, "plot written to")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var decoded v1alpha1.ParetoFrontReport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "population", decoded.Name)
	assert.Equal(t, "efficient", decoded.Spec.Ranking)
	assert.Len(t, decoded.Spec.Solutions, 4)
	require.NotNil(t, decoded.Spec.Hypervolume)
	assert.InDelta(t, 6.0, *decoded.Spec.Hypervolume, 1e-12)
}

func TestRunCommand(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "run.prom")
	out, err := execute(t, "run", "--problem", "ZDT1", "--vars", "5", "--population", "20",
		"--generations", "5", "--parallelism", "2", "--metrics-file", metricsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "evaluations:  120")
	assert.Contains(t, out, "hypervolume:")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `paretokit_archive_admissions_total{archive="nsga2"}`)
	assert.Contains(t, string(data), `paretokit_ranking_fronts_count{algorithm="NSGA-II"} 6`)

	report := filepath.Join(t.TempDir(), "pesa.yaml")
	out, err = execute(t, "run", "--problem", "SRN", "--algorithm", "pesa2", "--population", "10",
		"--generations", "20", "--report", report)
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm:    pesa2")
	assert.FileExists(t, report)

	_, err = execute(t, "run", "--algorithm", "moead", "--generations", "1")
	assert.Error(t, err)
	_, err = execute(t, "run", "--problem", "ZDT9")
	assert.Error(t, err)
}
