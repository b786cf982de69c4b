package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/tier"
)

const sampleGraph = "testdata/family.yaml"

// run executes a fresh root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "kinship", root.Use)
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"relate", "survey", "family", "layout", "validate"}, names)

	_, _, err := run(t, "relate", "--you", "me", "--to", "mother")
	assert.Error(t, err, "--graph is required")
}

func TestRelate(t *testing.T) {
	out, _, err := run(t, "relate", "-g", sampleGraph, "--you", "me", "--to", "cousin1")
	require.NoError(t, err)
	assert.Equal(t, `Cousin Ann is Your First Cousin
  kind:  cousin
  tier:  DISTANT
  steps: 4
  path:  me -parent-> father -sibling-> uncle_f -child-> cousin1
`, out)

	out, _, err = run(t, "relate", "-g", sampleGraph, "--you", "spouse", "--to", "mother")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Mother is Your Parent-in-law\n"), out)

	out, _, err = run(t, "relate", "-g", sampleGraph, "--you", "me", "--to", "second_cousin")
	require.NoError(t, err)
	assert.Equal(t, "no known relationship between You and 2nd Cousin\n", out)
}

func TestRelate_PersonFromConfig(t *testing.T) {
	_, _, err := run(t, "relate", "-g", sampleGraph, "--to", "mother")
	assert.ErrorIs(t, err, errMissingPerson)

	cfg := writeFile(t, "kinship.yaml", "you: me\n")
	out, _, err := run(t, "relate", "-g", sampleGraph, "-c", cfg, "--to", "aunt_m")
	require.NoError(t, err)
	assert.Contains(t, out, "Aunt (M) is Your Aunt/Uncle\n")
	assert.Contains(t, out, "tier:  INTERMEDIATE\n")
}

func TestSurvey(t *testing.T) {
	out, _, err := run(t, "survey", "-g", sampleGraph, "--you", "me")
	require.NoError(t, err)

	var headers []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, " ") {
			headers = append(headers, line)
		}
	}
	assert.Equal(t, []string{"SUPERIOR", "INTERMEDIATE", "DISTANT", "UNRELATED"}, headers)
	assert.Contains(t, out, "Your Spouse")
	assert.True(t, strings.HasSuffix(out, "UNRELATED\n  2nd Cousin\n"), out)
}

func TestFamily(t *testing.T) {
	out, _, err := run(t, "family", "-g", sampleGraph, "--you", "me")
	require.NoError(t, err)
	assert.Equal(t, `You (7 direct relatives)
  parents: Mother, Father
  siblings: Sister, Brother
  spouses: Spouse
  children: Daughter, Son
`, out)

	out, _, err = run(t, "family", "-g", sampleGraph, "--you", "second_cousin")
	require.NoError(t, err)
	assert.Equal(t, "2nd Cousin (0 direct relatives)\n", out)
}

func TestLayout(t *testing.T) {
	out, _, err := run(t, "layout", "-g", sampleGraph, "--you", "me", "--width", "200", "--height", "100")
	require.NoError(t, err)

	var doc layoutDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 200.0, doc.Width)
	assert.Equal(t, 100.0, doc.Height)

	require.Len(t, doc.Nodes, 13, "everyone but the unrelated second cousin")
	center := doc.Nodes[0]
	assert.Equal(t, "me", center.ID)
	assert.Equal(t, tier.Center, center.Tier)
	assert.Equal(t, 100.0, center.X)
	assert.Equal(t, 50.0, center.Y)
	assert.Zero(t, center.Ring)

	for _, n := range doc.Nodes[1:] {
		switch n.Tier {
		case tier.Superior:
			assert.InDelta(t, 25.0, n.Ring, 1e-9, n.ID)
		case tier.Intermediate:
			assert.InDelta(t, 40.0, n.Ring, 1e-9, n.ID)
		case tier.Distant:
			assert.InDelta(t, 52.0, n.Ring, 1e-9, n.ID)
		default:
			t.Errorf("%s: unexpected tier %s", n.ID, n.Tier)
		}
	}
	assert.Len(t, doc.Links, 12)
	assert.Equal(t, "mother", doc.Links[0].Source)
	assert.Equal(t, [2]float64{100, 50}, doc.Links[0].To)
}

func TestLayout_ConfigRadii(t *testing.T) {
	cfg := writeFile(t, "kinship.yaml", "you: me\nwidth: 100\nheight: 100\nradii:\n  superior: 0.1\n  intermediate: 0.2\n  distant: 0.3\n")
	out, _, err := run(t, "layout", "-g", sampleGraph, "-c", cfg)
	require.NoError(t, err)

	var doc layoutDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	for _, n := range doc.Nodes {
		if n.Tier == tier.Distant {
			assert.InDelta(t, 30.0, n.Ring, 1e-9, n.ID)
		}
	}

	_, _, err = run(t, "layout", "-g", sampleGraph, "-c", cfg, "--width", "-5")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-g", sampleGraph)
	require.NoError(t, err)
	assert.Equal(t, "ok: 14 people, 12 edges\n", out)

	cyclic := writeFile(t, "cyclic.yaml", `people: [{id: a}, {id: b}]
edges:
  - {kind: parent_child, parent: a, child: b}
  - {kind: parent_child, parent: b, child: a}
`)
	_, stderr, err := run(t, "validate", "-g", cyclic)
	assert.ErrorIs(t, err, family.ErrAncestryCycle)
	assert.Contains(t, stderr, "graph is invalid")

	// other commands still run on a malformed graph, with a warning
	out, stderr, err = run(t, "relate", "-g", cyclic, "--you", "a", "--to", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "b is Your ")
	assert.Contains(t, stderr, "structural problems")
}

func TestLogging(t *testing.T) {
	dangling := writeFile(t, "dangling.yaml", `people: [{id: me}]
edges:
  - {kind: parent_child, parent: mom, child: me}
records:
  - {from: me, to: gramps, label: Grandfather, verified: true}
`)
	out, stderr, err := run(t, "relate", "-g", dangling, "--log-level", "debug", "--you", "me", "--to", "mom")
	require.NoError(t, err)
	assert.Contains(t, out, "mom is Your Parent")
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "missing from the people list")
	assert.Contains(t, stderr, "record skipped")
	assert.Contains(t, stderr, "graph loaded")

	_, stderr, err = run(t, "relate", "-g", dangling, "--log-level", "error", "--you", "me", "--to", "mom")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "relate", "-g", dangling, "--log-level", "loud", "--you", "me", "--to", "mom")
	assert.Error(t, err)
}

func TestBadGraphFile(t *testing.T) {
	_, _, err := run(t, "validate", "-g", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "edges:\n  - {kind: cousin, a: x, b: y}\n")
	_, _, err = run(t, "validate", "-g", bad)
	assert.Error(t, err)
}
