package shell_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hqdem/gatesynth/design"
	"github.com/hqdem/gatesynth/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGraphML = `<graphml>
  <graph id="top">
    <node id="core"/>
    <node id="pad"/>
    <edge source="core" target="pad"><data key="kind">clock</data></edge>
  </graph>
</graphml>`

func TestGraphMLFrontendReadAddsSubnetsAndArcs(t *testing.T) {
	d := design.New("top")
	front := shell.GraphMLFrontend{}
	require.NoError(t, front.Read(strings.NewReader(sampleGraphML), d))

	assert.Contains(t, d.Subnets, "core")
	assert.Contains(t, d.Subnets, "pad")
	require.Len(t, d.Arcs(), 1)
	assert.Equal(t, design.ClockArc, d.Arcs()[0].Kind)
}

func TestGraphMLFrontendRoundTrip(t *testing.T) {
	d := design.New("top")
	front := shell.GraphMLFrontend{}
	require.NoError(t, front.Read(strings.NewReader(sampleGraphML), d))

	var buf bytes.Buffer
	require.NoError(t, front.Write(&buf, d))

	d2 := design.New("top")
	require.NoError(t, front.Read(&buf, d2))
	assert.ElementsMatch(t, d.Arcs(), d2.Arcs())
}

func TestDotFrontendWritesDigraph(t *testing.T) {
	d := design.New("top")
	d.AddSubnet("core", nil)
	var buf bytes.Buffer
	require.NoError(t, shell.DotFrontend{}.Write(&buf, d))
	assert.Contains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), `"core"`)
}
