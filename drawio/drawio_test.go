package drawio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	style := map[string]string{"html": "1", "edgeLabel": "", "align": "center"}
	assert.Equal(t, "align=center;edgeLabel;html=1;", Join(style, "="))
	assert.Equal(t, "align:center;edgeLabel;html:1;", Join(style, ":"))
	assert.Empty(t, Join(nil, "="))
}

func TestParse(t *testing.T) {
	f := NewFile("page", 200, 100)
	a := NewShape("a", 0, 0, 10, 10, map[string]string{"rounded": "0"})
	a.Value = "A"
	b := NewShape("b", 20, 0, 10, 10, nil)
	b.Value = "B"
	line := NewLine("a", "b", map[string]string{"dashed": "1"})
	label := line.NewEdgeLabel("B1", map[string]string{"edgeLabel": ""})
	f.Diagram.MxGraphModel.AddCells(a, b, line, label)
	assert.Equal(t, "1", a.Parent)
	assert.Equal(t, line.Id, label.Parent)

	content, err := f.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(content)
	require.NoError(t, err)
	model := parsed.Diagram.MxGraphModel
	require.Len(t, model.Cells, 6)
	assert.Equal(t, "page", parsed.Diagram.Name)
	assert.Equal(t, 200, model.PageWidth)

	shapes := model.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, "20", shapes[1].Geometry.X)

	lines := model.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a", lines[0].Source)
	assert.Equal(t, "b", lines[0].Target)

	parsedLabel, ok := model.Cells[5].(*Label)
	require.True(t, ok)
	assert.Equal(t, "B1", parsedLabel.Value)
	assert.Equal(t, "0", parsedLabel.Connectable)

	_, err = Parse([]byte("<mxfile"))
	assert.Error(t, err)
}
