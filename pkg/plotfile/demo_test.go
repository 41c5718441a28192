package plotfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemosBuild(t *testing.T) {
	require.Equal(t, 6, NumDemos)
	for n := 1; n <= NumDemos; n++ {
		doc, err := Demo(n)
		require.NoError(t, err, "demo %d", n)
		assert.NotEmpty(t, DemoTitle(n))
		assert.Equal(t, DemoTitle(n), doc.Title)
		assert.True(t, doc.Antialias)
		require.NoError(t, doc.Validate(), "demo %d", n)

		p, err := doc.Build()
		require.NoError(t, err, "demo %d", n)
		assert.NotEmpty(t, p.Objects())
	}
}

func TestDemoOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, NumDemos + 1} {
		_, err := Demo(n)
		assert.Error(t, err)
		assert.Empty(t, DemoTitle(n))
	}
}

func TestDemoLinesSecondaryLimits(t *testing.T) {
	doc, err := Demo(2)
	require.NoError(t, err)
	p, err := doc.Build()
	require.NoError(t, err)
	assert.True(t, p.HasSecondaryLimits())
	assert.InDelta(t, 365.55, p.SecondaryDataRect().Right(), 1e-9)
}

func TestDemoLabels(t *testing.T) {
	doc, err := Demo(6)
	require.NoError(t, err)
	var labels []string
	for _, pt := range doc.Series[0].Points {
		labels = append(labels, pt.Label)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, labels)

	doc, err = Demo(5)
	require.NoError(t, err)
	for _, pt := range doc.Series[0].Points {
		assert.Empty(t, pt.Label)
	}
}

func TestDemoMarshals(t *testing.T) {
	doc, err := Demo(4)
	require.NoError(t, err)
	for _, f := range []Format{FormatTOML, FormatJSON, FormatYAML} {
		data, err := Marshal(doc, f)
		require.NoError(t, err)
		back, err := Parse(data, f)
		require.NoError(t, err, string(f))
		assert.Equal(t, doc.Series, back.Series, string(f))
	}
}
