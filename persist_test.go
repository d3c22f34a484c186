package spline

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	src := newTestEditor([]Vec2{{0, 0}, {0.5, 0.5}, {1, 1}}, 2)
	src.SetLoop(true)
	data, err := src.Save()
	require.NoError(t, err)

	dst := newTestEditor([]Vec2{{0.2, 0.2}, {0.8, 0.8}}, 1)
	n := countChanges(dst)
	require.NoError(t, dst.Load(data))

	require.Equal(t, 3, dst.NumPoints())
	for i, p := range src.Points() {
		assertVecNear(t, p, dst.Points()[i])
	}
	assert.Equal(t, 2, dst.Degree())
	assert.True(t, dst.Loop())
	assert.True(t, dst.Open())
	assert.Equal(t, 1, *n)
	assert.Equal(t, 3, dst.Spline().Len())
}

func TestLoadShorterKeepsTrailingPoints(t *testing.T) {
	src := newTestEditor([]Vec2{{0, 0}, {0.5, 0.5}, {1, 1}}, 2)
	data, err := src.Save()
	require.NoError(t, err)

	dst := newTestEditor(square, 3)
	n := countChanges(dst)
	require.NoError(t, dst.Load(data))

	require.Equal(t, 4, dst.NumPoints())
	assertVecNear(t, Vec2{0, 0}, dst.Points()[0])
	assertVecNear(t, Vec2{0.5, 0.5}, dst.Points()[1])
	assertVecNear(t, Vec2{1, 1}, dst.Points()[2])
	assertVecNear(t, square[3], dst.Points()[3])
	// DEGREE 2 from the document fits the four points.
	assert.Equal(t, 2, dst.Degree())
	assert.Equal(t, 4, dst.Spline().Len())
	assert.Equal(t, 1, *n)
}

func TestSaveNormalizes(t *testing.T) {
	e := newTestEditor(square, 3)
	e.SetMinAndMax(Vec2{0, 0}, Vec2{10, 10}, true)
	data, err := e.Save()
	require.NoError(t, err)

	var rec editorRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	require.Len(t, rec.Points, 4)
	assert.InDelta(t, 1, rec.Points[2].X, eps)
	assert.InDelta(t, 1, rec.Points[2].Y, eps)
	require.NotNil(t, rec.Degree)
	assert.Equal(t, 3, *rec.Degree)
	assert.Contains(t, string(data), `"POINTS"`)
}

func TestLoadExpandsIntoRange(t *testing.T) {
	e := newTestEditor(square, 3)
	e.SetMinAndMax(Vec2{-1, 0}, Vec2{1, 10}, false)
	require.NoError(t, e.Load([]byte(`{"POINTS":[{"X":0,"Y":0},{"X":0.5,"Y":1}]}`)))

	require.Equal(t, 4, e.NumPoints())
	assertVecNear(t, Vec2{-1, 0}, e.Points()[0])
	assertVecNear(t, Vec2{0, 10}, e.Points()[1])
	assertVecNear(t, square[2], e.Points()[2])
	// No DEGREE in the document: the current degree is kept.
	assert.Equal(t, 3, e.Degree())
	assert.False(t, e.Loop())
}

func TestLoadMalformed(t *testing.T) {
	e := newTestEditor(square, 3)
	n := countChanges(e)
	err := e.Load([]byte(`POINTS`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spline: load")
	assert.Equal(t, square, e.Points())
	assert.Equal(t, 0, *n)
}

func TestLoadIgnoresEmptyDocument(t *testing.T) {
	for _, doc := range []string{`{}`, `{"POINTS":[]}`, `{"OTHER":1}`} {
		t.Run(doc, func(t *testing.T) {
			e := newTestEditor(square, 3)
			n := countChanges(e)
			require.NoError(t, e.Load([]byte(doc)))
			assert.Equal(t, square, e.Points())
			assert.Equal(t, 3, e.Degree())
			assert.Equal(t, 0, *n)
		})
	}
}

func TestLoadSinglePoint(t *testing.T) {
	e := newTestEditor(square, 3)
	n := countChanges(e)
	require.NoError(t, e.Load([]byte(`{"POINTS":[{"X":0.5,"Y":0.5}]}`)))
	require.Equal(t, 4, e.NumPoints())
	assertVecNear(t, Vec2{0.5, 0.5}, e.Points()[0])
	assert.Equal(t, square[1:], e.Points()[1:])
	assert.Equal(t, 1, *n)
}

func TestLoadFlagsOnly(t *testing.T) {
	e := newTestEditor(square, 3)
	require.NoError(t, e.Load([]byte(`{"DEGREE":2,"LOOP":true}`)))
	assert.Equal(t, square, e.Points())
	assert.Equal(t, 2, e.Degree())
	assert.True(t, e.Loop())
}

func TestLoadClearsTarget(t *testing.T) {
	e := newTestEditor(square, 3)
	e.setTarget(2)
	require.NoError(t, e.Load([]byte(`{"POINTS":[{"X":0,"Y":0},{"X":1,"Y":1}],"DEGREE":5}`)))
	_, ok := e.Target()
	assert.False(t, ok)
	assert.Equal(t, 3, e.Degree())
}
