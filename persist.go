package spline

import (
	"encoding/json"
	"fmt"
)

// pointRecord is a control point in normalized coordinates.
type pointRecord struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

// editorRecord is the persisted form of an Editor. Flags are pointers so a
// document that predates them loads without touching the current values.
type editorRecord struct {
	Points []pointRecord `json:"POINTS"`
	Degree *int          `json:"DEGREE,omitempty"`
	Loop   *bool         `json:"LOOP,omitempty"`
	Open   *bool         `json:"OPEN,omitempty"`
}

// Save encodes the control points (normalized to the value range) and the
// degree/loop/open flags as JSON.
func (e *Editor) Save() ([]byte, error) {
	rec := editorRecord{
		Points: make([]pointRecord, len(e.points)),
		Degree: &e.degree,
		Loop:   &e.loop,
		Open:   &e.open,
	}
	for i, p := range e.points {
		n := e.ToNormalized(p)
		rec.Points[i] = pointRecord{X: n.X, Y: n.Y}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("spline: save %q: %w", e.Name, err)
	}
	return data, nil
}

// Load restores a document written by Save. Stored points are expanded into
// the current value range and overwrite the editor's points from the first
// one on. The sequence grows when the document holds more points and keeps
// its trailing points otherwise. Flags present in the document are applied,
// with the degree clamped to the point count. The spline is rebuilt and
// OnChange fires once. A document with neither points nor flags is ignored;
// only malformed JSON is reported.
func (e *Editor) Load(data []byte) error {
	var rec editorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("spline: load %q: %w", e.Name, err)
	}
	if len(rec.Points) == 0 && rec.Degree == nil && rec.Loop == nil && rec.Open == nil {
		return nil
	}

	if extra := len(rec.Points) - len(e.points); extra > 0 {
		e.points = append(e.points, make([]Vec2, extra)...)
	}
	for i, p := range rec.Points {
		e.points[i] = e.FromNormalized(Vec2{p.X, p.Y})
	}
	if rec.Degree != nil {
		e.degree = *rec.Degree
	}
	e.degree = min(max(e.degree, 1), max(len(e.points)-1, 1))
	if rec.Loop != nil {
		e.loop = *rec.Loop
	}
	if rec.Open != nil {
		e.open = *rec.Open
	}
	e.clearTarget()
	e.updateSplineRef(true)
	tracer().Infof("spline %q loaded %d of %d points", e.Name, len(rec.Points), len(e.points))
	e.changed()
	return nil
}
