package spline

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Button string  `json:"button,omitempty"` // "left" (default) or "right"
	Shift  bool    `json:"shift,omitempty"`
	Ctrl   bool    `json:"ctrl,omitempty"`
}

type scriptDoc struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events and screenshots across frames,
// replaying an editing session deterministically. Attach it to a Host with
// SetScript.
//
// Actions: press, move, release, click, drag, wait, screenshot.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var doc scriptDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("spline: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("spline: parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("spline: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// LoadScript reads and parses a JSON script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spline: load script: %w", err)
	}
	return ParseScript(data)
}

// SetScript attaches a script. Its steps run from Host.Update before input
// processing, one step per frame.
func (h *Host) SetScript(s *Script) {
	h.runner = s
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

func (st scriptStep) pointer() (MouseButton, KeyModifiers) {
	button := MouseButtonLeft
	if st.Button == "right" {
		button = MouseButtonRight
	}
	var mods KeyModifiers
	if st.Shift {
		mods |= ModShift
	}
	if st.Ctrl {
		mods |= ModCtrl
	}
	return button, mods
}

// step advances the script by one frame.
func (s *Script) step(h *Host) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	button, mods := st.pointer()

	switch st.Action {
	case "screenshot":
		h.Screenshot(st.Label)
	case "press":
		h.InjectPointer(st.X, st.Y, true, button, mods)
	case "move":
		h.InjectPointer(st.X, st.Y, true, button, mods)
	case "release":
		h.InjectPointer(st.X, st.Y, false, button, mods)
	case "click":
		h.InjectPointer(st.X, st.Y, true, button, mods)
		h.InjectPointer(st.X, st.Y, false, button, mods)
	case "drag":
		frames := max(st.Frames, 2)
		h.InjectPointer(st.FromX, st.FromY, true, button, mods)
		for i := 1; i <= frames-2; i++ {
			t := float64(i) / float64(frames-1)
			h.InjectPointer(lerp(st.FromX, st.ToX, t), lerp(st.FromY, st.ToY, t), true, button, mods)
		}
		h.InjectPointer(st.ToX, st.ToY, false, button, mods)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(h.injectQueue) == 0 {
		s.done = true
	}
}
