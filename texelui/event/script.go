// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/event/script.go
// Summary: YAML event scripts feeding synthetic events into a Queue.
// Usage: texelpaint -replay session.yaml, and widget tests that want a
// readable input sequence.

package event

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/framegrace/texelpaint/texelui/geom"
)

// Script is a named sequence of synthetic events.
type Script struct {
	Name   string        `yaml:"name"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one entry of a script. Type selects which fields apply.
//
//	type: press | release | click | move | key | button | close | resize
type ScriptEvent struct {
	Type   string `yaml:"type"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Button string `yaml:"button,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Shift  bool   `yaml:"shift,omitempty"`
	Ctrl   bool   `yaml:"ctrl,omitempty"`
	Value  uint32 `yaml:"value,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// LoadScript decodes a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &Script{}, nil
		}
		return nil, fmt.Errorf("decode event script: %w", err)
	}
	return &s, nil
}

// Expand converts the script into events. A click expands to press+release.
func (s *Script) Expand() ([]Event, error) {
	var out []Event
	for i, se := range s.Events {
		evs, err := se.events()
		if err != nil {
			return nil, fmt.Errorf("event script %q entry %d: %w", s.Name, i, err)
		}
		out = append(out, evs...)
	}
	return out, nil
}

// Enqueue pushes every expanded event onto q.
func (s *Script) Enqueue(q *Queue) error {
	evs, err := s.Expand()
	if err != nil {
		return err
	}
	for _, ev := range evs {
		q.Push(ev)
	}
	return nil
}

func (se ScriptEvent) events() ([]Event, error) {
	pos := geom.Point{X: se.X, Y: se.Y}
	switch strings.ToLower(se.Type) {
	case "press":
		return []Event{MouseButton{Pos: pos, Button: parseButton(se.Button), Action: Pressed}}, nil
	case "release":
		return []Event{MouseButton{Pos: pos, Button: parseButton(se.Button), Action: Released}}, nil
	case "click":
		b := parseButton(se.Button)
		return []Event{
			MouseButton{Pos: pos, Button: b, Action: Pressed},
			MouseButton{Pos: pos, Button: b, Action: Released},
		}, nil
	case "move":
		return []Event{MouseMove{Pos: pos}}, nil
	case "key":
		k := ParseKey(se.Key)
		if k == KeyUndefined {
			return nil, fmt.Errorf("unknown key %q", se.Key)
		}
		return []Event{KeyPressed{Key: k, Shift: se.Shift, Ctrl: se.Ctrl}}, nil
	case "button":
		return []Event{ButtonPressed{Value: se.Value}}, nil
	case "close":
		return []Event{WindowClosed{}}, nil
	case "resize":
		return []Event{Resize{Size: geom.Size{W: se.Width, H: se.Height}}}, nil
	}
	return nil, fmt.Errorf("unknown event type %q", se.Type)
}

func parseButton(s string) Button {
	switch strings.ToLower(s) {
	case "", "left":
		return ButtonLeft
	case "middle":
		return ButtonMiddle
	case "right":
		return ButtonRight
	}
	return ButtonUndefined
}
