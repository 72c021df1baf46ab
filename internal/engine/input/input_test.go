package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		event  sdl.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "quit",
			event:  &sdl.QuitEvent{Type: sdl.QUIT},
			want:   Event{Type: EventQuit},
			wantOK: true,
		},
		{
			name:   "resize",
			event:  &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			want:   Event{Type: EventWindowResize, Width: 800, Height: 600},
			wantOK: true,
		},
		{
			name:  "other window event",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED},
		},
		{
			name:   "key down",
			event:  &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
			want:   Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12},
			wantOK: true,
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
		},
		{
			name:  "key up",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
		},
		{
			name:   "wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2},
			want:   Event{Type: EventWheel, Wheel: -2},
			wantOK: true,
		},
		{
			name:   "flipped wheel",
			event:  &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:   Event{Type: EventWheel, Wheel: -1},
			wantOK: true,
		},
		{
			name:  "horizontal wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert(tt.event)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("convert() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWheelTotal(t *testing.T) {
	i := New()
	i.events = append(i.events,
		Event{Type: EventWheel, Wheel: 1},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE},
		Event{Type: EventWheel, Wheel: -3},
	)

	if got := i.WheelTotal(); got != -2 {
		t.Errorf("WheelTotal() = %g, want -2", got)
	}
	if !i.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("escape should be pressed")
	}
	if i.IsKeyPressed(sdl.SCANCODE_F12) {
		t.Error("F12 should not be pressed")
	}
}
