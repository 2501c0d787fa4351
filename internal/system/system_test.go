// internal/system/system_test.go
package system

import (
	"bastion/internal/event"
)

// recorder captures dispatched events for assertions.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) payloads(t event.EventType) []interface{} {
	var out []interface{}
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e.Data)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
}

func record(d *event.Dispatcher, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range types {
		d.Subscribe(t, r)
	}
	return r
}
