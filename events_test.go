package sketch

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestEventPayload(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		want map[string]any
	}{
		{"paths", PathsUpdate(3), map[string]any{"pathsUpdate": 3}},
		{"saved", SaveResult(true, "/x.png"), map[string]any{"success": true, "path": "/x.png"}},
		{"failed", SaveResult(false, ""), map[string]any{"success": false}},
		{"zero", Event{}, map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Payload(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Payload() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventKindString(t *testing.T) {
	if EventPathsUpdate.String() != "pathsUpdate" || EventSaveResult.String() != "saveResult" {
		t.Error("unexpected event kind names")
	}
	if EventKind(0).String() != "unknown" {
		t.Error("zero kind should be unknown")
	}
}

func TestEventQueueDropsWhenFull(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	q := NewEventQueue(2)
	q.Notify(PathsUpdate(1))
	q.Notify(PathsUpdate(2))
	q.Notify(PathsUpdate(3))

	got := q.Drain()
	if len(got) != 2 || got[0].Count != 1 || got[1].Count != 2 {
		t.Errorf("Drain() = %v, want the first two events", got)
	}
	if !strings.Contains(buf.String(), "dropping event") {
		t.Errorf("expected a warning for the dropped event, got %q", buf.String())
	}
	if len(q.Drain()) != 0 {
		t.Error("queue should be empty after Drain")
	}
}

func TestEventQueueConsumer(t *testing.T) {
	q := NewEventQueue(8)
	c := NewCanvas(10, 10, WithNotifier(q))

	done := make(chan []int)
	go func() {
		var counts []int
		for e := range q.Events() {
			counts = append(counts, e.Count)
			if len(counts) == 3 {
				break
			}
		}
		done <- counts
	}()

	c.AddPath(1, Black, 1, []Point{{1, 1}})
	c.AddPath(2, Black, 1, []Point{{2, 2}})
	c.Clear()

	if got := <-done; !reflect.DeepEqual(got, []int{1, 2, 0}) {
		t.Errorf("consumer saw %v, want [1 2 0]", got)
	}
}
