package hxwire

import "testing"

func TestNotifierBroadcast(t *testing.T) {
	n := NewNotifier()

	var a, b []Notification
	cancelA := n.Subscribe(func(note Notification) { a = append(a, note) })
	n.Subscribe(func(note Notification) { b = append(b, note) })

	n.Emit("get", "/x")
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("subscribers received %d/%d notifications, want 1/1", len(a), len(b))
	}
	if a[0] != (Notification{Verb: "get", Path: "/x"}) {
		t.Errorf("notification = %+v, want {get /x}", a[0])
	}

	cancelA()
	n.Emit("get", "/y")
	if len(a) != 1 {
		t.Error("cancelled subscriber still received a notification")
	}
	if len(b) != 2 {
		t.Errorf("remaining subscriber received %d notifications, want 2", len(b))
	}
}

func TestNotifierNoSubscribers(t *testing.T) {
	n := NewNotifier()
	n.Emit("get", "/x") // must not panic or block
}
