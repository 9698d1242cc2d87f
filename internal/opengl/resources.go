package opengl

import "log/slog"

// Resources collects release functions for GPU objects in creation order.
// Register each object right after it is created so that an error later in
// startup still frees everything created so far.
type Resources struct {
	entries []resource
}

type resource struct {
	name    string
	release func()
}

// Add registers release to be run by Release.
func (r *Resources) Add(name string, release func()) {
	r.entries = append(r.entries, resource{name: name, release: release})
}

// Len reports how many objects are still held.
func (r *Resources) Len() int {
	return len(r.entries)
}

// Release frees every registered object, newest first. Calling it again is a
// no-op until more objects are added.
func (r *Resources) Release() {
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		slog.Debug("release gpu object", "name", e.name)
		e.release()
	}
	r.entries = nil
}
