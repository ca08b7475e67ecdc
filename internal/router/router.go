// Package router turns a navigation fragment into a topic selection and
// notifies observers whenever the fragment changes.
package router

import (
	"strings"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

// Lookup resolves a topic identifier to a record. *topic.Store implements it.
type Lookup interface {
	FindByID(id string) (topic.Record, bool)
}

// Selection is the topic derived from the current fragment.
type Selection struct {
	ID     string
	Record topic.Record
	Found  bool
}

// ResolveSelection strips a single leading "#" from fragment and returns the
// remainder as the candidate topic identifier.
func ResolveSelection(fragment string) string {
	return strings.TrimPrefix(fragment, "#")
}

// Resolve resolves fragment against lookup. A miss is not an error; the
// returned selection simply has Found == false.
func Resolve(lookup Lookup, fragment string) Selection {
	sel := Selection{ID: ResolveSelection(fragment)}
	if lookup == nil || sel.ID == "" {
		return sel
	}
	sel.Record, sel.Found = lookup.FindByID(sel.ID)
	return sel
}

// Router owns the current fragment for a single execution context. Callbacks run
// synchronously on the goroutine that changes the fragment. It is not safe for
// concurrent use.
type Router struct {
	lookup    Lookup
	fragment  string
	selection Selection
	nextID    int
	subs      []subscription
}

type subscription struct {
	id int
	fn func(Selection)
}

// New returns a router with an empty fragment.
func New(lookup Lookup) *Router {
	return &Router{lookup: lookup}
}

// Subscribe registers fn to be called after every fragment change. The returned
// function removes the registration; calling it more than once is harmless.
func (r *Router) Subscribe(fn func(Selection)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// SetFragment is the fragment-change notification. The selection is recomputed
// every time and subscribers are called in registration order, so repeating the
// same fragment repeats the same selection.
func (r *Router) SetFragment(fragment string) Selection {
	r.fragment = fragment
	r.selection = Resolve(r.lookup, fragment)

	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	for _, s := range subs {
		s.fn(r.selection)
	}
	return r.selection
}

// Select navigates to the topic with the given identifier, as a link
// activation would.
func (r *Router) Select(id string) Selection {
	return r.SetFragment("#" + id)
}

// Clear drops the fragment.
func (r *Router) Clear() Selection {
	return r.SetFragment("")
}

// Fragment returns the last fragment set.
func (r *Router) Fragment() string { return r.fragment }

// Selection returns the current selection.
func (r *Router) Selection() Selection { return r.selection }
