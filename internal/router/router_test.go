package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/on-the-issues/internal/topic"
)

func testStore() *topic.Store {
	return topic.NewStore(topic.Dataset{Topics: []topic.Record{
		{Name: "Paid Leave", Friends: topic.Opinions{Responses: []string{"yes"}}},
		{Name: "Right-to-Work"},
	}})
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"#paid_leave", "paid_leave"},
		{"paid_leave", "paid_leave"},
		{"##paid_leave", "#paid_leave"},
		{"#", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveSelection(tt.input), "ResolveSelection(%q)", tt.input)
	}
}

func TestResolve(t *testing.T) {
	store := testStore()

	sel := Resolve(store, "#paid_leave")
	require.True(t, sel.Found)
	assert.Equal(t, "paid_leave", sel.ID)
	assert.Equal(t, "Paid Leave", sel.Record.Name)

	sel = Resolve(store, "nonexistent_topic")
	assert.False(t, sel.Found)
	assert.Equal(t, "nonexistent_topic", sel.ID)

	sel = Resolve(nil, "#paid_leave")
	assert.False(t, sel.Found)
}

func TestRouterNotifiesSubscribers(t *testing.T) {
	r := New(testStore())

	var got []Selection
	unsubscribe := r.Subscribe(func(s Selection) { got = append(got, s) })

	r.SetFragment("#paid_leave")
	r.Select("right_to_work")
	r.SetFragment("#missing")

	require.Len(t, got, 3)
	assert.Equal(t, "Paid Leave", got[0].Record.Name)
	assert.Equal(t, "Right-to-Work", got[1].Record.Name)
	assert.Equal(t, "#right_to_work", r.Fragment())
	assert.False(t, got[2].Found)

	unsubscribe()
	unsubscribe()
	r.SetFragment("#paid_leave")
	assert.Len(t, got, 3)
	assert.True(t, r.Selection().Found)
}

func TestRouterIdempotent(t *testing.T) {
	r := New(testStore())
	calls := 0
	r.Subscribe(func(Selection) { calls++ })

	first := r.SetFragment("#paid_leave")
	second := r.SetFragment("#paid_leave")
	third := r.SetFragment("paid_leave")

	assert.Equal(t, 3, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, first, r.Selection())
}

func TestRouterSubscriptionOrder(t *testing.T) {
	r := New(testStore())
	var order []string
	r.Subscribe(func(Selection) { order = append(order, "a") })
	unsubB := r.Subscribe(func(Selection) { order = append(order, "b") })
	r.Subscribe(func(Selection) { order = append(order, "c") })

	r.SetFragment("#paid_leave")
	unsubB()
	r.SetFragment("#paid_leave")

	assert.Equal(t, []string{"a", "b", "c", "a", "c"}, order)
}

func TestRouterUnsubscribeDuringNotification(t *testing.T) {
	r := New(testStore())
	calls := 0
	var unsubscribe func()
	unsubscribe = r.Subscribe(func(Selection) {
		calls++
		unsubscribe()
	})
	r.Subscribe(func(Selection) { calls++ })

	r.SetFragment("#paid_leave")
	r.SetFragment("#paid_leave")
	assert.Equal(t, 3, calls)
}

func TestRouterClear(t *testing.T) {
	r := New(testStore())
	r.Select("paid_leave")
	sel := r.Clear()
	assert.False(t, sel.Found)
	assert.Equal(t, "", r.Fragment())

	assert.NotNil(t, r.Subscribe(nil))
}
