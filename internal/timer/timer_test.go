package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualRefusesDuplicateKey(t *testing.T) {
	m := NewManual()
	calls := 0

	require.True(t, m.Schedule("end", time.Second, func() { calls++ }))
	assert.False(t, m.Schedule("end", time.Second, func() { calls += 10 }))
	assert.True(t, m.Pending("end"))

	assert.Equal(t, 0, m.Advance(500*time.Millisecond))
	assert.Equal(t, 1, m.Advance(500*time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.False(t, m.Pending("end"))

	assert.True(t, m.Schedule("end", time.Second, func() { calls++ }), "key is free again after firing")
}

func TestManualFiresInDueOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.Schedule("late", 2*time.Second, func() { order = append(order, "late") })
	m.Schedule("early", time.Second, func() { order = append(order, "early") })
	m.Schedule("tie", time.Second, func() { order = append(order, "tie") })

	assert.Equal(t, 3, m.Advance(2*time.Second))
	assert.Equal(t, []string{"early", "tie", "late"}, order)
	assert.Equal(t, 0, m.Len())
}

func TestManualChainedCallbacks(t *testing.T) {
	m := NewManual()
	fired := 0
	m.Schedule("first", 0, func() {
		fired++
		m.Schedule("second", time.Minute, func() { fired++ })
	})

	assert.Equal(t, 1, m.Advance(0))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Flush())
	assert.Equal(t, 2, fired)
}

func TestAfterFuncPostsCallback(t *testing.T) {
	var mu sync.Mutex
	var posted []func()
	s := NewAfterFunc(func(fn func()) {
		mu.Lock()
		posted = append(posted, fn)
		mu.Unlock()
	})

	done := false
	require.True(t, s.Schedule("end", time.Millisecond, func() { done = true }))
	assert.False(t, s.Schedule("end", time.Millisecond, func() {}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(posted) == 1
	}, time.Second, time.Millisecond)

	assert.True(t, s.Pending("end"), "still pending until the loop runs it")
	mu.Lock()
	fn := posted[0]
	mu.Unlock()
	fn()
	assert.True(t, done)
	assert.False(t, s.Pending("end"))
}

func TestAfterFuncRequiresPost(t *testing.T) {
	assert.Panics(t, func() { NewAfterFunc(nil) })
}
