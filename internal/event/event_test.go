package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(GameOver, b)

	d.Dispatch(Event{Type: EnemyKilled})
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)

	d.Unsubscribe(EnemyKilled, a)
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveStarted})
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 2, b.n)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got WaveData
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = e.Data.(WaveData) }))
	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Level: 3, Enemies: 4}})
	assert.Equal(t, WaveData{Level: 3, Enemies: 4}, got)
}
