package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Run("delivers to every subscriber", func(t *testing.T) {
		bus := NewBus()
		var a, b []AuthChanged
		bus.Subscribe(func(e AuthChanged) { a = append(a, e) })
		bus.Subscribe(func(e AuthChanged) { b = append(b, e) })

		bus.Publish(AuthChanged{LoggedIn: false})

		assert.Equal(t, []AuthChanged{{LoggedIn: false}}, a)
		assert.Equal(t, []AuthChanged{{LoggedIn: false}}, b)
	})

	t.Run("unsubscribed handlers stop receiving", func(t *testing.T) {
		bus := NewBus()
		var got int
		unsubscribe := bus.Subscribe(func(AuthChanged) { got++ })

		bus.Publish(AuthChanged{})
		unsubscribe()
		bus.Publish(AuthChanged{})

		assert.Equal(t, 1, got)
	})

	t.Run("unsubscribe is safe to call twice", func(t *testing.T) {
		bus := NewBus()
		unsubscribe := bus.Subscribe(func(AuthChanged) {})
		unsubscribe()
		unsubscribe()
		bus.Publish(AuthChanged{})
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		NewBus().Publish(AuthChanged{LoggedIn: true})
	})
}
