package libol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listMessages() []Message {
	items := make([]Message, 0, 16)
	for m := range Logger.List() {
		if m == nil {
			break
		}
		items = append(items, *m)
	}
	return items
}

func TestLogger_Ring(t *testing.T) {
	out := NewSubLogger("test")
	out.Debug("Logger.Ring: not kept")
	for i := 0; i < maxMessages+10; i++ {
		out.Info("Logger.Ring: %d", i)
	}
	out.Warn("Logger.Ring: last")

	items := listMessages()
	assert.Equal(t, maxMessages, len(items), "be the same.")
	assert.Equal(t, "WARN", items[0].Level, "be the same.")
	assert.Equal(t, "test|Logger.Ring: last", items[0].Message, "be the same.")
	assert.Equal(t, fmt.Sprintf("test|Logger.Ring: %d", maxMessages+9), items[1].Message, "be the same.")
	assert.Equal(t, "test|Logger.Ring: 11", items[len(items)-1].Message, "be the same.")
}

func TestLogger_Level(t *testing.T) {
	SetLevel(WARN)
	assert.Equal(t, WARN, GetLevel(), "be the same.")
	SetLevel(INFO)
	assert.Equal(t, INFO, GetLevel(), "be the same.")
}

func TestCatch(t *testing.T) {
	done := make(chan struct{})
	Go(func() {
		defer close(done)
		panic("oops")
	})
	<-done
}
