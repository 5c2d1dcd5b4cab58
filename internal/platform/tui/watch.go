package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/progress"
)

// storeChangedMsg reports that a progression topic was written.
type storeChangedMsg struct {
	Topic progress.Topic
}

// watcher forwards store change notifications into a Bubble Tea program.
// Observers may fire from other SSH sessions' goroutines, so they only
// ever touch the channel.
type watcher struct {
	ch      chan progress.Topic
	done    chan struct{}
	cancels []func()
	once    sync.Once
}

func watch(store *progress.Store, topics ...progress.Topic) *watcher {
	w := &watcher{
		ch:   make(chan progress.Topic, 16),
		done: make(chan struct{}),
	}
	for _, t := range topics {
		w.cancels = append(w.cancels, store.OnChange(t, w.push))
	}
	return w
}

func (w *watcher) push(t progress.Topic) {
	select {
	case w.ch <- t:
	case <-w.done:
	default:
		// A refresh is already queued.
	}
}

// next waits for the following change.
func (w *watcher) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case t := <-w.ch:
			return storeChangedMsg{Topic: t}
		case <-w.done:
			return nil
		}
	}
}

// stop unregisters the observers. It is safe to call more than once.
func (w *watcher) stop() {
	w.once.Do(func() {
		for _, cancel := range w.cancels {
			cancel()
		}
		close(w.done)
	})
}
