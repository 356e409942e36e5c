package game

import "sync"

// gameLocks serializes mutating operations per game. Operations on
// different games proceed in parallel; two operations on the same game
// queue up on that game's mutex.
type gameLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[uint]*sync.Mutex)}
}

// acquire locks the mutex for gameID and returns the matching unlock.
// Callers defer the returned func so the lock is released on every exit
// path, including failures.
func (g *gameLocks) acquire(gameID uint) func() {
	g.mu.Lock()
	m, ok := g.locks[gameID]
	if !ok {
		m = &sync.Mutex{}
		g.locks[gameID] = m
	}
	g.mu.Unlock()

	m.Lock()
	return m.Unlock
}
