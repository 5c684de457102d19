package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes fn against every other call made through it.
// Worker pool tasks use it to guard shared collections.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
