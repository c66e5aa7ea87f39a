package safego

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/termsync/internal/logging"
)

// PanicHandler receives panic details from recovered calls.
type PanicHandler func(name string, recovered any, stack []byte)

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Name      string
	Recovered any
	Stack     []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Name, e.Recovered)
}

// Unwrap exposes a recovered error value to errors.Is/As.
func (e *PanicError) Unwrap() error {
	err, _ := e.Recovered.(error)
	return err
}

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

func report(name string, r any) *PanicError {
	if name == "" {
		name = "goroutine"
	}
	stack := debug.Stack()
	logging.Error("panic in %s: %v\n%s", name, r, stack)
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler != nil {
		func() {
			defer func() { _ = recover() }()
			handler(name, r, stack)
		}()
	}
	return &PanicError{Name: name, Recovered: r, Stack: stack}
}

// Call runs fn and returns its error, or a *PanicError if fn panics.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Call(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = report(name, r)
		}
	}()
	return fn()
}

// Run executes fn and converts panics into logged errors.
func Run(name string, fn func()) {
	_ = Call(name, func() error {
		fn()
		return nil
	})
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}
