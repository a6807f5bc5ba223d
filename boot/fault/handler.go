package fault

import (
	"sync"
	"sync/atomic"
)

// Info describes a trapped fault.
type Info struct {
	Kind  Kind
	Value any
}

var (
	trapActive atomic.Bool
	trapOnce   sync.Once

	trapHandler atomic.Value // func(Info)
)

// Active reports whether a fault has been trapped.
func Active() bool {
	return trapActive.Load()
}

// SetHandler installs the process-wide fatal fault handler.
//
// The handler is invoked at most once (on the first trap). It must not panic.
func SetHandler(fn func(Info)) {
	trapHandler.Store(fn)
}

// Trigger reports a fatal fault. Only the first call reaches the handler.
func Trigger(info Info) {
	trapOnce.Do(func() {
		trapActive.Store(true)
		if info.Kind == 0 {
			info.Kind = KindTrap
		}
		if v := trapHandler.Load(); v != nil {
			if fn, ok := v.(func(Info)); ok && fn != nil {
				fn(info)
			}
		}
	})
}
