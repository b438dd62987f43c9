package signals

import (
	"os"
	"os/signal"
	"syscall"
)

// Target is anything that can receive a forwarded signal, normally an
// *os.Process.
type Target interface {
	Signal(sig os.Signal) error
}

// Relay forwards every signal received on ch to t until stop is called or
// ch is closed.
func Relay(ch <-chan os.Signal, t Target) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		for {
			select {
			case sig, ok := <-ch:
				if !ok {
					return
				}
				_ = t.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

// Forward relays termination signals delivered to this process to p.
func Forward(p *os.Process) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	relayStop := Relay(ch, p)
	return func() {
		signal.Stop(ch)
		relayStop()
	}
}
