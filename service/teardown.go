package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type TeardownManager struct {
	ctx      context.Context
	cancel   context.CancelFunc
	wg       *sync.WaitGroup
	handlers []func()
}

var tm *TeardownManager
var once sync.Once

func GetTeardownManager() *TeardownManager {
	once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		tm = &TeardownManager{
			ctx:    ctx,
			cancel: cancel,
			wg:     &sync.WaitGroup{},
		}
	})
	return tm
}

func (t *TeardownManager) Context() context.Context {
	return t.ctx
}

func (t *TeardownManager) WaitGroup() *sync.WaitGroup {
	return t.wg
}

func (t *TeardownManager) TeardownFunc(f func()) {
	t.handlers = append(t.handlers, f)
}

// Wait blocks until SIGINT or SIGTERM, then cancels the service context,
// runs the registered teardown functions, and waits for workers to drain.
func (t *TeardownManager) Wait() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	t.cancel()
	for _, h := range t.handlers {
		h()
	}
	t.wg.Wait()
}
