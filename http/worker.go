package http

import (
	"context"
	"sync"
)

// WorkerPool bounds how many connections are processed at once. The
// accept loop enqueues, a fixed set of long lived workers dequeues.
// The channel is the only structure shared between them; each
// connection is handed off exactly once.
type WorkerPool struct {
	tasks chan *Conn
	wg    sync.WaitGroup
}

func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = DefaultWorkerCount
	}

	pool := &WorkerPool{
		tasks: make(chan *Conn, ConnQueueSize),
	}

	pool.wg.Add(size)
	for i := 0; i < size; i++ {
		go pool.work()
	}
	return pool
}

func (pool *WorkerPool) work() {
	defer pool.wg.Done()
	for conn := range pool.tasks {
		queueDepth.Add(context.Background(), -1)
		conn.process()
	}
}

// Submit hands a connection to the pool, blocking when the queue is
// full.
func (pool *WorkerPool) Submit(conn *Conn) {
	queueDepth.Add(context.Background(), 1)
	pool.tasks <- conn
}

// Close stops intake and waits for in-flight connections to finish.
func (pool *WorkerPool) Close() {
	close(pool.tasks)
	pool.wg.Wait()
}
