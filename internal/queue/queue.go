// Package queue bounds concurrent request handling: every HTTP handler runs
// as a job on a fixed worker pool, so a burst of widget traffic queues up
// instead of fanning out unbounded goroutines.
package queue

import (
	"log"
	"sync"
)

type Job struct {
	Fn   func() error
	Errc chan error
}

type RequestQueueManager struct {
	jobQueue   chan Job
	maxWorkers int
	wg         sync.WaitGroup
}

func NewRequestQueueManager(queueSize int, maxWorkers int) *RequestQueueManager {
	manager := &RequestQueueManager{
		jobQueue:   make(chan Job, queueSize),
		maxWorkers: maxWorkers,
	}
	manager.startWorkers()
	return manager
}

func (rqm *RequestQueueManager) startWorkers() {
	for i := 0; i < rqm.maxWorkers; i++ {
		rqm.wg.Add(1)
		go func(workerID int) {
			defer rqm.wg.Done()
			log.Printf("queue: worker %d started", workerID)
			for job := range rqm.jobQueue {
				err := job.Fn()
				if job.Errc != nil {
					job.Errc <- err
				}
			}
			log.Printf("queue: worker %d stopped", workerID)
		}(i)
	}
}

// EnqueueJob blocks once the queue is full, which is the backpressure point
// for the whole server.
func (rqm *RequestQueueManager) EnqueueJob(job Job) {
	rqm.jobQueue <- job
}

// Depth reports jobs currently waiting, exposed as a gauge on /metrics.
func (rqm *RequestQueueManager) Depth() int {
	return len(rqm.jobQueue)
}

func (rqm *RequestQueueManager) Shutdown() {
	close(rqm.jobQueue)
	rqm.wg.Wait()
}
