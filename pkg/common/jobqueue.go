package common

import (
	"sync"

	"go.uber.org/zap"
)

type Job func() error

// JobQueue runs enqueued jobs one after another on a single goroutine.
type JobQueue struct {
	jobsChannel chan Job
	stopChannel chan struct{}
	waitGroup   sync.WaitGroup
	logger      Logger
}

func NewJobQueue(logger Logger) *JobQueue {
	worker := &JobQueue{
		jobsChannel: make(chan Job, 128),
		stopChannel: make(chan struct{}),
		logger:      logger,
	}
	worker.waitGroup.Add(1)
	go worker.run()
	return worker
}

func (j *JobQueue) Enqueue(job Job) {
	j.jobsChannel <- job
}

// Stop waits for the job being processed (if any) and stops the queue. Jobs still in the queue are dropped.
func (j *JobQueue) Stop() {
	close(j.stopChannel)
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for {
		select {
		case job := <-j.jobsChannel:
			err := job()
			if err != nil {
				j.logger.Error("failed to process a job", err, zap.Int("pending", len(j.jobsChannel)))
			}
		case <-j.stopChannel:
			return
		}
	}
}
