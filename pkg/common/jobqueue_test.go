package common

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestJobQueue_RunsJobsInOrder(t *testing.T) {
	queue := NewJobQueue(NewNopLogger())

	var mutex sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		queue.Enqueue(func() error {
			defer wg.Done()
			mutex.Lock()
			order = append(order, i)
			mutex.Unlock()
			return nil
		})
	}
	wg.Wait()
	queue.Stop()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestJobQueue_FailedJobDoesNotStopQueue(t *testing.T) {
	queue := NewJobQueue(NewNopLogger())

	done := make(chan struct{})
	queue.Enqueue(func() error {
		return errors.New("boom")
	})
	queue.Enqueue(func() error {
		close(done)
		return nil
	})
	<-done
	queue.Stop()
}
