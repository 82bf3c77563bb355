/*
 * jobs.go, part of fusechem.
 *
 * Copyright 2026 The fusechem Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package jobs runs long calculations in the background. A calculation is submitted and
//gets an id, which is used later to poll for its state and result.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

//State is the state of a job.
type State int

const (
	Pending State = iota
	Running
	Done
	Failed
)

func (S State) String() string {
	switch S {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(S))
}

//ErrUnknownJob is returned for ids that were never submitted.
var ErrUnknownJob = errors.New("unknown job")

//ErrClosed is returned when submitting to a closed Runner.
var ErrClosed = errors.New("job runner closed")

//Func is a calculation to be run as a job.
type Func func(ctx context.Context) (any, error)

//Status is a snapshot of a job.
type Status struct {
	ID     string
	State  State
	Result any
	Err    error
}

type job struct {
	status Status
	fn     Func
	done   chan struct{}
}

//Runner runs the submitted jobs on a fixed number of workers.
type Runner struct {
	mu     sync.Mutex //protects jobs and their status
	jobs   map[string]*job
	qmu    sync.RWMutex //protects queue and closed
	queue  chan *job
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

//NewRunner returns a Runner with the given number of workers (at least 1).
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	R := &Runner{jobs: make(map[string]*job), queue: make(chan *job, 64), ctx: ctx, cancel: cancel}
	for i := 0; i < workers; i++ {
		R.wg.Add(1)
		go R.work()
	}
	return R
}

func (R *Runner) work() {
	defer R.wg.Done()
	for j := range R.queue {
		R.run(j)
	}
}

func (R *Runner) run(j *job) {
	defer close(j.done)
	R.setState(j, Running, nil, nil)
	var res any
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("job %s panicked: %v", j.status.ID, r)
			}
		}()
		res, err = j.fn(R.ctx)
	}()
	if err != nil {
		log.Printf("jobs: job %s failed: %v", j.status.ID, err)
		R.setState(j, Failed, nil, err)
		return
	}
	R.setState(j, Done, res, nil)
}

func (R *Runner) setState(j *job, s State, res any, err error) {
	R.mu.Lock()
	j.status.State = s
	j.status.Result = res
	j.status.Err = err
	R.mu.Unlock()
}

//Submit queues fn and returns the id of the new job. It blocks while the queue is full.
func (R *Runner) Submit(fn Func) (string, error) {
	R.qmu.RLock()
	defer R.qmu.RUnlock()
	if R.closed {
		return "", ErrClosed
	}
	j := &job{status: Status{ID: uuid.NewString(), State: Pending}, fn: fn, done: make(chan struct{})}
	R.mu.Lock()
	R.jobs[j.status.ID] = j
	R.mu.Unlock()
	R.queue <- j
	return j.status.ID, nil
}

//Poll returns the current status of the job id.
func (R *Runner) Poll(id string) (Status, error) {
	R.mu.Lock()
	defer R.mu.Unlock()
	j, ok := R.jobs[id]
	if !ok {
		return Status{}, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return j.status, nil
}

//Wait blocks until the job id finishes, or ctx is done, and returns its status.
func (R *Runner) Wait(ctx context.Context, id string) (Status, error) {
	R.mu.Lock()
	j, ok := R.jobs[id]
	R.mu.Unlock()
	if !ok {
		return Status{}, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	select {
	case <-j.done:
	case <-ctx.Done():
		return Status{}, ctx.Err()
	}
	return R.Poll(id)
}

//Forget removes a finished job from the Runner, and returns false if the job
//doesn't exist or has not finished.
func (R *Runner) Forget(id string) bool {
	R.mu.Lock()
	defer R.mu.Unlock()
	j, ok := R.jobs[id]
	if !ok || (j.status.State != Done && j.status.State != Failed) {
		return false
	}
	delete(R.jobs, id)
	return true
}

//Close stops accepting jobs and waits for the queued ones to finish.
//If cancel is true, the context given to the running jobs is cancelled first.
func (R *Runner) Close(cancel bool) {
	if cancel {
		R.cancel()
	}
	R.qmu.Lock()
	if R.closed {
		R.qmu.Unlock()
		return
	}
	R.closed = true
	close(R.queue)
	R.qmu.Unlock()
	R.wg.Wait()
	R.cancel()
}
