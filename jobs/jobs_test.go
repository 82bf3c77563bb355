/*
 * jobs_test.go, part of fusechem.
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

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunner(Te *testing.T) {
	R := NewRunner(2)
	release := make(chan struct{})
	id, err := R.Submit(func(ctx context.Context) (any, error) {
		<-release
		return 42, nil
	})
	if err != nil {
		Te.Fatal(err)
	}
	st, err := R.Poll(id)
	if err != nil {
		Te.Fatal(err)
	}
	if st.State != Pending && st.State != Running {
		Te.Errorf("the job can't be finished yet, got %s", st.State)
	}
	failing, _ := R.Submit(func(ctx context.Context) (any, error) {
		return nil, errors.New("no neighbors")
	})
	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err = R.Wait(ctx, id)
	if err != nil {
		Te.Fatal(err)
	}
	if st.State != Done || st.Result.(int) != 42 || st.Err != nil {
		Te.Errorf("wrong final status %+v", st)
	}
	st, err = R.Wait(ctx, failing)
	if err != nil {
		Te.Fatal(err)
	}
	if st.State != Failed || st.Err == nil || st.Err.Error() != "no neighbors" {
		Te.Errorf("wrong status for a failed job %+v", st)
	}
	if _, err := R.Poll("nope"); !errors.Is(err, ErrUnknownJob) {
		Te.Errorf("expected ErrUnknownJob, got %v", err)
	}
	if !R.Forget(id) {
		Te.Error("a finished job should be forgotten")
	}
	if _, err := R.Poll(id); !errors.Is(err, ErrUnknownJob) {
		Te.Errorf("a forgotten job should be unknown, got %v", err)
	}
	R.Close(false)
	if _, err := R.Submit(func(ctx context.Context) (any, error) { return nil, nil }); !errors.Is(err, ErrClosed) {
		Te.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestRunnerPanicAndCancel(Te *testing.T) {
	R := NewRunner(1)
	id, _ := R.Submit(func(ctx context.Context) (any, error) {
		panic("bad input")
	})
	long, _ := R.Submit(func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := R.Wait(ctx, id)
	if err != nil || st.State != Failed {
		Te.Errorf("a panicking job should fail, got %+v %v", st, err)
	}
	R.Close(true)
	st, _ = R.Poll(long)
	if st.State != Failed || !errors.Is(st.Err, context.Canceled) {
		Te.Errorf("the running job should see the cancellation, got %+v", st)
	}
}
