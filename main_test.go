package main

import (
	"errors"
	"testing"
)

func TestStartSinksDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	var got []int
	sinks := []sink{
		{name: "bad", run: func(ch <-chan *frameJob) error {
			<-ch
			return boom
		}},
		{name: "good", run: func(ch <-chan *frameJob) error {
			for job := range ch {
				got = append(got, job.Frame)
			}
			return nil
		}},
	}
	wg, errs := startSinks(sinks)

	// more frames than the channel buffer, so a stuck sink would block here
	for f := 0; f < 100; f++ {
		job := &frameJob{Frame: f}
		for _, sk := range sinks {
			sk.ch <- job
		}
	}
	for _, sk := range sinks {
		close(sk.ch)
	}
	wg.Wait()
	close(errs)

	var failures []error
	for err := range errs {
		failures = append(failures, err)
	}
	if len(failures) != 1 || !errors.Is(failures[0], boom) {
		t.Fatalf("errors = %v, want one wrapping boom", failures)
	}
	if len(got) != 100 {
		t.Fatalf("good sink saw %d frames, want 100", len(got))
	}
}
