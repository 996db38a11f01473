// runs a 2D gravitational n-body simulation headless, recording frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quillaja/nbody2d/sim"
)

// frameJob is one recorded frame, shared read-only by all sinks.
type frameJob struct {
	Frame   int
	Elapsed float64
	Bodies  []sim.Body
}

// sink consumes frames on its own goroutine.
type sink struct {
	name string
	ch   chan *frameJob
	run  func(<-chan *frameJob) error
}

func main() {
	initConfig()

	scene := flag.String("scene", sceneBinary, "initial bodies: binary, ring or cluster")
	numbodies := flag.Int("n", 10, "number of bodies for ring and cluster")
	seed := flag.Int64("seed", 1, "random seed for cluster")
	ticks := flag.Int("ticks", envInt(envTicks, 1000), "number of ticks to run")
	every := flag.Int("every", 1, "record every nth frame")
	g := flag.Float64("g", sim.DefaultG, "gravitational constant")
	minsep := flag.Float64("minsep", sim.DefaultMinSeparation, "softening floor")
	dt := flag.Float64("dt", sim.DefaultTimeStep, "seconds per tick")
	viewW := flag.Float64("width", envFloat(envViewW, 1000), "world width shown in images")
	viewH := flag.Float64("height", envFloat(envViewH, 1000), "world height shown in images")
	imgWidth := flag.Int("imgwidth", 1000, "image width in pixels")
	pngDir := flag.String("png", envString(envPNGDir, ""), "directory for png frames")
	dbFile := flag.String("db", envString(envDB, ""), "sqlite file to record frames to")
	chunkDir := flag.String("chunks", envString(envChunkDir, ""), "directory for compressed gob chunks")
	chunkSize := flag.Int("chunksize", 48, "frames per gob chunk")
	quiet := flag.Bool("q", false, "no progress output")
	flag.Parse()

	if *every < 1 {
		*every = 1
	}
	view := mgl64.Vec2{*viewW, *viewH}

	// edit phase
	s := sim.NewSession(sim.DefaultParams())
	for _, set := range []func() error{
		func() error { return s.SetGravity(*g) },
		func() error { return s.SetMinSeparation(*minsep) },
		func() error { return s.SetTimeStep(*dt) },
		func() error { return buildScene(s, *scene, *numbodies, view, rand.New(rand.NewSource(*seed))) },
	} {
		if err := set(); err != nil {
			log.Fatal(err)
		}
	}

	// setup output workers
	var sinks []sink
	if *pngDir != "" {
		fr, err := newFrameRenderer(*pngDir, view, *imgWidth)
		if err != nil {
			log.Fatal(err)
		}
		sinks = append(sinks, sink{name: "png", run: fr.run})
	}
	if *dbFile != "" {
		db, err := opendb(*dbFile)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		sinks = append(sinks, sink{name: "sqlite", run: func(ch <-chan *frameJob) error { return frameToSqlite(db, ch) }})
	}
	if *chunkDir != "" {
		cw, err := newChunkWriter(*chunkDir, *chunkSize)
		if err != nil {
			log.Fatal(err)
		}
		sinks = append(sinks, sink{name: "chunks", run: cw.run})
	}
	wg, errs := startSinks(sinks)

	// print parameters
	p := s.Params()
	fmt.Printf("scene: %s\nbodies: %d\nG: %g\nmin separation: %g\nstep: %g sec\nticks: %d\noutputs: %d\n",
		*scene, s.Len(), p.G, p.MinSeparation, p.TimeStep, *ticks, len(sinks))

	if err := s.StartRun(); err != nil {
		log.Fatal(err)
	}

	rs := newRunStats()
	start := time.Now()
	for frame := 0; frame <= *ticks; frame++ {
		bodies := s.Bodies()
		rs.observe(frame, bodies)
		if frame%*every == 0 && len(sinks) > 0 {
			job := &frameJob{Frame: frame, Elapsed: s.Elapsed(), Bodies: bodies}
			for _, sk := range sinks {
				sk.ch <- job
			}
		}
		if frame == *ticks {
			break
		}
		if err := s.Tick(); err != nil {
			log.Fatal(err)
		}

		// progress
		if !*quiet && frame%100 == 0 {
			avgTimePerFrame := time.Since(start) / time.Duration(frame+1)
			estTimeLeft := avgTimePerFrame * time.Duration(*ticks-frame)
			fmt.Printf("%.1f%%, %.1f s simulated, %s/frame, %s remaining, %s elapsed          \r",
				100*float64(frame)/float64(*ticks),
				s.Elapsed(),
				avgTimePerFrame,
				estTimeLeft.Truncate(time.Second),
				time.Since(start).Truncate(time.Second))
		}
	}
	for _, sk := range sinks {
		close(sk.ch)
	}
	wg.Wait()
	close(errs)
	failed := false
	for err := range errs {
		log.Print(err)
		failed = true
	}

	fmt.Printf("\n%s\n", summary(s, rs, time.Since(start)))

	if err := s.EndRun(); err != nil {
		log.Fatal(err)
	}
	log.Printf("run ended, %d bodies restored", s.Len())
	if failed {
		log.Fatal("some outputs failed")
	}
}

// startSinks runs every sink on its own goroutine. a sink that fails keeps
// draining its channel so the simulation loop never blocks on it.
func startSinks(sinks []sink) (*sync.WaitGroup, chan error) {
	wg := &sync.WaitGroup{}
	errs := make(chan error, len(sinks))
	for i := range sinks {
		sinks[i].ch = make(chan *frameJob, 32)
		wg.Add(1)
		go func(sk sink) {
			defer wg.Done()
			if err := sk.run(sk.ch); err != nil {
				errs <- fmt.Errorf("%s: %w", sk.name, err)
				for range sk.ch {
				}
			}
		}(sinks[i])
	}
	return wg, errs
}
