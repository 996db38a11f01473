package main

import (
	"compress/zlib"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

/*
compact recording of a run for later inspection: frames are bucketed,
framesPerChunk at a time, into zlib compressed gob files named after the
last frame they hold. float32 is plenty for looking at.
*/

type renderbody struct {
	X, Y, Vx, Vy float32
	Mass, Radius float32
	RGBA         uint32
}

// chunk maps frame number to bodies in collection order.
type chunk map[uint32][]renderbody

type chunkWriter struct {
	dir            string
	framesPerChunk int
	pending        chunk
	last           int
}

func newChunkWriter(dir string, framesPerChunk int) (*chunkWriter, error) {
	if framesPerChunk <= 0 {
		return nil, fmt.Errorf("frames per chunk must be positive, got %d", framesPerChunk)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &chunkWriter{
		dir:            dir,
		framesPerChunk: framesPerChunk,
		pending:        make(chunk, framesPerChunk),
	}, nil
}

// run buckets frames from ch and dumps every full bucket, then whatever
// remains once ch is closed.
func (cw *chunkWriter) run(ch <-chan *frameJob) error {
	for job := range ch {
		cw.add(job)
		if len(cw.pending) == cw.framesPerChunk {
			if err := cw.dump(); err != nil {
				return err
			}
		}
	}
	if len(cw.pending) > 0 {
		return cw.dump()
	}
	return nil
}

func (cw *chunkWriter) add(job *frameJob) {
	frame := make([]renderbody, len(job.Bodies))
	for i, b := range job.Bodies {
		frame[i] = renderbody{
			X:      float32(b.Pos.X()),
			Y:      float32(b.Pos.Y()),
			Vx:     float32(b.Vel.X()),
			Vy:     float32(b.Vel.Y()),
			Mass:   float32(b.Mass),
			Radius: float32(b.Radius),
			RGBA:   uint32(packRGBA(b.Color)),
		}
	}
	cw.pending[uint32(job.Frame)] = frame
	cw.last = job.Frame
}

func (cw *chunkWriter) dump() error {
	file, err := os.Create(filepath.Join(cw.dir, fmt.Sprintf("%010d.chunk", cw.last)))
	if err != nil {
		return err
	}
	defer file.Close()

	zw, err := zlib.NewWriterLevel(file, zlib.DefaultCompression)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(zw).Encode(cw.pending); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	cw.pending = make(chunk, cw.framesPerChunk)
	return file.Close()
}
