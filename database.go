package main

import (
	"database/sql"
	"fmt"
	"image/color"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

/*
one row per body per frame. idx is the body's place in the collection, which
is stable for a whole run since bodies are never added or removed by physics.
*/

const schema = `
CREATE TABLE bodies (
	frame 	INTEGER,
	idx 	INTEGER, -- index in collection
	elapsed REAL,
	x 		REAL,
	y 		REAL,
	vx 		REAL,
	vy 		REAL,
	mass 	REAL,
	radius 	REAL,
	rgba 	INTEGER);
`

const indices = `
CREATE INDEX idx_frame ON bodies (frame, idx);
CREATE INDEX idx_idx ON bodies (idx);
`

const insert = `INSERT INTO bodies VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

// opens and initializes a new db in filename. an existing file is refused.
func opendb(filename string) (*sql.DB, error) {
	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("%s exists", filename)
	}
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// runs create table statements on db.
func createTables(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// runs create index statements on db.
func createIndices(db *sql.DB) error {
	_, err := db.Exec(indices)
	return err
}

// frameToSqlite writes each frame from ch in its own transaction.
func frameToSqlite(db *sql.DB, ch <-chan *frameJob) error {
	stmt, err := db.Prepare(insert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for job := range ch {
		if err := insertFrame(db, stmt, job); err != nil {
			return fmt.Errorf("frame %d: %w", job.Frame, err)
		}
	}
	return createIndices(db)
}

func insertFrame(db *sql.DB, stmt *sql.Stmt, job *frameJob) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	txStmt := tx.Stmt(stmt)
	for i, b := range job.Bodies {
		_, err = txStmt.Exec(
			job.Frame,
			i,
			job.Elapsed,
			b.Pos.X(),
			b.Pos.Y(),
			b.Vel.X(),
			b.Vel.Y(),
			b.Mass,
			b.Radius,
			packRGBA(b.Color))
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func packRGBA(c color.RGBA) int64 {
	return int64(c.R)<<24 | int64(c.G)<<16 | int64(c.B)<<8 | int64(c.A)
}
