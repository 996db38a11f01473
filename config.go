package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// environment variables providing flag defaults
const (
	envTicks    = "NBODY_TICKS"
	envPNGDir   = "NBODY_PNG_DIR"
	envDB       = "NBODY_DB"
	envChunkDir = "NBODY_CHUNK_DIR"
	envViewW    = "NBODY_VIEW_W"
	envViewH    = "NBODY_VIEW_H"
)

// initConfig loads a .env file into the environment if there is one.
func initConfig(filenames ...string) {
	err := godotenv.Load(filenames...)
	switch {
	case err == nil:
		log.Println("loaded environment from .env")
	case errors.Is(err, fs.ErrNotExist):
		// optional
	default:
		log.Printf("ignoring .env: %v", err)
	}
}

func getEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("variable %s not set", v)
	}
	return b, nil
}

func envString(v, def string) string {
	s, err := getEnvVariable(v)
	if err != nil {
		return def
	}
	return s
}

func envInt(v string, def int) int {
	s, err := getEnvVariable(v)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("%s: %v, using %d", v, err, def)
		return def
	}
	return n
}

func envFloat(v string, def float64) float64 {
	s, err := getEnvVariable(v)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("%s: %v, using %g", v, err, def)
		return def
	}
	return f
}
