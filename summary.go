package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"

	"github.com/quillaja/nbody2d/sim"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// runStats follows a run frame by frame.
type runStats struct {
	frames int
	energy []float64 // kinetic energy while the state is finite
	com    []float64 // center of mass drift from frame 0, same frames
	origin mgl64.Vec2

	nonFinite int // first frame with NaN or Inf, -1 if none
}

func newRunStats() *runStats {
	return &runStats{nonFinite: -1}
}

func (rs *runStats) observe(frame int, bodies []sim.Body) {
	rs.frames++
	if rs.nonFinite >= 0 {
		return
	}
	if !sim.Finite(bodies) {
		rs.nonFinite = frame
		return
	}
	c := sim.CenterOfMass(bodies)
	if len(rs.com) == 0 {
		rs.origin = c
	}
	rs.energy = append(rs.energy, sim.KineticEnergy(bodies))
	rs.com = append(rs.com, c.Sub(rs.origin).Len())
}

func row(label string, format string, a ...interface{}) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, a...))
}

// summary renders the end of run report.
func summary(s *sim.Session, rs *runStats, took time.Duration) string {
	p := s.Params()
	bodies := s.Bodies()
	mom := sim.Momentum(bodies)

	lines := []string{
		headerStyle.Render("n-body run"),
		row("bodies", "%d", len(bodies)),
		row("G", "%g", p.G),
		row("min separation", "%g", p.MinSeparation),
		row("time step", "%g s", p.TimeStep),
		row("ticks", "%d", s.Ticks()),
		row("elapsed", "%g s", s.Elapsed()),
		row("frames seen", "%d", rs.frames),
		row("momentum", "[%.6g, %.6g]", mom.X(), mom.Y()),
		row("took", "%s", took.Truncate(time.Millisecond)),
	}
	if len(rs.com) > 0 {
		lines = append(lines, row("com drift", "%.6g", rs.com[len(rs.com)-1]))
	}
	if rs.nonFinite >= 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("non-finite state from frame %d (coincident bodies?)", rs.nonFinite)))
	}
	if len(rs.energy) > 1 {
		plot := asciigraph.Plot(rs.energy,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("kinetic energy per frame"))
		lines = append(lines, graphStyle.Render(plot))
	}
	return strings.Join(lines, "\n")
}
