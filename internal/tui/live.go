// Package tui is the interactive live view: a frame ticker drives the active
// studio, the canvas, and the side panel. Cycling studios shows a transient
// caption overlay that dismisses itself after a fixed duration.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/statsoc/backdrop/internal/export"
	"github.com/statsoc/backdrop/internal/studio"
	"github.com/statsoc/backdrop/internal/viz"
)

const (
	canvasW = 84
	canvasH = 26

	overlayDuration = 2500 * time.Millisecond
)

// TickMsg is the frame clock.
type TickMsg time.Time

// Model owns the studio set, the selector, and all per-frame UI state.
type Model struct {
	set  []studio.Studio
	idx  int
	seed int64

	canvas *viz.Canvas
	camera *viz.Camera
	wf     *viz.Wireframe

	t       float64
	dt      float64
	fps     int
	running bool

	overlay         string
	overlayDeadline time.Time

	recording bool
	recorder  *export.GIFRecorder

	notice   string
	showHelp bool
}

// New builds the live view. startAt selects the initial studio by name; an
// unknown or empty name starts at the first studio.
func New(set []studio.Studio, startAt string, seed int64, fps int) Model {
	idx := studio.Find(set, startAt)
	if idx < 0 {
		idx = 0
	}
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		set:     set,
		idx:     idx,
		seed:    seed,
		canvas:  viz.NewCanvas(canvasW, canvasH),
		camera:  viz.NewCamera(),
		wf:      viz.NewWireframe(),
		dt:      1.0 / float64(fps),
		fps:     fps,
		running: true,
	}
	m.showOverlay()
	return m
}

func (m *Model) active() studio.Studio { return m.set[m.idx] }

func (m *Model) showOverlay() {
	m.overlay = m.active().Caption()
	m.overlayDeadline = time.Now().Add(overlayDuration)
}

func (m *Model) switchTo(idx int) {
	m.idx = idx
	m.t = 0
	m.active().Init(m.seed)
	m.showOverlay()
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab", "n", "right":
			m.switchTo(studio.Next(m.idx, len(m.set)))
		case "shift+tab", "p", "left":
			m.switchTo(studio.Prev(m.idx, len(m.set)))
		case "r":
			// fresh sample of the same scene
			m.seed++
			m.switchTo(m.idx)
		case "t":
			viz.NextTheme()
		case "x":
			m.camera.Grab()
			m.camera.Pitch += 0.1
		case "X":
			m.camera.Grab()
			m.camera.Pitch -= 0.1
		case "y":
			m.camera.Grab()
			m.camera.Yaw += 0.1
		case "Y":
			m.camera.Grab()
			m.camera.Yaw -= 0.1
		case "o":
			m.camera.Release()
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "s":
			m.notice = m.saveSVG()
		case "g":
			if m.recording {
				m.notice = m.stopRecording()
			} else {
				m.recorder = export.NewGIFRecorder()
				m.recording = true
				m.notice = "recording..."
			}
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.t += m.dt
			m.active().Advance(m.t, m.dt)
			m.camera.Advance(m.dt)
		}
		if m.overlay != "" && time.Now().After(m.overlayDeadline) {
			m.overlay = ""
		}
		m.draw()
		if m.recording && m.recorder != nil {
			m.recorder.Capture(m.canvas)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.wf.Reset()
	m.active().Compose(m.wf)
	viz.Render(m.canvas, m.wf, m.camera)
}

func (m *Model) saveSVG() string {
	name := fmt.Sprintf("backdrop-%s-%d.svg", m.active().Name(), time.Now().Unix())
	if err := os.WriteFile(name, []byte(export.CanvasSVG(m.canvas, 4)), 0o644); err != nil {
		return "svg failed: " + err.Error()
	}
	return "saved " + name
}

func (m *Model) stopRecording() string {
	m.recording = false
	rec := m.recorder
	m.recorder = nil
	name := fmt.Sprintf("backdrop-%s.gif", m.active().Name())
	if err := rec.Save(name); err != nil {
		return "gif failed: " + err.Error()
	}
	return "saved " + name
}

func (m Model) View() string {
	theme := viz.CurrentTheme

	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	text := lipgloss.NewStyle().Foreground(theme.Text)
	overlayStyle := lipgloss.NewStyle().Foreground(theme.Overlay).Bold(true)

	canvasView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.TrimRight(m.canvas.Render(theme.Default), "\n"))

	var side strings.Builder
	side.WriteString(header.Render(strings.ToUpper(m.active().Name())) + "\n")
	status := "running"
	if !m.running {
		status = "paused"
	}
	if m.recording {
		status += "  ● rec"
	}
	side.WriteString(muted.Render(status) + "\n\n")

	side.WriteString(muted.Render("scene ") +
		text.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.set))) + "\n")
	side.WriteString(muted.Render("seed  ") + text.Render(fmt.Sprintf("%d", m.seed)) + "\n")
	side.WriteString(muted.Render("time  ") + text.Render(fmt.Sprintf("%.1fs", m.t)) + "\n")
	side.WriteString(muted.Render("theme ") + text.Render(theme.Name) + "\n\n")

	if label, series := m.active().Metric(); len(series) > 1 {
		chart := asciigraph.Plot(series,
			asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption(label))
		side.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(chart) + "\n\n")
	}

	if m.notice != "" {
		side.WriteString(text.Render(m.notice) + "\n\n")
	}
	side.WriteString(muted.Render("tab next  space pause  r resample\nt theme  s svg  g gif  ? help  q quit"))

	sideView := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Width(40).
		Render(side.String())

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, sideView)

	var top string
	if m.overlay != "" {
		top = overlayStyle.Render("  "+m.overlay) + "\n"
	} else {
		top = "\n"
	}

	if m.showHelp {
		return top + main + "\n" + muted.Render(helpText)
	}
	return top + main
}

const helpText = `  tab / n / right    next scene        shift+tab / p / left   previous scene
  space              pause or resume   r                      resample with a new seed
  x / X / y / Y      rotate camera     o                      resume auto-rotate
  + / -              zoom              t                      cycle color theme
  s                  save SVG frame    g                      start/stop GIF recording
  ?                  toggle this help  q                      quit`

// Run starts the live view in the alternate screen.
func Run(set []studio.Studio, startAt string, seed int64, fps int) error {
	p := tea.NewProgram(New(set, startAt, seed, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
