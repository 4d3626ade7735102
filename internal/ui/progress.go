package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user stops a run from the progress view
var ErrInterrupted = errors.New("interrupted")

const maxBarWidth = 60

// Report describes one finished file
type Report struct {
	Name      string
	Sentences int
	Tokens    int
}

// ============================================================================
// Messages
// ============================================================================

type fileDoneMsg Report

type workDoneMsg struct {
	err error
}

// ============================================================================
// Model
// ============================================================================

type progressModel struct {
	total       int
	done        int
	sentences   int
	tokens      int
	current     string
	bar         progress.Model
	spinner     spinner.Model
	err         error
	finished    bool
	interrupted bool
}

func newProgressModel(total int) progressModel {
	bar := progress.New(progress.WithGradient(styles.BarStart, styles.BarEnd))
	bar.Width = maxBarWidth

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Current

	return progressModel{
		total:   total,
		bar:     bar,
		spinner: sp,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileDoneMsg:
		m.done++
		m.sentences += msg.Sentences
		m.tokens += msg.Tokens
		m.current = msg.Name
		return m, nil

	case workDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(styles.Error.Render("✗ " + m.err.Error()))
	case m.finished:
		b.WriteString(styles.Done.Render("✓"))
		fmt.Fprintf(&b, " %d files, %d sentences, %d tokens", m.done, m.sentences, m.tokens)
	default:
		b.WriteString(m.spinner.View())
		fmt.Fprintf(&b, " %d/%d ", m.done, m.total)
		b.WriteString(styles.Current.Render(m.current))
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.percent()))
	b.WriteString("\n")

	return b.String()
}

// ============================================================================
// Runner
// ============================================================================

// RunProgress shows a progress view on stderr while work runs. work must
// call report once per finished file and stop when ctx is cancelled.
func RunProgress(ctx context.Context, total int, work func(ctx context.Context, report func(Report)) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(total), tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	errc := make(chan error, 1)
	go func() {
		err := work(ctx, func(r Report) {
			p.Send(fileDoneMsg(r))
		})
		errc <- err
		p.Send(workDoneMsg{err: err})
	}()

	final, runErr := p.Run()
	cancel()
	workErr := <-errc

	if m, ok := final.(progressModel); ok && m.interrupted {
		return ErrInterrupted
	}
	if workErr != nil {
		return workErr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return nil
}
