package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "strata.dev/pkg/strata/internal/model"
)

const maxProgressWidth = 60

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TUI implements UI using Bubble Tea for interactive display. Generation runs
// show a live progress view; the other displays are rendered once.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in generate mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if startConfig(options).mode != ModeGenerate {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(newProgressModel(), tea.WithOutput(t.output), tea.WithInput(nil), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("progress view stopped", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// Close stops the progress program and waits for it to exit.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the progress program has rendered its final frame.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-done:
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayListing renders the per-file listing.
func (t *TUI) DisplayListing(ctx context.Context, results []m.FileResult, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		t.printf("%s\n", failureStyle.Render("listing error: "+err.Error()))
		return err
	}

	if len(results) == 0 {
		t.printf("%s\n  No source files found\n", titleStyle.Render("strata"))
		return nil
	}

	t.printf("%s\n%s", titleStyle.Render("strata · sources"), renderListingTable(buildFileStats(results)))

	return nil
}

// DisplayConcurrencyInfo forwards the worker settings to the progress view.
func (t *TUI) DisplayConcurrencyInfo(_ context.Context, threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shardCount: shardCount})
}

// DisplayUpcomingFiles sets the progress total.
func (t *TUI) DisplayUpcomingFiles(_ context.Context, count int) {
	t.send(upcomingMsg{count: count})
}

// DisplayStartingFile marks a worker busy.
func (t *TUI) DisplayStartingFile(_ context.Context, source m.Source, workerID int) {
	if source.Origin == nil {
		return
	}

	t.send(startedMsg{path: string(source.Origin.ShortPath), workerID: workerID})
}

// DisplayCompletedFile advances the progress bar.
func (t *TUI) DisplayCompletedFile(_ context.Context, result m.FileResult) {
	msg := completedMsg{path: result.SourceID, records: len(result.Records)}

	for _, failure := range result.Failures {
		if failure.Kind.Fatal() {
			msg.failures = append(msg.failures, formatFailure(failure))
		}
	}

	t.send(msg)
}

// DisplaySummary shows the totals and ends the progress view. Without a
// running progress view the summary is printed directly.
func (t *TUI) DisplaySummary(_ context.Context, summary m.RunSummary) {
	t.mu.Lock()
	running := t.program != nil
	t.mu.Unlock()

	if !running {
		t.printf("%s\n", summaryLine(summary))
		return
	}

	t.send(summaryMsg{line: summaryLine(summary)})
}

// DisplayStrata renders the strata table.
func (t *TUI) DisplayStrata(ctx context.Context, strata m.Strata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s\n%s", titleStyle.Render("strata · configuration"), renderStrataTable(strata))

	return nil
}

// DisplayManifest renders the stored records.
func (t *TUI) DisplayManifest(ctx context.Context, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s\n%s", titleStyle.Render("strata · records"), renderManifestTable(manifest))

	return nil
}

// DisplaySnippet renders one stored snippet.
func (t *TUI) DisplaySnippet(ctx context.Context, entry m.ManifestEntry, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s\n%s\n", titleStyle.Render(entry.ID), strings.TrimRight(text, "\n"))

	return nil
}

// DisplayDiffs renders colored unified diffs.
func (t *TUI) DisplayDiffs(ctx context.Context, diffs []m.VariantDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, diff := range diffs {
		header := titleStyle.Render(diff.UnitID + "/" + diff.VariantID)
		if diff.Unchanged || diff.Diff == "" {
			t.printf("%s %s\n", header, mutedStyle.Render("unchanged"))
			continue
		}

		t.printf("%s\n%s\n", header, colorDiff(diff.Diff))
	}

	return nil
}

func colorDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = mutedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shardCount int
}

type upcomingMsg struct {
	count int
}

type startedMsg struct {
	path     string
	workerID int
}

type completedMsg struct {
	path     string
	records  int
	failures []string
}

type summaryMsg struct {
	line string
}

// progressModel is the Bubble Tea model of a generation run.
type progressModel struct {
	spinner   spinner.Model
	progress  progress.Model
	threads   int
	shard     string
	total     int
	completed int
	records   int
	active    map[int]string
	failures  []string
	summary   string
}

func newProgressModel() progressModel {
	return progressModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		active:   make(map[int]string),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.progress.Width = max(min(msg.Width-4, maxProgressWidth), 10)

		return pm, nil

	case concurrencyMsg:
		pm.threads = msg.threads
		if msg.shardCount > 1 {
			pm.shard = fmt.Sprintf("shard %d/%d", msg.shardIndex, msg.shardCount)
		}

		return pm, nil

	case upcomingMsg:
		pm.total = msg.count

		return pm, nil

	case startedMsg:
		pm.active[msg.workerID] = msg.path

		return pm, nil

	case completedMsg:
		pm.completed++
		pm.records += msg.records

		for id, path := range pm.active {
			if path == msg.path {
				delete(pm.active, id)
			}
		}

		pm.failures = append(pm.failures, msg.failures...)

		return pm, nil

	case summaryMsg:
		pm.summary = msg.line
		pm.active = map[int]string{}

		return pm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total == 0 {
		return 0
	}

	return float64(pm.completed) / float64(pm.total)
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("strata"))

	if pm.shard != "" {
		b.WriteString(mutedStyle.Render(" " + pm.shard))
	}

	b.WriteString("\n\n")

	if pm.summary == "" {
		fmt.Fprintf(&b, "%s %d/%d files · %d records · %d worker(s)\n", pm.spinner.View(), pm.completed, pm.total, pm.records, pm.threads)
	}

	b.WriteString(pm.progress.ViewAs(pm.percent()))
	b.WriteString("\n")

	workers := make([]int, 0, len(pm.active))
	for id := range pm.active {
		workers = append(workers, id)
	}

	sort.Ints(workers)

	for _, id := range workers {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  [%d] %s", id, pm.active[id])))
		b.WriteString("\n")
	}

	for _, failure := range pm.failures {
		b.WriteString(failureStyle.Render("  " + failure))
		b.WriteString("\n")
	}

	if pm.summary != "" {
		b.WriteString("\n")
		b.WriteString(pm.summary)
		b.WriteString("\n")
	}

	return b.String()
}
