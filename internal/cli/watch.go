package cli

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/pattern"
	"github.com/tessella/tessella/pkg/render"
)

// watchOpts holds the command-line flags for the watch command.
type watchOpts struct {
	width    int
	height   int
	seed     int64
	seedSet  bool
	interval int  // refresh interval in milliseconds
	chaos    bool // vary density and interval over time
	poemDir  string
	chars    int // glyph count for the working palette
}

// newWatchCmd creates the watch command, which animates regenerating
// patterns in the terminal.
func newWatchCmd() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate patterns in the terminal",
		Long: `Watch redraws a dense random pattern on a fixed interval, picking a new
wallpaper group each frame. With --chaos the glyph density and refresh
interval drift along sine waves that grow more erratic over time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("width") && cfg.Width > 0 {
				opts.width = cfg.Width
			}
			if !cmd.Flags().Changed("height") && cfg.Height > 0 {
				opts.height = cfg.Height
			}
			if !cmd.Flags().Changed("poem-dir") && cfg.PoemDir != "" {
				opts.poemDir = cfg.PoemDir
			}
			return runWatch(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 80, "pattern width in characters")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 40, "pattern height in characters")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().IntVarP(&opts.interval, "interval", "i", 100, "refresh interval in milliseconds")
	cmd.Flags().BoolVar(&opts.chaos, "chaos", false, "vary density and interval over time")
	cmd.Flags().IntVarP(&opts.chars, "chars", "D", 200, "glyph count for the palette")
	cmd.Flags().StringVar(&opts.poemDir, "poem-dir", "", "directory of poem_*.txt corpus files")

	return cmd
}

// chaos waveform bounds, in glyph count and seconds.
const (
	chaosMinChars    = 5
	chaosMaxChars    = 1500
	chaosMinInterval = 0.015
	chaosMaxInterval = 0.5
)

type tickMsg time.Time

// watchModel is the bubbletea model for the pattern animation.
type watchModel struct {
	p        *pattern.Pattern
	corpus   []string
	interval time.Duration
	chaos    bool

	// chaos state
	phase       float64
	chaosFactor float64
	chars       int
}

func newWatchModel(opts *watchOpts) watchModel {
	popts := []pattern.Option{pattern.WithMode(pattern.ModeDenseRandom)}
	if opts.seedSet {
		popts = append(popts, pattern.WithSeed(opts.seed))
	}
	p := pattern.New(opts.width, opts.height, popts...)
	p.SetPaletteSize(opts.chars)
	p.SetDensity(float64(opts.chars) / float64(p.Width()*p.Height()))

	interval := time.Duration(opts.interval) * time.Millisecond
	if opts.chaos {
		interval = 200 * time.Millisecond
	}

	return watchModel{
		p:        p,
		corpus:   corpusLines(opts.poemDir),
		interval: interval,
		chaos:    opts.chaos,
		chars:    opts.chars,
	}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.chaos {
			m.advanceChaos()
		}
		m.p.RandomGroup()
		m.p.Generate(nil, m.corpus)
		return m, m.tick()
	}
	return m, nil
}

// advanceChaos moves the sine-wave phase forward and updates the glyph count
// and refresh interval. The chaos factor ramps from calm to fully erratic.
func (m *watchModel) advanceChaos() {
	m.phase += 0.05
	m.chaosFactor = math.Min(1.0, m.chaosFactor+0.005)

	base := 750 + 745*math.Sin(m.phase)
	wave := 200 * math.Sin(m.phase*3.7) * m.chaosFactor
	m.chars = clampInt(int(base+wave), chaosMinChars, chaosMaxChars)

	baseInterval := 0.25 + 0.225*math.Sin(m.phase*0.7)
	intervalWave := 0.15 * math.Sin(m.phase*5.3) * m.chaosFactor
	seconds := math.Max(chaosMinInterval, math.Min(chaosMaxInterval, baseInterval+intervalWave))
	m.interval = time.Duration(seconds * float64(time.Second))

	m.p.SetPaletteSize(m.chars)
	m.p.SetDensity(float64(m.chars) / float64(m.p.Width()*m.p.Height()))
}

func (m watchModel) View() string {
	var header string
	if m.chaos {
		header = StyleTitle.Render("CHAOS MODE!") + " " + StyleDim.Render(fmt.Sprintf(
			"Density: %d, Refresh: %dms, Group: ", m.chars, m.interval.Milliseconds())) +
			StyleHighlight.Render(string(m.p.Group()))
	} else {
		header = StyleDim.Render("Wallpaper Group: ") + StyleHighlight.Render(string(m.p.Group()))
	}
	footer := StyleDim.Render("q to quit")
	return header + "\n" + render.Text(m.p.Rows()) + "\n" + footer
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runWatch runs the bubbletea animation until the user quits.
func runWatch(opts *watchOpts) error {
	prog := tea.NewProgram(newWatchModel(opts), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
