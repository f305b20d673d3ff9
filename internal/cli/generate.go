package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/errors"
	"github.com/tessella/tessella/pkg/pattern"
	"github.com/tessella/tessella/pkg/poems"
	"github.com/tessella/tessella/pkg/render"
)

const (
	formatText = "txt"
	formatHTML = "html"

	modeSymmetric = "symmetric"
	modeDense     = "dense"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width      int     // canvas width in characters
	height     int     // canvas height in characters
	seed       int64   // RNG seed (time-based when unset)
	seedSet    bool    // whether --seed was passed explicitly
	group      string  // wallpaper group name ("" picks one at random)
	mode       string  // "symmetric" or "dense"
	density    float64 // stamp density multiplier for dense mode
	output     string  // output file path ("" writes to stdout)
	format     string  // "txt" or "html"
	poemFile   string  // poem file to embed
	poemDir    string  // directory of poem_*.txt corpus files
	background string  // HTML background: "white" or "black"
	plain      bool    // strip overlay markers from text output
}

// newGenerateCmd creates the generate command, which rasterizes a single
// pattern and writes it as text or HTML.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a wallpaper pattern",
		Long: `Generate rasterizes one wallpaper-group pattern and writes it to stdout
or a file. The same width, height, seed and group always reproduce the
same output byte for byte.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			applyConfig(configFromContext(cmd.Context()), cmd, &opts)
			if err := validateGenerateOpts(&opts); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 80, "pattern width in characters")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 40, "pattern height in characters")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "random seed (default: current time)")
	cmd.Flags().StringVarP(&opts.group, "group", "g", "", "wallpaper group (default: random)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", modeSymmetric, "draw mode: symmetric, dense")
	cmd.Flags().Float64VarP(&opts.density, "density", "D", 1.0, "stamp density for dense mode")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: txt, html")
	cmd.Flags().StringVar(&opts.poemFile, "poem", "", "text file with poem lines to embed")
	cmd.Flags().StringVar(&opts.poemDir, "poem-dir", "", "directory of poem_*.txt corpus files")
	cmd.Flags().StringVarP(&opts.background, "background", "b", "white", "HTML background: white, black")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "strip poem markers from text output")

	return cmd
}

// applyConfig fills flag values the user did not pass from the loaded config.
func applyConfig(cfg Config, cmd *cobra.Command, opts *generateOpts) {
	if !cmd.Flags().Changed("width") && cfg.Width > 0 {
		opts.width = cfg.Width
	}
	if !cmd.Flags().Changed("height") && cfg.Height > 0 {
		opts.height = cfg.Height
	}
	if !cmd.Flags().Changed("density") && cfg.Density > 0 {
		opts.density = cfg.Density
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}
	if !cmd.Flags().Changed("poem-dir") && cfg.PoemDir != "" {
		opts.poemDir = cfg.PoemDir
	}
}

// validateGenerateOpts checks flag values that the engine would otherwise
// silently clamp or ignore.
func validateGenerateOpts(opts *generateOpts) error {
	if opts.width < 1 || opts.height < 1 {
		return errors.New(errors.ErrCodeInvalidSize, "size %dx%d: width and height must be at least 1", opts.width, opts.height)
	}
	if opts.format != formatText && opts.format != formatHTML {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be 'txt' or 'html')", opts.format)
	}
	if opts.mode != modeSymmetric && opts.mode != modeDense {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode %q (must be 'symmetric' or 'dense')", opts.mode)
	}
	if opts.background != "white" && opts.background != "black" {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid background %q (must be 'white' or 'black')", opts.background)
	}
	return nil
}

// buildPattern constructs a pattern from the resolved options.
func buildPattern(opts *generateOpts) (*pattern.Pattern, error) {
	popts := []pattern.Option{pattern.WithDensity(opts.density)}
	if opts.seedSet {
		popts = append(popts, pattern.WithSeed(opts.seed))
	}
	if opts.mode == modeDense {
		popts = append(popts, pattern.WithMode(pattern.ModeDenseRandom))
	}
	if opts.group != "" {
		g, err := pattern.ParseGroup(opts.group)
		if err != nil {
			return nil, err
		}
		popts = append(popts, pattern.WithGroup(g))
	}
	return pattern.New(opts.width, opts.height, popts...), nil
}

// runGenerate rasterizes the pattern, embeds poem lines, and writes the
// rendered output.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := buildPattern(opts)
	if err != nil {
		return err
	}
	logger.Debugf("pattern %dx%d group=%s seed=%d mode=%s", p.Width(), p.Height(), p.Group(), p.Seed(), opts.mode)

	lines, err := poemLines(opts.poemFile)
	if err != nil {
		return err
	}
	p.Generate(lines, corpusLines(opts.poemDir))
	prog.done(fmt.Sprintf("generated %s pattern", p.Group()))

	out, err := renderOutput(p, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess("Pattern saved")
	printFile(opts.output)
	printKeyValue("Group", string(p.Group()))
	printKeyValue("Seed", fmt.Sprintf("%d", p.Seed()))
	return nil
}

// poemLines loads explicit poem lines when --poem was passed.
func poemLines(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	return poems.LoadFile(path)
}

// corpusLines loads the fallback corpus. Only consulted when no explicit
// poem lines were provided.
func corpusLines(dir string) []string {
	if dir == "" {
		return poems.DefaultLines
	}
	return poems.Corpus(dir)
}

// renderOutput renders the drawn pattern in the requested format.
func renderOutput(p *pattern.Pattern, opts *generateOpts) (string, error) {
	rows := p.Rows()
	switch opts.format {
	case formatHTML:
		hopts := []render.HTMLOption{render.WithHTMLTitle(fmt.Sprintf("tessella %s", p.Group()))}
		if opts.background == "black" {
			hopts = append(hopts, render.WithHTMLDark())
		}
		return render.HTML(rows, hopts...), nil
	case formatText:
		if opts.plain {
			return render.Plain(rows) + "\n", nil
		}
		return render.Text(rows) + "\n", nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", opts.format)
}
