// Command glyphview renders images as Unicode block art in the
// terminal, one 4x8 pixel tile per character cell.
package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"glyphview"
	"glyphview/imageutil"
)

// sysexits-style exit codes.
const (
	exUsage   = 64
	exDataErr = 65
	exNoInput = 66
)

var opts struct {
	colors256  bool
	halfBlocks bool
	teletext   bool
	dirMode    bool
	fullMode   bool
	width      int
	height     int
	columns    int
	parallel   int
	fontPath   string
}

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "glyphview [flags] <image>...",
	Short: "Display images in the terminal using Unicode block glyphs",
	Long: `glyphview approximates images as colored Unicode block characters.
A single input is shown full size; multiple inputs or directories are
laid out as a thumbnail grid.`,
	Args: cobra.MinimumNArgs(1),
	Run:  run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&opts.colors256, "256", "2", false,
		"use 256-color indexed output instead of truecolor")
	f.BoolVarP(&opts.halfBlocks, "half-blocks", "0", false,
		"no glyph matching, always use the lower half block")
	f.BoolVarP(&opts.teletext, "teletext", "x", false,
		"also match legacy teletext sextant characters")
	f.BoolVarP(&opts.dirMode, "dir", "d", false,
		"force thumbnail grid mode")
	f.BoolVarP(&opts.fullMode, "full", "f", false,
		"force full-size mode")
	f.IntVarP(&opts.width, "width", "w", 0,
		"maximum output width in characters (default: terminal width)")
	f.IntVar(&opts.height, "height", 0,
		"maximum output height in lines (default: terminal height)")
	f.IntVarP(&opts.columns, "columns", "c", 3,
		"thumbnail columns in grid mode")
	f.IntVar(&opts.parallel, "parallel", 1,
		"tile classification goroutines")
	f.StringVar(&opts.fontPath, "font", "",
		"build the glyph table from this TTF font instead of the built-in table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exUsage)
	}
	os.Exit(exitCode)
}

func run(cmd *cobra.Command, args []string) {
	maxWidth, maxHeight := outputSizePixels()

	ropts := []glyphview.RendererOption{
		glyphview.WithParallelism(opts.parallel),
	}
	if opts.colors256 {
		ropts = append(ropts, glyphview.WithColors256())
	}
	if opts.halfBlocks {
		ropts = append(ropts, glyphview.WithHalfBlockOnly())
	}
	if opts.teletext {
		ropts = append(ropts, glyphview.WithTeletext())
	}
	if opts.fontPath != "" {
		table, err := glyphview.BuildGlyphTable(opts.fontPath, glyphview.BlockRunes())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = exNoInput
			return
		}
		ropts = append(ropts, glyphview.WithGlyphTable(table))
	}
	renderer := glyphview.NewRenderer(ropts...)

	files := expandArgs(args)
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no readable input files")
		if exitCode == 0 {
			exitCode = exNoInput
		}
		return
	}

	if opts.fullMode || (!opts.dirMode && len(files) == 1) {
		for _, name := range files {
			if err := renderFull(renderer, name, maxWidth, maxHeight); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = exDataErr
			}
		}
		return
	}
	renderThumbnails(renderer, files, maxWidth)
}

// outputSizePixels determines the pixel budget for the cell grid,
// from the terminal size unless -w/--height override it.
func outputSizePixels() (int, int) {
	cols, rows := 80, 24
	if opts.width == 0 || opts.height == 0 {
		tc, tr, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || tc == 0 || tr == 0 {
			fmt.Fprintln(os.Stderr,
				"Warning: could not detect terminal size, defaulting to 80x24")
		} else {
			cols, rows = tc, tr
		}
	}
	if opts.width > 0 {
		cols = opts.width
	}
	if opts.height > 0 {
		rows = opts.height
	}
	return cols * glyphview.CellWidth, rows * glyphview.CellHeight
}

// expandArgs turns the argument list into a flat list of image files,
// walking one level into directories like a shell glob would.
func expandArgs(args []string) []string {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", arg, err)
			exitCode = exNoInput
			continue
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read %q: %v\n", arg, err)
			exitCode = exNoInput
			continue
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	return files
}

// renderFull shows one image scaled down to fit the cell grid.
func renderFull(r *glyphview.Renderer, name string, maxWidth, maxHeight int) error {
	img, err := imageutil.LoadImage(name)
	if err != nil {
		return err
	}
	if img.Width() > maxWidth || img.Height() > maxHeight {
		fitted := resize.Thumbnail(uint(maxWidth), uint(maxHeight),
			img.RGBA, resize.Lanczos3)
		img = toRGBAImage(fitted)
	}
	return r.Render(img, os.Stdout)
}

// renderThumbnails lays the inputs out as rows of square thumbnails
// with a caption line of file names under each row.
func renderThumbnails(r *glyphview.Renderer, files []string, maxWidth int) {
	columns := opts.columns
	if columns < 1 {
		columns = 1
	}
	// Caption width per column in characters, and thumbnail box in
	// pixels; two characters of gutter between columns.
	cw := (maxWidth/glyphview.CellWidth - 2*(columns-1)) / columns
	if cw < 2 {
		cw = 2
	}
	tw := cw * glyphview.CellWidth

	canvas := imageutil.NewRGBAImage(tw*columns+2*glyphview.CellWidth*(columns-1), tw)

	index := 0
	for index < len(files) {
		clear(canvas.Pix)
		count := 0
		var captions strings.Builder
		for index < len(files) && count < columns {
			name := files[index]
			index++
			img, err := imageutil.LoadImage(name)
			if err != nil {
				// Probably not an image; skip it.
				continue
			}
			fitted := toRGBAImage(resize.Thumbnail(uint(tw), uint(tw),
				img.RGBA, resize.Lanczos3))
			canvas.DrawAt(fitted,
				count*(tw+2*glyphview.CellWidth)+(tw-fitted.Width())/2,
				(tw-fitted.Height())/2)
			count++

			captions.WriteString(filepath.Base(name))
			padTo(&captions, count*(cw+2))
		}
		if count > 0 {
			if err := r.Render(canvas, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = exDataErr
				return
			}
			fmt.Println(captions.String())
			fmt.Println()
		}
	}
}

// padTo pads or truncates the builder's content to width characters,
// leaving a two-space gutter at the end.
func padTo(sb *strings.Builder, width int) {
	s := sb.String()
	if len(s) > width-2 {
		s = s[:width-2]
	}
	s += strings.Repeat(" ", width-len(s))
	sb.Reset()
	sb.WriteString(s)
}

// toRGBAImage converts any image.Image (e.g. nfnt/resize output) back
// into the accessor type the renderer consumes.
func toRGBAImage(img image.Image) *imageutil.RGBAImage {
	if rgba, ok := img.(*imageutil.RGBAImage); ok {
		return rgba
	}
	return imageutil.RGBAImageFromImage(img)
}
