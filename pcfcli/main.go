package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pcfont"
	"github.com/npillmayer/pcfont/pcf"
	"github.com/npillmayer/pcfont/pcfrender"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pcfont'
func tracer() tracing.Trace {
	return tracing.Select("pcfont")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.pcfont":     "Info",
		"trace.font.pcf":   "Info",
		"trace.pcf.render": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "PCF font file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the PCF font CLI")
	//
	// set up REPL
	repl, err := readline.New("pcf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *pcfont.BitmapFont
	style *pcfrender.TextStyle
	repl  *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s, %d glyphs )", intp.font.Fontname, intp.font.PCF.GlyphCount())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	INFO
	METRICS
	GLYPH
	RENDER
	MEASURE
	DEFAULT
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"info":    INFO,
	"metrics": METRICS,
	"glyph":   GLYPH,
	"render":  RENDER,
	"measure": MEASURE,
	"default": DEFAULT,
}

var opNames = []string{
	"quit",
	"help",
	"info",
	"metrics",
	"glyph",
	"render",
	"measure",
	"default",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "glyph:A" or "render:hello" or "metrics:0x41"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		if command.op[i].arg == "" {
			tracer().Infof("%s", opNames[command.op[i].code])
		} else {
			tracer().Infof("%s: looking for '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	INFO:    infoOp,
	METRICS: metricsOp,
	GLYPH:   glyphOp,
	RENDER:  renderOp,
	MEASURE: measureOp,
	DEFAULT: defaultOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func helpOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println(`Commands:
  info             show global font information
  metrics:<char>   show the metrics of a character ('A' or 0x41)
  glyph:<char>     draw a single glyph bitmap
  render:<text>    draw a line of text
  measure:<text>   measure a line of text without drawing it
  default:<char>   override the font's default character
  quit             exit (or <ctrl>D)`)
	return nil, false
}

// --- Font loading ------------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	intp.font, err = pcfont.LoadBitmapFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.style = pcfrender.NewTextStyle(intp.font.PCF)
	intp.style.SetTextColor(color.White)
	pterm.Printf("loaded PCF font %s with %d glyphs\n", intp.font.Fontname, intp.font.PCF.GlyphCount())
	return nil
}

// --- Commands ----------------------------------------------------------

func infoOp(intp *Intp, op *Op) (error, bool) {
	font := intp.font.PCF
	info := pcfont.FontMetrics(intp.font)
	bbox := font.BoundingBox()
	pterm.Printf("font         %s\n", intp.font.Fontname)
	pterm.Printf("glyphs       %d\n", font.GlyphCount())
	pterm.Printf("ascent       %d\n", info.Ascent)
	pterm.Printf("descent      %d\n", info.Descent)
	pterm.Printf("line height  %d\n", info.LineHeight)
	pterm.Printf("bounding box %dx%d at (%d,%d)\n", bbox.Width, bbox.Height, bbox.XOffset, bbox.YOffset)
	pterm.Printf("row padding  %s\n", font.RowPadding())
	pterm.Printf("metrics      compressed=%v\n", font.MetricsCompressed())
	pterm.Printf("default char %#x\n", font.DefaultChar())
	return nil, false
}

func metricsOp(intp *Intp, op *Op) (error, bool) {
	cp, err := op.codePoint()
	if err != nil {
		return err, false
	}
	metrics, err := intp.font.PCF.GlyphMetrics(cp)
	if err != nil {
		return err, false
	}
	pterm.Printf("code point     %#x\n", cp)
	pterm.Printf("advance        %d\n", metrics.CharacterWidth)
	pterm.Printf("bearings       L=%d R=%d\n", metrics.LeftSideBearing, metrics.RightSideBearing)
	pterm.Printf("ascent/descent %d/%d\n", metrics.CharacterAscent, metrics.CharacterDescent)
	pterm.Printf("ink size       %dx%d\n", metrics.GlyphWidth(), metrics.GlyphHeight())
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	cp, err := op.codePoint()
	if err != nil {
		return err, false
	}
	font := intp.font.PCF
	buf := make([]byte, font.MaxBytesPerGlyph())
	length, metrics, err := font.ReadGlyph(cp, buf)
	if err != nil {
		return err, false
	}
	width, height := metrics.GlyphWidth(), metrics.GlyphHeight()
	if length == 0 {
		pterm.Printf("glyph %#x is blank, advance %d\n", cp, metrics.CharacterWidth)
		return nil, false
	}
	rowBytes := length / height
	for y := 0; y < height; y++ {
		row := buf[y*rowBytes : (y+1)*rowBytes]
		sb := strings.Builder{}
		for x := 0; x < width; x++ {
			if row[x/8]&(0x80>>(x%8)) != 0 {
				sb.WriteRune('█')
			} else {
				sb.WriteRune('·')
			}
		}
		pterm.Println(sb.String())
	}
	return nil, false
}

func renderOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("render needs a text argument"), false
	}
	tm := intp.style.MeasureString(text, image.Pt(0, 0), pcfrender.BaselineTop)
	if tm.BoundingBox.Empty() {
		pterm.Println("(nothing to render)")
		return nil, false
	}
	img := image.NewRGBA(tm.BoundingBox)
	surface := pcfrender.NewImageSurface(img)
	if _, err := intp.style.DrawString(text, image.Pt(0, 0), pcfrender.BaselineTop, surface); err != nil {
		return err, false
	}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		sb := strings.Builder{}
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				sb.WriteRune('█')
			} else {
				sb.WriteRune('·')
			}
		}
		pterm.Println(sb.String())
	}
	return nil, false
}

func measureOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("measure needs a text argument"), false
	}
	tm := intp.style.MeasureString(text, image.Pt(0, 0), pcfrender.BaselineAlphabetic)
	pterm.Printf("width         %d\n", tm.BoundingBox.Dx())
	pterm.Printf("height        %d\n", tm.BoundingBox.Dy())
	pterm.Printf("next position %v\n", tm.NextPosition)
	return nil, false
}

func defaultOp(intp *Intp, op *Op) (error, bool) {
	cp, err := op.codePoint()
	if err != nil {
		return err, false
	}
	if !pcfont.HasGlyph(intp.font, cp) {
		pterm.Printf("warning: font has no glyph for %#x\n", cp)
	}
	intp.font.PCF.OverrideDefaultChar(cp)
	pterm.Printf("default char is now %#x\n", cp)
	return nil, false
}

// ----------------------------------------------------------------------

// codePoint interprets a command argument as a character: either a single
// rune or a number like 0x41.
func (op *Op) codePoint() (uint16, error) {
	arg, ok := op.hasArg()
	if !ok {
		return 0, fmt.Errorf("%s needs a character argument", opNames[op.code])
	}
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		cp, ok := pcf.UnicodeMapper{}.CodePoint(r)
		if !ok {
			return 0, fmt.Errorf("character %#U is outside the basic plane", r)
		}
		return cp, nil
	}
	n, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("cannot read '%s' as a character", arg)
	}
	return uint16(n), nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
