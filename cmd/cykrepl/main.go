package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/npillmayer/gocyk/chart"
	"github.com/npillmayer/gocyk/cyk"
	"github.com/npillmayer/gocyk/grammar"
)

// tracers of this module; their levels are set by flag -trace
var tracerKeys = []string{"root", "gocyk.grammar", "gocyk.chart", "gocyk.cyk", "gocyk.repl"}

// command line flags which map to configuration keys
var configFlags = map[string]string{
	"start":   "cyk.start",
	"strict":  "cyk.strict",
	"epsilon": "cyk.epsilon",
	"max":     "cyk.max-input",
	"expand":  "cyk.expand-spans",
}

// main() starts an interactive CLI ("CYK.REPL"), where users may enter input
// strings to test against a grammar. The grammar is loaded from a rule file
// at start-up.
//
// Please refer to packages "grammar" and "cyk".
//
func main() {
	initDisplay()
	gfile := flag.String("grammar", "CFG.txt", "Grammar rule file")
	cfile := flag.String("config", "", "Configuration file (NestedText)")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	showTable := flag.Bool("table", false, "Display CYK chart for every input")
	htmlFile := flag.String("html", "", "Export CYK chart of the last input to HTML file")
	flag.String("start", "", "Start symbol (default: first left hand side)")
	flag.Bool("strict", false, "Report malformed rules as errors instead of skipping them")
	flag.String("epsilon", grammar.Epsilon, "Marker for empty right hand sides")
	flag.Int("max", 0, "Maximum input length (0 = unlimited)")
	flag.Bool("expand", false, "Close cells of all span lengths under unit productions")
	flag.Parse()
	if err := initConfig(*cfile, *tlevel); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Welcome to CYK.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load the grammar; without a grammar there is nothing to do
	g, err := grammar.LoadFile(*gfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g.Dump() // only visible in debug mode
	pterm.Info.Println(fmt.Sprintf("Grammar %s: %d rules, start symbol %s",
		g.Name, g.Size(), g.Start()))
	tracer().Debugf("grammar fingerprint is %s", g.Fingerprint())
	intp := &Intp{
		recognizer: cyk.NewRecognizer(g),
		showTable:  *showTable,
		htmlFile:   *htmlFile,
	}
	//
	// inputs from the command line are tested once
	if flag.NArg() > 0 {
		input := strings.Join(flag.Args(), " ")
		accepted, err := intp.Recognize(input)
		if err != nil {
			os.Exit(2)
		}
		if !accepted {
			os.Exit(1)
		}
		os.Exit(0)
	}
	//
	// set up REPL
	repl, err := readline.New("cyk> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  Accepted",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Rejected",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// initConfig sets up the global configuration and tracing. Configuration
// values are taken from, in ascending priority: defaults, the configuration
// file, and command line flags set by the user.
func initConfig(configFile string, tlevel string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	k := koanf.New(".")
	conf := koanfadapter.New(k, "", nil)
	gconf.Initialize(conf) // will set "tracing.adapter" to "go"
	defaults := map[string]interface{}{
		"cyk.epsilon": grammar.Epsilon,
	}
	for _, key := range tracerKeys {
		defaults["tracelevel."+key] = tlevel
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), koanfadapter.Parser()); err != nil {
			return errors.Wrapf(err, "cannot load configuration %s", configFile)
		}
	}
	flags := make(map[string]interface{})
	flag.Visit(func(f *flag.Flag) {
		if key, ok := configFlags[f.Name]; ok {
			flags[key] = f.Value.(flag.Getter).Get()
		} else if f.Name == "trace" {
			for _, key := range tracerKeys {
				flags["tracelevel."+key] = tlevel
			}
		}
	})
	if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
		return err
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// Intp is our interpreter object
type Intp struct {
	recognizer *cyk.Recognizer
	repl       *readline.Instance
	showTable  bool
	htmlFile   string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(line); quit {
				break
			}
			continue
		}
		if line == `""` {
			line = ""
		}
		intp.Recognize(line)
	}
	println("Good bye!")
}

// Execute executes a REPL command. It returns true if the user wants to quit.
func (intp *Intp) Execute(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":grammar", ":g":
		intp.printGrammar()
	case ":table", ":t":
		intp.showTable = !intp.showTable
		pterm.Info.Println(fmt.Sprintf("Display of CYK chart is %s", onOff(intp.showTable)))
	default:
		pterm.Error.Println(fmt.Sprintf("Unknown command %s; known commands are :grammar, :table, :quit", cmd))
	}
	return false
}

// Recognize tests an input against the grammar and prints the verdict.
func (intp *Intp) Recognize(input string) (bool, error) {
	accepted, C, err := intp.recognizer.Recognize(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if C != nil {
		C.Dump() // only visible in debug mode
		if intp.showTable {
			C.Render(os.Stdout)
		}
		intp.exportHTML(C)
	}
	if accepted {
		pterm.Success.Println(fmt.Sprintf("Accepted: %v", accepted))
	} else {
		pterm.Warning.Println(fmt.Sprintf("Accepted: %v", accepted))
	}
	return accepted, nil
}

func (intp *Intp) exportHTML(C *chart.Chart) {
	if intp.htmlFile == "" {
		return
	}
	f, err := os.Create(intp.htmlFile)
	if err != nil {
		tracer().Errorf("cannot export chart: %v", err)
		return
	}
	defer f.Close()
	C.AsHTML(f)
	tracer().Infof("exported chart to %s", intp.htmlFile)
}

// printGrammar displays the rules of the grammar as a tree: left hand sides
// on the first level, right hand sides on the second.
func (intp *Intp) printGrammar() {
	g := intp.recognizer.Grammar()
	pterm.Println(fmt.Sprintf("%s (start symbol %s)", g.Name, g.Start()))
	root := pterm.NewTreeFromLeveledList(leveledRules(g))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledRules(g *grammar.Grammar) pterm.LeveledList {
	ll := pterm.LeveledList{}
	byLHS := make(map[grammar.Symbol][]*grammar.Rule)
	var order []grammar.Symbol
	for _, r := range g.Rules() {
		if _, ok := byLHS[r.LHS]; !ok {
			order = append(order, r.LHS)
		}
		byLHS[r.LHS] = append(byLHS[r.LHS], r)
	}
	for _, A := range order {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: string(A)})
		for _, r := range byLHS[A] {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: r.String()})
		}
	}
	return ll
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
