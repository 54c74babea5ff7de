package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/calcunits/internal/calculator"
	"github.com/GriffinCanCode/calcunits/internal/catalog"
	"github.com/GriffinCanCode/calcunits/internal/client"
	"github.com/GriffinCanCode/calcunits/internal/logging"
	"github.com/GriffinCanCode/calcunits/internal/numeric"
	"github.com/GriffinCanCode/calcunits/internal/units"
)

const usage = `usage: unitconv [-server URL] [-timeout D] [-v] <command> [args]

commands:
  convert VALUE FROM TO          convert between units of one category
  calc OP X Y [Z]                OP is add, subtract, multiply, divide, power or metrics
  units [-format F] [-category C] list units (json, yaml or toml)
`

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	out    io.Writer
	log    *logging.Logger
	remote *client.Client
	ctx    context.Context
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("unitconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	serverURL := fs.String("server", "", "Run operations on a calcunits server instead of locally")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout for -server")
	verbose := fs.Bool("v", false, "Verbose logging to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log := logging.NewNop()
	if *verbose {
		log = logging.NewDevelopment()
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	a := &app{out: stdout, log: log, ctx: ctx}
	if *serverURL != "" {
		cfg := client.DefaultConfig(*serverURL)
		cfg.Timeout = *timeout
		cfg.Logger = log.Component("client")
		a.remote = client.New(cfg)
		log.Debug("using remote server", zap.String("url", *serverURL))
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	var err error
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "convert":
		err = a.convert(cmdArgs)
	case "calc":
		err = a.calc(cmdArgs)
	case "units":
		err = a.units(cmdArgs, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		err = usageErrorf("unknown command %q", cmd)
	}

	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, usage)
		return exitUsage
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// parseOperand keeps the literal words true and false as booleans and
// anything non-numeric as a string, so the numeric policy rejects them.
func parseOperand(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (a *app) convert(args []string) error {
	if len(args) != 3 {
		return usageErrorf("convert takes VALUE FROM TO")
	}
	value, from, to := parseOperand(args[0]), args[1], args[2]
	a.log.Debug("convert", zap.Any("value", value), zap.String("from", from), zap.String("to", to))

	if a.remote != nil {
		if v, ok := value.(float64); ok {
			resp, err := a.remote.Convert(a.ctx, v, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %s\n", formatFloat(resp.Result), resp.To)
			return nil
		}
		// Non-numeric values go through the tool so the server reports them
		result, err := a.remote.Execute(a.ctx, "math.convert", map[string]interface{}{"value": value, "from": from, "to": to})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%v %v\n", result.Data["result"], result.Data["to"])
		return nil
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		return err
	}
	dst, _ := units.Lookup(to)
	fmt.Fprintf(a.out, "%s %s\n", formatFloat(result), dst.Code)
	return nil
}

var binaryOps = map[string]func(x, y any) (float64, error){
	"add":      calculator.Add,
	"subtract": calculator.Subtract,
	"multiply": calculator.Multiply,
	"divide":   calculator.SafeDivide,
	"power":    calculator.Power,
}

func (a *app) calc(args []string) error {
	if len(args) == 0 {
		return usageErrorf("calc takes OP X Y [Z]")
	}
	op := strings.ToLower(args[0])
	operands := make([]any, 0, len(args)-1)
	for _, s := range args[1:] {
		operands = append(operands, parseOperand(s))
	}

	want := 2
	if op == "metrics" {
		want = 3
	} else if _, ok := binaryOps[op]; !ok {
		return usageErrorf("unknown operation %q", op)
	}
	if len(operands) != want {
		return usageErrorf("%s takes %d operands, got %d", op, want, len(operands))
	}
	a.log.Debug("calc", zap.String("op", op), zap.Any("operands", operands))

	if a.remote != nil {
		return a.calcRemote(op, operands)
	}

	if op == "metrics" {
		m, err := calculator.Metrics(operands[0], operands[1], operands[2])
		if err != nil {
			return err
		}
		printSummary(a.out, m)
		return nil
	}
	result, err := binaryOps[op](operands[0], operands[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatFloat(result))
	return nil
}

func (a *app) calcRemote(op string, operands []any) error {
	params := map[string]interface{}{"x": operands[0], "y": operands[1]}
	if len(operands) == 3 {
		params["z"] = operands[2]
	}

	result, err := a.remote.Execute(a.ctx, "math."+op, params)
	if err != nil {
		return err
	}

	if op == "metrics" {
		var m calculator.Summary
		for key, dst := range map[string]*float64{"sum": &m.Sum, "mean": &m.Mean, "min": &m.Min, "max": &m.Max, "range": &m.Range} {
			v, err := numeric.Float(result.Data[key])
			if err != nil {
				return fmt.Errorf("malformed %s in response: %w", key, err)
			}
			*dst = v
		}
		printSummary(a.out, m)
		return nil
	}

	v, err := numeric.Float(result.Data["result"])
	if err != nil {
		return fmt.Errorf("malformed result in response: %w", err)
	}
	fmt.Fprintln(a.out, formatFloat(v))
	return nil
}

func printSummary(w io.Writer, m calculator.Summary) {
	fmt.Fprintf(w, "sum=%s mean=%s min=%s max=%s range=%s\n",
		formatFloat(m.Sum), formatFloat(m.Mean), formatFloat(m.Min), formatFloat(m.Max), formatFloat(m.Range))
}

func (a *app) units(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", "json", "Output format: json, yaml or toml")
	category := fs.String("category", "", "Only list one category")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageErrorf("%v", err)
	}
	if fs.NArg() > 0 {
		return usageErrorf("units takes no positional arguments")
	}

	format, err := catalog.ParseFormat(*formatFlag)
	if err != nil {
		return usageErrorf("%v", err)
	}

	if a.remote != nil {
		data, err := a.remote.UnitsRaw(a.ctx, *category, format)
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		if err == nil && (len(data) == 0 || data[len(data)-1] != '\n') {
			_, err = io.WriteString(a.out, "\n")
		}
		return err
	}

	cat, err := catalog.Build(units.Category(*category))
	if err != nil {
		return err
	}
	return cat.Encode(a.out, format)
}
