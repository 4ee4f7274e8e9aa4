package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"congruence-pkg/arithmetic"
	env "congruence-pkg/config"
	"congruence-pkg/congruence"
	"congruence-pkg/filer"
	"congruence-pkg/parser"
	"congruence-pkg/prompt"
	"congruence-pkg/report"
)

const envPrefix = "CONGRUENCE"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run 終了コードを返す。解なしも正常終了として扱う。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("congruence", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		aFlag     = flags.StringP("a", "a", "", "A in Ax ≡ B (mod C); prompted when omitted")
		bFlag     = flags.StringP("b", "b", "", "B in Ax ≡ B (mod C); prompted when omitted")
		cFlag     = flags.StringP("c", "c", "", "C in Ax ≡ B (mod C); prompted when omitted")
		configDir = flags.String("config-dir", "", "Directory holding <APP_ENV>.yaml (default configs/congruence)")
	)
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", formatText, "Log format (text or json)")
	flags.Uint("prompt-max-tries", 3, "Attempts per prompted value before giving up")
	flags.StringP("output-format", "f", formatText, "Report format (text or json)")
	flags.StringP("output-file", "o", "", "Also save the JSON report to this file")
	flags.Int("output-max-listed", 16, "List at most this many solutions in [0, C)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var cfg Config
	if err := env.Read(&cfg, env.Options{
		DirPath:   *configDir,
		EnvPrefix: envPrefix,
		Defaults:  defaults(),
		Flags:     flags,
	}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := setupLogger(stderr, cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	runID := uuid.New().String()
	logger := logrus.WithFields(logrus.Fields{
		"app":    "congruence",
		"run_id": runID,
	})

	if cfg.Output.Format != formatText && cfg.Output.Format != formatJSON {
		fmt.Fprintf(stderr, "Error: output.format must be %s or %s, got %q\n", formatText, formatJSON, cfg.Output.Format)
		return 1
	}

	// JSON 出力時は標準出力を結果だけにする
	textOut := cfg.Output.Format == formatText
	promptOut := stderr
	if textOut {
		promptOut = stdout
		fmt.Fprintln(stdout, report.Banner)
	}

	in := prompt.NewReader(stdin, promptOut, cfg.Prompt.MaxTries)
	values := make([]*big.Int, 3)
	for i, f := range []struct {
		label string
		value string
		set   bool
	}{
		{"A", *aFlag, flags.Changed("a")},
		{"B", *bFlag, flags.Changed("b")},
		{"C", *cFlag, flags.Changed("c")},
	} {
		v, err := inputValue(ctx, in, f.label, f.value, f.set)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		values[i] = v
	}
	a, b, c := values[0], values[1], values[2]

	logger.WithFields(logrus.Fields{
		"a": a.String(),
		"b": b.String(),
		"c": c.String(),
	}).Info("resolving")

	res, err := congruence.Resolve(a, b, c)
	if err != nil {
		logger.WithError(err).Error("resolve failed")
		fmt.Fprintf(stderr, "Error: %s\n", explain(err))
		return 1
	}

	if res.Kind == congruence.Unique && !congruence.Satisfies(a, b, c, res.Residue) {
		fmt.Fprintf(stderr, "Error: residue %s does not satisfy %s\n", res.Residue, report.FormatCongruence(a, b, c))
		return 1
	}

	opts := report.Options{MaxListed: cfg.Output.MaxListed}
	doc := report.NewDocument(runID, res, opts)

	if textOut {
		err = report.Text(stdout, res, opts)
	} else {
		err = report.JSON(stdout, &parser.JSONParser{Indent: "  "}, doc)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Output.File != "" {
		if err := filer.NewJsonFiler(nil).Save(cfg.Output.File, doc); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		logger.WithField("file", cfg.Output.File).Info("report saved")
	}

	return 0
}

// inputValue フラグで与えられていればそれを、なければ対話的に読み込む
func inputValue(ctx context.Context, in *prompt.Reader, label, value string, set bool) (*big.Int, error) {
	if !set {
		return in.Int(ctx, label)
	}
	v, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, errors.Wrapf(prompt.ErrInvalidInput, "-%s %q is not an integer", strings.ToLower(label), value)
	}
	return v, nil
}

// explain 致命的なエラーを利用者向けの文に変換する
func explain(err error) string {
	switch {
	case errors.Is(err, congruence.ErrInvalidModulus):
		return "This congruence cannot be solved as the base is zero."
	case errors.Is(err, arithmetic.ErrDegenerateChain):
		return fmt.Sprintf("Failed to get equation into Bezout identity form: %v", err)
	default:
		return err.Error()
	}
}

func setupLogger(w io.Writer, cfg Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log.level")
	}
	logrus.SetLevel(level)
	logrus.SetOutput(w)

	switch cfg.Log.Format {
	case formatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case formatText, "":
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	default:
		return errors.Newf("log.format must be %s or %s, got %q", formatText, formatJSON, cfg.Log.Format)
	}
	return nil
}
