package toolbeltapp

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fr3shw3b/toolbelt/pkg/config"
	"github.com/fr3shw3b/toolbelt/pkg/generator"
	"github.com/fr3shw3b/toolbelt/pkg/numbers"
	"github.com/fr3shw3b/toolbelt/pkg/validation"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// App backs the toolbelt subcommands, printing results to out.
type App struct {
	generator generator.Generator
	validator *validation.Validator
	out       io.Writer
	logger    *logrus.Logger
}

// InvalidInputError holds the validation messages for rejected arguments.
type InvalidInputError struct {
	Messages []string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + strings.Join(e.Messages, "; ")
}

type sequenceRequest struct {
	Size int `json:"size" validate:"gte=0,even"`
}

type intRequest struct {
	Min int64 `json:"min"`
	Max int64 `json:"max" validate:"gtfield=Min"`
}

type codeRequest struct {
	Size int `json:"size" validate:"gte=0"`
}

type numberRequest struct {
	Value string `json:"value" validate:"required"`
}

// New loads configuration from envFile and the environment. Logs go to
// stderr so that out only carries results.
func New(envFile string, out io.Writer) (*App, error) {
	conf, err := config.LoadFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(conf, out, newLogger(conf.LogLevel, os.Stderr))
}

func NewWithConfig(conf *config.Config, out io.Writer, logger *logrus.Logger) (*App, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	err = v.RegisterRule("even", "{0} must be a multiple of 2", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	})
	if err != nil {
		return nil, err
	}

	codeMaxRedraws := conf.CodeMaxRedraws
	gen := generator.NewDefaultGenerator(
		&generator.GeneratorParams{
			RSAModulusBits: conf.RSAModulusBits,
			CodeMaxRedraws: &codeMaxRedraws,
		},
		logger,
	)

	return &App{
		generator: gen,
		validator: v,
		out:       out,
		logger:    logger,
	}, nil
}

func newLogger(level string, out io.Writer) *logrus.Logger {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02T15:04:05.999999999Z07:00"
	customFormatter.FullTimestamp = true
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(customFormatter)
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func (a *App) check(ctx context.Context, request any) error {
	messages, err := a.validator.Validate(ctx, request)
	if err != nil {
		return err
	}
	if len(messages) > 0 {
		a.logger.WithField("messages", messages).Debug("rejected input")
		return &InvalidInputError{Messages: messages}
	}
	return nil
}

func (a *App) UUID() error {
	id, err := a.generator.UUID()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, id)
	return nil
}

func (a *App) Sequence(ctx context.Context, size int) error {
	if err := a.check(ctx, sequenceRequest{Size: size}); err != nil {
		return err
	}
	sequence, err := a.generator.Sequence(size)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, sequence)
	return nil
}

func (a *App) Int(ctx context.Context, min int64, max int64) error {
	if err := a.check(ctx, intRequest{Min: min, Max: max}); err != nil {
		return err
	}
	n, err := a.generator.Int(min, max)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, n)
	return nil
}

func (a *App) Code(ctx context.Context, size int) error {
	if err := a.check(ctx, codeRequest{Size: size}); err != nil {
		return err
	}
	code, err := a.generator.Code(size)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, code)
	return nil
}

func (a *App) RSA(passphrase string) error {
	pair, err := a.generator.RSA(passphrase)
	if err != nil {
		return err
	}
	fingerprint, err := pair.Fingerprint()
	if err != nil {
		return err
	}
	printKeyPair(a.out, pair, fingerprint)
	return nil
}

func (a *App) Number(ctx context.Context, value string) error {
	if err := a.check(ctx, numberRequest{Value: value}); err != nil {
		return err
	}
	n, err := numbers.ToNumber(value)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strconv.FormatFloat(*n, 'f', -1, 64))
	return nil
}

func printKeyPair(out io.Writer, pair generator.KeyPair, fingerprint string) {
	fmt.Fprint(out, pair.PublicKey)
	fmt.Fprint(out, pair.PrivateKey)
	fmt.Fprintf(out, "Fingerprint: %s\n", fingerprint)
}
