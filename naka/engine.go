package naka

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultSourceName labels input that does not come from a file.
const DefaultSourceName = "<stdin>"

// Config controls how an Engine labels and traces its work.
type Config struct {
	// SourceName is reported in diagnostics. Defaults to DefaultSourceName.
	SourceName string
	// Logger receives debug and trace output. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Engine runs the lex, parse and evaluate pipeline. It holds no per-run
// state and may be shared between goroutines.
type Engine struct {
	config Config
	log    logrus.FieldLogger
}

// NewEngine constructs an Engine, filling in defaults for unset fields.
func NewEngine(cfg Config) *Engine {
	if cfg.SourceName == "" {
		cfg.SourceName = DefaultSourceName
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	return &Engine{config: cfg, log: cfg.Logger}
}

// SourceName returns the label used in diagnostics.
func (e *Engine) SourceName() string {
	return e.config.SourceName
}

// Script is a compiled expression ready for evaluation.
type Script struct {
	source string
	tokens []Token
	root   Node
	log    logrus.FieldLogger
}

// Source returns the text the script was compiled from.
func (s *Script) Source() string { return s.source }

// Tokens returns the token sequence, ending with EOF.
func (s *Script) Tokens() []Token { return s.tokens }

// Root returns the expression tree.
func (s *Script) Root() Node { return s.root }

// Eval evaluates the compiled expression.
func (s *Script) Eval() (Number, error) {
	started := time.Now()
	value, err := Evaluate(s.root)
	entry := s.log.WithField("elapsed", time.Since(started))
	if err != nil {
		entry.WithError(err).Debug("evaluation failed")
		return Number{}, err
	}
	entry.WithField("value", value.String()).Debug("evaluated")
	return value, nil
}

func (e *Engine) runLogger() logrus.FieldLogger {
	return e.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"source": e.config.SourceName,
	})
}

// Tokenize lexes text using the engine's source name.
func (e *Engine) Tokenize(text string) ([]Token, error) {
	return e.tokenize(e.runLogger(), text)
}

func (e *Engine) tokenize(log logrus.FieldLogger, text string) ([]Token, error) {
	started := time.Now()
	tokens, err := Tokenize(e.config.SourceName, text)
	if err != nil {
		log.WithError(err).Debug("tokenize failed")
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"tokens":  len(tokens),
		"elapsed": time.Since(started),
	}).Debug("tokenized")
	return tokens, nil
}

// Compile lexes and parses text.
func (e *Engine) Compile(text string) (*Script, error) {
	log := e.runLogger()

	tokens, err := e.tokenize(log, text)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result := parseTokens(tokens, log)
	if !result.Ok() {
		log.WithError(result.Err).Debug("parse failed")
		return nil, result.Err
	}
	log.WithFields(logrus.Fields{
		"tree":    result.Node.String(),
		"elapsed": time.Since(started),
	}).Debug("parsed")

	return &Script{source: text, tokens: tokens, root: result.Node, log: log}, nil
}

// Eval compiles and evaluates text in one step.
func (e *Engine) Eval(text string) (Number, error) {
	script, err := e.Compile(text)
	if err != nil {
		return Number{}, err
	}
	return script.Eval()
}
