package guard

import (
	"log/slog"

	"github.com/guardkit/guardkit/pkg/sanitizer"
	"github.com/guardkit/guardkit/pkg/validator"
)

// MsgInputTooLarge is the verdict for raw input over the byte cap. It
// is distinct from the per-rule rejection reasons: the input is never
// inspected, only measured.
const MsgInputTooLarge = "Input is too large"

const defaultMaxInputBytes = 64 << 10

// Guard is the boundary a request handler calls before accepting any
// user-supplied text. It enforces the raw-size cap, preprocesses chat
// content, delegates to the validators and logs rejections.
type Guard struct {
	maxInputBytes int
	logRejections bool
	log           *slog.Logger
	preprocess    func(string) string
}

type Option func(*Guard)

// WithLogger sets a custom logger for rejection records.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.log = logger
	}
}

// WithMaxInputBytes overrides the raw-input size cap.
func WithMaxInputBytes(n int) Option {
	return func(g *Guard) {
		g.maxInputBytes = n
	}
}

// WithoutRejectionLogging disables the per-rejection debug records.
func WithoutRejectionLogging() Option {
	return func(g *Guard) {
		g.logRejections = false
	}
}

func New(opts ...Option) *Guard {
	g := &Guard{
		maxInputBytes: defaultMaxInputBytes,
		logRejections: true,
		log:           slog.Default(),
		preprocess: sanitizer.Compose(
			sanitizer.RemoveNullBytes,
			sanitizer.NormalizeUnicode,
		),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFromConfig builds a Guard from an environment-loaded Config.
// Options are applied after the config and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) *Guard {
	base := []Option{WithMaxInputBytes(cfg.MaxInputBytes)}
	if !cfg.LogRejections {
		base = append(base, WithoutRejectionLogging())
	}
	return New(append(base, opts...)...)
}

// ChatMessage validates a chat message and returns the sanitized form
// alongside the verdict. On acceptance the caller must persist the
// sanitized string, never the raw input.
func (g *Guard) ChatMessage(input string) (string, validator.Result) {
	if len(input) > g.maxInputBytes {
		return "", g.observe("message", validator.Result{Error: MsgInputTooLarge})
	}

	clean := sanitizer.Sanitize(g.preprocess(input))
	return clean, g.observe("message", validator.ValidateChatInput(clean))
}

// Username judges the original string; it is never rewritten.
func (g *Guard) Username(input string) validator.Result {
	return g.identity("username", input, validator.ValidateUsername)
}

// Password judges the original string. The password value is never
// logged.
func (g *Guard) Password(input string) validator.Result {
	return g.identity("password", input, validator.ValidatePassword)
}

// Email judges the original string; it is never rewritten.
func (g *Guard) Email(input string) validator.Result {
	return g.identity("email", input, validator.ValidateEmail)
}

// Signup validates the three identity fields together. Unlike the
// per-field calls it collects every failure, returning
// validator.ValidationErrors so a form can surface all problems at
// once. Returns nil when all fields pass.
func (g *Guard) Signup(username, email, password string) error {
	fields := []struct {
		name     string
		value    string
		validate func(string) validator.Result
	}{
		{"username", username, validator.ValidateUsername},
		{"email", email, validator.ValidateEmail},
		{"password", password, validator.ValidatePassword},
	}

	var errs validator.ValidationErrors
	for _, f := range fields {
		if res := g.identity(f.name, f.value, f.validate); !res.Valid {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: res.Error})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (g *Guard) identity(field, input string, validate func(string) validator.Result) validator.Result {
	if len(input) > g.maxInputBytes {
		return g.observe(field, validator.Result{Error: MsgInputTooLarge})
	}
	return g.observe(field, validate(input))
}

// observe records the rejection reason, never the rejected value.
func (g *Guard) observe(field string, res validator.Result) validator.Result {
	if !res.Valid && g.logRejections {
		g.log.Debug("input rejected",
			slog.String("field", field),
			slog.String("reason", res.Error),
		)
	}
	return res
}
