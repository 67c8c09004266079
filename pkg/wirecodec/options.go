package wirecodec

import "log/slog"

type Options struct {
	Logger             *slog.Logger
	StrictCredentialID bool
}

type Option func(*Options)

// WithLogger sets the logger used to report failed decodes at debug level.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithStrictCredentialID makes credential decodes verify that rawId carries
// exactly the bytes encoded in id. The base contract does not cross-check
// them; this is a stricter, opt-in addition.
func WithStrictCredentialID() Option {
	return func(opts *Options) {
		opts.StrictCredentialID = true
	}
}

func NewOptions(opts ...Option) *Options {
	oo := &Options{
		Logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(oo)
	}

	return oo
}
