package gojaforeign

import (
	"errors"

	"github.com/dop251/goja"
	"github.com/joeycumines/logiface"
)

// ClassResolver resolves a class name to a constructor value. It returns
// nil if the name is unknown, in which case the default resolution
// (global binding, then dotted path) is attempted.
type ClassResolver func(runtime *goja.Runtime, className string) goja.Value

// hostOptions holds configuration for a [Host] instance.
type hostOptions struct {
	logger     *logiface.Logger[logiface.Event]
	resolver   ClassResolver
	rectClass  *string
	pointClass *string
}

// Option configures a [Host] instance. Options are applied during
// host construction.
type Option interface {
	applyOption(*hostOptions) error
}

// optionFunc implements [Option] via a closure.
type optionFunc struct {
	fn func(*hostOptions) error
}

func (o *optionFunc) applyOption(opts *hostOptions) error {
	return o.fn(opts)
}

// WithLogger configures the logger used to report failures that the
// soft-failure API would otherwise discard. A nil logger (the default)
// disables logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionFunc{fn: func(opts *hostOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithClassResolver configures a resolver consulted before the global
// object when constructing objects by class name.
func WithClassResolver(resolver ClassResolver) Option {
	return &optionFunc{fn: func(opts *hostOptions) error {
		opts.resolver = resolver
		return nil
	}}
}

// WithRectClass configures the class instantiated, with arguments
// (x, y, width, height), when a [Rect] is converted to a script value.
// If not set, or if the class cannot be constructed, a plain object is
// used instead.
func WithRectClass(className string) Option {
	return &optionFunc{fn: func(opts *hostOptions) error {
		if className == "" {
			return errors.New("rect class name must not be empty")
		}
		opts.rectClass = &className
		return nil
	}}
}

// WithPointClass configures the class instantiated, with arguments
// (x, y), when a [Point] is converted to a script value. Falls back to a
// plain object in the same way as [WithRectClass].
func WithPointClass(className string) Option {
	return &optionFunc{fn: func(opts *hostOptions) error {
		if className == "" {
			return errors.New("point class name must not be empty")
		}
		opts.pointClass = &className
		return nil
	}}
}

// resolveOptions applies the given options to a default [hostOptions].
func resolveOptions(opts []Option) (*hostOptions, error) {
	cfg := &hostOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyOption(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
