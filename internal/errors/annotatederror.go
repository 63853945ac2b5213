// Package errors wraps the standard library errors package with errors that remember where they were
// created and carry [slog.Attr] annotations, so that a single log line can explain a failure.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError is an error with a message, optional cause, slog annotations and the file:line of its origin.
type annotatedError struct {
	msg         string
	cause       error
	annotations []slog.Attr
	source      string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates a plain error without call site information. Use it for package level sentinel values that are
// compared with [Is].
func NewSentinel(msg string) error {
	return stderrors.New(msg) //nolint:err113 // this is the sentinel constructor.
}

// New creates an error that records the call site and the given annotations.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:         msg,
		cause:       nil,
		annotations: attrs,
		source:      callerSource(),
	}
}

// Wrap annotates err with msg and attrs. The call site of Wrap is recorded. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:         msg,
		cause:       err,
		annotations: attrs,
		source:      callerSource(),
	}
}

// DecoratePanic converts a recovered panic value into an error pointing at the panicking line.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	e := &annotatedError{
		msg:         fmt.Sprintf("panic: %v", excp),
		cause:       nil,
		annotations: nil,
		source:      panicSource(),
	}
	if err, ok := excp.(error); ok {
		e.msg = "panic"
		e.cause = err
	}
	return e
}

// SlogError turns err into an "error" group containing the message, all annotations found in the chain and the
// source location of the innermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{} //nolint:exhaustruct // empty attributes are ignored by handlers.
	}

	var (
		annotations []any
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	attrs := []any{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	return slog.Group("error", attrs...)
}

// collectAnnotations walks the error tree, including joined errors, depth first.
func collectAnnotations(err error, annotations *[]any, source *string) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // only the node itself, children are visited below.
		for _, a := range ae.annotations {
			*annotations = append(*annotations, a)
		}
		if ae.source != "" {
			*source = ae.source
		}
	}
	switch u := err.(type) { //nolint:errorlint // we walk the tree ourselves.
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			collectAnnotations(inner, annotations, source)
		}
	case interface{ Unwrap() error }:
		collectAnnotations(u.Unwrap(), annotations, source)
	}
}

// callerSource returns the file:line of the function calling the exported constructor.
func callerSource() string {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerSource and the constructor.
	if runtime.Callers(3, pcs[:]) == 0 { //nolint:mnd // see above.
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return formatFrame(frame)
}

// panicSource finds the frame that called panic, which is the first frame after runtime.gopanic.
func panicSource() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs) //nolint:mnd // skip runtime.Callers, panicSource and DecoratePanic.
	frames := runtime.CallersFrames(pcs[:n])
	var (
		first      runtime.Frame
		afterPanic bool
	)
	for i := 0; ; i++ {
		frame, more := frames.Next()
		if i == 0 {
			first = frame
		}
		if afterPanic {
			return formatFrame(frame)
		}
		afterPanic = frame.Function == "runtime.gopanic"
		if !more {
			break
		}
	}
	if first.File == "" {
		return ""
	}
	return formatFrame(first)
}

func formatFrame(frame runtime.Frame) string {
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join returns an error that wraps the given errors. See [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
