// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "fmt"

// ErrorKind classifies the error kinds spec.md §7 describes. AllocFailure
// is included for completeness with the spec but is never returned by
// this implementation: Go's runtime reports out-of-memory conditions by
// panicking, not by returning an error from make()/append(), so there is
// no recoverable allocation-failure path to surface here the way the
// reference C implementation's malloc-failure checks do.
type ErrorKind byte

const (
	ErrSyntax ErrorKind = iota
	ErrAllocFailure
	ErrType
	ErrUnknownKey
	ErrRender
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrAllocFailure:
		return "allocation failure"
	case ErrType:
		return "type error"
	case ErrUnknownKey:
		return "unknown key"
	case ErrRender:
		return "render error"
	default:
		return "error"
	}
}

// Error is the single error type returned by Parse, Evaluate and
// Render. Grounded on asm.asmerror (a message plus a source position),
// extended with a Kind tag since PBG distinguishes several error
// categories where the assembler's expression evaluator only ever
// reports one.
type Error struct {
	Kind   ErrorKind
	Offset int // byte offset into the parsed text; -1 if not applicable
	Msg    string
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Offset, e.Msg)
}

func syntaxErrorf(p pos, format string, args ...any) *Error {
	return &Error{Kind: ErrSyntax, Offset: p.offset, Msg: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrType, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

func unknownKeyErrorf(name string) *Error {
	return &Error{Kind: ErrUnknownKey, Offset: -1, Msg: fmt.Sprintf("key %q resolved to UNKNOWN", name)}
}

func renderErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrRender, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}
