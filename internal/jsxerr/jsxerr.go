// Package jsxerr defines the error taxonomy surfaced by the CST adapter,
// the lowering passes, and the file assembler.
package jsxerr

import (
	"fmt"

	"github.com/junojs/jsxc/internal/loc"
)

// Kind classifies a ParserError.
type Kind int

const (
	Parse Kind = iota
	ParseMsg
	Io
	StripPrefix
	Utf8
	Language
	Query
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case ParseMsg:
		return "ParseMsg"
	case Io:
		return "Io"
	case StripPrefix:
		return "StripPrefix"
	case Utf8:
		return "Utf8"
	case Language:
		return "Language"
	case Query:
		return "Query"
	default:
		return "Unknown"
	}
}

// Fixed ParseMsg messages, verbatim per the lowering pass that raises them.
const (
	MsgStyleValueRequired     = `"style:*" must have a value`
	MsgVarValueRequired       = `"var:*" must have a value`
	MsgSlotValueRequired      = `"slot" attribute must have a value`
	MsgStringFragmentRequired = `"string_fragment" prop must have a value`
	MsgReactivePropRequired   = "Reactive props must have a value"
	MsgSlotNameRequired       = `"name" attribute in slot must have a value`
	MsgEmptyJSXExpression     = "Empty JSX expressions are invalid syntax"
)

// ParserError is the error type raised by internal/cst, internal/template,
// and internal/codegen.
type ParserError struct {
	Kind Kind
	// Msg is set for ParseMsg and carries one of the Msg* constants above.
	Msg string
	// At is set for ParseMsg; the offending node's range in source bytes.
	At loc.Range
	Err error
}

func (e *ParserError) Error() string {
	switch e.Kind {
	case ParseMsg:
		return e.Msg
	case Parse:
		return "failed to parse"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Kind.String()
	}
}

func (e *ParserError) Unwrap() error { return e.Err }

// NewParse builds a Parse error: the CST parser rejected the source or
// returned no tree for a required node.
func NewParse() *ParserError {
	return &ParserError{Kind: Parse}
}

// NewParseMsg builds a ParseMsg error carrying the offending node's range.
func NewParseMsg(msg string, at loc.Range) *ParserError {
	return &ParserError{Kind: ParseMsg, Msg: msg, At: at}
}

func wrap(k Kind, err error) *ParserError {
	if err == nil {
		return nil
	}
	return &ParserError{Kind: k, Err: err}
}

func WrapIo(err error) *ParserError          { return wrap(Io, err) }
func WrapStripPrefix(err error) *ParserError { return wrap(StripPrefix, err) }
func WrapUtf8(err error) *ParserError        { return wrap(Utf8, err) }
func WrapLanguage(err error) *ParserError    { return wrap(Language, err) }
func WrapQuery(err error) *ParserError       { return wrap(Query, err) }

// AppError is the top-level error returned by the CLI's per-file pipeline
// and directory walk.
type AppError struct {
	// MissingDir is set when the CLI was invoked without a usable input
	// directory; Parser and Err are both nil in that case.
	MissingDir bool
	Parser     *ParserError
	Err        error
}

func (e *AppError) Error() string {
	switch {
	case e.MissingDir:
		return "missing directory path"
	case e.Parser != nil:
		return e.Parser.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "unknown error"
	}
}

func (e *AppError) Unwrap() error {
	if e.Parser != nil {
		return e.Parser
	}
	return e.Err
}

func NewMissingDir() *AppError { return &AppError{MissingDir: true} }

func FromParser(err *ParserError) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Parser: err}
}

func FromIo(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Err: err}
}

// WithPosition renders a ParseMsg error with a file-relative (line, column),
// resolved from src via a LineTable. Other error kinds are rendered plain.
func WithPosition(path string, src []byte, err *ParserError) string {
	if err == nil {
		return ""
	}
	if err.Kind != ParseMsg {
		return fmt.Sprintf("%s: %s", path, err.Error())
	}
	pos := loc.NewLineTable(src).PositionFor(err.At.Loc.Start)
	return fmt.Sprintf("%s:%d:%d: %s", path, pos.Line, pos.Column, err.Msg)
}
