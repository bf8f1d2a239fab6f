// Package er provides a typed, stack-capturing error value (R) used
// throughout this module in place of the bare error interface. Error
// kinds are declared as ErrorType values carrying named ErrorCodes, so
// callers can switch on *which* rule failed rather than string-matching
// a message.
package er

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/nodecore/utxochain/internal/version"
)

// GenericErrorType is for packages with only one or two error codes
// which don't warrant their own error type.
var GenericErrorType = NewErrorType("er.GenericErrorType")

var ErrUnexpectedEOF = GenericErrorType.CodeWithDefault("ErrUnexpectedEOF", io.ErrUnexpectedEOF)
var EOF = GenericErrorType.CodeWithDefault("EOF", io.EOF)

// ErrorCode identifies a particular kind of fault within an ErrorType.
type ErrorCode struct {
	Detail         string
	Number         int
	Type           *ErrorType
	defaultWrapped error
}

type typedErr struct {
	messages []string
	errType  *ErrorType
	code     *ErrorCode
	err      R
}

// ErrorType groups a family of related ErrorCodes, e.g. one per package.
type ErrorType struct {
	Name       string
	codeLookup map[int]*ErrorCode
	Codes      []*ErrorCode
}

// NewErrorType creates a new error type identified by name, e.g.
// var MyError = er.NewErrorType("mypackage.MyError")
func NewErrorType(ident string) ErrorType {
	return ErrorType{
		Name:       ident,
		codeLookup: make(map[int]*ErrorCode),
	}
}

func (c *ErrorCode) Is(err R) bool {
	if err == nil {
		return c == nil
	}
	if te, ok := err.(typedErr); ok {
		return te.code == c
	}
	return false
}

func (c *ErrorCode) new(info string, err R, bstack []byte) R {
	var messages []string
	if info == "" {
		messages = []string{c.Detail}
	} else {
		messages = []string{c.Detail, info}
	}
	if err == nil {
		if bstack == nil {
			bstack = captureStack()
		}
		err = newNative("", bstack)
	} else if te, ok := err.(typedErr); ok {
		if te.code == c {
			if info != "" {
				te.messages = append(messages, te.messages...)
			}
			return te
		}
	}
	return typedErr{
		messages: messages,
		errType:  c.Type,
		code:     c,
		err:      err,
	}
}

func (c *ErrorCode) New(info string, err R) R {
	if err == nil {
		return c.new(info, nil, captureStack())
	}
	return c.new(info, err, nil)
}

func (e *ErrorType) Is(err R) bool {
	if err == nil {
		return false
	}
	if te, ok := err.(typedErr); ok {
		return te.errType == e
	}
	return false
}

func (e *ErrorType) Decode(err R) *ErrorCode {
	if err == nil {
		return nil
	}
	if te, ok := err.(typedErr); ok {
		return te.code
	}
	return nil
}

func (e *ErrorType) newErrorCode(number int, hasNumber bool, info string, detail string) *ErrorCode {
	header := info
	if hasNumber {
		header = fmt.Sprintf("%s(%d)", info, number)
	}
	if detail != "" {
		header = header + ": " + detail
	}
	result := &ErrorCode{
		Detail: header,
		Type:   e,
		Number: number,
	}
	if hasNumber {
		e.codeLookup[number] = result
	}
	e.Codes = append(e.Codes, result)
	return result
}

func (c *ErrorCode) Default() R {
	if c.defaultWrapped != nil {
		return c.new("", wrapNative(c.defaultWrapped), nil)
	}
	return c.new("", nil, captureStack())
}

func (e *ErrorType) Code(info string) *ErrorCode {
	return e.newErrorCode(0, false, info, "")
}

func (e *ErrorType) CodeWithDefault(info string, defaultError error) *ErrorCode {
	ec := e.newErrorCode(0, false, info, "")
	ec.defaultWrapped = defaultError
	return ec
}

func (e *ErrorType) CodeWithDetail(info string, detail string) *ErrorCode {
	return e.newErrorCode(0, false, info, detail)
}

func (te typedErr) AddMessage(m string) {
	te.messages = append([]string{m}, te.messages...)
}

func (te typedErr) Message() string {
	tem := te.err.Message()
	if tem == "" {
		return strings.Join(te.messages, ": ")
	}
	return fmt.Sprintf("%s: %s", strings.Join(te.messages, ": "), te.err.Message())
}

func (te typedErr) HasStack() bool {
	return te.err.HasStack()
}

func (te typedErr) Stack() []string {
	return te.err.Stack()
}

func (te typedErr) String() string {
	s := ""
	if te.err.HasStack() {
		s = "\n\n" + strings.Join(te.err.Stack(), "\n") + "\n"
	}
	return version.Version() + " " + te.Message() + s
}

func (te typedErr) Error() string {
	return te.String()
}

func (te typedErr) Wrapped0() error {
	return te.err.Wrapped0()
}

type typedErrAsNative struct {
	e typedErr
}

func (ten typedErrAsNative) Error() string {
	return ten.e.String()
}

func (te typedErr) Native() error {
	return typedErrAsNative{e: te}
}

//////
/// R is the error interface used module-wide in place of the builtin error.
//////

type R interface {
	Message() string
	Stack() []string
	HasStack() bool
	String() string
	Wrapped0() error
	Native() error
	AddMessage(m string)
}

type nativeErr struct {
	messages []string
	e        error
	bstack   []byte
	stack    []string
}

type errAsNative struct {
	e nativeErr
}

func (e errAsNative) Error() string {
	return e.e.String()
}

func (e nativeErr) HasStack() bool {
	return e.bstack != nil
}

var argumentsRegex = regexp.MustCompile(`\([0-9a-fx, \.]*\)$`)
var prefixRegex = regexp.MustCompile(`^.*/nodecore/utxochain/`)
var goFileRegex = regexp.MustCompile(`\.go:[0-9]+ `)

func (e nativeErr) Stack() []string {
	if e.stack == nil {
		s := strings.Split(string(e.bstack), "\n")
		if len(s) > 5 {
			s = s[5:]
		}
		var stack []string
		fun := ""
		for i := range s {
			x := argumentsRegex.ReplaceAllString(s[i], "()")
			x = prefixRegex.ReplaceAllString(x, "")
			x = "  " + strings.TrimSpace(x)
			if !goFileRegex.MatchString(x) {
				fun = x
			} else {
				stack = append(stack, x+"\t"+fun)
			}
		}
		e.stack = stack
	}
	return e.stack
}

func (e nativeErr) AddMessage(m string) {
	if e.messages == nil {
		e.messages = []string{m, e.e.Error()}
	} else {
		e.messages = append([]string{m}, e.messages...)
	}
}

func (e nativeErr) Message() string {
	if e.messages == nil {
		return e.e.Error()
	}
	return strings.Join(e.messages, ", ")
}

func (e nativeErr) String() string {
	s := ""
	if e.bstack != nil {
		s = "\n\n" + strings.Join(e.Stack(), "\n") + "\n"
	}
	return version.Version() + " " + e.Message() + s
}

func (e nativeErr) Error() string {
	return e.String()
}

func (e nativeErr) Wrapped0() error {
	return e.e
}

func (e nativeErr) Native() error {
	return errAsNative{e: e}
}

//////

func captureStack() []byte {
	return debug.Stack()
}

func Wrapped(err R) error {
	if err == nil {
		return nil
	}
	return err.Wrapped0()
}

func Native(err R) error {
	if err == nil {
		return nil
	}
	return err.Native()
}

func newNative(s string, bstack []byte) R {
	return nativeErr{
		e:      errors.New(s),
		bstack: bstack,
	}
}

func New(s string) R {
	return newNative(s, captureStack())
}

func Errorf(format string, a ...interface{}) R {
	return nativeErr{
		e:      fmt.Errorf(format, a...),
		bstack: captureStack(),
	}
}

func wrapNative(e error) R {
	return nativeErr{
		e:      e,
		bstack: captureStack(),
	}
}

func E(e error) R {
	if e == nil {
		return nil
	}
	if en, ok := e.(errAsNative); ok {
		return en.e
	}
	if en, ok := e.(typedErrAsNative); ok {
		return en.e
	}
	switch e {
	case io.ErrUnexpectedEOF:
		return ErrUnexpectedEOF.Default()
	case io.EOF:
		return EOF.Default()
	default:
		return wrapNative(e)
	}
}

func equals(e, r R, fuzzy bool) bool {
	if e == nil || r == nil {
		return e == nil && r == nil
	}
	if te, ok := e.(typedErr); ok {
		if tr, ok := r.(typedErr); ok {
			return te.code == tr.code
		}
		return false
	}
	if ee, ok := e.(nativeErr); ok {
		if rr, ok := r.(nativeErr); ok {
			if ee.e != nil && rr.e != nil {
				if ee.e == rr.e {
					return true
				}
				if fuzzy {
					return reflect.TypeOf(ee.e) == reflect.TypeOf(rr.e)
				}
			}
			return false
		}
		return false
	}
	panic("I don't know what error type this is: " + reflect.TypeOf(e).Name())
}

func Equals(e, r R) bool {
	return equals(e, r, false)
}

func FuzzyEquals(e, r R) bool {
	return equals(e, r, true)
}

var errLoopbreak = errors.New("loop break (if you're seeing this error, it should have been caught)")

// LoopBreak is a sentinel (non)error used to break out of a ForEach loop.
var LoopBreak = E(errLoopbreak)

func IsLoopBreak(e R) bool {
	en, ok := e.(nativeErr)
	return ok && en.e == errLoopbreak
}

func Cis(code *ErrorCode, e R) bool {
	if code == nil {
		return e == nil
	}
	return code.Is(e)
}

// AssertError panics with a message describing an invariant violated by
// this module's own code, as distinct from a bad block or a store fault.
func AssertError(msg string) {
	panic("assertion failed: " + msg)
}
