// Package tt supports table-driven tests with little boilerplate.
//
// A test table is a sequence of [*Case] values built with [Args] and
// [(*Case).Rets]:
//
//	tt.Test(t, strconv.Itoa,
//		Args(1).Rets("1"),
//		Args(-1).Rets("-1"),
//	)
//
// Return values are compared with go-cmp. NaNs compare equal to each other
// and errors are compared with [errors.Is].
package tt

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// return fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error messages,
// and return fn itself.
func (fn *FnToTest) RetsFmt(s string) *FnToTest {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The fn argument may be a
// *FnToTest or a plain function, in which case the name is derived from the
// runtime.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	f, ok := fn.(*FnToTest)
	if !ok {
		f = &FnToTest{name: funcName(fn), body: fn}
	}
	for _, test := range tests {
		rets := call(f.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if diff, ok := match(retsMatcher, rets); !ok {
				var argsString string
				if f.argsFmt == "" {
					argsString = sprintCommaDelimited(test.args...)
				} else {
					argsString = fmt.Sprintf(f.argsFmt, test.args...)
				}
				if f.retsFmt == "" {
					t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s", f.name, argsString, diff)
				} else {
					t.Errorf("%s(%s) -> %s, want %s", f.name, argsString,
						fmt.Sprintf(f.retsFmt, rets...), fmt.Sprintf(f.retsFmt, retsMatcher...))
				}
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }
func (anyMatcher) String() string      { return "<any>" }

// ErrorIs returns a Matcher that matches errors for which errors.Is(err,
// target) holds.
func ErrorIs(target error) Matcher { return errorIsMatcher{target} }

type errorIsMatcher struct{ target error }

func (m errorIsMatcher) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, m.target)
}

func (m errorIsMatcher) String() string { return fmt.Sprintf("<error is %v>", m.target) }

// ErrorAs returns a Matcher that matches errors for which errors.As(err, ptr)
// holds. The ptr argument must be a non-nil pointer to an error type or
// interface, as with errors.As.
func ErrorAs(ptr any) Matcher { return errorAsMatcher{ptr} }

type errorAsMatcher struct{ ptr any }

func (m errorAsMatcher) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && errors.As(err, m.ptr)
}

func (m errorAsMatcher) String() string {
	return fmt.Sprintf("<error as %v>", reflect.TypeOf(m.ptr).Elem())
}

var cmpOptions = []cmp.Option{cmpopts.EquateNaNs(), cmpopts.EquateErrors()}

func match(matchers, actual []any) (string, bool) {
	ok := true
	var sb strings.Builder
	for i, m := range matchers {
		if matcher, isMatcher := m.(Matcher); isMatcher {
			if !matcher.Match(actual[i]) {
				ok = false
				fmt.Fprintf(&sb, "  #%d: got %v, want %v\n", i, actual[i], m)
			}
			continue
		}
		if !cmp.Equal(m, actual[i], cmpOptions...) {
			ok = false
			fmt.Fprintf(&sb, "  #%d: %s", i, cmp.Diff(m, actual[i], cmpOptions...))
		}
	}
	return sb.String(), ok
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which Call rejects.
			// Use the zero value of the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType(fnType, i))
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := fnValue.Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}

func paramType(fnType reflect.Type, i int) reflect.Type {
	if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(i)
}

func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}
