// Package discovery keeps the catalog of test cases.
//
// Go has no runtime attributes, so a function is tagged as a test by
// registering it, normally from the init function of the package that
// defines it:
//
//	func init() {
//		discovery.Test(MaxProfitFindsBestTrade)
//	}
//
// Discovery is then a read-only pass over the registry.
package discovery

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// TestFunc is the body of a test case. It takes no arguments and returns
// nothing; failures are raised by the assert package.
type TestFunc func()

// TestCase is a discovered test.
type TestCase struct {
	Name string   // qualified name, e.g. "samples.MaxProfitFindsBestTrade"
	Func TestFunc // invocation handle
}

// Registry holds test cases in registration order.
type Registry struct {
	cases []TestCase
	names map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Add registers fn under name. An empty name is derived from the function
// symbol.
func (r *Registry) Add(name string, fn TestFunc) error {
	if fn == nil {
		return errors.New("test function is nil")
	}
	if name == "" {
		var err error
		if name, err = funcName(fn); err != nil {
			return err
		}
	}
	if _, ok := r.names[name]; ok {
		return fmt.Errorf("test %q already registered", name)
	}
	r.cases = append(r.cases, TestCase{Name: name, Func: fn})
	r.names[name] = struct{}{}
	return nil
}

// Discover returns a copy of all registered cases in registration order.
func (r *Registry) Discover() []TestCase {
	return append([]TestCase(nil), r.cases...)
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	return len(r.cases)
}

// funcName returns "<package>.<Function>" for fn, where package is the last
// element of the import path.
func funcName(fn TestFunc) (string, error) {
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return "", errors.New("failed to get function from PC")
	}
	full := rf.Name()
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", fmt.Errorf("didn't find package.function in %q", full)
	}
	return full[slash+1:], nil
}
