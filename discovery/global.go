package discovery

var globalRegistry *Registry // created on first use

// Global returns the process-wide registry that Test and TestNamed add to.
func Global() *Registry {
	if globalRegistry == nil {
		globalRegistry = NewRegistry()
	}
	return globalRegistry
}

// Test marks fn as a test case in the global registry. It panics on a nil
// function or a duplicate name, which are programming errors at init time.
func Test(fn TestFunc) {
	TestNamed("", fn)
}

// TestNamed is Test with an explicit name, useful for function literals.
func TestNamed(name string, fn TestFunc) {
	if err := Global().Add(name, fn); err != nil {
		panic(err)
	}
}

// Discover returns the cases of the global registry.
func Discover() []TestCase {
	return Global().Discover()
}

// SetGlobalForTesting temporarily installs reg as the global registry. The
// caller must call restore to put the original back.
func SetGlobalForTesting(reg *Registry) (restore func()) {
	orig := globalRegistry
	globalRegistry = reg
	return func() {
		globalRegistry = orig
	}
}
