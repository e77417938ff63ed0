package logging

import "sync"

var (
	// global is the fallback adapter for packages without a specific one.
	global Adapter = NewNoOpAdapter()
	// packages holds package-specific adapter overrides.
	packages sync.Map
	// mu guards the global adapter.
	mu sync.RWMutex
)

// SetGlobalAdapter installs the fallback adapter used by every package that
// has no specific override.
func SetGlobalAdapter(adapter Adapter) {
	mu.Lock()
	defer mu.Unlock()
	global = adapter
}

// GetGlobalAdapter returns the current fallback adapter.
func GetGlobalAdapter() Adapter {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetPackageAdapter overrides the adapter for a single package.
func SetPackageAdapter(pkg string, adapter Adapter) {
	packages.Store(pkg, adapter)
}

// ResetPackageAdapter removes a package override, restoring the global
// adapter for that package.
func ResetPackageAdapter(pkg string) {
	packages.Delete(pkg)
}

// GetPackageLogger returns the logger for a package. The result resolves the
// active adapter on every call, so it may be captured in a package variable
// before the application configures logging.
func GetPackageLogger(pkg string) Adapter {
	return &dynamicAdapter{pkg: pkg}
}

// dynamicAdapter defers adapter resolution to call time.
type dynamicAdapter struct {
	pkg string
}

func (d *dynamicAdapter) current() Adapter {
	if a, ok := packages.Load(d.pkg); ok {
		return a.(Adapter)
	}
	return GetGlobalAdapter().WithPackage(d.pkg)
}

func (d *dynamicAdapter) SetLevel(level Level) Adapter {
	d.current().SetLevel(level)
	return d
}

func (d *dynamicAdapter) GetLevel() Level { return d.current().GetLevel() }

func (d *dynamicAdapter) Trace() Event { return d.current().Trace() }
func (d *dynamicAdapter) Debug() Event { return d.current().Debug() }
func (d *dynamicAdapter) Info() Event  { return d.current().Info() }
func (d *dynamicAdapter) Warn() Event  { return d.current().Warn() }
func (d *dynamicAdapter) Error() Event { return d.current().Error() }

func (d *dynamicAdapter) WithPackage(pkg string) Adapter {
	return &dynamicAdapter{pkg: pkg}
}

func (d *dynamicAdapter) Enabled() bool { return d.current().Enabled() }
