// Package config loads and stores application configuration as YAML files.
//
// A configuration is a pointer to a struct implementing the Config interface.
// It is registered once, read from `<path>/<name>.yaml` (where path defaults
// to flag.Path), and validated before it is applied. When the file does not
// exist, it is created from the registered defaults, so a freshly deployed
// tool starts from a self-documenting configuration file.
//
// Example:
//
//	type ToolConfig struct {
//		MinimumVersion string `yaml:"minimumVersion"`
//	}
//
//	func (c *ToolConfig) Validate() error {
//		if !semver.IsValid(c.MinimumVersion) {
//			return fmt.Errorf("minimumVersion %q is not a semantic version", c.MinimumVersion)
//		}
//		return nil
//	}
//
//	func main() {
//		if err := config.Register("pdfclown", &ToolConfig{MinimumVersion: "0.1.0"}); err != nil { ... }
//		flag.Init()
//		if err := config.Read(); err != nil { ... }
//	}
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/pdfclown/go-common/apperror"
	"github.com/pdfclown/go-common/flag"
	"github.com/pdfclown/go-common/logging"
	"gopkg.in/yaml.v2"
)

// Config is implemented by all configuration structs. Validate is called on
// every Read and Write before the new values are applied.
type Config interface {
	Validate() error
}

var (
	logger = logging.GetPackageLogger("config")
	mutex  sync.RWMutex

	name     string
	path     string
	current  Config
	onChange []func(old, new Config) error
)

// Register installs the configuration struct with its default values. The
// name becomes the file name (`<name>.yaml`); c must be a pointer to a
// struct.
func Register(n string, c Config) error {
	if c == nil {
		return apperror.NewError("the configuration provided is nil")
	}
	t := reflect.TypeOf(c)
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return apperror.NewErrorf("the configuration provided is not a pointer to a struct, got %T", c)
	}
	if n == "" {
		return apperror.NewError("the configuration name must not be empty")
	}

	mutex.Lock()
	defer mutex.Unlock()
	name = n
	current = c
	return nil
}

// SetPath overrides the directory the configuration file is read from and
// written to. Without it, flag.Path is resolved on the first Read or Write.
func SetPath(p string) {
	mutex.Lock()
	defer mutex.Unlock()
	path = p
}

// Get returns the currently applied configuration.
func Get() Config {
	mutex.RLock()
	defer mutex.RUnlock()
	return current
}

// OnChange registers a handler invoked after a Read replaces the applied
// configuration.
func OnChange(f func(old, new Config) error) {
	mutex.Lock()
	defer mutex.Unlock()
	onChange = append(onChange, f)
}

// Read loads the configuration file, validates its content, and applies it.
// A missing file is created from the registered defaults first.
func Read() error {
	file, err := configFile()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Clean(file))
	if os.IsNotExist(err) {
		logger.Info().Fields(logging.F("file", file)).Msg("configuration file missing, writing defaults")
		if err := Write(Get()); err != nil {
			return apperror.NewError("writing default configuration file failed").AddError(err)
		}
		if data, err = os.ReadFile(filepath.Clean(file)); err != nil {
			return apperror.NewError("reading configuration file after creation failed").AddError(err)
		}
	} else if err != nil {
		return apperror.NewError("reading configuration file failed").AddError(err)
	}

	old := Get()
	change, ok := reflect.New(reflect.TypeOf(old).Elem()).Interface().(Config)
	if !ok {
		return apperror.NewErrorf("creating new instance of %T failed", old)
	}

	if err := yaml.Unmarshal(data, change); err != nil {
		return apperror.NewErrorf("unmarshalling configuration data into %T failed", change).AddError(err)
	}
	if err := change.Validate(); err != nil {
		return apperror.Wrap(err)
	}

	mutex.Lock()
	current = change
	handlers := onChange
	mutex.Unlock()

	for _, f := range handlers {
		if err := f(old, change); err != nil {
			return apperror.Wrap(err)
		}
	}
	return nil
}

// Write validates the given configuration and stores it as the configuration
// file, creating the directory when needed. It does not apply the value;
// call Read to load it back.
func Write(c Config) error {
	if c == nil {
		return apperror.NewError("the configuration provided is nil")
	}
	if err := c.Validate(); err != nil {
		return apperror.Wrap(err)
	}

	file, err := configFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return apperror.NewError("creating configuration directory failed").AddError(err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return apperror.NewError("marshalling configuration data failed").AddError(err)
	}
	if err := os.WriteFile(filepath.Clean(file), data, 0600); err != nil {
		return apperror.NewError("writing configuration file failed").AddError(err)
	}
	return nil
}

// configFile resolves the configuration file path, falling back to flag.Path
// once flags are parsed.
func configFile() (string, error) {
	mutex.Lock()
	defer mutex.Unlock()
	if name == "" || current == nil {
		return "", apperror.NewError("no configuration registered")
	}
	if path == "" {
		path = flag.Path
	}
	return filepath.Join(path, name+".yaml"), nil
}
