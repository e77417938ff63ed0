// Package flag defines the command-line flags shared by pdfClown tools and
// small helpers around their registration.
//
// It is built on top of the pflag library. A fixed set of common flags is
// always present:
//
//   - `--path`    (string): working directory for data and configuration (default: "./data")
//   - `--debug`   (bool): enables debug output, including error traces
//   - `--version` (bool): prints version information
//   - `--help`    (bool): prints the help page
//
// Tools register their own flags with Register before calling Init, which
// parses the command line:
//
//	var strict bool
//
//	func main() {
//		flag.Register("strict", &strict, "Reject lenient version syntax")
//		flag.Init()
//	}
package flag

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

var (
	// Path is the working directory for data and configuration files
	Path string
	// Debug indicates whether debug mode is enabled
	Debug bool
	// Version indicates whether version information should be printed
	Version bool
	// Help indicates whether the help page should be printed
	Help bool
)

func init() {
	pflag.StringVar(&Path, "path", "./data", "Sets the application working directory")
	pflag.BoolVar(&Debug, "debug", false, "Enables debug mode")
	pflag.BoolVar(&Version, "version", false, "Prints version information")
	pflag.BoolVar(&Help, "help", false, "Prints the help page")
}

// Init parses all registered flags. It should be called once from the main
// package, after all Register calls.
func Init() {
	pflag.Parse()
}

// Parsed reports whether Init has been called.
func Parsed() bool {
	return pflag.Parsed()
}

// PrintHelp prints the usage of all registered flags to standard error.
func PrintHelp() {
	fmt.Fprintln(os.Stderr, "Usage:")
	pflag.PrintDefaults()
}

// Arguments returns the non-flag command-line arguments.
func Arguments() []string {
	return pflag.Args()
}

// Register registers a new flag with the given name, target variable, and
// usage text. The current value of the target is used as the default. It
// panics on duplicate names or unsupported target types, since both are
// programming errors caught at startup.
func Register(name string, value interface{}, usage string) {
	if pflag.Lookup(name) != nil {
		panic(fmt.Sprintf("flag %s already registered", name))
	}

	switch v := value.(type) {
	case *string:
		pflag.StringVar(v, name, *v, usage)
	case *bool:
		pflag.BoolVar(v, name, *v, usage)
	case *int:
		pflag.IntVar(v, name, *v, usage)
	case *int64:
		pflag.Int64Var(v, name, *v, usage)
	case *uint:
		pflag.UintVar(v, name, *v, usage)
	case *uint64:
		pflag.Uint64Var(v, name, *v, usage)
	case *float64:
		pflag.Float64Var(v, name, *v, usage)
	case *[]string:
		pflag.StringSliceVar(v, name, *v, usage)
	default:
		panic(fmt.Sprintf("unsupported flag type %T", v))
	}
}

// Lookup returns the registered flag with the given name, or nil.
func Lookup(name string) *pflag.Flag {
	return pflag.Lookup(name)
}
