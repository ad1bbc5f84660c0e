// Command scripref parses scripture citations such as "John 3:16-18" or
// "Matthew 5:3,5-7; 6:9-13" into structured references.
package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

const version = "0.4.0"

// CLI defines the command-line interface for scripref.
type CLI struct {
	// Global flags. Precedence: command line, environment, config file, default.
	Config    string `help:"Config file (default: $XDG_CONFIG_HOME/scripref/config.toml)" env:"SCRIPREF_CONFIG"`
	Catalog   string `help:"Book catalog file (.xml, .xml.xz, .db); empty uses the built-in canon" env:"SCRIPREF_CATALOG"`
	CacheSize int    `name:"cache-size" help:"Parse cache entries (0 disables)" default:"256" env:"SCRIPREF_CACHE_SIZE"`
	LogLevel  string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"warn" env:"SCRIPREF_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format" enum:"json,text" default:"text" env:"SCRIPREF_LOG_FORMAT"`

	Parse    ParseCmd     `cmd:"" help:"Parse citations into structured references"`
	Books    BooksCmd     `cmd:"" help:"List the books of the catalog"`
	Catalogs CatalogGroup `cmd:"" name:"catalog" help:"Catalog operations (digest, export)"`
	Version  VersionCmd   `cmd:"" help:"Print version information"`
}

// CatalogGroup contains catalog operations.
type CatalogGroup struct {
	Digest CatalogDigestCmd `cmd:"" help:"Print the BLAKE3 digest of the catalog"`
	Export CatalogExportCmd `cmd:"" help:"Write the catalog to a SQLite database"`
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	exited := false

	parser, err := kong.New(&cli,
		kong.Name("scripref"),
		kong.Description("Scripture citation parser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) {
			exited = true
			code = c
		}),
		kong.Resolvers(configResolver()),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(args)
	if exited {
		return code
	}
	if err != nil {
		parser.Errorf("%s", err)
		var pe *kong.ParseError
		if errors.As(err, &pe) && pe.Context != nil {
			_ = pe.Context.PrintUsage(false)
		}
		return 2
	}

	if err := cli.initLogging(stderr); err != nil {
		parser.Errorf("%s", err)
		return 1
	}

	ctx = logging.WithNewRequestID(ctx)
	env := &runtime{ctx: ctx, cli: &cli, stdin: stdin, stdout: stdout}
	if err := kctx.Run(env); err != nil {
		parser.Errorf("%s", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
