package args

import (
	"fmt"
	"strconv"
	"strings"
)

type Options struct {
	Path     string
	Limit    int
	LimitSet bool
	Encoding string
	Backup   bool
	DryRun   bool
	Review   bool
	Verbose  bool
	Help     bool

	UnknownFlags []string
	Extra        []string
}

// Parse reads the command line. Flag values may follow as the next argument
// or be attached with '='.
func Parse(args []string) (*Options, error) {
	opts := &Options{}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		// next returns the flag's argument, consuming the following word if needed.
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag %s needs a value", name)
			}
			i++
			return args[i], nil
		}

		switch name {
		case "--help", "-h":
			opts.Help = true
		case "--dry-run":
			opts.DryRun = true
		case "--backup":
			opts.Backup = true
		case "--verbose", "-v":
			opts.Verbose = true
		case "--lines", "-n":
			v, err := next()
			if err != nil {
				return nil, err
			}
			limit, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid line limit %q: %w", v, err)
			}
			opts.Limit = limit
			opts.LimitSet = true
		case "--encoding":
			v, err := next()
			if err != nil {
				return nil, err
			}
			opts.Encoding = v
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				opts.UnknownFlags = append(opts.UnknownFlags, arg)
			} else {
				positional = append(positional, arg)
			}
		}
	}

	if len(positional) > 0 && positional[0] == "review" {
		opts.Review = true
		positional = positional[1:]
	}
	if len(positional) > 0 {
		opts.Path = positional[0]
	}
	if len(positional) > 1 {
		opts.Extra = positional[1:]
	}

	return opts, nil
}

func (o *Options) Validate() error {
	if o.Help {
		return nil
	}
	if len(o.UnknownFlags) > 0 {
		return fmt.Errorf("unknown flags: %s", strings.Join(o.UnknownFlags, ", "))
	}
	if len(o.Extra) > 0 {
		return fmt.Errorf("only one file may be given, got extra %q", o.Extra)
	}
	if o.LimitSet && o.Limit < 0 {
		return fmt.Errorf("line limit must be non-negative, got %d", o.Limit)
	}
	if o.Review && o.DryRun {
		return fmt.Errorf("--dry-run cannot be combined with review")
	}
	return nil
}

func HelpText() string {
	return `
trimlines - keep only the first lines of a text file

Usage:
  trimlines <file>                   # Truncate to the first 948 lines
  trimlines -n 300 <file>            # Truncate to the first 300 lines
  trimlines --dry-run <file>         # Report what would be kept, write nothing
  trimlines review <file>            # Preview the cut and confirm interactively

Options:
  -n, --lines N      Number of lines to keep (default 948)
  --encoding NAME    Text encoding of the file (default utf-8)
  --backup           Save discarded lines to <file>.trimmed
  --dry-run          Do not modify the file
  --verbose, -v      Enable debug logging
  --help, -h         Show this help message

Configuration:
  trimlines.yaml in the working directory (or TRIMLINES_CONFIG) may set
  path, limit, encoding, backup, backup_suffix, lock_timeout and lock_dir.
  Environment: TRIMLINES_FILE, TRIMLINES_LIMIT, TRIMLINES_ENCODING,
  TRIMLINES_BACKUP. Flags override both.

Exit codes:
  0 success, 1 usage or configuration error, 2 file missing or not
  accessible, 3 file not valid text, 4 write failed, 5 file locked
`
}
