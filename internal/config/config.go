package config

import (
	"io"
	"sort"
	"strings"

	"github.com/hasbyte1/go-underscore/internal/log"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Config struct {
	// compile-time parameters
	Version string `yaml:"-"`

	Logger log.Config `yaml:"logger"`
	Output Output     `yaml:"output"`
}

type Output struct {
	Format string `yaml:"format" env:"UNDERSCORE_FORMAT" env-default:"json" env-description:"Output format [json, table]"`
	Pretty bool   `yaml:"pretty" env:"UNDERSCORE_PRETTY" env-default:"false" env-description:"Indents json output"`
}

// New reads the configuration from the YAML file at path, overlaid with ENV.
// An empty path means ENV only.
func New(version, path string) (*Config, error) {
	cfg := &Config{Version: version}

	if path == "" {
		return cfg, cleanenv.ReadEnv(cfg)
	}

	return cfg, cleanenv.ReadConfig(path, cfg)
}

// PrintUsage writes the supported ENV variables to w as a table.
func PrintUsage(w io.Writer) error {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err
	}

	const delimiter = "||"

	// 1 line == 1 env var
	desc = strings.ReplaceAll(desc, "\n    \t", delimiter)

	lines := strings.Split(desc, "\n")

	// remove header
	lines = lines[1:]

	lines = lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})

	lines = lo.Uniq(lines)
	sort.Strings(lines)

	t := tablewriter.NewWriter(w)
	t.SetBorder(false)
	t.SetAutoWrapText(false)
	t.SetHeader([]string{"ENV", "Description"})
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, line := range lines {
		cells := strings.Split(line, delimiter)
		t.Append(lo.Map(cells, func(cell string, _ int) string { return strings.TrimSpace(cell) }))
	}

	t.Render()

	return nil
}
