// Command weekdata-gen regenerates weekdata_cldr.go from a CLDR core data
// directory. The generated table maps CLDR territories to their first day
// of the week.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg         string
	out         string
	cldrPath    string
	territories []string
}

var dayIndex = map[string]int{
	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

type territoryFlag struct {
	items []string
}

func (f *territoryFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *territoryFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "weekdata-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var territories territoryFlag

	flag.StringVar(&cfg.pkg, "pkg", "dateadapter", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "weekdata_cldr.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a supplemental/ subdirectory)")
	flag.Var(&territories, "territory", "territory to include (repeat flag to add more; default is every supported territory)")

	flag.Parse()

	cfg.territories = territories.items

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	table, err := extractFirstDays(data.Supplemental(), cfg.territories)
	if err != nil {
		return err
	}

	source, err := renderSource(cfg.pkg, table)
	if err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func extractFirstDays(supplemental *cldr.SupplementalData, territories []string) (map[string]int, error) {
	if supplemental == nil || supplemental.WeekData == nil {
		return nil, errors.New("missing weekData in supplemental data")
	}

	wanted := make(map[string]struct{}, len(territories))
	for _, territory := range territories {
		wanted[territory] = struct{}{}
	}

	table := make(map[string]int)
	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || entry.Alt != "" {
			continue
		}

		day, ok := dayIndex[strings.ToLower(entry.Day)]
		if !ok {
			return nil, fmt.Errorf("unrecognized day %q in weekData", entry.Day)
		}

		for _, territory := range strings.Fields(entry.Territories) {
			territory = strings.ToUpper(territory)
			if len(wanted) > 0 && territory != "001" {
				if _, ok := wanted[territory]; !ok {
					continue
				}
			}
			table[territory] = day
		}
	}

	if _, ok := table["001"]; !ok {
		return nil, errors.New("weekData is missing the 001 world default")
	}

	return table, nil
}

func renderSource(pkg string, table map[string]int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by weekdata-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("// cldrFirstDay maps CLDR territory codes to the first day of the week,\n")
	buf.WriteString("// 0=Sunday through 6=Saturday. \"001\" is the world default.\n")
	buf.WriteString("var cldrFirstDay = map[string]int{\n")

	var codes []string
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		fmt.Fprintf(&buf, "\t%q: %d,\n", code, table[code])
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
