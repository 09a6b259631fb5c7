package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"gopkg.in/alecthomas/kingpin.v2"
)

var cfg struct {
	logLevel string
	build    buildParams
	inspect  struct {
		files []string
	}
	ranges struct {
		file  string
		value string
	}
	get struct {
		file   string
		points []string
	}
	gen genParams
}

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Build, inspect and embed compact code point tries.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	app.Flag("log-level", "Log level, NOOP disables logging.").Envar("CPTRIE_LOG_LEVEL").Default("INFO").StringVar(&cfg.logLevel)

	buildCmd := app.Command("build", "Build a trie from a range file.")
	buildCmd.Arg("input", "Range file, one 'START[..END] ; VALUE' per line.").Required().ExistingFileVar(&cfg.build.input)
	buildCmd.Arg("output", "Where to write the serialized trie.").Required().StringVar(&cfg.build.output)
	buildCmd.Flag("type", "Trie type: auto, fast or small.").Default("auto").EnumVar(&cfg.build.trieType, "auto", "fast", "small")
	buildCmd.Flag("width", "Value width: auto, 8, 16 or 32.").Default("auto").EnumVar(&cfg.build.width, "auto", "8", "16", "32")
	buildCmd.Flag("default", "Value of unassigned code points.").Default("0").Uint32Var(&cfg.build.defaultValue)
	buildCmd.Flag("error", "Value returned for out of range input.").Default("0").Uint32Var(&cfg.build.errorValue)

	inspectCmd := app.Command("inspect", "Print the header and compaction of serialized tries.")
	inspectCmd.Arg("file", "Serialized trie.").Required().ExistingFilesVar(&cfg.inspect.files)

	rangesCmd := app.Command("ranges", "Dump the ranges of a trie in range file format.")
	rangesCmd.Arg("file", "Serialized trie.").Required().ExistingFileVar(&cfg.ranges.file)
	rangesCmd.Flag("value", "Only print ranges with this value.").StringVar(&cfg.ranges.value)

	getCmd := app.Command("get", "Look up code points.")
	getCmd.Arg("file", "Serialized trie.").Required().ExistingFileVar(&cfg.get.file)
	getCmd.Arg("code-point", "Hex code points, U+0041, 0x41 or 41.").Required().StringsVar(&cfg.get.points)

	genCmd := app.Command("gen", "Emit Go source embedding a trie.")
	genCmd.Arg("file", "Serialized trie.").Required().ExistingFileVar(&cfg.gen.input)
	genCmd.Flag("package", "Package of the generated file.").Envar("GOPACKAGE").Required().StringVar(&cfg.gen.pkg)
	genCmd.Flag("name", "Name of the generated accessor.").Required().StringVar(&cfg.gen.name)
	genCmd.Flag("output", "Output file, stdout if empty.").Short('o').StringVar(&cfg.gen.output)

	parsedCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger.New(strings.ToUpper(cfg.logLevel))
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("cptrie")

	var err error
	switch parsedCmd {
	case buildCmd.FullCommand():
		err = runBuild(log, &cfg.build)
	case inspectCmd.FullCommand():
		err = runInspect(os.Stdout, cfg.inspect.files)
	case rangesCmd.FullCommand():
		err = runRanges(os.Stdout, cfg.ranges.file, cfg.ranges.value)
	case getCmd.FullCommand():
		err = runGet(os.Stdout, cfg.get.file, cfg.get.points)
	case genCmd.FullCommand():
		cfg.gen.command = "cptrie " + strings.Join(os.Args[1:], " ")
		err = runGen(os.Stdout, cfg.gen)
	}
	if code := checkError(err); code != 0 {
		logger.OnExit()
		os.Exit(code)
	}
}

func checkError(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}
