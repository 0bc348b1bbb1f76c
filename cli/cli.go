package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"

	"ngrom/grom"
	"ngrom/grom/gformat"
	"ngrom/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick a file to convert from a directory listing"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"convert SMD files to the BIN format"`
		Info        *InfoCmd        `arg:"subcommand:info" help:"show the information embedded in ROM files"`
		Check       *CheckCmd       `arg:"subcommand:check" help:"check that files match a ROM format"`
	}
	InteractiveCmd struct {
		Dir       string `arg:"-d,--dir" default:"." help:"directory to list SMD files from" placeholder:"DIR"`
		OutDir    string `arg:"-o,--outdir" default:"." help:"output directory" placeholder:"DIR"`
		Collision string `arg:"-f,--file-collision" default:"skip" help:"stop, warn (overwrite), or skip when an output file exists" placeholder:"ACTION"`
	}
	ConvertCmd struct {
		Files     []string `arg:"positional" help:"SMD files to convert" placeholder:"FILES"`
		OutDir    string   `arg:"-o,--outdir" default:"." help:"output directory" placeholder:"DIR"`
		Checks    string   `arg:"-c,--checks" default:"stop" help:"stop, warn, or skip the SMD format checks" placeholder:"ACTION"`
		Collision string   `arg:"-f,--file-collision" default:"skip" help:"stop, warn (overwrite), or skip when an output file exists" placeholder:"ACTION"`
	}
	InfoCmd struct {
		Files  []string `arg:"positional" help:"ROM files to inspect" placeholder:"FILES"`
		Checks string   `arg:"-c,--checks" default:"stop" help:"stop, warn, or skip the SMD format checks" placeholder:"ACTION"`
	}
	CheckCmd struct {
		Files  []string `arg:"positional" help:"ROM files to check" placeholder:"FILES"`
		Format string   `arg:"--format" default:"smd" help:"expected format: smd or bin" placeholder:"FORMAT"`
	}
)

func (Args) Version() string {
	return "ngrom 0.1.0"
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"New GROM - Genesis ROM conversion utility.\n",
			"Converts ROM files from the interleaved SMD format to the flat BIN format",
			"in the command line, and shows the information embedded in ROM headers.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// applyCheckPolicy runs the SMD format checks that gate convert and
// info runs. It returns false only when the program must stop.
func applyCheckPolicy(checkOpt grom.FileCheckAction, files []string) bool {
	if checkOpt == grom.ActionSkip {
		fmt.Println("Skipping SMD format checks...")
		return true
	}
	if grom.CheckFormats(gformat.FormatSMD, files) {
		return true
	}
	if checkOpt == grom.ActionStop {
		fmt.Println("NGROM stopping due to failed SMD format check on one or more files")
		return false
	}
	fmt.Fprintln(os.Stderr, "NGROM WARNING: one or more files failed SMD format check; continuing...")
	return true
}

func StartConverting(files []string, outDir string, checks string, collision string) int {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "NGROM ERROR: No files specified.")
		return 1
	}
	checkOpt := grom.ParseFileCheckAction(checks)
	if checkOpt == grom.ActionUnset {
		fmt.Fprintf(os.Stderr, "NGROM ERROR: Unrecognized checks action: %s\n", checks)
		return 1
	}
	fileAction := grom.ParseFileCheckAction(collision)
	if fileAction == grom.ActionUnset {
		fmt.Fprintf(os.Stderr, "NGROM ERROR: Unrecognized file-collision action: %s\n", collision)
		return 1
	}

	if !applyCheckPolicy(checkOpt, files) {
		return 2
	}
	if !grom.ConvertFiles(files, outDir, fileAction) {
		fmt.Println("NGROM stopping due to error writing an output file")
		return 2
	}
	return 0
}

func StartShowingInfo(files []string, checks string) int {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "NGROM ERROR: No files specified.")
		return 1
	}
	checkOpt := grom.ParseFileCheckAction(checks)
	if checkOpt == grom.ActionUnset {
		fmt.Fprintf(os.Stderr, "NGROM ERROR: Unrecognized checks action: %s\n", checks)
		return 1
	}

	if !applyCheckPolicy(checkOpt, files) {
		return 2
	}
	grom.ShowInfoList(files)
	return 0
}

func StartChecking(files []string, format string) int {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "NGROM ERROR: No files specified.")
		return 1
	}
	var expected gformat.RomFormat
	switch format {
	case "smd":
		expected = gformat.FormatSMD
	case "bin":
		expected = gformat.FormatBIN
	default:
		fmt.Fprintf(os.Stderr, "NGROM ERROR: Unrecognized format: %s\n", format)
		return 1
	}

	if !grom.CheckFormats(expected, files) {
		return 2
	}
	return 0
}

func StartInteractive(dir string, outDir string, collision string) int {
	fileAction := grom.ParseFileCheckAction(collision)
	if fileAction == grom.ActionUnset {
		fmt.Fprintf(os.Stderr, "NGROM ERROR: Unrecognized file-collision action: %s\n", collision)
		return 1
	}

	path, err := ui.SelectRomFile(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "NGROM ERROR: %v\n", err)
		return 1
	}
	if path == "" {
		fmt.Println("Nothing selected.")
		return 0
	}

	if !grom.ConvertFiles([]string{path}, outDir, fileAction) {
		fmt.Println("NGROM stopping due to error writing an output file")
		return 2
	}
	return 0
}

func Start() int {
	args := Args{}
	arg.MustParse(&args)

	switch {
	case args.Convert != nil:
		return StartConverting(
			args.Convert.Files,
			args.Convert.OutDir,
			args.Convert.Checks,
			args.Convert.Collision,
		)
	case args.Info != nil:
		return StartShowingInfo(args.Info.Files, args.Info.Checks)
	case args.Check != nil:
		return StartChecking(args.Check.Files, args.Check.Format)
	default:
		// No subcommand drops into the picker, like `interactive`
		// with its defaults.
		cmd := args.Interactive
		if cmd == nil {
			cmd = &InteractiveCmd{Dir: ".", OutDir: ".", Collision: "skip"}
		}
		return StartInteractive(cmd.Dir, cmd.OutDir, cmd.Collision)
	}
}
