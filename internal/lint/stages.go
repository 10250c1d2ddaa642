package lint

import "simtool/internal/config"

// stage is a single external tool invocation within a subcommand.
type stage struct {
	name string
	argv []string
}

// targets returns the file arguments passed through verbatim, or the
// whole tree when none were given.
func targets(files []string) []string {
	if len(files) == 0 {
		return []string{"."}
	}
	return files
}

func formatStage(cfg *config.Config, files []string) stage {
	argv := []string{cfg.Black}
	argv = append(argv, targets(files)...)
	return stage{name: "format/black", argv: argv}
}

func checkFormatStages(cfg *config.Config, files []string) []stage {
	blackArgv := []string{cfg.Black, "--check", "--diff"}
	blackArgv = append(blackArgv, targets(files)...)

	flakeArgv := []string{cfg.Flake8}
	flakeArgv = append(flakeArgv, targets(files)...)

	return []stage{
		{name: "check_format/black", argv: blackArgv},
		{name: "check_format/flake8", argv: flakeArgv},
	}
}

func checkTypesStage(cfg *config.Config, files []string) stage {
	argv := []string{cfg.Pyright}
	argv = append(argv, targets(files)...)
	return stage{name: "check_types/pyright", argv: argv}
}
