package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/attrdoc"
)

type buildInfo struct {
	Version  string            `json:"version"`
	Commit   string            `json:"commit"`
	Built    string            `json:"built"`
	Go       string            `json:"go"`
	Platform string            `json:"platform"`
	Builders int               `json:"builders"`
	Modules  map[string]string `json:"modules,omitempty"`
}

// currentBuild reports the linker-set version, falling back to the module
// version recorded by the go tool for `go install` builds.
func currentBuild(withModules bool) buildInfo {
	info := buildInfo{
		Version:  version,
		Commit:   commit,
		Built:    date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Builders: len(attrdoc.TagBuilders()),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if withModules {
		info.Modules = make(map[string]string, len(bi.Deps))
		for _, dep := range bi.Deps {
			info.Modules[dep.Path] = dep.Version
		}
	}
	return info
}

func versionCmd() *cobra.Command {
	var short, asJSON, modules bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the markup version, its build metadata and, with --modules, the versions of linked modules.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			info := currentBuild(modules)
			switch {
			case short:
				fmt.Fprintln(w, info.Version)
			case asJSON:
				out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(out))
			default:
				writeBuildInfo(w, info)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	cmd.Flags().BoolVar(&modules, "modules", false, "Include linked module versions")

	return cmd
}

func writeBuildInfo(w io.Writer, info buildInfo) {
	printBanner(w)
	fmt.Fprintln(w)
	rows := [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.Built},
		{"Go", info.Go},
		{"Platform", info.Platform},
		{"Builders", fmt.Sprint(info.Builders)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-9s %s\n", row[0]+":", row[1])
	}
	if len(info.Modules) == 0 {
		return
	}
	fmt.Fprintln(w, "  Modules:")
	paths := make([]string, 0, len(info.Modules))
	for path := range info.Modules {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	for _, path := range paths {
		fmt.Fprintf(w, "    %s %s\n", path, strings.TrimSpace(info.Modules[path]))
	}
}
