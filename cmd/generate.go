package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/cppgen/pkg/action/generate"
	"github.com/cmmoran/cppgen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

// bindOptions registers the generator flags on fs, writing into options.
func bindOptions(fs *pflag.FlagSet, options *generator.Options) {
	fs.StringVarP(&options.Input, "input", "i", "", "model file (.yaml, .yml, .toml or .json)")
	fs.StringVarP(&options.OutDir, "output-directory", "o", options.OutDir, "directory to write generated files")
	fs.StringVar(&options.Header, "header", "", "header file name, defaults to <model name>.h")
	fs.StringVar(&options.Source, "source", "", "source file name, defaults to <model name>.cpp")
	fs.StringVar(&options.Indent, "indent", options.Indent, "indentation unit")
	fs.StringVarP(&options.BraceStyle, "brace-style", "b", options.BraceStyle, "brace placement: allman or attached")
	fs.StringSliceVarP(&options.ExcludeTypes, "exclude-types", "t", []string{}, "exclude named classes and enums from generation")
	fs.BoolVar(&options.NoAccessors, "no-accessors", false, "do not generate getters and element accessors")
	fs.StringVar(&options.GoEnums, "go-enums", "", "file receiving a Go mirror of every enum")
	fs.StringVar(&options.GoPackage, "go-package", "", "package name of the Go enum mirror")
	fs.StringVarP(&options.Manifest, "manifest", "m", "", "manifest recording generated versions")
}

// loadOptions overlays the "generate" config section onto options. Flags set
// on the command line keep their values.
func loadOptions(c *cobra.Command, options *generator.Options) error {
	fromFlags := *options
	if err := viper.UnmarshalKey("generate", options); err != nil {
		return err
	}
	set := map[string]func(){
		"input":            func() { options.Input = fromFlags.Input },
		"output-directory": func() { options.OutDir = fromFlags.OutDir },
		"header":           func() { options.Header = fromFlags.Header },
		"source":           func() { options.Source = fromFlags.Source },
		"indent":           func() { options.Indent = fromFlags.Indent },
		"brace-style":      func() { options.BraceStyle = fromFlags.BraceStyle },
		"exclude-types":    func() { options.ExcludeTypes = fromFlags.ExcludeTypes },
		"no-accessors":     func() { options.NoAccessors = fromFlags.NoAccessors },
		"go-enums":         func() { options.GoEnums = fromFlags.GoEnums },
		"go-package":       func() { options.GoPackage = fromFlags.GoPackage },
		"manifest":         func() { options.Manifest = fromFlags.Manifest },
	}
	c.Flags().Visit(func(f *pflag.Flag) {
		if restore, ok := set[f.Name]; ok {
			restore()
		}
	})
	return options.Normalize()
}

func NewGenerateCommand() *cobra.Command {
	options := generator.NewOptions()

	// generateCmd represents the cppgen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate C++ sources",
		Long:  "Render a model into a header/source pair and record it in the manifest",
		RunE: func(c *cobra.Command, args []string) error {
			if err := loadOptions(c, options); err != nil {
				return err
			}
			res, err := generate.Generate(c.Context(), options)
			if err != nil {
				return err
			}
			slog.With("model", res.Name, "version", res.Version).Info("generation complete")
			return nil
		},
	}
	bindOptions(generateCmd.Flags(), options)
	return generateCmd
}
