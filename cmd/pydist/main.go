package main

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var osStdout io.Writer = os.Stdout

const defaultConfigPath = "setup.yaml"

func configPathFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultConfigPath
}

func cmdDescribe(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return err
	}

	return describeConfig(osStdout, configPathFromArgs(args), root, format)
}

func cmdValidate(cmd *cobra.Command, args []string) error {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return err
	}

	return validateConfig(osStdout, configPathFromArgs(args), root)
}

func cmdListPackages(cmd *cobra.Command, args []string) error {
	excludes, err := cmd.Flags().GetStringArray("exclude")
	if err != nil {
		return err
	}
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	return listPackages(osStdout, root, excludes)
}

func cmdWriteMetadata(cmd *cobra.Command, args []string) error {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	return writeMetadata(osStdout, configPathFromArgs(args), root, output)
}

func run() error {
	logrus.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:   "pydist",
		Short: "Declare and inspect distribution descriptors",
		Long: `Declare and inspect distribution descriptors

Pydist loads a declarative setup config (YAML, JSON or TOML), discovers
the importable packages of the project and presents the resulting
descriptor to a packaging toolchain. Building or installing artifacts is
the toolchain's job, not pydist's.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "show debug output")

	describeCmd := &cobra.Command{
		Use:          "describe [config-file]",
		Short:        "Show the full descriptor including discovered packages",
		RunE:         cmdDescribe,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
	}
	describeCmd.Flags().String("format", "", "Output in a specific format (text,json)")
	describeCmd.Flags().String("root", "", "Package root (defaults to the config file directory)")
	rootCmd.AddCommand(describeCmd)

	validateCmd := &cobra.Command{
		Use:          "validate [config-file]",
		Short:        "Fail fast on configs the packaging toolchain would reject",
		RunE:         cmdValidate,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
	}
	validateCmd.Flags().String("root", "", "Package root (defaults to the config file directory)")
	rootCmd.AddCommand(validateCmd)

	listPackagesCmd := &cobra.Command{
		Use:          "list-packages [root]",
		Short:        "List importable packages, use --exclude to limit further",
		RunE:         cmdListPackages,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
	}
	listPackagesCmd.Flags().StringArray("exclude", nil, "Exclude packages matching a glob pattern")
	rootCmd.AddCommand(listPackagesCmd)

	writeMetadataCmd := &cobra.Command{
		Use:          "write-metadata [config-file]",
		Short:        "Emit the plain-text metadata file for the descriptor",
		RunE:         cmdWriteMetadata,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
	}
	writeMetadataCmd.Flags().String("root", "", "Package root (defaults to the config file directory)")
	writeMetadataCmd.Flags().String("output", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(writeMetadataCmd)

	return rootCmd.Execute()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %s", err)
	}
}
