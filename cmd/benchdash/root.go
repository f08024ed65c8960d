package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"benchdash/internal/config"
	"benchdash/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchdash",
	Short: "Benchdash: a continuous benchmarking console",
	Long: `Benchdash tracks benchmark results over time. It stores perf
reports, serves them over a local API, and renders them as terminal
dashboards with per-series toggles.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'benchdash --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchdash.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Perf API base URL (overrides config)")
	rootCmd.PersistentFlags().String("project", "", "Project slug to operate on")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"verbose": "verbose",
		"api-url": "api.url",
		"project": "project",
	})
}

// bindFlags maps flag names onto viper keys.
func bindFlags(fs *pflag.FlagSet, names map[string]string) {
	for flag, key := range names {
		viper.BindPFlag(key, fs.Lookup(flag))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}
