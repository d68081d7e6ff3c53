// Copyright 2025 Edgeo SCADA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edgeo-scada/isf/isf"
)

var (
	cfgFile    string
	verbose    bool
	skipChecks bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "edgeo-isf",
	Short: "Decode Tektronix ISF oscilloscope captures",
	Long: `edgeo-isf decodes Tektronix ISF waveform capture files into scaled
time/voltage series.

Both the current and the legacy preamble tag conventions are supported,
for single-trace (Y) and min/max envelope (ENV) captures.

Examples:
  # Print a capture as two-column text
  edgeo-isf convert capture.isf

  # Convert a capture to CSV
  edgeo-isf convert capture.isf -f capture.csv

  # Convert a batch of captures into a directory
  edgeo-isf convert *.isf -f out/

  # Inspect a capture's header and statistics
  edgeo-isf info capture.isf`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logger
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))

		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.edgeo-isf.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&skipChecks, "skip-encoding-check", false, "Skip validation of the sample encoding fields")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("skip-encoding-check", rootCmd.PersistentFlags().Lookup("skip-encoding-check"))

	// Add subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".edgeo-isf")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ISF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// decodeOptions builds the library options from the current configuration
func decodeOptions() []isf.Option {
	opts := []isf.Option{
		isf.WithLogger(logger),
	}

	if skipChecks || viper.GetBool("skip-encoding-check") {
		opts = append(opts, isf.WithoutEncodingCheck())
	}

	return opts
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("edgeo-isf version 1.0.0")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
