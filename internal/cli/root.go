// seehuhn.de/go/overlay - highlight overlays for PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli implements the overlay command line tool.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/overlay/internal/scene"
)

// Version is printed by the version command.
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Render citation highlights on PDF pages",
	Long: `Overlay renders the highlight boxes of a citation review onto page
images, and answers geometry questions about them.

A scene file describes one page: its size, the zoom scale, which panel of
the split view it belongs to, and the highlight layers.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (OVERLAY_*)
3. Config file (~/.overlay/config.yaml)
4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "overlay", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.overlay/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".overlay"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// OVERLAY_RENDER_SCALE sets render.scale, and so on
	viper.SetEnvPrefix("OVERLAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadScene reads the scene file named on the command line.
func loadScene(cmd *cobra.Command, name string) (*scene.Scene, error) {
	sc, err := scene.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if viper.GetBool("verbose") {
		w, h := sc.Size()
		fmt.Fprintf(cmd.ErrOrStderr(), "Scene %s: %gx%g pixels, %d layers\n",
			name, w, h, len(sc.Layers))
	}
	return sc, nil
}
