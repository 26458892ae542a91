/*
Copyright © 2026 the InMAP authors.
This file is part of geomvalid.

geomvalid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geomvalid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geomvalid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package geomvalidutil holds the command-line interface to the
// geomvalid library.
package geomvalidutil

import (
	"fmt"
	"os"
	"time"

	"github.com/ctessum/geom/encoding/geojson"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/geomvalid"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	// Options are the configuration options available to geomvalid.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "quiet",
			usage: `
              quiet suppresses the problem report; only the per-file
              status and the exit code are produced.`,
			shorthand:  "q",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{validateCmd.Flags()},
		},
		{
			name: "maxproblems",
			usage: `
              maxproblems limits the number of report lines printed per
              geometry. Zero means no limit.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{validateCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GEOMVALID")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(validateCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geomvalid: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geomvalid",
	Short: "A geometry validity checker.",
	Long: `geomvalid checks geometries against the well-formedness rules of the
OGC Simple Features specification and reports every violation it finds.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'GEOMVALID_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of geomvalid.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("geomvalid v%s\n", geomvalid.Version)
	},
	DisableAutoGenTag: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate file [file...]",
	Short: "Check the validity of GeoJSON geometries.",
	Long: `validate decodes one GeoJSON geometry from each given file, checks it,
and prints one line of text for each problem found. The exit status is
nonzero if any of the geometries are invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet := cast.ToBool(Cfg.Get("quiet"))
		maxProblems := cast.ToInt(Cfg.Get("maxproblems"))
		var invalid int
		for _, path := range args {
			report, err := validateFile(path)
			if err != nil {
				return err
			}
			if report.IsValid() {
				logger.Infof("%s: valid", path)
				continue
			}
			invalid++
			logger.Warnf("%s: invalid (%d problems)", path, len(report))
			if quiet {
				continue
			}
			if maxProblems > 0 && len(report) > maxProblems {
				report = report[:maxProblems]
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
		}
		if invalid > 0 {
			return fmt.Errorf("geomvalid: %d of %d geometries are invalid", invalid, len(args))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// validateFile decodes one GeoJSON geometry from the file at path and
// checks it.
func validateFile(path string) (geomvalid.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geomvalid: reading %s: %v", path, err)
	}
	g, err := geojson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("geomvalid: decoding %s: %v", path, err)
	}
	return geomvalid.Validate(g), nil
}
