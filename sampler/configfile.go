// ttfsampler - generate PDF sample sheets from TrueType/OpenType fonts
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

package sampler

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/ttfsampler/layout"
)

// fileConfig is the YAML representation of the settings in a config file.
// Missing keys leave the corresponding setting unchanged.
type fileConfig struct {
	FontSize         *float64 `yaml:"font_size"`
	Paper            *string  `yaml:"paper"`
	Sort             *bool    `yaml:"sort"`
	AllowBrokenFonts *bool    `yaml:"allow_broken_fonts"`
	SampleText       *string  `yaml:"sample_text"`
	Verbosity        *int     `yaml:"verbosity"`
	Margins          *struct {
		Top    *float64 `yaml:"top"`
		Bottom *float64 `yaml:"bottom"`
	} `yaml:"margins"`
	BorderInset *float64 `yaml:"border_inset"`
	Overflow    *string  `yaml:"overflow"`
	Title       *string  `yaml:"title"`
}

// LoadConfigFile reads settings from a YAML file and stores them in cfg.
// Settings which are not mentioned in the file are left unchanged.
func LoadConfigFile(path string, cfg *Config) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	err = ReadConfig(fd, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadConfig reads YAML settings from r and stores them in cfg.
// Unknown keys are an error.
func ReadConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fc fileConfig
	err := dec.Decode(&fc)
	if errors.Is(err, io.EOF) {
		return nil
	} else if err != nil {
		return err
	}

	if fc.Overflow != nil {
		p, err := layout.ParseOverflowPolicy(*fc.Overflow)
		if err != nil {
			return err
		}
		cfg.Overflow = p
	}
	if fc.FontSize != nil {
		cfg.FontSize = *fc.FontSize
	}
	if fc.Paper != nil {
		cfg.Paper = *fc.Paper
	}
	if fc.Sort != nil {
		cfg.Sort = *fc.Sort
	}
	if fc.AllowBrokenFonts != nil {
		cfg.AllowBrokenFonts = *fc.AllowBrokenFonts
	}
	if fc.SampleText != nil {
		cfg.SampleText = *fc.SampleText
	}
	if fc.Verbosity != nil {
		cfg.Verbosity = *fc.Verbosity
	}
	if m := fc.Margins; m != nil {
		if m.Top != nil {
			cfg.TopMargin = *m.Top
		}
		if m.Bottom != nil {
			cfg.BottomMargin = *m.Bottom
		}
	}
	if fc.BorderInset != nil {
		cfg.BorderInset = *fc.BorderInset
	}
	if fc.Title != nil {
		cfg.Title = *fc.Title
	}
	return nil
}
