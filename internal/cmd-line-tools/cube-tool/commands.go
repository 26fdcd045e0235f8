// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/pixlise/hypercube/core/cube"
	"github.com/pixlise/hypercube/core/imageedit"
	"github.com/pixlise/hypercube/core/interleave"
	"github.com/pixlise/hypercube/core/resample"
	"github.com/pixlise/hypercube/core/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (env *toolEnv) load(p string) (*cube.DataCube, error) {
	fs, root, rel, err := env.resolve(p)
	if err != nil {
		return nil, err
	}
	return cube.Load(fs, root, rel, env.log)
}

func (env *toolEnv) save(c *cube.DataCube, p string) error {
	if !utils.HasExtension(p, cube.HeaderFileExtension) {
		return fmt.Errorf("output must be a %v file: %v", cube.HeaderFileExtension, p)
	}

	fs, root, rel, err := env.resolve(p)
	if err != nil {
		return err
	}

	err = c.Save(fs, root, rel, env.log)
	if err != nil {
		return err
	}

	env.log.Infof("Wrote %v: %vx%vx%v %v", p, c.Lines, c.Samples, c.Bands, c.Interleave)
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// info

type cubeSummary struct {
	Path           string
	DataPath       string
	Description    []string
	Lines          int
	Samples        int
	Bands          int
	Interleave     string
	HeaderOffset   int
	IgnoreValue    float64
	WavelengthFrom float64
	WavelengthTo   float64
	Valid          bool
}

func newInfoCmd(env *toolEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "info <header>",
		Short: "Print a summary of a cube as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.load(args[0])
			if err != nil {
				return err
			}

			summary := cubeSummary{
				Path:         args[0],
				DataPath:     cube.DataPathForHeader(args[0]),
				Description:  c.Description,
				Lines:        c.Lines,
				Samples:      c.Samples,
				Bands:        c.Bands,
				Interleave:   c.Interleave.String(),
				HeaderOffset: c.HeaderOffset,
				IgnoreValue:  c.IgnoreValue,
				Valid:        c.IsValid(),
			}
			if len(c.Wavelengths) > 0 {
				summary.WavelengthFrom, summary.WavelengthTo = utils.MinMaxIgnoringNaN(c.Wavelengths)
			}

			b, err := json.MarshalIndent(summary, "", "    ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(env.out, string(b))
			return err
		},
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// crop

type cropOptions struct {
	lines   string
	samples string
	wl      string
}

func addCropFlags(flags *pflag.FlagSet, opts *cropOptions) {
	flags.StringVar(&opts.lines, "lines", "", "Lines to keep as from:to, to excluded. Default: all")
	flags.StringVar(&opts.samples, "samples", "", "Samples to keep as from:to, to excluded. Default: all")
	flags.StringVar(&opts.wl, "wl", "", "Wavelength window as from:to, both included. Default: all")
}

func (opts cropOptions) crop(c *cube.DataCube) (*cube.DataCube, error) {
	var err error

	lineFrom, lineTo := 0, c.Lines
	if len(opts.lines) > 0 {
		if lineFrom, lineTo, err = utils.ParseIntRange(opts.lines); err != nil {
			return nil, err
		}
	}

	sampleFrom, sampleTo := 0, c.Samples
	if len(opts.samples) > 0 {
		if sampleFrom, sampleTo, err = utils.ParseIntRange(opts.samples); err != nil {
			return nil, err
		}
	}

	wlFrom, wlTo := math.Inf(-1), math.Inf(1)
	if len(opts.wl) > 0 {
		if wlFrom, wlTo, err = utils.ParseFloatRange(opts.wl); err != nil {
			return nil, err
		}
	}

	result := c.Crop(lineFrom, lineTo, sampleFrom, sampleTo, wlFrom, wlTo)
	if !result.IsValid() {
		return nil, errors.New("crop bounds do not select any data")
	}
	return result, nil
}

func newCropCmd(env *toolEnv) *cobra.Command {
	opts := cropOptions{}

	cmd := &cobra.Command{
		Use:   "crop <header> <out-header>",
		Short: "Cut out a block of lines, samples and bands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.load(args[0])
			if err != nil {
				return err
			}

			cropped, err := opts.crop(c)
			if err != nil {
				return err
			}

			return env.save(cropped, args[1])
		},
	}

	addCropFlags(cmd.Flags(), &opts)
	return cmd
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// resample

func makeResampler(grid string, wavelengths string, native []float64) (*resample.Resampler, error) {
	if len(grid) > 0 && len(wavelengths) > 0 {
		return nil, errors.New("specify either --grid or --wavelengths, not both")
	}

	if len(grid) > 0 {
		vals, err := utils.ParseFloatList(grid, ":")
		if err != nil {
			return nil, err
		}
		if len(vals) != 3 {
			return nil, fmt.Errorf("expected grid as start:stop:step, got: \"%v\"", grid)
		}
		return resample.NewRegular(vals[0], vals[1], vals[2], native), nil
	}

	if len(wavelengths) > 0 {
		targets, err := utils.ParseFloatList(wavelengths, ",")
		if err != nil {
			return nil, err
		}
		return resample.New(targets, native), nil
	}

	return nil, errors.New("one of --grid or --wavelengths is required")
}

func newResampleCmd(env *toolEnv) *cobra.Command {
	grid := ""
	wavelengths := ""

	cmd := &cobra.Command{
		Use:   "resample <header> <out-header>",
		Short: "Resample every pixel onto a new wavelength grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := env.load(args[0])
			if err != nil {
				return err
			}

			r, err := makeResampler(grid, wavelengths, c.Wavelengths)
			if err != nil {
				return err
			}

			resampled := c.Resample(r)
			if !resampled.IsValid() {
				return errors.New("resampling produced no data, check the cube and target wavelengths")
			}

			return env.save(resampled, args[1])
		},
	}

	cmd.Flags().StringVar(&grid, "grid", "", "Regular grid as start:stop:step")
	cmd.Flags().StringVar(&wavelengths, "wavelengths", "", "Comma separated target wavelengths")
	return cmd
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// slice

func newSliceCmd(env *toolEnv) *cobra.Command {
	wavelength := 0.0
	format := ""
	width := 0

	cmd := &cobra.Command{
		Use:   "slice <header> <out-image>",
		Short: "Render the band nearest a wavelength as a 16 bit grey image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imgFormat := format
			if len(imgFormat) <= 0 {
				imgFormat = imageedit.FormatPNG
				if utils.HasExtension(args[1], ".tif") || utils.HasExtension(args[1], ".tiff") {
					imgFormat = imageedit.FormatTIFF
				}
			}

			c, err := env.load(args[0])
			if err != nil {
				return err
			}

			wl := wavelength
			if wl <= 0 && len(c.Wavelengths) > 0 {
				wl = c.Wavelengths[len(c.Wavelengths)/2]
			}

			slice := c.Slice(wl)
			if !slice.IsValid() {
				return fmt.Errorf("no valid slice at wavelength %v", wl)
			}

			imgBytes, err := imageedit.GetImageBytes(imageedit.ScaleImage(imageedit.SliceToGray16(slice), width), imgFormat)
			if err != nil {
				return err
			}

			fs, root, rel, err := env.resolve(args[1])
			if err != nil {
				return err
			}

			err = fs.WriteObject(root, rel, imgBytes)
			if err != nil {
				return err
			}

			env.log.Infof("Wrote slice of band %v (%v) to %v, %v missing pixels", slice.Band, slice.Wavelength, args[1], slice.MissingCount)
			return nil
		},
	}

	cmd.Flags().Float64Var(&wavelength, "wavelength", 0, "Wavelength to slice at. Default: middle band")
	cmd.Flags().StringVar(&format, "format", "", "png or tiff. Default: from output file extension")
	cmd.Flags().IntVar(&width, "width", 0, "Scale image to this width. Default: one pixel per sample")
	return cmd
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// convert

func newConvertCmd(env *toolEnv) *cobra.Command {
	layoutName := ""

	cmd := &cobra.Command{
		Use:   "convert <header> <out-header>",
		Short: "Rewrite a cube with a different interleave",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, ok := interleave.ParseLayout(layoutName)
			if !ok {
				return fmt.Errorf("invalid interleave: \"%v\", expected one of bsq, bil, bip", layoutName)
			}

			c, err := env.load(args[0])
			if err != nil {
				return err
			}

			if c.Interleave == layout {
				env.log.Infof("%v is already %v, writing a copy", args[0], strings.ToUpper(layout.String()))
			}

			c.Interleave = layout
			return env.save(c, args[1])
		},
	}

	cmd.Flags().StringVar(&layoutName, "interleave", interleave.BSQ.String(), "Target interleave: bsq, bil or bip")
	return cmd
}
