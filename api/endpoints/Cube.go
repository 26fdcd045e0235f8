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

package endpoints

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/pixlise/hypercube/api/handlers"
	apiRouter "github.com/pixlise/hypercube/api/router"
	"github.com/pixlise/hypercube/api/services"
	"github.com/pixlise/hypercube/core/cube"
	"github.com/pixlise/hypercube/core/errorwithstatus"
	"github.com/pixlise/hypercube/core/imageedit"
	"github.com/pixlise/hypercube/core/resample"
	"github.com/pixlise/hypercube/core/utils"
	"google.golang.org/protobuf/types/known/structpb"
)

const cubePathParam = "path"
const cubePrefix = "cube"

func registerCubeHandler(router *apiRouter.ApiObjectRouter) {
	router.AddJSONHandler(handlers.MakeEndpointPath("cubes"), http.MethodGet, cubeList)

	router.AddGenericHandler(handlers.MakeEndpointPath(cubePrefix+"/info"), http.MethodGet, cubeInfo)
	router.AddJSONHandler(handlers.MakeEndpointPath(cubePrefix+"/pixel", "line", "sample"), http.MethodGet, cubePixel)
	router.AddJSONHandler(handlers.MakeEndpointPath(cubePrefix+"/resampled", "line", "sample"), http.MethodGet, cubeResampledPixel)

	router.AddGenericHandler(handlers.MakeEndpointPath(cubePrefix+"/slice"), http.MethodGet, cubeSliceImage)
	router.AddGenericHandler(handlers.MakeEndpointPath(cubePrefix+"/slice", "wavelength"), http.MethodGet, cubeSliceImage)
	router.AddJSONHandler(handlers.MakeEndpointPath(cubePrefix+"/slice-stats", "wavelength"), http.MethodGet, cubeSliceStats)

	router.AddGenericHandler(handlers.MakeEndpointPath(cubePrefix+"/crop"), http.MethodPost, cubeCrop)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Response types. Missing values are NaN in a cube, which JSON can't hold, so they go out as null

type TraceResponse struct {
	Wavelengths []float64  `json:"wavelengths"`
	Values      []*float64 `json:"values"`
	Valid       bool       `json:"valid"`
	Min         *float64   `json:"min"`
	Max         *float64   `json:"max"`
	Mean        *float64   `json:"mean"`
	StdDev      *float64   `json:"stdDev"`
}

type SliceStatsResponse struct {
	Wavelength   float64  `json:"wavelength"`
	Band         int      `json:"band"`
	Lines        int      `json:"lines"`
	Samples      int      `json:"samples"`
	Min          *float64 `json:"min"`
	Max          *float64 `json:"max"`
	MissingCount int      `json:"missingCount"`
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func makeTraceResponse(t cube.Trace) TraceResponse {
	result := TraceResponse{
		Wavelengths: t.Wavelengths,
		Values:      make([]*float64, 0, len(t.Values)),
		Valid:       t.IsValid(),
		Min:         nullable(t.Min()),
		Max:         nullable(t.Max()),
		Mean:        nullable(t.Mean()),
		StdDev:      nullable(t.StdDev()),
	}

	for _, v := range t.Values {
		result.Values = append(result.Values, nullable(v))
	}

	return result
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Helpers

func getCube(svcs *services.APIServices, params map[string]string) (string, *cube.DataCube, error) {
	headerPath, err := handlers.RequiredParam(params, cubePathParam)
	if err != nil {
		return "", nil, err
	}

	c, err := svcs.Cubes.Get(headerPath)
	if err != nil {
		return headerPath, nil, errorwithstatus.FromCubeError(err, svcs.FS.IsNotFoundError)
	}

	return headerPath, c, nil
}

func getPixelPosition(c *cube.DataCube, params map[string]string) (int, int, error) {
	line, err := handlers.IntParam(params, "line")
	if err != nil {
		return 0, 0, err
	}
	sample, err := handlers.IntParam(params, "sample")
	if err != nil {
		return 0, 0, err
	}

	if line < 0 || line >= c.Lines || sample < 0 || sample >= c.Samples {
		return 0, 0, errorwithstatus.MakeBadRequestError(fmt.Errorf("pixel %v,%v is outside cube of %v lines, %v samples", line, sample, c.Lines, c.Samples))
	}

	return line, sample, nil
}

func makeCubeInfo(headerPath string, c *cube.DataCube) (*structpb.Struct, error) {
	description := []interface{}{}
	for _, line := range c.Description {
		description = append(description, line)
	}

	wavelengths := []interface{}{}
	for _, wl := range c.Wavelengths {
		wavelengths = append(wavelengths, wl)
	}

	info := map[string]interface{}{
		"path":         headerPath,
		"dataPath":     cube.DataPathForHeader(headerPath),
		"description":  description,
		"lines":        c.Lines,
		"samples":      c.Samples,
		"bands":        c.Bands,
		"dataType":     c.DataType,
		"interleave":   c.Interleave.String(),
		"headerOffset": c.HeaderOffset,
		"byteOrder":    c.ByteOrder,
		"fileType":     c.FileType,
		"wavelengths":  wavelengths,
		"valid":        c.IsValid(),
	}

	if v := nullable(c.IgnoreValue); v != nil {
		info["ignoreValue"] = *v
	}

	return structpb.NewStruct(info)
}

func sendCubeInfo(w http.ResponseWriter, headerPath string, c *cube.DataCube) error {
	info, err := makeCubeInfo(headerPath, c)
	if err != nil {
		return err
	}

	utils.SendProtoJSON(w, info)
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Handlers

func cubeList(params handlers.ApiHandlerParams) (interface{}, error) {
	paths, err := params.Svcs.FS.ListObjects(params.Svcs.Config.CubeRoot, params.PathParams["prefix"])
	if err != nil {
		return nil, err
	}

	result := []string{}
	for _, p := range paths {
		if utils.HasExtension(p, cube.HeaderFileExtension) {
			result = append(result, p)
		}
	}

	return result, nil
}

func cubeInfo(params handlers.ApiHandlerGenericParams) error {
	headerPath, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return err
	}

	return sendCubeInfo(params.Writer, headerPath, c)
}

func cubePixel(params handlers.ApiHandlerParams) (interface{}, error) {
	_, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return nil, err
	}

	line, sample, err := getPixelPosition(c, params.PathParams)
	if err != nil {
		return nil, err
	}

	_, hasFrom := params.PathParams["from"]
	_, hasTo := params.PathParams["to"]
	if !hasFrom && !hasTo {
		return makeTraceResponse(c.Pixel(line, sample)), nil
	}

	from, err := handlers.OptionalFloatParam(params.PathParams, "from", math.Inf(-1))
	if err != nil {
		return nil, err
	}
	to, err := handlers.OptionalFloatParam(params.PathParams, "to", math.Inf(1))
	if err != nil {
		return nil, err
	}

	return makeTraceResponse(c.PixelInRange(line, sample, from, to)), nil
}

func cubeResampledPixel(params handlers.ApiHandlerParams) (interface{}, error) {
	_, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return nil, err
	}

	line, sample, err := getPixelPosition(c, params.PathParams)
	if err != nil {
		return nil, err
	}

	var r *resample.Resampler
	if list, ok := params.PathParams["wavelengths"]; ok {
		targets, err := utils.ParseFloatList(list, ",")
		if err != nil {
			return nil, errorwithstatus.MakeBadRequestError(err)
		}
		r = resample.New(targets, c.Wavelengths)
	} else {
		start, err := handlers.FloatParam(params.PathParams, "start")
		if err != nil {
			return nil, err
		}
		stop, err := handlers.FloatParam(params.PathParams, "stop")
		if err != nil {
			return nil, err
		}
		step, err := handlers.FloatParam(params.PathParams, "step")
		if err != nil {
			return nil, err
		}
		r = resample.NewRegular(start, stop, step, c.Wavelengths)
	}

	if r.IsEmpty() {
		return nil, errorwithstatus.MakeBadRequestError(errors.New("resample grid is empty"))
	}

	return makeTraceResponse(c.ResampledPixelWith(r, line, sample)), nil
}

// Wavelength from the path if given, then the configured default, then the middle band
func getSliceWavelength(svcs *services.APIServices, c *cube.DataCube, params map[string]string) (float64, error) {
	if _, ok := params["wavelength"]; ok {
		return handlers.FloatParam(params, "wavelength")
	}

	if svcs.Config.DefaultSliceWavelength > 0 {
		return svcs.Config.DefaultSliceWavelength, nil
	}

	if len(c.Wavelengths) <= 0 {
		return 0, errorwithstatus.MakeStatusError(http.StatusUnprocessableEntity, errors.New("cube has no bands"))
	}
	return c.Wavelengths[len(c.Wavelengths)/2], nil
}

func getSlice(svcs *services.APIServices, c *cube.DataCube, params map[string]string) (cube.Slice, error) {
	wavelength, err := getSliceWavelength(svcs, c, params)
	if err != nil {
		return cube.Slice{}, err
	}

	slice := c.Slice(wavelength)
	if !slice.IsValid() {
		return slice, errorwithstatus.MakeStatusError(http.StatusUnprocessableEntity, fmt.Errorf("no valid slice at wavelength %v", wavelength))
	}

	return slice, nil
}

func cubeSliceImage(params handlers.ApiHandlerGenericParams) error {
	_, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return err
	}

	format := params.PathParams["format"]
	if len(format) <= 0 {
		format = imageedit.FormatPNG
	}
	if !utils.ItemInSlice(format, imageedit.SupportedFormats) {
		return errorwithstatus.MakeBadRequestError(fmt.Errorf("unsupported image format: %v", format))
	}

	width := 0
	if widthStr := params.PathParams["width"]; len(widthStr) > 0 {
		width, err = strconv.Atoi(widthStr)
		if err != nil || width < 0 {
			return errorwithstatus.MakeBadRequestError(fmt.Errorf("invalid width: %v", widthStr))
		}
	}

	slice, err := getSlice(params.Svcs, c, params.PathParams)
	if err != nil {
		return err
	}

	img := imageedit.ScaleImage(imageedit.SliceToGray16(slice), width)
	imgBytes, err := imageedit.GetImageBytes(img, format)
	if err != nil {
		return err
	}

	params.Writer.Header().Set("Content-Type", imageedit.ContentType(format))
	params.Writer.Header().Set("Content-Length", strconv.Itoa(len(imgBytes)))
	_, err = params.Writer.Write(imgBytes)
	return err
}

func cubeSliceStats(params handlers.ApiHandlerParams) (interface{}, error) {
	_, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return nil, err
	}

	slice, err := getSlice(params.Svcs, c, params.PathParams)
	if err != nil {
		return nil, err
	}

	return SliceStatsResponse{
		Wavelength:   slice.Wavelength,
		Band:         slice.Band,
		Lines:        slice.Lines,
		Samples:      slice.Samples,
		Min:          nullable(slice.Min),
		Max:          nullable(slice.Max),
		MissingCount: slice.MissingCount,
	}, nil
}

func cubeCrop(params handlers.ApiHandlerGenericParams) error {
	_, c, err := getCube(params.Svcs, params.PathParams)
	if err != nil {
		return err
	}

	outPath, err := handlers.RequiredParam(params.PathParams, "out")
	if err != nil {
		return err
	}
	if !utils.HasExtension(outPath, cube.HeaderFileExtension) {
		return errorwithstatus.MakeBadRequestError(fmt.Errorf("output path must end in %v: %v", cube.HeaderFileExtension, outPath))
	}

	// Line and sample ranges are from:to with to excluded, as Crop takes them
	lineFrom, lineTo := 0, c.Lines
	if lines, ok := params.PathParams["lines"]; ok {
		if lineFrom, lineTo, err = utils.ParseIntRange(lines); err != nil {
			return errorwithstatus.MakeBadRequestError(err)
		}
	}

	sampleFrom, sampleTo := 0, c.Samples
	if samples, ok := params.PathParams["samples"]; ok {
		if sampleFrom, sampleTo, err = utils.ParseIntRange(samples); err != nil {
			return errorwithstatus.MakeBadRequestError(err)
		}
	}

	wlFrom, wlTo := math.Inf(-1), math.Inf(1)
	if wl, ok := params.PathParams["wl"]; ok {
		if wlFrom, wlTo, err = utils.ParseFloatRange(wl); err != nil {
			return errorwithstatus.MakeBadRequestError(err)
		}
	}

	cropped := c.Crop(lineFrom, lineTo, sampleFrom, sampleTo, wlFrom, wlTo)
	if !cropped.IsValid() {
		return errorwithstatus.MakeBadRequestError(errors.New("crop bounds do not select any data"))
	}

	err = cropped.Save(params.Svcs.FS, params.Svcs.Config.CubeRoot, outPath, params.Svcs.Log)
	if err != nil {
		return err
	}

	// In case an older version of it was cached
	params.Svcs.Cubes.Forget(outPath)

	params.Svcs.Log.Infof("Cropped %v to %v: %vx%vx%v", params.PathParams[cubePathParam], outPath, cropped.Lines, cropped.Samples, cropped.Bands)
	return sendCubeInfo(params.Writer, outPath, cropped)
}
