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

// Turning cube slices into images we can send to a browser or save next to a cube
package imageedit

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/tiff"
)

const FormatPNG = "png"
const FormatTIFF = "tiff"

var SupportedFormats = []string{FormatPNG, FormatTIFF}

// GetImageBytes - encodes img in the given format (png or tiff)
func GetImageBytes(img image.Image, imgFormat string) ([]byte, error) {
	var b bytes.Buffer
	writer := bufio.NewWriter(&b)

	var err error
	switch imgFormat {
	case FormatPNG:
		err = png.Encode(writer, img)
	case FormatTIFF:
		// Slices are 16 bit grey, deflate keeps them a sane size without losing anything
		err = tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unexpected image format: %v", imgFormat)
	}

	if err != nil {
		return nil, err
	}

	err = writer.Flush()
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// ContentType - mime type to send with the bytes from GetImageBytes
func ContentType(imgFormat string) string {
	if imgFormat == FormatTIFF {
		return "image/tiff"
	}
	return "image/png"
}
