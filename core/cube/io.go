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

package cube

import (
	"bytes"

	"github.com/pixlise/hypercube/core/enviheader"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/interleave"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/utils"
	"github.com/pkg/errors"
)

const HeaderFileExtension = ".hdr"
const DataFileExtension = ".img"

// DataPathForHeader - the data file sitting next to a header. scan.hdr -> scan.img, anything not ending in .hdr
// just gets .img added
func DataPathForHeader(headerPath string) string {
	if utils.HasExtension(headerPath, HeaderFileExtension) {
		return utils.ReplaceExtension(headerPath, DataFileExtension)
	}
	return headerPath + DataFileExtension
}

// FromBytes - builds a cube from header file and data file contents
func FromBytes(headerBytes []byte, dataBytes []byte) (*DataCube, error) {
	h, err := enviheader.Parse(bytes.NewReader(headerBytes))
	if err != nil {
		return nil, err
	}

	padding, data, err := interleave.Decode(dataBytes, h.Geometry())
	if err != nil {
		return nil, err
	}

	return &DataCube{Header: h, HeaderPadding: padding, Data: data}, nil
}

// Load - reads the header at headerPath and its data file from fs. On failure no cube is returned
func Load(fs fileaccess.FileAccess, root string, headerPath string, log logger.ILogger) (*DataCube, error) {
	headerBytes, err := fs.ReadObject(root, headerPath)
	if err != nil {
		log.Errorf("Failed to read cube header %v: %v", headerPath, err)
		return nil, errors.Wrapf(err, "failed to read header: %v", headerPath)
	}

	h, err := enviheader.Parse(bytes.NewReader(headerBytes))
	if err != nil {
		log.Errorf("Failed to parse cube header %v: %v", headerPath, err)
		return nil, errors.Wrapf(err, "failed to parse header: %v", headerPath)
	}

	dataPath := DataPathForHeader(headerPath)
	dataBytes, err := fs.ReadObject(root, dataPath)
	if err != nil {
		log.Errorf("Failed to read cube data %v: %v", dataPath, err)
		return nil, errors.Wrapf(err, "failed to read data file: %v", dataPath)
	}

	padding, data, err := interleave.Decode(dataBytes, h.Geometry())
	if err != nil {
		log.Errorf("Failed to decode cube data %v: %v", dataPath, err)
		return nil, errors.Wrapf(err, "failed to read data file: %v", dataPath)
	}

	log.Debugf("Loaded cube %v: %vx%vx%v %v, %v data bytes", headerPath, h.Lines, h.Samples, h.Bands, h.Interleave, len(dataBytes))
	return &DataCube{Header: h, HeaderPadding: padding, Data: data}, nil
}

// LoadFile - Load from the local file system
func LoadFile(headerPath string, log logger.ILogger) (*DataCube, error) {
	return Load(&fileaccess.FSAccess{}, "", headerPath, log)
}

// DataBytes - the data file contents for this cube in its current interleave. Header padding is written first
func (c *DataCube) DataBytes() ([]byte, error) {
	return interleave.EncodeBytes(c.HeaderPadding, c.Data, c.Geometry())
}

// Save - writes the header to headerPath and data next to it. If there's no data or no wavelengths, only the
// header is written
func (c *DataCube) Save(fs fileaccess.FileAccess, root string, headerPath string, log logger.ILogger) error {
	var dataBytes []byte
	hasData := len(c.Data) > 0 && len(c.Wavelengths) > 0

	// Encode first so a bad cube doesn't leave a header with no matching data behind
	if hasData {
		var err error
		dataBytes, err = c.DataBytes()
		if err != nil {
			log.Errorf("Failed to encode cube data for %v: %v", headerPath, err)
			return errors.Wrapf(err, "failed to encode data for: %v", headerPath)
		}
	}

	err := fs.WriteObject(root, headerPath, c.Header.Bytes())
	if err != nil {
		log.Errorf("Failed to write cube header %v: %v", headerPath, err)
		return errors.Wrapf(err, "failed to write header: %v", headerPath)
	}

	if !hasData {
		log.Infof("Cube %v has no data, only header written", headerPath)
		return nil
	}

	dataPath := DataPathForHeader(headerPath)
	err = fs.WriteObject(root, dataPath, dataBytes)
	if err != nil {
		log.Errorf("Failed to write cube data %v: %v", dataPath, err)
		return errors.Wrapf(err, "failed to write data file: %v", dataPath)
	}

	log.Debugf("Saved cube %v: %vx%vx%v %v, %v data bytes", headerPath, c.Lines, c.Samples, c.Bands, c.Interleave, len(dataBytes))
	return nil
}

// SaveFile - Save to the local file system
func (c *DataCube) SaveFile(headerPath string, log logger.ILogger) error {
	return c.Save(&fileaccess.FSAccess{}, "", headerPath, log)
}
