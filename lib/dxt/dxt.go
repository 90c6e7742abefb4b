// Copyright 2026 The Dxt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package dxt implements the DXT (S3 Texture Compression) block texture
// formats, also known as BC1, BC2 and BC3.
//
// DXT textures are usually wrapped in .dds (DirectDraw Surface) container
// files, which prepend a 128 byte header stating width, height, format and
// mipmap count.
//
// DXT is specified at
// https://learn.microsoft.com/en-us/windows/win32/direct3d10/d3d10-graphics-programming-guide-resources-block-compression
package dxt

import (
	"errors"
	"image"
	"image/color"
)

var (
	ErrBadArgument     = errors.New("dxt: bad argument")
	ErrBadImageType    = errors.New("dxt: bad image type")
	ErrImageIsTooLarge = errors.New("dxt: image is too large")
)

// SubsettableImage is an image.Image that also has a SubImage method, like
// all of the Go standard library's image types.
type SubsettableImage interface {
	image.Image
	SubImage(r image.Rectangle) image.Image
}

// AlphaModel is a Format's transparency model.
type AlphaModel uint8

const (
	AlphaModelOpaque = AlphaModel(0)
	AlphaModel1Bit   = AlphaModel(1)
	AlphaModel4Bit   = AlphaModel(2)
	AlphaModelRamp   = AlphaModel(3)
)

// Format gives the specialization of the DXT family.
//
// Non-negative values have a FourCC counterpart in the DDS file format.
// Negative values do not. They can be passed to Encode (they reuse the DXT1
// block layout) but are not used by Decode.
//
// FormatDXT1a shares DXT1's FourCC: the punch-through palette mode is
// selected per block by the endpoint ordering, not by the container.
type Format int8

const (
	// FormatDXT1Green compresses only the green channel, spending the
	// exhaustive-search budget that single-channel data (height maps,
	// gloss maps) merits. The output is decodable as ordinary DXT1.
	FormatDXT1Green = Format(-1)

	FormatInvalid = Format(0x00)

	FormatDXT1  = Format(0x01)
	FormatDXT1a = Format(0x02)
	FormatDXT3  = Format(0x03)
	FormatDXT5  = Format(0x04)
)

// AlphaModel returns the Format's transparency model.
func (f Format) AlphaModel() AlphaModel {
	switch f {
	case FormatDXT1Green,
		FormatDXT1:
		return AlphaModelOpaque
	case FormatDXT1a:
		return AlphaModel1Bit
	case FormatDXT3:
		return AlphaModel4Bit
	case FormatDXT5:
		return AlphaModelRamp
	}

	return 0
}

// BytesPerBlock returns the Format-dependent number of bytes used to encode
// each 4×4 pixel block.
func (f Format) BytesPerBlock() int {
	switch f {
	case FormatDXT1Green,
		FormatDXT1,
		FormatDXT1a:
		return 8

	case FormatDXT3,
		FormatDXT5:
		return 16
	}

	return 0
}

// FourCC returns the four character code identifying the Format in a DDS
// pixel format header, or the empty string for Formats (negative values)
// with no DDS counterpart.
func (f Format) FourCC() string {
	switch f {
	case FormatDXT1, FormatDXT1a:
		return "DXT1"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT5:
		return "DXT5"
	}

	return ""
}

// ColorModel returns the Go standard library's color model that best matches
// the Format.
func (f Format) ColorModel() color.Model {
	switch f {
	case FormatDXT1Green,
		FormatDXT1,
		FormatDXT1a:
		return color.RGBAModel

	case FormatDXT3,
		FormatDXT5:
		return color.NRGBAModel
	}

	return nil
}

// NewImage returns an image.Image, whose concrete type is one of the
// standard library's image types, that's suitable for the Format.
//
// The requested width and height will be rounded up to a multiple of 4.
//
// It returns an error if the width or height is negative or above 65536.
func (f Format) NewImage(width int, height int) (SubsettableImage, error) {
	if (width < 0) || (width >= 65536) ||
		(height < 0) || (height >= 65536) {
		return nil, ErrBadArgument
	}
	r := image.Rect(0, 0, (width+3)&^3, (height+3)&^3)

	switch f {
	case FormatDXT1Green,
		FormatDXT1,
		FormatDXT1a:
		return image.NewRGBA(r), nil

	case FormatDXT3,
		FormatDXT5:
		return image.NewNRGBA(r), nil
	}

	return nil, ErrBadArgument
}

// String returns the Format's name.
func (f Format) String() string {
	switch f {
	case FormatDXT1Green:
		return "DXT1Green"
	case FormatDXT1:
		return "DXT1"
	case FormatDXT1a:
		return "DXT1a"
	case FormatDXT3:
		return "DXT3"
	case FormatDXT5:
		return "DXT5"
	}

	return "Invalid"
}
