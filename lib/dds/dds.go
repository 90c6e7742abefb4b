// Copyright 2026 The Dxt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package dds implements the DDS (DirectDraw Surface) container format for
// DXT textures.
//
// A DDS file is a 4 byte magic string, a 124 byte little-endian header
// (dimensions, mipmap count and a FourCC pixel format tag) and then the
// compressed blocks of each mipmap level, largest first.
package dds

import (
	"errors"
	"image"
	"io"
	"math/bits"

	"golang.org/x/image/draw"

	"github.com/timur-losev/nvidia-texture-tools/lib/dxt"
)

// Magic is the byte string prefix of every DDS image file.
const Magic = "DDS "

func init() {
	image.RegisterFormat("dds", Magic, Decode, DecodeConfig)
}

var (
	ErrBadArgument     = errors.New("dds: bad argument")
	ErrNotADDSFile     = errors.New("dds: not a DDS file")
	ErrImageIsTooLarge = errors.New("dds: image is too large")
)

const (
	headerSize = 128 // Magic plus the 124 byte header.

	flagCaps        = 0x00000001
	flagHeight      = 0x00000002
	flagWidth       = 0x00000004
	flagPixelFormat = 0x00001000
	flagMipMapCount = 0x00020000
	flagLinearSize  = 0x00080000

	pixelFormatFlagFourCC = 0x00000004

	capsComplex = 0x00000008
	capsTexture = 0x00001000
	capsMipMap  = 0x00400000
)

func readU32LE(b []byte) uint32 {
	return uint32(b[0]) | (uint32(b[1]) << 8) | (uint32(b[2]) << 16) | (uint32(b[3]) << 24)
}

func writeU32LE(b []byte, v uint32) {
	b[0] = uint8(v >> 0)
	b[1] = uint8(v >> 8)
	b[2] = uint8(v >> 16)
	b[3] = uint8(v >> 24)
}

func decodeConfig(r io.Reader) (retFormat dxt.Format, retConfig image.Config, retErr error) {
	buf := [headerSize]byte{}
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, image.Config{}, err
	} else if (buf[0] != Magic[0]) ||
		(buf[1] != Magic[1]) ||
		(buf[2] != Magic[2]) ||
		(buf[3] != Magic[3]) ||
		(readU32LE(buf[0x04:]) != 124) ||
		(readU32LE(buf[0x4C:]) != 32) {
		return 0, image.Config{}, ErrNotADDSFile
	}

	flags := readU32LE(buf[0x08:])
	if (flags & (flagCaps | flagHeight | flagWidth | flagPixelFormat)) !=
		(flagCaps | flagHeight | flagWidth | flagPixelFormat) {
		return 0, image.Config{}, ErrNotADDSFile
	}

	if (readU32LE(buf[0x50:]) & pixelFormatFlagFourCC) == 0 {
		return 0, image.Config{}, ErrNotADDSFile
	}

	// DXT1's FourCC covers both the opaque and punch-through palette modes
	// (the mode is a per-block property), so decode it as DXT1a to honor
	// whatever transparency the blocks carry.
	switch string(buf[0x54:0x58]) {
	case "DXT1":
		retFormat = dxt.FormatDXT1a
	case "DXT3":
		retFormat = dxt.FormatDXT3
	case "DXT5":
		retFormat = dxt.FormatDXT5
	default:
		return 0, image.Config{}, ErrNotADDSFile
	}

	height := readU32LE(buf[0x0C:])
	width := readU32LE(buf[0x10:])
	if (width == 0) || (width > 65532) || (height == 0) || (height > 65532) {
		return 0, image.Config{}, ErrImageIsTooLarge
	}

	return retFormat, image.Config{
		ColorModel: retFormat.ColorModel(),
		Width:      int(width),
		Height:     int(height),
	}, nil
}

// DecodeConfig reads a DDS image configuration from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	_, config, err := decodeConfig(r)
	return config, err
}

// Decode reads a DDS image from r.
//
// Only the largest mipmap level is decoded; any further levels in the stream
// are left unread.
func Decode(r io.Reader) (image.Image, error) {
	format, config, err := decodeConfig(r)
	if err != nil {
		return nil, err
	}
	m, err := format.NewImage(config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	if err = format.Decode(m, r, b.Dx()/4, b.Dy()/4); err != nil {
		return nil, err
	}
	return m.SubImage(image.Rect(0, 0, config.Width, config.Height)), nil
}

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
type EncodeOptions struct {
	// If zero, the default is to use dxt.FormatDXT5.
	Format dxt.Format

	// GenerateMipmaps appends a full mipmap chain after the top level, each
	// level downscaled from the source and compressed independently.
	GenerateMipmaps bool
}

// Encode writes src to w in the DDS format.
//
// options may be nil, which means to use the default configuration.
func Encode(w io.Writer, src image.Image, options *EncodeOptions) error {
	b := src.Bounds()
	bW, bH := b.Dx(), b.Dy()
	if (bW <= 0) || (bH <= 0) {
		return ErrBadArgument
	}
	if (bW > 65532) || (bH > 65532) {
		return ErrImageIsTooLarge
	}

	f := dxt.FormatDXT5
	if (options != nil) && (options.Format != 0) {
		f = options.Format
	}
	if f.FourCC() == "" {
		return ErrBadArgument
	}

	mipMapCount := 1
	if (options != nil) && options.GenerateMipmaps {
		mipMapCount = bits.Len(uint(max(bW, bH)))
	}

	topLevelSize := (((bW + 3) / 4) * ((bH + 3) / 4)) * f.BytesPerBlock()

	buf := [headerSize]byte{}
	copy(buf[:4], Magic)
	writeU32LE(buf[0x04:], 124)
	flags := uint32(flagCaps | flagHeight | flagWidth | flagPixelFormat | flagLinearSize)
	caps := uint32(capsTexture)
	if mipMapCount > 1 {
		flags |= flagMipMapCount
		caps |= capsComplex | capsMipMap
	}
	writeU32LE(buf[0x08:], flags)
	writeU32LE(buf[0x0C:], uint32(bH))
	writeU32LE(buf[0x10:], uint32(bW))
	writeU32LE(buf[0x14:], uint32(topLevelSize))
	writeU32LE(buf[0x1C:], uint32(mipMapCount))
	writeU32LE(buf[0x4C:], 32)
	writeU32LE(buf[0x50:], pixelFormatFlagFourCC)
	copy(buf[0x54:0x58], f.FourCC())
	writeU32LE(buf[0x6C:], caps)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	if err := dxt.Encode(w, src, f, nil); err != nil {
		return err
	}

	for level := 1; level < mipMapCount; level++ {
		mW := max(1, bW>>level)
		mH := max(1, bH>>level)
		m := image.NewNRGBA(image.Rect(0, 0, mW, mH))
		draw.CatmullRom.Scale(m, m.Bounds(), src, b, draw.Src, nil)

		if err := dxt.Encode(w, m, f, nil); err != nil {
			return err
		}
	}
	return nil
}
