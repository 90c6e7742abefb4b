// Copyright 2026 The Dxt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt

import (
	"image"
	"image/color"
	"io"
)

// Decode reads blocksWide × blocksHigh compressed blocks from r and writes
// the decoded pixels to dst, whose concrete type must match what f.NewImage
// returns.
//
// Decoding reproduces the hardware palette reconstruction: 5:6:5 endpoints
// expand by bit replication and a color block whose first packed endpoint
// does not exceed its second uses the three-color punch-through palette.
func (f Format) Decode(dst SubsettableImage, r io.Reader, blocksWide int, blocksHigh int) error {
	if (dst == nil) || (r == nil) || (blocksWide <= 0) || (blocksHigh <= 0) {
		return ErrBadArgument
	}

	switch f {
	case FormatDXT1, FormatDXT1a:
		m, ok := dst.(*image.RGBA)
		if !ok {
			return ErrBadImageType
		}
		return decodeDXT1(m, r, blocksWide, blocksHigh, f == FormatDXT1a)

	case FormatDXT3, FormatDXT5:
		m, ok := dst.(*image.NRGBA)
		if !ok {
			return ErrBadImageType
		}
		return decodeDXT35(m, r, blocksWide, blocksHigh, f == FormatDXT5)
	}

	return ErrBadArgument
}

func expand565(c uint16) (r uint8, g uint8, b uint8) {
	r5 := uint8((c >> 11) & 31)
	g6 := uint8((c >> 5) & 63)
	b5 := uint8(c & 31)
	return (r5 << 3) | (r5 >> 2), (g6 << 2) | (g6 >> 4), (b5 << 3) | (b5 >> 2)
}

// decodeColorPalette reconstructs the four RGBA palette entries of a color
// sub-block. fourColor forces the four-color mode regardless of endpoint
// ordering, as hardware does for the color halves of DXT3 and DXT5 blocks.
func decodeColorPalette(buf []byte, palette *[4][4]uint8, fourColor bool) uint32 {
	c0 := uint16(buf[0]) | (uint16(buf[1]) << 8)
	c1 := uint16(buf[2]) | (uint16(buf[3]) << 8)

	r0, g0, b0 := expand565(c0)
	r1, g1, b1 := expand565(c1)

	palette[0] = [4]uint8{r0, g0, b0, 255}
	palette[1] = [4]uint8{r1, g1, b1, 255}

	if fourColor || (c0 > c1) {
		palette[2] = [4]uint8{
			uint8(((2 * uint32(r0)) + uint32(r1)) / 3),
			uint8(((2 * uint32(g0)) + uint32(g1)) / 3),
			uint8(((2 * uint32(b0)) + uint32(b1)) / 3),
			255,
		}
		palette[3] = [4]uint8{
			uint8((uint32(r0) + (2 * uint32(r1))) / 3),
			uint8((uint32(g0) + (2 * uint32(g1))) / 3),
			uint8((uint32(b0) + (2 * uint32(b1))) / 3),
			255,
		}
	} else {
		palette[2] = [4]uint8{
			uint8((uint32(r0) + uint32(r1)) / 2),
			uint8((uint32(g0) + uint32(g1)) / 2),
			uint8((uint32(b0) + uint32(b1)) / 2),
			255,
		}
		palette[3] = [4]uint8{0, 0, 0, 0}
	}

	return uint32(buf[4]) | (uint32(buf[5]) << 8) | (uint32(buf[6]) << 16) | (uint32(buf[7]) << 24)
}

func decodeDXT1(dst *image.RGBA, r io.Reader, blocksWide int, blocksHigh int, oneBitAlpha bool) error {
	buf := make([]byte, 8*blocksWide)
	palette := [4][4]uint8{}

	for blockY := range blocksHigh {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}

		for blockX := range blocksWide {
			indices := decodeColorPalette(buf[8*blockX:], &palette, false)

			for y := range 4 {
				for x := range 4 {
					p := palette[(indices>>(2*((4*y)+x)))&3]
					if !oneBitAlpha {
						p[3] = 255
					}
					dst.SetRGBA((4*blockX)+x, (4*blockY)+y, color.RGBA{p[0], p[1], p[2], p[3]})
				}
			}
		}
	}
	return nil
}

func decodeDXT35(dst *image.NRGBA, r io.Reader, blocksWide int, blocksHigh int, ramp bool) error {
	buf := make([]byte, 16*blocksWide)
	palette := [4][4]uint8{}
	alphas := [8]uint8{}

	for blockY := range blocksHigh {
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}

		for blockX := range blocksWide {
			ab := buf[16*blockX:]
			indices := decodeColorPalette(ab[8:], &palette, true)

			alphaBits := uint64(0)
			if ramp {
				evaluateAlphaPalette(ab[0], ab[1], &alphas)
				for i := range 6 {
					alphaBits |= uint64(ab[2+i]) << (8 * i)
				}
			} else {
				for i := range 8 {
					alphaBits |= uint64(ab[i]) << (8 * i)
				}
			}

			for y := range 4 {
				for x := range 4 {
					i := (4 * y) + x
					p := palette[(indices>>(2*i))&3]

					a := uint8(0)
					if ramp {
						a = alphas[(alphaBits>>(3*i))&7]
					} else {
						a4 := uint8((alphaBits >> (4 * i)) & 15)
						a = (a4 << 4) | a4
					}

					dst.SetNRGBA((4*blockX)+x, (4*blockY)+y, color.NRGBA{p[0], p[1], p[2], a})
				}
			}
		}
	}
	return nil
}
