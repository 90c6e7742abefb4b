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
	"io"
)

// EncodeOptions are optional arguments to Encode. The zero value is valid and
// means to use the default configuration.
//
// There are no fields for now, but there may be some in the future.
type EncodeOptions struct {
}

// Encode writes src to dst in the DXT format f.
//
// options may be nil, which means to use the default configuration.
func Encode(dst io.Writer, src image.Image, f Format, options *EncodeOptions) error {
	if (dst == nil) || (src == nil) || (f.BytesPerBlock() == 0) {
		return ErrBadArgument
	}

	b := src.Bounds()
	bW, bH := b.Dx(), b.Dy()
	if (bW > 65532) || (bH > 65532) {
		return ErrImageIsTooLarge
	}

	e, bufJ := &encoder{}, 0
	extract := makeExtract(&e.pixels, src)

	for blockY := 0; blockY < bH; blockY += 4 {
		for blockX := 0; blockX < bW; blockX += 4 {
			extract(blockX, blockY)

			// Color and alpha sub-blocks are computed independently and
			// concatenated, alpha first.
			switch f {
			case FormatDXT3:
				writeU64LE(e.buf[bufJ+0:], e.encodeAlphaTruncated())
				writeU64LE(e.buf[bufJ+8:], e.encodeColor(FormatDXT1))
				bufJ += 16

			case FormatDXT5:
				writeU64LE(e.buf[bufJ+0:], e.encodeAlphaRamp())
				writeU64LE(e.buf[bufJ+8:], e.encodeColor(FormatDXT1))
				bufJ += 16

			default:
				writeU64LE(e.buf[bufJ:], e.encodeColor(f))
				bufJ += 8
			}

			if bufJ >= encoderBufferSize {
				if _, err := dst.Write(e.buf[:]); err != nil {
					return err
				}
				bufJ = 0
			}
		}
	}

	if bufJ > 0 {
		if _, err := dst.Write(e.buf[:bufJ]); err != nil {
			return err
		}
	}
	return nil
}

const encoderBufferSize = 4096 - 64 - 64

type encoder struct {
	pixels [64]byte
	buf    [encoderBufferSize]byte
}

// colorBlock is the 8 byte DXT1 color sub-block: two packed 5:6:5 endpoints
// and a 32-bit index word, 2 bits per sample, raster order, least significant
// bits first.
//
// If col0 > col1 the block's palette is four interpolated colors. Otherwise
// the palette is the two endpoints, their midpoint and transparent black.
// Every step that can change the endpoints must restore this ordering.
type colorBlock struct {
	col0    uint16
	col1    uint16
	indices uint32
}

func (b *colorBlock) bits() uint64 {
	return uint64(b.col0) | (uint64(b.col1) << 16) | (uint64(b.indices) << 32)
}

// alphaBlock is the 8 byte DXT5 alpha sub-block: two 8-bit endpoints followed
// by 48 bits of indices, 3 bits per sample, raster order.
type alphaBlock struct {
	alpha0  uint8
	alpha1  uint8
	indices uint64 // 48 bits. Sample i's index is at bits [3i, 3i+3).
}

func (b *alphaBlock) index(i int) uint32 {
	return uint32(b.indices>>(3*i)) & 7
}

func (b *alphaBlock) setIndex(i int, v uint32) {
	b.indices = (b.indices &^ (7 << (3 * i))) | (uint64(v&7) << (3 * i))
}

func (b *alphaBlock) bits() uint64 {
	return uint64(b.alpha0) | (uint64(b.alpha1) << 8) | (b.indices << 16)
}

func (e *encoder) encodeColor(f Format) uint64 {
	b := colorBlock{}

	switch {
	case f == FormatDXT1Green:
		e.compressBlockGreen(&b)

	case (f == FormatDXT1a) && e.hasTransparentPixels():
		if e.uniformColor() && (e.pixels[3] == 0) {
			b.indices = 0xFFFF_FFFF
		} else {
			e.compressBlockPunchThrough(&b)
		}

	case e.uniformColor():
		compressUniformColor(&b, e.pixels[0], e.pixels[1], e.pixels[2])

	default:
		e.compressBlock(&b)
	}

	return b.bits()
}

// compressBlock encodes the block with the four-color palette: bounding-box
// endpoint estimation, quantization and one round of least-squares endpoint
// refinement.
func (e *encoder) compressBlock(b *colorBlock) {
	colors := [16][3]float32{}
	e.extractColors(&colors)

	maxColor, minColor := findMinMaxColorsBox(&colors, 16)
	selectDiagonal(&colors, 16, &maxColor, &minColor)
	insetBBox(&maxColor, &minColor)

	color0 := roundAndExpand(&maxColor)
	color1 := roundAndExpand(&minColor)
	if color0 < color1 {
		maxColor, minColor = minColor, maxColor
		color0, color1 = color1, color0
	}

	b.col0 = color0
	b.col1 = color1
	b.indices = computeIndices4(&colors, &maxColor, &minColor)

	e.optimizeEndpoints4(&colors, b)
}

// compressBlockPunchThrough encodes the block with the three-color palette,
// reserving the fourth entry for the block's sub-threshold alpha samples.
// Only the visible samples contribute to the endpoints.
func (e *encoder) compressBlockPunchThrough(b *colorBlock) {
	colors := [16][3]float32{}
	num := e.extractVisibleColors(&colors)

	maxColor, minColor := findMinMaxColorsBox(&colors, num)
	selectDiagonal(&colors, num, &maxColor, &minColor)
	insetBBox(&maxColor, &minColor)

	color0 := roundAndExpand(&maxColor)
	color1 := roundAndExpand(&minColor)
	if color0 < color1 {
		maxColor, minColor = minColor, maxColor
		color0, color1 = color1, color0
	}

	// col0 <= col1 selects the punch-through palette.
	b.col0 = color1
	b.col1 = color0
	b.indices = e.computeIndices3(&maxColor, &minColor)
}

// findMinMaxColorsBox returns the per-channel maximum and minimum over the
// first num samples: an axis-aligned bounding box in color space, a cheap
// substitute for a principal-component fit. With num == 0 the box degenerates
// to max = (0,0,0), min = (255,255,255).
func findMinMaxColorsBox(colors *[16][3]float32, num int) (maxColor [3]float32, minColor [3]float32) {
	maxColor = [3]float32{0, 0, 0}
	minColor = [3]float32{255, 255, 255}

	for i := range num {
		for c := range 3 {
			maxColor[c] = max(maxColor[c], colors[i][c])
			minColor[c] = min(minColor[c], colors[i][c])
		}
	}
	return maxColor, minColor
}

// selectDiagonal re-pairs the bounding box corners so that the endpoint
// segment follows the samples' actual elongation. The R and G coordinates
// swap independently whenever their covariance with B, about the box center,
// is negative.
func selectDiagonal(colors *[16][3]float32, num int, maxColor *[3]float32, minColor *[3]float32) {
	center := [3]float32{
		(maxColor[0] + minColor[0]) * 0.5,
		(maxColor[1] + minColor[1]) * 0.5,
		(maxColor[2] + minColor[2]) * 0.5,
	}

	covXZ, covYZ := float32(0), float32(0)
	for i := range num {
		t0 := colors[i][0] - center[0]
		t1 := colors[i][1] - center[1]
		t2 := colors[i][2] - center[2]
		covXZ += t0 * t2
		covYZ += t1 * t2
	}

	x0, y0 := maxColor[0], maxColor[1]
	x1, y1 := minColor[0], minColor[1]

	if covXZ < 0 {
		x0, x1 = x1, x0
	}
	if covYZ < 0 {
		y0, y1 = y1, y0
	}

	maxColor[0], maxColor[1] = x0, y0
	minColor[0], minColor[1] = x1, y1
}

// insetBBox shrinks the box toward its center by 1/16 of its extent, less a
// small epsilon, compensating for quantized interpolation overshooting at the
// extremes.
func insetBBox(maxColor *[3]float32, minColor *[3]float32) {
	const epsilon = (8.0 / 255.0) / 16.0

	for c := range 3 {
		inset := ((maxColor[c] - minColor[c]) / 16) - epsilon
		maxColor[c] = min(max(maxColor[c]-inset, 0), 255)
		minColor[c] = min(max(minColor[c]+inset, 0), 255)
	}
}

// roundAndExpand quantizes v to 5:6:5, returning the packed word, and
// overwrites v with the 8-bit expansion of the packed bits. The expansion
// replicates the high bits into the low bits, matching what the decoding
// hardware does, rather than rescaling linearly.
func roundAndExpand(v *[3]float32) uint16 {
	r := uint32(min(max(v[0]*(31.0/255.0), 0), 31) + 0.5)
	g := uint32(min(max(v[1]*(63.0/255.0), 0), 63) + 0.5)
	b := uint32(min(max(v[2]*(31.0/255.0), 0), 31) + 0.5)

	w := uint16((r << 11) | (g << 5) | b)

	r = (r << 3) | (r >> 2)
	g = (g << 2) | (g >> 4)
	b = (b << 3) | (b >> 2)
	v[0], v[1], v[2] = float32(r), float32(g), float32(b)

	return w
}

func colorDistance(c0 *[3]float32, c1 *[3]float32) float32 {
	d0 := c0[0] - c1[0]
	d1 := c0[1] - c1[1]
	d2 := c0[2] - c1[2]
	return (d0 * d0) + (d1 * d1) + (d2 * d2)
}

func lerpColor(c0 *[3]float32, c1 *[3]float32, t float32) [3]float32 {
	return [3]float32{
		c0[0] + ((c1[0] - c0[0]) * t),
		c0[1] + ((c1[1] - c0[1]) * t),
		c0[2] + ((c1[2] - c0[2]) * t),
	}
}

func btou32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// computeIndices4 assigns each sample to the nearest of the four palette
// entries implied by the (expanded) endpoints. The minimum is selected by a
// fixed comparison network whose tie-break order is part of the output
// format's expected encoder behavior; do not replace it with a generic
// min-of-four.
func computeIndices4(colors *[16][3]float32, maxColor *[3]float32, minColor *[3]float32) uint32 {
	palette := [4][3]float32{}
	palette[0] = *maxColor
	palette[1] = *minColor
	palette[2] = lerpColor(&palette[0], &palette[1], 1.0/3.0)
	palette[3] = lerpColor(&palette[0], &palette[1], 2.0/3.0)

	indices := uint32(0)
	for i := range 16 {
		d0 := colorDistance(&palette[0], &colors[i])
		d1 := colorDistance(&palette[1], &colors[i])
		d2 := colorDistance(&palette[2], &colors[i])
		d3 := colorDistance(&palette[3], &colors[i])

		b0 := btou32(d0 > d3)
		b1 := btou32(d1 > d2)
		b2 := btou32(d0 > d2)
		b3 := btou32(d1 > d3)
		b4 := btou32(d2 > d3)

		x0 := b1 & b2
		x1 := b0 & b3
		x2 := b0 & b4

		indices |= (x2 | ((x0 | x1) << 1)) << (2 * i)
	}

	return indices
}

// computeIndices3 assigns each visible sample to the nearest of the
// punch-through palette's three color entries. Sub-threshold samples are
// forced to index 3 (transparent) regardless of color distance.
func (e *encoder) computeIndices3(maxColor *[3]float32, minColor *[3]float32) uint32 {
	palette := [3][3]float32{}
	palette[0] = *minColor
	palette[1] = *maxColor
	palette[2] = [3]float32{
		(palette[0][0] + palette[1][0]) * 0.5,
		(palette[0][1] + palette[1][1]) * 0.5,
		(palette[0][2] + palette[1][2]) * 0.5,
	}

	indices := uint32(0)
	for i := range 16 {
		color := [3]float32{
			float32(e.pixels[(4*i)+0]),
			float32(e.pixels[(4*i)+1]),
			float32(e.pixels[(4*i)+2]),
		}

		d0 := colorDistance(&palette[0], &color)
		d1 := colorDistance(&palette[1], &color)
		d2 := colorDistance(&palette[2], &color)

		index := uint32(0)
		switch {
		case e.pixels[(4*i)+3] < 128:
			index = 3
		case (d0 < d1) && (d0 < d2):
			index = 0
		case d1 < d2:
			index = 1
		default:
			index = 2
		}

		indices |= index << (2 * i)
	}

	return indices
}

// optimizeEndpoints4 refines the block's endpoints by least squares, holding
// the index assignment fixed. Each sample is modeled as α·A + β·B with the
// basis weights implied by its index; the per-channel 2×2 normal equations
// are solved in closed form. A numerically singular system (for example, all
// samples sharing one index) leaves the block unchanged.
func (e *encoder) optimizeEndpoints4(colors *[16][3]float32, b *colorBlock) {
	alpha2Sum := float32(0)
	beta2Sum := float32(0)
	alphaBetaSum := float32(0)
	alphaXSum := [3]float32{}
	betaXSum := [3]float32{}

	for i := range 16 {
		bits := b.indices >> (2 * i)

		beta := float32(bits & 1)
		if (bits & 2) != 0 {
			beta = (1 + beta) / 3
		}
		alpha := 1 - beta

		alpha2Sum += alpha * alpha
		beta2Sum += beta * beta
		alphaBetaSum += alpha * beta
		for c := range 3 {
			alphaXSum[c] += alpha * colors[i][c]
			betaXSum[c] += beta * colors[i][c]
		}
	}

	denom := (alpha2Sum * beta2Sum) - (alphaBetaSum * alphaBetaSum)
	if (denom <= normalEquationEpsilon) && (denom >= -normalEquationEpsilon) {
		return
	}
	factor := 1 / denom

	endA, endB := [3]float32{}, [3]float32{}
	for c := range 3 {
		endA[c] = ((alphaXSum[c] * beta2Sum) - (betaXSum[c] * alphaBetaSum)) * factor
		endB[c] = ((betaXSum[c] * alpha2Sum) - (alphaXSum[c] * alphaBetaSum)) * factor
		endA[c] = min(max(endA[c], 0), 255)
		endB[c] = min(max(endB[c], 0), 255)
	}

	color0 := roundAndExpand(&endA)
	color1 := roundAndExpand(&endB)
	if color0 < color1 {
		endA, endB = endB, endA
		color0, color1 = color1, color0
	}

	b.col0 = color0
	b.col1 = color1
	b.indices = computeIndices4(colors, &endA, &endB)
}

const normalEquationEpsilon = 0.0001

// compressUniformColor encodes a solid color block in O(1) using the
// precomputed single-value match tables. Every index selects palette entry 2,
// the two-thirds interpolant the tables were optimized for. If the table
// endpoints violate the four-color ordering, swapping them and complementing
// every index bit decodes to the same colors.
func compressUniformColor(b *colorBlock, r uint8, g uint8, bl uint8) {
	b.col0 = (uint16(singleColorLookup5[r][0]) << 11) |
		(uint16(singleColorLookup6[g][0]) << 5) |
		uint16(singleColorLookup5[bl][0])
	b.col1 = (uint16(singleColorLookup5[r][1]) << 11) |
		(uint16(singleColorLookup6[g][1]) << 5) |
		uint16(singleColorLookup5[bl][1])
	b.indices = 0xAAAA_AAAA

	if b.col0 < b.col1 {
		b.col0, b.col1 = b.col1, b.col0
		b.indices ^= 0x5555_5555
	}
}

func absI32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func expandGreen6(g uint32) int32 {
	return int32((g << 2) | (g >> 4))
}

// compressBlockGreen encodes only the green channel, with red and blue pinned
// to their extremes. When the quantized green spread exceeds 4 it runs a
// branch-and-bound search over all viable endpoint pairs: a pair is skipped
// when its trivial lower-bound error, (maxg-g0)+(g1-ming), already exceeds
// the best total error seen.
func (e *encoder) compressBlockGreen(b *colorBlock) {
	ming, maxg := uint8(63), uint8(0)
	for i := range 16 {
		green := e.pixels[(4*i)+1] >> 2
		ming = min(ming, green)
		maxg = max(maxg, green)
	}

	bestG0, bestG1 := uint32(maxg), uint32(ming)

	if maxg-ming > 4 {
		bestError := e.computeGreenError(bestG0, bestG1)

		for g0 := uint32(ming) + 5; g0 < uint32(maxg); g0++ {
			for g1 := uint32(ming); g1 < g0-4; g1++ {
				if int32((uint32(maxg)-g0)+(g1-uint32(ming))) > bestError {
					continue
				}

				err := e.computeGreenError(g0, g1)
				if err < bestError {
					bestError = err
					bestG0, bestG1 = g0, g1
				}
			}
		}
	}

	// g0 >= g1 always holds here, so the packed words keep the four-color
	// ordering.
	b.col0 = uint16((31 << 11) | (bestG0 << 5) | 0)
	b.col1 = uint16((31 << 11) | (bestG1 << 5) | 0)
	b.indices = e.computeGreenIndices(bestG0, bestG1)
}

// computeGreenError returns the block's total green error against the
// palette implied by the 6-bit endpoints: the sum over all samples of the
// absolute distance to the nearest palette entry.
func (e *encoder) computeGreenError(g0 uint32, g1 uint32) int32 {
	palette := [4]int32{}
	palette[0] = expandGreen6(g0)
	palette[1] = expandGreen6(g1)
	palette[2] = ((2 * palette[0]) + palette[1]) / 3
	palette[3] = ((2 * palette[1]) + palette[0]) / 3

	totalError := int32(0)
	for i := range 16 {
		green := int32(e.pixels[(4*i)+1])

		err := absI32(green - palette[0])
		err = min(err, absI32(green-palette[1]))
		err = min(err, absI32(green-palette[2]))
		err = min(err, absI32(green-palette[3]))

		totalError += err
	}

	return totalError
}

// computeGreenIndices assigns indices by green distance alone (red and blue
// are constant across the palette), using the same comparison network as
// computeIndices4.
func (e *encoder) computeGreenIndices(g0 uint32, g1 uint32) uint32 {
	palette := [4]int32{}
	palette[0] = expandGreen6(g0)
	palette[1] = expandGreen6(g1)
	palette[2] = ((2 * palette[0]) + palette[1]) / 3
	palette[3] = ((2 * palette[1]) + palette[0]) / 3

	indices := uint32(0)
	for i := range 16 {
		green := int32(e.pixels[(4*i)+1])

		d0 := absI32(palette[0] - green)
		d1 := absI32(palette[1] - green)
		d2 := absI32(palette[2] - green)
		d3 := absI32(palette[3] - green)

		b0 := btou32(d0 > d3)
		b1 := btou32(d1 > d2)
		b2 := btou32(d0 > d2)
		b3 := btou32(d1 > d3)
		b4 := btou32(d2 > d3)

		x0 := b1 & b2
		x1 := b0 & b3
		x2 := b0 & b4

		indices |= (x2 | ((x0 | x1) << 1)) << (2 * i)
	}

	return indices
}

// encodeAlphaTruncated packs each sample's alpha, truncated to 4 bits, into
// the DXT3 alpha sub-block. No search, no endpoints: each sample is
// independent.
func (e *encoder) encodeAlphaTruncated() uint64 {
	bits := uint64(0)
	for i := range 16 {
		bits |= uint64(e.pixels[(4*i)+3]>>4) << (4 * i)
	}
	return bits
}

// evaluateAlphaPalette produces the 8 alpha values implied by the endpoints,
// per the format's fixed interpolation rule. alpha0 > alpha1 selects the
// 8-step ramp; otherwise the 6-step ramp whose last two entries are the 0 and
// 255 sentinels.
func evaluateAlphaPalette(alpha0 uint8, alpha1 uint8, alphas *[8]uint8) {
	a0, a1 := int32(alpha0), int32(alpha1)
	alphas[0] = alpha0
	alphas[1] = alpha1

	if alpha0 > alpha1 {
		for i := int32(2); i < 8; i++ {
			alphas[i] = uint8((((8 - i) * a0) + ((i - 1) * a1)) / 7)
		}
	} else {
		for i := int32(2); i < 6; i++ {
			alphas[i] = uint8((((6 - i) * a0) + ((i - 1) * a1)) / 5)
		}
		alphas[6] = 0
		alphas[7] = 255
	}
}

// computeAlphaIndices assigns each sample to the nearest of the 8 palette
// entries by brute force, ties resolved by the first minimum in ascending
// palette order, and returns the total squared error of the assignment.
func (e *encoder) computeAlphaIndices(b *alphaBlock) uint32 {
	alphas := [8]uint8{}
	evaluateAlphaPalette(b.alpha0, b.alpha1, &alphas)

	totalError := uint32(0)
	for i := range 16 {
		alpha := e.pixels[(4*i)+3]

		bestError, best := uint32(256*256), uint32(0)
		for p := range 8 {
			d := int32(alphas[p]) - int32(alpha)
			err := uint32(d * d)

			if err < bestError {
				bestError = err
				best = uint32(p)
			}
		}

		totalError += bestError
		b.setIndex(i, best)
	}

	return totalError
}

// optimizeAlpha refines the ramp endpoints by least squares with the index
// assignment held fixed, using the alpha basis: index 0 or 1 maps straight to
// an endpoint, index k >= 2 to the (8-k)/7 mix. A singular system leaves the
// block unchanged. On a swap to restore alpha0 >= alpha1 the indices are
// remapped (0 and 1 exchange, k becomes 9-k) to preserve the represented
// values; if the endpoints collapse to equality every index is forced to 0.
func (e *encoder) optimizeAlpha(b *alphaBlock) {
	alpha2Sum := float32(0)
	beta2Sum := float32(0)
	alphaBetaSum := float32(0)
	alphaXSum := float32(0)
	betaXSum := float32(0)

	for i := range 16 {
		idx := b.index(i)

		alpha := float32(0)
		if idx < 2 {
			alpha = 1 - float32(idx)
		} else {
			alpha = (8 - float32(idx)) / 7
		}
		beta := 1 - alpha

		x := float32(e.pixels[(4*i)+3])
		alpha2Sum += alpha * alpha
		beta2Sum += beta * beta
		alphaBetaSum += alpha * beta
		alphaXSum += alpha * x
		betaXSum += beta * x
	}

	denom := (alpha2Sum * beta2Sum) - (alphaBetaSum * alphaBetaSum)
	if (denom <= normalEquationEpsilon) && (denom >= -normalEquationEpsilon) {
		return
	}
	factor := 1 / denom

	a := ((alphaXSum * beta2Sum) - (betaXSum * alphaBetaSum)) * factor
	bb := ((betaXSum * alpha2Sum) - (alphaXSum * alphaBetaSum)) * factor

	alpha0 := uint8(min(max(a, 0), 255))
	alpha1 := uint8(min(max(bb, 0), 255))

	if alpha0 < alpha1 {
		alpha0, alpha1 = alpha1, alpha0

		for i := range 16 {
			idx := b.index(i)
			if idx < 2 {
				b.setIndex(i, 1-idx)
			} else {
				b.setIndex(i, 9-idx)
			}
		}
	} else if alpha0 == alpha1 {
		for i := range 16 {
			b.setIndex(i, 0)
		}
	}

	b.alpha0 = alpha0
	b.alpha1 = alpha1
}

// encodeAlphaRamp encodes the DXT5 alpha sub-block: endpoints seeded from the
// block's alpha extremes, nudged inward by 1/34 of the range, then refined by
// alternating least squares and reassignment until the error stops strictly
// improving or the assignment repeats. Error is non-increasing step to step
// and the assignment space is finite, so the loop terminates.
func (e *encoder) encodeAlphaRamp() uint64 {
	alpha0, alpha1 := uint8(0), uint8(255)
	for i := range 16 {
		alpha := e.pixels[(4*i)+3]
		alpha0 = max(alpha0, alpha)
		alpha1 = min(alpha1, alpha)
	}

	block := alphaBlock{}
	block.alpha0 = alpha0 - ((alpha0 - alpha1) / 34)
	block.alpha1 = alpha1 + ((alpha0 - alpha1) / 34)
	bestError := e.computeAlphaIndices(&block)

	bestBlock := block

	for {
		e.optimizeAlpha(&block)
		err := e.computeAlphaIndices(&block)

		if err >= bestError {
			// No improvement, keep the previous best.
			break
		}
		if block.indices == bestBlock.indices {
			// Same assignment as the current best: accept it and stop, or
			// the refine/assign cycle could repeat forever.
			bestBlock = block
			break
		}

		bestError = err
		bestBlock = block
	}

	return bestBlock.bits()
}

func writeU64LE(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v >> 0)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
