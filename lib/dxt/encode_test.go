// Copyright 2026 The Dxt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package dxt

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func setPixel(e *encoder, i int, r uint8, g uint8, b uint8, a uint8) {
	e.pixels[(4*i)+0] = r
	e.pixels[(4*i)+1] = g
	e.pixels[(4*i)+2] = b
	e.pixels[(4*i)+3] = a
}

func fillUniform(e *encoder, r uint8, g uint8, b uint8, a uint8) {
	for i := range 16 {
		setPixel(e, i, r, g, b, a)
	}
}

func colorBlockWords(bits uint64) (col0 uint16, col1 uint16, indices uint32) {
	return uint16(bits), uint16(bits >> 16), uint32(bits >> 32)
}

// lcg is a tiny deterministic pseudo-random sequence for synthetic blocks.
type lcg uint32

func (l *lcg) next() uint8 {
	*l = (*l * 1664525) + 1013904223
	return uint8(*l >> 24)
}

func TestOrderingInvariant(tt *testing.T) {
	e := &encoder{}
	rng := lcg(1)

	for block := range 64 {
		for i := range 16 {
			setPixel(e, i, rng.next(), rng.next(), rng.next(), 255)
		}

		col0, col1, _ := colorBlockWords(e.encodeColor(FormatDXT1))
		if col0 < col1 {
			tt.Errorf("block=%d: four-color ordering: col0 0x%04X < col1 0x%04X", block, col0, col1)
		}
	}
}

func TestPunchThroughOrdering(tt *testing.T) {
	e := &encoder{}
	rng := lcg(2)

	for block := range 64 {
		for i := range 16 {
			a := uint8(255)
			if i&1 == 0 {
				a = 0
			}
			setPixel(e, i, rng.next(), rng.next(), rng.next(), a)
		}

		col0, col1, indices := colorBlockWords(e.encodeColor(FormatDXT1a))
		if col0 > col1 {
			tt.Errorf("block=%d: punch-through ordering: col0 0x%04X > col1 0x%04X", block, col0, col1)
		}

		for i := range 16 {
			index := (indices >> (2 * i)) & 3
			if transparent := i&1 == 0; transparent != (index == 3) {
				tt.Errorf("block=%d: sample=%d: transparent=%t but index=%d", block, i, transparent, index)
			}
		}
	}
}

func TestUniformColorFastPath(tt *testing.T) {
	e := &encoder{}
	fillUniform(e, 120, 200, 50, 255)

	col0, col1, indices := colorBlockWords(e.encodeColor(FormatDXT1))
	if indices != 0xAAAA_AAAA {
		tt.Fatalf("indices: got 0x%08X, want 0xAAAAAAAA", indices)
	}

	wantCol0 := (uint16(15) << 11) | (uint16(52) << 5) | 7
	wantCol1 := (uint16(14) << 11) | (uint16(44) << 5) | 4
	if (col0 != wantCol0) || (col1 != wantCol1) {
		tt.Fatalf("endpoints: got 0x%04X 0x%04X, want 0x%04X 0x%04X", col0, col1, wantCol0, wantCol1)
	}

	// Every index selects palette entry 2, the two-thirds interpolant, which
	// should reproduce the table-optimal approximation of the input color.
	buf := [8]byte{}
	writeU64LE(buf[:], e.encodeColor(FormatDXT1))
	palette := [4][4]uint8{}
	decodeColorPalette(buf[:], &palette, false)

	if got, want := palette[2], ([4]uint8{120, 200, 49, 255}); got != want {
		tt.Fatalf("decoded uniform color: got %v, want %v", got, want)
	}
}

func TestUniformColorGeneralPath(tt *testing.T) {
	e := &encoder{}
	fillUniform(e, 120, 200, 50, 255)

	b := colorBlock{}
	e.compressBlock(&b)

	want := (uint16(15) << 11) | (uint16(49) << 5) | 6
	if (b.col0 != want) || (b.col1 != want) {
		tt.Fatalf("endpoints: got 0x%04X 0x%04X, want both 0x%04X", b.col0, b.col1, want)
	}
	if b.indices != 0 {
		tt.Fatalf("indices: got 0x%08X, want 0", b.indices)
	}
}

func TestTransparentUniformBlock(tt *testing.T) {
	e := &encoder{}
	fillUniform(e, 0, 0, 0, 0)

	col0, col1, indices := colorBlockWords(e.encodeColor(FormatDXT1a))
	if (col0 != 0) || (col1 != 0) || (indices != 0xFFFF_FFFF) {
		tt.Fatalf("got col0=0x%04X col1=0x%04X indices=0x%08X, want zero endpoints and all-ones indices",
			col0, col1, indices)
	}
}

func TestTransparentMixedBlock(tt *testing.T) {
	e := &encoder{}
	rng := lcg(3)
	for i := range 16 {
		setPixel(e, i, rng.next(), rng.next(), rng.next(), 0)
	}

	_, _, indices := colorBlockWords(e.encodeColor(FormatDXT1a))
	if indices != 0xFFFF_FFFF {
		tt.Fatalf("indices: got 0x%08X, want 0xFFFFFFFF", indices)
	}
}

func TestGreenSearchBeatsBoundingValues(tt *testing.T) {
	e := &encoder{}
	for i := range 16 {
		setPixel(e, i, 0, uint8(16*i), 0, 255)
	}

	b := colorBlock{}
	e.compressBlockGreen(&b)

	g0 := (uint32(b.col0) >> 5) & 63
	g1 := (uint32(b.col1) >> 5) & 63
	if g0 < g1 {
		tt.Fatalf("green endpoints unordered: g0=%d g1=%d", g0, g1)
	}

	// The branch-and-bound search must never do worse than the plain
	// bounding values it starts from.
	bestError := e.computeGreenError(g0, g1)
	baseError := e.computeGreenError(60, 0)
	if bestError > baseError {
		tt.Fatalf("green error: got %d, want <= %d", bestError, baseError)
	}
}

func TestGreenSmallSpreadAcceptsBounds(tt *testing.T) {
	e := &encoder{}
	for i := range 16 {
		setPixel(e, i, 0, uint8(100+i%6), 0, 255)
	}

	b := colorBlock{}
	e.compressBlockGreen(&b)

	g0 := (uint32(b.col0) >> 5) & 63
	g1 := (uint32(b.col1) >> 5) & 63
	if (g0 != 26) || (g1 != 25) {
		tt.Fatalf("small spread endpoints: got g0=%d g1=%d, want 26 25", g0, g1)
	}
}

func TestAlphaTruncation(tt *testing.T) {
	e := &encoder{}
	for i := range 16 {
		setPixel(e, i, 0, 0, 0, uint8(17*i))
	}
	e.pixels[(4*9)+3] = 200

	bits := e.encodeAlphaTruncated()
	for i := range 16 {
		want := uint64(17*i) >> 4
		if i == 9 {
			want = 12 // 200 truncates to floor(200/16).
		}
		if got := (bits >> (4 * i)) & 15; got != want {
			tt.Errorf("sample=%d: got %d, want %d", i, got, want)
		}
	}
}

func alphaAssignmentError(e *encoder, b *alphaBlock) uint32 {
	alphas := [8]uint8{}
	evaluateAlphaPalette(b.alpha0, b.alpha1, &alphas)

	totalError := uint32(0)
	for i := range 16 {
		d := int32(alphas[b.index(i)]) - int32(e.pixels[(4*i)+3])
		totalError += uint32(d * d)
	}
	return totalError
}

func TestAlphaRampImproves(tt *testing.T) {
	e := &encoder{}
	rng := lcg(4)

	for block := range 64 {
		for i := range 16 {
			setPixel(e, i, 0, 0, 0, rng.next())
		}

		alpha0, alpha1 := uint8(0), uint8(255)
		for i := range 16 {
			alpha0 = max(alpha0, e.pixels[(4*i)+3])
			alpha1 = min(alpha1, e.pixels[(4*i)+3])
		}
		initial := alphaBlock{
			alpha0: alpha0 - ((alpha0 - alpha1) / 34),
			alpha1: alpha1 + ((alpha0 - alpha1) / 34),
		}
		initialError := e.computeAlphaIndices(&initial)

		bits := e.encodeAlphaRamp()
		final := alphaBlock{
			alpha0:  uint8(bits),
			alpha1:  uint8(bits >> 8),
			indices: bits >> 16,
		}

		if final.alpha0 < final.alpha1 {
			tt.Errorf("block=%d: endpoints unordered: alpha0=%d alpha1=%d", block, final.alpha0, final.alpha1)
		}
		if got := alphaAssignmentError(e, &final); got > initialError {
			tt.Errorf("block=%d: error regressed: got %d, want <= %d", block, got, initialError)
		}
	}
}

func TestAlphaRampUniformCollapse(tt *testing.T) {
	e := &encoder{}
	fillUniform(e, 0, 0, 0, 200)

	bits := e.encodeAlphaRamp()
	alpha0 := uint8(bits)
	alpha1 := uint8(bits >> 8)
	if (alpha0 != 200) || (alpha1 != 200) {
		tt.Fatalf("endpoints: got %d %d, want both 200", alpha0, alpha1)
	}
	if indices := bits >> 16; indices != 0 {
		tt.Fatalf("indices: got 0x%012X, want all zero", indices)
	}
}

func TestEncodeDeterminism(tt *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 20, 12))
	rng := lcg(5)
	for i := range m.Pix {
		m.Pix[i] = rng.next()
	}

	for _, f := range []Format{FormatDXT1Green, FormatDXT1, FormatDXT1a, FormatDXT3, FormatDXT5} {
		buf0 := &bytes.Buffer{}
		buf1 := &bytes.Buffer{}
		if err := Encode(buf0, m, f, nil); err != nil {
			tt.Fatalf("f=%v: Encode: %v", f, err)
		}
		if err := Encode(buf1, m, f, nil); err != nil {
			tt.Fatalf("f=%v: Encode: %v", f, err)
		}

		if !bytes.Equal(buf0.Bytes(), buf1.Bytes()) {
			tt.Errorf("f=%v: two encodings differ", f)
		}
		if want := ((20 / 4) * (12 / 4)) * f.BytesPerBlock(); buf0.Len() != want {
			tt.Errorf("f=%v: length: got %d, want %d", f, buf0.Len(), want)
		}
	}
}

func TestEncodeBadArgument(tt *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if err := Encode(nil, m, FormatDXT1, nil); err != ErrBadArgument {
		tt.Errorf("nil dst: got %v, want ErrBadArgument", err)
	}
	if err := Encode(&bytes.Buffer{}, nil, FormatDXT1, nil); err != ErrBadArgument {
		tt.Errorf("nil src: got %v, want ErrBadArgument", err)
	}
	if err := Encode(&bytes.Buffer{}, m, Format(0x55), nil); err != ErrBadArgument {
		tt.Errorf("bad format: got %v, want ErrBadArgument", err)
	}
}

func TestExtractClampsEdges(tt *testing.T) {
	// A 5×5 image: blocks at (4,0), (0,4) and (4,4) hang over the edges and
	// must replicate the nearest in-bound pixels.
	m := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := range 5 {
		for x := range 5 {
			m.SetNRGBA(x, y, color.NRGBA{uint8(10 * x), uint8(10 * y), 0, 255})
		}
	}

	e := &encoder{}
	extract := makeExtract(&e.pixels, m)
	extract(4, 4)

	for i := range 16 {
		if (e.pixels[(4*i)+0] != 40) || (e.pixels[(4*i)+1] != 40) {
			tt.Fatalf("sample=%d: got (%d, %d), want (40, 40)",
				i, e.pixels[(4*i)+0], e.pixels[(4*i)+1])
		}
	}
}

func TestVisibleSampleFilter(tt *testing.T) {
	e := &encoder{}
	for i := range 16 {
		a := uint8(255)
		if i < 10 {
			a = 127 // At the threshold: not visible.
		}
		setPixel(e, i, uint8(i), 0, 0, a)
	}

	colors := [16][3]float32{}
	if num := e.extractVisibleColors(&colors); num != 6 {
		tt.Fatalf("num: got %d, want 6", num)
	}
	if colors[0][0] != 10 {
		tt.Fatalf("first visible sample: got %v, want 10", colors[0][0])
	}

	// Zero visible samples degenerate the bounding box.
	for i := range 16 {
		e.pixels[(4*i)+3] = 0
	}
	num := e.extractVisibleColors(&colors)
	maxColor, minColor := findMinMaxColorsBox(&colors, num)
	if (maxColor != [3]float32{0, 0, 0}) || (minColor != [3]float32{255, 255, 255}) {
		tt.Fatalf("degenerate box: got max=%v min=%v", maxColor, minColor)
	}
}
