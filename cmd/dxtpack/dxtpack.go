// Copyright 2026 The Dxt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// dxtpack decodes and encodes the DXT (S3 Texture Compression) lossy texture
// formats, wrapped in DDS container files.
package main

import (
	"errors"
	"flag"
	"image"
	"image/png"
	"os"

	"github.com/timur-losev/nvidia-texture-tools/lib/dds"
	"github.com/timur-losev/nvidia-texture-tools/lib/dxt"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	decodeFlag  = flag.Bool("decode", false, "whether to decode the input")
	encodeFlag  = flag.Bool("encode", false, "whether to encode the input")
	outputFlag  = flag.String("output", "", "output texture format")
	mipmapsFlag = flag.Bool("mipmaps", false, "whether to append a mipmap chain when encoding")
)

const usageStr = `dxtpack decodes and encodes DXT compressed textures in DDS files.

Usage: choose one of

    dxtpack -decode [path]
    dxtpack -encode [path]

The path to the input image file is optional. If omitted, stdin is read.

When encoding you can also pass these flags (before the path):

    -output=dxt1
    -output=dxt1a
    -output=dxt3
    -output=dxt5 (this is the default)
    -mipmaps

The output image (in PNG or DDS format) is written to stdout.

Decode inputs DDS and outputs PNG.
Encode inputs BMP, GIF, JPEG, PNG, TIFF or WEBP and outputs DDS.
`

var ErrBadOutputFlag = errors.New("main: bad -output flag")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	inFile := os.Stdin
	switch flag.NArg() {
	case 0:
		// No-op.
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		inFile = f
	default:
		return errors.New("too many filenames; the maximum is one")
	}

	if *decodeFlag && !*encodeFlag {
		return decode(inFile)
	}
	if !*decodeFlag && *encodeFlag {
		return encode(inFile)
	}
	return errors.New("must specify exactly one of -decode, -encode or -help")
}

func decode(inFile *os.File) error {
	if *outputFlag != "" {
		return ErrBadOutputFlag
	}

	src, err := dds.Decode(inFile)
	if err != nil {
		return err
	}
	return png.Encode(os.Stdout, src)
}

func encode(inFile *os.File) error {
	f := dxt.FormatDXT5
	switch *outputFlag {
	case "", "dxt5":
		// No-op.
	case "dxt1":
		f = dxt.FormatDXT1
	case "dxt1a":
		f = dxt.FormatDXT1a
	case "dxt3":
		f = dxt.FormatDXT3
	default:
		return ErrBadOutputFlag
	}

	src, _, err := image.Decode(inFile)
	if err != nil {
		return err
	}

	return dds.Encode(os.Stdout, src, &dds.EncodeOptions{
		Format:          f,
		GenerateMipmaps: *mipmapsFlag,
	})
}
