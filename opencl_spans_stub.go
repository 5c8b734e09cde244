//go:build !opencl

package main

import "errors"

func newOpenCLSpanRasterizer(width, height int) (spanRasterizer, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
