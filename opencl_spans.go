//go:build opencl

package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// spanWords is the number of int32 values describing one span on the device:
// y1, y2 and the packed top, fill and bottom colours.
const spanWords = 5

const spanKernelSource = `__kernel void draw_spans(
    const int width,
    const int height,
    __global const int* spans,
    __global const int* offsets,
    __global uint* pixels)
{
    int x = get_global_id(0);
    if (x >= width) {
        return;
    }
    int begin = offsets[x];
    int end = offsets[x + 1];
    for (int i = begin; i < end; i++) {
        __global const int* s = spans + i * 5;
        int y1 = s[0];
        int y2 = s[1];
        if (y2 < y1) {
            continue;
        }
        y1 = clamp(y1, 0, height - 1);
        y2 = clamp(y2, 0, height - 1);
        if (y1 == y2) {
            pixels[y1 * width + x] = (uint)s[3];
            continue;
        }
        pixels[y1 * width + x] = (uint)s[2];
        for (int y = y1 + 1; y < y2; y++) {
            pixels[y * width + x] = (uint)s[3];
        }
        pixels[y2 * width + x] = (uint)s[4];
    }
}`

type openCLSpanRasterizer struct {
	context   *cl.Context
	queue     *cl.CommandQueue
	program   *cl.Program
	kernel    *cl.Kernel
	spanBuf   *cl.MemObject
	offsetBuf *cl.MemObject
	pixelBuf  *cl.MemObject

	width, height int
	spanCap       int
	words         []int32
	offsets       []int32
	cursor        []int32
	device        string
}

func newOpenCLSpanRasterizer(width, height int) (spanRasterizer, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	var device *cl.Device
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
		if device != nil {
			break
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	r := &openCLSpanRasterizer{
		width:   width,
		height:  height,
		device:  device.Name(),
		offsets: make([]int32, width+1),
		cursor:  make([]int32, width),
	}
	if r.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if r.queue, err = r.context.CreateCommandQueue(device, 0); err != nil {
		r.close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if r.program, err = r.context.CreateProgramWithSource([]string{spanKernelSource}); err != nil {
		r.close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := r.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		r.close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if r.kernel, err = r.program.CreateKernel("draw_spans"); err != nil {
		r.close()
		return nil, fmt.Errorf("creating span kernel: %w", err)
	}
	int32Size := int(unsafe.Sizeof(int32(0)))
	if r.offsetBuf, err = r.context.CreateEmptyBuffer(cl.MemReadOnly, (width+1)*int32Size); err != nil {
		r.close()
		return nil, fmt.Errorf("allocating offset buffer: %w", err)
	}
	if r.pixelBuf, err = r.context.CreateEmptyBuffer(cl.MemReadWrite, width*height*4); err != nil {
		r.close()
		return nil, fmt.Errorf("allocating pixel buffer: %w", err)
	}
	if err := r.ensureSpanCapacity(4 * width); err != nil {
		r.close()
		return nil, err
	}
	if err := r.kernel.SetArgs(int32(width), int32(height), r.spanBuf, r.offsetBuf, r.pixelBuf); err != nil {
		r.close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return r, nil
}

// ensureSpanCapacity grows the device span buffer to hold n spans.
func (r *openCLSpanRasterizer) ensureSpanCapacity(n int) error {
	if n <= r.spanCap && r.spanBuf != nil {
		return nil
	}
	capacity := max(n, 2*r.spanCap)
	buf, err := r.context.CreateEmptyBuffer(cl.MemReadOnly, capacity*spanWords*int(unsafe.Sizeof(int32(0))))
	if err != nil {
		return fmt.Errorf("allocating span buffer for %d spans: %w", capacity, err)
	}
	if r.spanBuf != nil {
		if err := r.kernel.SetArgBuffer(2, buf); err != nil {
			buf.Release()
			return fmt.Errorf("binding span buffer: %w", err)
		}
		r.spanBuf.Release()
	}
	r.spanBuf = buf
	r.spanCap = capacity
	return nil
}

// packRGBA lays a colour out as the little-endian uint32 of its RGBA bytes.
func packRGBA(c color.RGBA) int32 {
	return int32(uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24)
}

// bucket orders spans by column, keeping emit order within a column, and
// fills r.words and r.offsets for upload.
func (r *openCLSpanRasterizer) bucket(spans []span) int {
	for i := range r.offsets {
		r.offsets[i] = 0
	}
	kept := 0
	for _, s := range spans {
		if s.x < 0 || s.x >= r.width {
			continue
		}
		r.offsets[s.x+1]++
		kept++
	}
	for x := 1; x <= r.width; x++ {
		r.offsets[x] += r.offsets[x-1]
	}
	if cap(r.words) < kept*spanWords {
		r.words = make([]int32, kept*spanWords)
	}
	r.words = r.words[:kept*spanWords]
	cursor := r.cursor
	copy(cursor, r.offsets[:r.width])
	for _, s := range spans {
		if s.x < 0 || s.x >= r.width {
			continue
		}
		i := int(cursor[s.x]) * spanWords
		cursor[s.x]++
		r.words[i] = int32(s.y1)
		r.words[i+1] = int32(s.y2)
		r.words[i+2] = packRGBA(s.shade.top)
		r.words[i+3] = packRGBA(s.shade.fill)
		r.words[i+4] = packRGBA(s.shade.bottom)
	}
	return kept
}

func (r *openCLSpanRasterizer) rasterize(fb *framebuffer, spans []span) error {
	if fb.w != r.width || fb.h != r.height {
		return fmt.Errorf("framebuffer %dx%d does not match rasterizer %dx%d", fb.w, fb.h, r.width, r.height)
	}
	kept := r.bucket(spans)
	if kept == 0 {
		return nil
	}
	if err := r.ensureSpanCapacity(kept); err != nil {
		return err
	}
	int32Size := int(unsafe.Sizeof(int32(0)))
	pix := fb.pixels()
	if _, err := r.queue.EnqueueWriteBuffer(r.pixelBuf, false, 0, len(pix), unsafe.Pointer(&pix[0]), nil); err != nil {
		return fmt.Errorf("writing pixel buffer: %w", err)
	}
	if _, err := r.queue.EnqueueWriteBuffer(r.spanBuf, false, 0, len(r.words)*int32Size, unsafe.Pointer(&r.words[0]), nil); err != nil {
		return fmt.Errorf("writing span buffer: %w", err)
	}
	if _, err := r.queue.EnqueueWriteBuffer(r.offsetBuf, false, 0, len(r.offsets)*int32Size, unsafe.Pointer(&r.offsets[0]), nil); err != nil {
		return fmt.Errorf("writing offset buffer: %w", err)
	}
	if _, err := r.queue.EnqueueNDRangeKernel(r.kernel, nil, []int{r.width}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing span kernel: %w", err)
	}
	if _, err := r.queue.EnqueueReadBuffer(r.pixelBuf, true, 0, len(pix), unsafe.Pointer(&pix[0]), nil); err != nil {
		return fmt.Errorf("reading pixel buffer: %w", err)
	}
	return nil
}

func (r *openCLSpanRasterizer) deviceName() string { return r.device }

func (r *openCLSpanRasterizer) close() {
	if r.pixelBuf != nil {
		r.pixelBuf.Release()
		r.pixelBuf = nil
	}
	if r.offsetBuf != nil {
		r.offsetBuf.Release()
		r.offsetBuf = nil
	}
	if r.spanBuf != nil {
		r.spanBuf.Release()
		r.spanBuf = nil
	}
	if r.kernel != nil {
		r.kernel.Release()
		r.kernel = nil
	}
	if r.program != nil {
		r.program.Release()
		r.program = nil
	}
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.context != nil {
		r.context.Release()
		r.context = nil
	}
}
