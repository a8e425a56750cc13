//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLFieldSolver renders full frames through an OpenCL device. The kernel
// is the same superposition/dither pipeline as fieldValue/litPixel; each
// work item handles one pixel and writes RGBA bytes directly.
type openCLFieldSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posBuf     *cl.MemObject
	waveBuf    *cl.MemObject
	pixelBuf   *cl.MemObject
	width      int
	height     int
	deviceName string
	positions  []float32
	waves      []float32
	pixels     []byte
}

const fieldKernelSource = `__kernel void dither_frame(
    const int width,
    const int height,
    const float t,
    const float amplitude,
    const float decay,
    const float density,
    const int source_count,
    __global const float2* positions,
    __global const float2* waves,
    __global uchar4* pixels)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    float px = (float)(idx % width);
    float py = (float)(idx / width);

    uchar4 out = (uchar4)(0, 0, 0, 255);
    if (source_count > 0) {
        float total = 0.0f;
        for (int i = 0; i < source_count; i++) {
            float dx = px - positions[i].x;
            float dy = py - positions[i].y;
            float dist = fmax(sqrt(dx * dx + dy * dy), 0.001f);
            float amp = amplitude;
            if (decay > 0.0f) {
                amp /= pow(dist, decay);
            }
            total += amp * cos(waves[i].x * dist - waves[i].y * t);
        }
        float max_amp = (float)source_count * amplitude;
        float norm = clamp((total + max_amp) / (2.0f * max_amp), 0.0f, 1.0f);
        float prob = clamp(norm * density, 0.0f, 1.0f);
        float h = sin(px * 12.9898f + py * 78.233f + t * 37.719f) * 43758.5453f;
        h = h - floor(h);
        if (h < prob) {
            out = (uchar4)(255, 255, 255, 255);
        }
    }
    pixels[idx] = out;
}`

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{fieldKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("dither_frame")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	size := width * height
	floatSize := int(unsafe.Sizeof(float32(0)))
	posBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, 2*maxSources*floatSize)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating position buffer: %w", err)
	}
	waveBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, 2*maxSources*floatSize)
	if err != nil {
		posBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating wave buffer: %w", err)
	}
	pixelBuf, err := context.CreateEmptyBuffer(cl.MemWriteOnly, size*4)
	if err != nil {
		waveBuf.Release()
		posBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating pixel buffer: %w", err)
	}

	return &openCLFieldSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		posBuf:     posBuf,
		waveBuf:    waveBuf,
		pixelBuf:   pixelBuf,
		width:      width,
		height:     height,
		deviceName: device.Name(),
		positions:  make([]float32, 2*maxSources),
		waves:      make([]float32, 2*maxSources),
		pixels:     make([]byte, size*4),
	}, nil
}

// Render evaluates one frame on the device and returns the RGBA buffer. The
// buffer is owned by the solver and valid until the next call.
func (s *openCLFieldSolver) Render(t float64, sources []WaveSource, params GlobalParameters) ([]byte, error) {
	var terms [maxSources]sourceTerm
	n := buildTerms(&terms, sources)
	for i := 0; i < maxSources; i++ {
		if i < n {
			s.positions[2*i] = float32(terms[i].x)
			s.positions[2*i+1] = float32(terms[i].y)
			s.waves[2*i] = float32(terms[i].k)
			s.waves[2*i+1] = float32(terms[i].omega)
		} else {
			s.positions[2*i] = 0
			s.positions[2*i+1] = 0
			s.waves[2*i] = 0
			s.waves[2*i+1] = 0
		}
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, false, 0, s.positions, nil); err != nil {
		return nil, fmt.Errorf("writing position buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.waveBuf, false, 0, s.waves, nil); err != nil {
		return nil, fmt.Errorf("writing wave buffer: %w", err)
	}
	if err := s.kernel.SetArgs(
		int32(s.width),
		int32(s.height),
		float32(t),
		float32(params.Amplitude),
		float32(params.DecayFactor),
		float32(params.DotDensityFactor),
		int32(n),
		s.posBuf,
		s.waveBuf,
		s.pixelBuf,
	); err != nil {
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	global := []int{s.width * s.height}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
		return nil, fmt.Errorf("enqueueing kernel: %w", err)
	}
	ptr := unsafe.Pointer(&s.pixels[0])
	if _, err := s.queue.EnqueueReadBuffer(s.pixelBuf, true, 0, len(s.pixels), ptr, nil); err != nil {
		return nil, fmt.Errorf("reading pixel buffer: %w", err)
	}
	return s.pixels, nil
}

func (s *openCLFieldSolver) Close() {
	if s.pixelBuf != nil {
		s.pixelBuf.Release()
		s.pixelBuf = nil
	}
	if s.waveBuf != nil {
		s.waveBuf.Release()
		s.waveBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}
