package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

const (
	// MaxGPULights is the most lights packed into one frame's light buffer.
	MaxGPULights = 16
	// GPULightSize is the byte size of one packed light.
	GPULightSize = 32
	// GPULightHeaderSize is the byte size of the buffer header.
	GPULightHeaderSize = 16
)

// GPULight is the GPU-aligned representation of a single light source.
// Size: 32 bytes (std430 / WGSL aligned).
type GPULight struct {
	Position  [3]float32 // offset  0: world-space position, unused for ambient
	LightType uint32     // offset 12: 0 = ambient, 1 = point
	Color     [3]float32 // offset 16: RGB color
	Intensity float32    // offset 28: scalar multiplier
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, GPULightSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], g.LightType)
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	return buf
}

// GPULightHeader is prepended to the light storage buffer.
// Size: 16 bytes.
type GPULightHeader struct {
	Count uint32 // offset 0: number of GPULight entries that follow
	_pad  [3]uint32
}

// Marshal serializes the header.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, GPULightHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Count)
	return buf
}

// MarshalBuffer serializes a header followed by every light.
//
// Parameters:
//   - lights: the packed lights
//
// Returns:
//   - []byte: header plus 32 bytes per light
func MarshalBuffer(lights []GPULight) []byte {
	header := GPULightHeader{Count: uint32(len(lights))}
	buf := make([]byte, 0, GPULightHeaderSize+GPULightSize*len(lights))
	buf = append(buf, header.Marshal()...)
	for i := range lights {
		buf = append(buf, lights[i].Marshal()...)
	}
	return buf
}
