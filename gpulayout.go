package filltess

import "github.com/gogpu/gputypes"

// Buffer strides matching FillVertex and FuzzVertex.
const (
	fillVertexStride = 8
	fuzzVertexStride = 24
)

// FillVertexLayout returns the vertex buffer layout for drawing a
// subset's fill triangles.
func FillVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: fillVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// FuzzVertexLayout returns the vertex buffer layout for drawing a
// subset's anti-aliasing geometry. The shader displaces the position
// along the normal scaled by sign and uses z for back-to-front ordering
// within one winding chunk.
func FuzzVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: fuzzVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // normal
				{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},  // sign
				{Format: gputypes.VertexFormatUint32, Offset: 20, ShaderLocation: 3},   // z
			},
		},
	}
}

// IndexFormat returns the index buffer format both FillData.Indices and
// FuzzData.Indices use.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}
