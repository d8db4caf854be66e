package filltess

// FuzzVertex is one entry of a subset's anti-aliasing attribute buffer.
// The rendered quad is displaced from the edge along the (unnormalized)
// edge normal, scaled by Sign in the vertex shader; Z orders the edges
// of one winding bucket back to front.
type FuzzVertex struct {
	X, Y   float32
	NX, NY float32
	Sign   float32
	Z      uint32
}

// fuzzChunk locates one winding number's fuzz geometry inside the
// shared buffers. zEnd is the number of edges in the chunk; merged
// parents need it to keep depth values disjoint.
type fuzzChunk struct {
	attr    Range
	index   Range
	zEnd    int
	present bool
}

// FuzzData is the boundary anti-aliasing geometry of one subset,
// addressed per individual winding number.
type FuzzData struct {
	Attributes []FuzzVertex
	Indices    []uint32
	chunks     []fuzzChunk // indexed by FuzzChunkFromWinding
}

// WindingChunk returns the attribute and index sub-ranges of the fuzz
// geometry for one winding number. Index values are absolute positions
// in Attributes.
func (d *FuzzData) WindingChunk(w int) (attr, index Range, ok bool) {
	ch := FuzzChunkFromWinding(w)
	if ch >= len(d.chunks) || !d.chunks[ch].present {
		return Range{}, Range{}, false
	}
	return d.chunks[ch].attr, d.chunks[ch].index, true
}

func (d *FuzzData) largestBlocks() (attrs, indices int) {
	for _, c := range d.chunks {
		if n := c.attr.Len(); n > attrs {
			attrs = n
		}
		if n := c.index.Len(); n > indices {
			indices = n
		}
	}
	return attrs, indices
}

func perp(p Point) Point { return Point{X: -p.Y, Y: p.X} }

// buildFuzz packs every winding component's drawable edges: a quad of 4
// attributes / 6 indices per drawn edge, plus a 3/3 bevel wedge where
// the following edge is also drawn, with depth decreasing per edge so
// innermost edges land on top.
func buildFuzz(dst *FuzzData, windings []int, pts []Point, comps map[int]*windingComponent) {
	if len(windings) == 0 {
		return
	}
	numChunks := 0
	for _, w := range windings {
		if ch := FuzzChunkFromWinding(w); ch >= numChunks {
			numChunks = ch + 1
		}
	}
	dst.chunks = make([]fuzzChunk, numChunks)

	for _, w := range windings {
		list := &comps[w].edges
		ch := FuzzChunkFromWinding(w)
		chunk := &dst.chunks[ch]
		chunk.present = true
		chunk.attr.Start = len(dst.Attributes)
		chunk.index.Start = len(dst.Indices)
		chunk.zEnd = list.edgeCount

		for k, e := range list.edges {
			z := uint32(list.edgeCount - 1 - k)
			packFuzzEdge(dst, pts, e, z)
		}
		chunk.attr.End = len(dst.Attributes)
		chunk.index.End = len(dst.Indices)
	}
}

func packFuzzEdge(dst *FuzzData, pts []Point, e edge, z uint32) {
	tangent := pts[e.end].Sub(pts[e.start])
	normal := perp(tangent)

	if e.drawEdge {
		base := uint32(len(dst.Attributes))
		sgn := [4]float32{-1, +1, +1, -1}
		for k := 0; k < 4; k++ {
			pos := pts[e.start]
			if k >= 2 {
				pos = pts[e.end]
			}
			dst.Attributes = append(dst.Attributes, FuzzVertex{
				X: float32(pos.X), Y: float32(pos.Y),
				NX: float32(normal.X), NY: float32(normal.Y),
				Sign: sgn[k], Z: z,
			})
		}
		dst.Indices = append(dst.Indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}

	if e.drawBevel {
		base := uint32(len(dst.Attributes))
		p := pts[e.end]
		t2 := pts[e.next].Sub(pts[e.end])
		n2 := perp(t2)
		s := float32(-1)
		if t2.Dot(normal) < 0 {
			s = 1
		}
		for k := 0; k < 3; k++ {
			n := normal
			if k == 2 {
				n = n2
			}
			sign := s
			if k == 1 {
				sign = 0
			}
			dst.Attributes = append(dst.Attributes, FuzzVertex{
				X: float32(p.X), Y: float32(p.Y),
				NX: float32(n.X), NY: float32(n.Y),
				Sign: sign, Z: z,
			})
		}
		dst.Indices = append(dst.Indices, base+0, base+1, base+2)
	}
}

// mergeFuzz concatenates two children's fuzz geometry chunk by chunk.
// The first child's depth values are raised above the second child's so
// the draw order within each chunk stays back to front.
func mergeFuzz(dst, a, b *FuzzData) {
	numChunks := len(a.chunks)
	if len(b.chunks) > numChunks {
		numChunks = len(b.chunks)
	}
	if numChunks == 0 {
		return
	}
	dst.chunks = make([]fuzzChunk, numChunks)
	dst.Attributes = make([]FuzzVertex, 0, len(a.Attributes)+len(b.Attributes))
	dst.Indices = make([]uint32, 0, len(a.Indices)+len(b.Indices))

	chunkOf := func(d *FuzzData, ch int) fuzzChunk {
		if ch < len(d.chunks) {
			return d.chunks[ch]
		}
		return fuzzChunk{}
	}

	for ch := 0; ch < numChunks; ch++ {
		ca, cb := chunkOf(a, ch), chunkOf(b, ch)
		out := &dst.chunks[ch]
		out.present = ca.present || cb.present
		out.zEnd = ca.zEnd + cb.zEnd
		out.attr.Start = len(dst.Attributes)
		out.index.Start = len(dst.Indices)

		aBase := len(dst.Attributes)
		for _, v := range a.Attributes[ca.attr.Start:ca.attr.End] {
			v.Z += uint32(cb.zEnd)
			dst.Attributes = append(dst.Attributes, v)
		}
		bBase := len(dst.Attributes)
		dst.Attributes = append(dst.Attributes, b.Attributes[cb.attr.Start:cb.attr.End]...)

		for _, idx := range a.Indices[ca.index.Start:ca.index.End] {
			dst.Indices = append(dst.Indices, idx-uint32(ca.attr.Start)+uint32(aBase))
		}
		for _, idx := range b.Indices[cb.index.Start:cb.index.End] {
			dst.Indices = append(dst.Indices, idx-uint32(cb.attr.Start)+uint32(bBase))
		}
		out.attr.End = len(dst.Attributes)
		out.index.End = len(dst.Indices)
	}
}
