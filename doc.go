// Package filltess tessellates arbitrary 2D fill paths into triangle
// meshes bucketed by signed winding number, ready for GPU consumption.
//
// # Overview
//
// filltess takes a set of closed point loops (contours) that may
// self-intersect, overlap, or be disjoint, and produces:
//
//   - a triangle mesh whose index buffer is partitioned by winding
//     number, so any fill rule (nonzero, odd-even, their complements,
//     or an explicit winding value) selects one contiguous index range
//     without per-triangle filtering;
//   - auxiliary boundary "fuzz" geometry (quads and bevel wedges along
//     drawable edges) for anti-aliased edge rendering.
//
// The mesh is organized as a binary spatial hierarchy. A renderer calls
// [FilledPath.SelectSubsets] with its clip planes and buffer budgets and
// receives the IDs of the subsets to draw, so high-detail paths only pay
// tessellation cost for the regions actually visible.
//
// # Quick Start
//
//	var p filltess.Path
//	p.MoveTo(0, 0)
//	p.LineTo(100, 0)
//	p.LineTo(100, 100)
//	p.LineTo(0, 100)
//	p.Close()
//
//	fp := filltess.NewFilledPath(p.Contours())
//	ids := fp.SelectSubsets(nil, filltess.IdentityMat3(), 1<<20, 1<<20)
//	for _, id := range ids {
//		s := fp.Subset(id)
//		// upload s.FillData().Attributes / .Indices, draw the
//		// s.FillData().FillRuleRange(filltess.FillRuleNonZero) range
//	}
//
// # Architecture
//
// Contours are recursively split by axis-aligned lines into a tree of
// sub-paths (subpath.go). On first use a leaf discretizes its points
// into a fixed integer domain (converter.go, hoard.go), feeds them to a
// tessellation oracle (tess, internal/sweep), and buckets the emitted
// triangles and boundary edges by winding number (tesser.go, builder.go,
// mesh.go, fuzz.go). Internal nodes merge their children's meshes
// without re-tessellating (subset.go).
//
// The tessellation oracle is injectable via [WithTessellator]; the
// bundled oracle is a robust trapezoidal sweep.
//
// # Concurrency
//
// A FilledPath builds subset meshes lazily on first access from the
// calling goroutine. It is not safe for concurrent use.
package filltess
