// Package quarkgl is a small software 3D renderer for the voxel portrait.
//
// It draws a Scene (camera, light, meshes, instanced meshes and point clouds)
// into a caller-provided Target. There is no GPU abstraction and no scene
// graph: every object carries its own world transform.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Culling → Rasterization → Target.
//
// Matrices are github.com/go-gl/mathgl mgl32 values (column-major, OpenGL
// layout), so transforms built elsewhere with mgl32 can be passed in directly.
// The render path does not allocate once the depth buffer matches the target.
package quarkgl
