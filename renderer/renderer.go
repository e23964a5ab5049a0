// Package renderer is the high-level engine facade. It owns the OpenGL
// backend, draws the scene graph and implements daynight.LightingSink so a
// daynight.Visualizer can write sun, ambient and fog straight into the
// active scene.
package renderer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"daynight-engine/core"
	"daynight-engine/daynight"
	"daynight-engine/internal/logger"
	"daynight-engine/internal/opengl"
	"daynight-engine/scene"
	"daynight-engine/skytex"
)

// RenderEngine drives the OpenGL backend for one window.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window
	Scene  *scene.Scene

	// Time base for the sky shader's star twinkle.
	start time.Time

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
}

var _ daynight.LightingSink = (*RenderEngine)(nil)

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(window.Width, window.Height)

	logger.Log.Info("render engine initialized",
		zap.Int("width", window.Width), zap.Int("height", window.Height))
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
		start:  time.Now(),
	}, nil
}

// EnableSkybox uploads the three cubemaps and compiles the day/night blend
// shader. Call once after NewRenderEngine, before the first Render; calling
// again replaces the previous skybox.
func (re *RenderEngine) EnableSkybox(day, night, stars *skytex.Cubemap) error {
	if err := re.gl.EnableSkybox(day, night, stars); err != nil {
		return fmt.Errorf("skybox: %w", err)
	}
	logger.Log.Info("skybox enabled", zap.Int("cubemapSize", day.Size))
	return nil
}

// SkyMaterial returns the skybox material for a daynight.Visualizer to
// clone. Nil until EnableSkybox has been called.
func (re *RenderEngine) SkyMaterial() daynight.SkyMaterial {
	sb := re.gl.SkyboxRef()
	if sb == nil {
		return nil
	}
	return sb.Material()
}

func (re *RenderEngine) SetScene(s *scene.Scene) {
	re.Scene = s
}

// ── daynight.LightingSink ─────────────────────────────────────────────────────

func (re *RenderEngine) SetAmbientLight(color core.Color) {
	if re.Scene != nil {
		re.Scene.Ambient = color
	}
}

func (re *RenderEngine) SetSunLight(color core.Color) {
	if re.Scene != nil && re.Scene.Sun != nil {
		re.Scene.Sun.Color = color
	}
}

// SetSunRotation points the sun along the rotation's forward (+Z) axis.
func (re *RenderEngine) SetSunRotation(rotation mgl32.Quat) {
	if re.Scene != nil && re.Scene.Sun != nil {
		re.Scene.Sun.Direction = rotation.Rotate(mgl32.Vec3{0, 0, 1})
	}
}

func (re *RenderEngine) SetFogColor(color core.Color) {
	if re.Scene != nil {
		re.Scene.FogColor = color
	}
}

func (re *RenderEngine) SetFogEnd(distance float32) {
	if re.Scene != nil {
		re.Scene.FogEnd = distance
	}
}

// ── Frame ─────────────────────────────────────────────────────────────────────

// Render draws one frame: clear and per-frame uniforms, sky, then every
// visible node. Call Present afterwards to swap buffers.
func (re *RenderEngine) Render() error {
	if re.Scene == nil || re.Scene.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	re.gl.BeginFrame(re.Scene)

	view := re.Scene.Camera.GetViewMatrix()
	proj := re.Scene.Camera.GetProjectionMatrix()

	// Sky first: its depth is forced to the far plane, geometry draws over it.
	re.gl.DrawSkybox(view, proj, float32(time.Since(re.start).Seconds()))

	objects, vertices, triangles := 0, 0, 0

	for _, node := range re.Scene.GetVisibleNodes() {
		model := node.GetWorldMatrix()
		mvp := proj.Mul4(view).Mul4(model)
		re.gl.DrawMesh(node.Mesh, mvp, model)

		objects++
		vertices += len(node.Mesh.Vertices)
		triangles += len(node.Mesh.Indices) / 3
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles

	return nil
}

// Present swaps buffers. Call after Render.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height int) {
	re.gl.SetViewport(width, height)
	if re.Scene != nil && re.Scene.Camera != nil {
		re.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

// SetWireframe toggles wireframe rendering mode on/off.
func (re *RenderEngine) SetWireframe(enabled bool) {
	re.gl.SetWireframe(enabled)
}

// IsWireframe returns whether wireframe mode is currently active.
func (re *RenderEngine) IsWireframe() bool {
	return re.gl.IsWireframe()
}

// UploadTexture uploads a texture to the GPU. Must be called from the main thread.
func (re *RenderEngine) UploadTexture(tex *scene.Texture) error {
	return opengl.UploadTexture(tex)
}

// DeleteTexture frees a previously uploaded GPU texture.
func (re *RenderEngine) DeleteTexture(tex *scene.Texture) {
	opengl.DeleteTexture(tex)
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles
}
