package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"cube-renderer/renderer"
	"cube-renderer/scene"
)

var (
	lampPosition = mgl32.Vec3{1.2, 1.0, 2.0}
	lightColor   = mgl32.Vec3{1, 1, 1}
)

type frameParams struct {
	clear     scene.Color
	near, far float32
	// seconds since start; drives the cube rotation
	time float32
}

// drawFrame clears and draws the ten cubes followed by the lamp.
func drawFrame(r *renderer.Renderer, a *demoAssets, cam *scene.Camera, fp frameParams) {
	r.BeginFrame(fp.clear)

	projection := cam.ProjectionMatrix(r.Aspect(), fp.near, fp.far)
	view := cam.ViewMatrix()

	cube := a.cubeProgram
	cube.SetMat4("projection", projection)
	cube.SetMat4("view", view)
	cube.SetVec3("lightColor", lightColor)
	r.BindTexture(0, a.textures[0])
	r.BindTexture(1, a.textures[1])
	for i := range scene.CubePositions {
		cube.SetMat4("model", scene.CubeModelMatrix(i, fp.time))
		r.Draw(cube, a.cube)
	}

	lamp := a.lampProgram
	lamp.SetMat4("projection", projection)
	lamp.SetMat4("view", view)
	lamp.SetMat4("model", scene.LampModelMatrix(lampPosition))
	lamp.SetVec3("lightColor", lightColor)
	r.Draw(lamp, a.lamp)
}
