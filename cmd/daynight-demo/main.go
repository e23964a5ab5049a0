// Command daynight-demo renders a small town square through a full
// day/night cycle: the sun arcs overhead, ambient/sun/fog colors follow
// the palette, the skybox blends between day, night and stars, street
// lamps switch with the hours and a clock tower shows the time.
package main

import (
	"errors"
	"fmt"
	stdmath "math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"daynight-engine/clock"
	"daynight-engine/core"
	"daynight-engine/daynight"
	"daynight-engine/internal/logger"
	"daynight-engine/renderer"
	"daynight-engine/scene"
	"daynight-engine/skytex"
)

const (
	clockConfigPath  = "daynight_config.json"
	visualConfigPath = "daynight_visuals.json"
	clockStatePath   = "daynight_state.json"

	skyCubemapSize = 256
	skySeed        = 7
	starCount      = 1800

	// Street lamps burn from dusk to dawn.
	lampsOnFromHour = 19.0
	lampsOnToHour   = 6.0
)

func main() {
	logger.Init()
	defer logger.Sync()
	log := logger.Log

	fmt.Println("Starting day/night town square...")

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = "DayNight Engine - Town Square"

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		log.Error("create window", zap.Error(err))
		return
	}
	defer window.Destroy()

	renderEngine, err := renderer.NewRenderEngine(window)
	if err != nil {
		log.Error("create render engine", zap.Error(err))
		return
	}
	defer renderEngine.Destroy()

	// Procedural sky cubemaps: day gradient with clouds, night indigo,
	// scattered stars. No asset files needed.
	day := skytex.CreateDay(skyCubemapSize, skySeed)
	night := skytex.CreateNight(skyCubemapSize, skySeed)
	stars := skytex.CreateStars(skyCubemapSize, skySeed, starCount)
	if err := renderEngine.EnableSkybox(day, night, stars); err != nil {
		log.Error("enable skybox", zap.Error(err))
		return
	}

	// ── Scene setup ───────────────────────────────────────────────────────────
	s := scene.NewScene()
	s.FogStart = 12

	camera := scene.NewOrbitCamera(
		mgl32.Vec3{0, 4, 0}, 30,
		float32(stdmath.Pi)/3,
		float32(windowConfig.Width)/float32(windowConfig.Height),
	)
	s.SetCamera(&camera.Camera)

	// ── Materials ─────────────────────────────────────────────────────────────
	matGround := scene.NewMaterial("Ground", core.Color{R: 0.62, G: 0.58, B: 0.52, A: 1})
	matGround.Shininess = 4
	matGround.Specular = core.Color{R: 0.05, G: 0.05, B: 0.05, A: 1}

	checker := scene.NewCheckerTexture("ground_checker", 256, 16, 165, 120)
	if err := renderEngine.UploadTexture(checker); err != nil {
		log.Warn("ground texture upload failed, using flat color", zap.Error(err))
	} else {
		matGround.AlbedoTexture = checker
	}

	matStone := scene.NewMaterial("Stone", core.Color{R: 0.58, G: 0.55, B: 0.50, A: 1})
	matStone.Shininess = 8

	matBrick := scene.NewMaterial("Brick", core.Color{R: 0.70, G: 0.43, B: 0.30, A: 1})
	matBrick.Shininess = 4

	matPlaster := scene.NewMaterial("Plaster", core.Color{R: 0.90, G: 0.87, B: 0.78, A: 1})
	matPlaster.Shininess = 16

	matRoof := scene.NewMaterial("Roof", core.Color{R: 0.32, G: 0.30, B: 0.28, A: 1})

	matTrunk := scene.NewMaterial("Trunk", core.Color{R: 0.42, G: 0.28, B: 0.13, A: 1})
	matTrunk.Shininess = 4

	matLeaves := scene.NewMaterial("Leaves", core.Color{R: 0.12, G: 0.42, B: 0.15, A: 1})
	matLeaves.Shininess = 4

	matWater := scene.NewMaterial("Water", core.Color{R: 0.28, G: 0.52, B: 0.72, A: 1})
	matWater.Shininess = 96
	matWater.Specular = core.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}

	matLampPost := scene.NewMaterial("LampPost", core.Color{R: 0.15, G: 0.15, B: 0.17, A: 1})
	matLampHead := scene.NewMaterial("LampHead", core.Color{R: 0.35, G: 0.35, B: 0.38, A: 1})

	// ── Helpers ───────────────────────────────────────────────────────────────
	addBox := func(name string, pos mgl32.Vec3, sx, sy, sz float32, mat *scene.Material) {
		m := scene.CreateCube(1.0)
		m.Material = mat
		n := scene.NewNode(name)
		n.Mesh = m
		n.SetPosition(pos)
		n.SetScale(mgl32.Vec3{sx, sy, sz})
		s.AddNode(n)
	}

	addRoof := func(name string, pos mgl32.Vec3, width, height float32) {
		n := scene.NewNode(name)
		n.Mesh = scene.CreatePyramid(width, height)
		n.Mesh.Material = matRoof
		n.SetPosition(pos)
		s.AddNode(n)
	}

	addTree := func(name string, x, z float32) {
		trunk := scene.NewNode(name + "_trunk")
		trunk.Mesh = scene.CreateCylinder(0.22, 2.2, 10)
		trunk.Mesh.Material = matTrunk
		trunk.SetPosition(mgl32.Vec3{x, 1.1, z})
		s.AddNode(trunk)

		crown := scene.NewNode(name + "_crown")
		crown.Mesh = scene.CreateCone(1.3, 3.0, 12)
		crown.Mesh.Material = matLeaves
		crown.SetPosition(mgl32.Vec3{x, 3.6, z})
		s.AddNode(crown)
	}

	addLamp := func(name string, x, z float32) {
		post := scene.NewNode(name + "_post")
		post.Mesh = scene.CreateCylinder(0.08, 3.2, 10)
		post.Mesh.Material = matLampPost
		post.SetPosition(mgl32.Vec3{x, 1.6, z})
		s.AddNode(post)

		head := scene.NewNode(name + "_head")
		head.Mesh = scene.CreateSphere(0.28, 12, 8)
		head.Mesh.Material = matLampHead
		head.SetPosition(mgl32.Vec3{x, 3.4, z})
		s.AddNode(head)
	}

	// ── Ground ────────────────────────────────────────────────────────────────
	groundMesh := scene.CreatePlane(80, 80, 1)
	groundMesh.Material = matGround
	groundNode := scene.NewNode("Ground")
	groundNode.Mesh = groundMesh
	s.AddNode(groundNode)

	gridNode := scene.NewNode("Grid")
	gridNode.Mesh = scene.CreateGrid(80, 40)
	gridNode.SetPosition(mgl32.Vec3{0, 0.01, 0})
	s.AddNode(gridNode)

	// ── Buildings around the square ───────────────────────────────────────────
	addBox("Bldg_NW", mgl32.Vec3{-15, 4.5, -15}, 9, 9, 9, matStone)
	addRoof("Bldg_NW_roof", mgl32.Vec3{-15, 10.5, -15}, 10, 3)

	addBox("Bldg_NE", mgl32.Vec3{16, 3.5, -15}, 12, 7, 10, matBrick)
	addBox("Bldg_NE_roof", mgl32.Vec3{16, 7.5, -15}, 13, 1, 11, matRoof)

	addBox("Bldg_SW", mgl32.Vec3{-15, 3, 16}, 8, 6, 8, matPlaster)
	addRoof("Bldg_SW_roof", mgl32.Vec3{-15, 7.25, 16}, 9, 2.5)

	addBox("Bldg_SE", mgl32.Vec3{16, 2.5, 16}, 14, 5, 8, matStone)
	addBox("Bldg_SE_roof", mgl32.Vec3{16, 5.5, 16}, 15, 1, 9, matRoof)

	// ── Fountain ──────────────────────────────────────────────────────────────
	basin := scene.NewNode("FountainBasin")
	basin.Mesh = scene.CreateCylinder(3.0, 0.8, 24)
	basin.Mesh.Material = matStone
	basin.SetPosition(mgl32.Vec3{0, 0.4, 0})
	s.AddNode(basin)

	water := scene.NewNode("FountainWater")
	water.Mesh = scene.CreateCylinder(2.7, 0.7, 24)
	water.Mesh.Material = matWater
	water.SetPosition(mgl32.Vec3{0, 0.5, 0})
	s.AddNode(water)

	// ── Trees and lamps ───────────────────────────────────────────────────────
	addTree("Tree_W", -8, 2)
	addTree("Tree_E", 8, 3)
	addTree("Tree_S1", -4, 10)
	addTree("Tree_S2", 5, 11)
	addTree("Tree_N", 6, -9)

	addLamp("Lamp_NW", -7, -7)
	addLamp("Lamp_NE", 7, -7)
	addLamp("Lamp_SW", -7, 7)
	addLamp("Lamp_SE", 7, 7)

	// ── Clock tower ───────────────────────────────────────────────────────────
	addBox("TowerBase", mgl32.Vec3{0, 2.5, -18}, 3, 5, 3, matStone)
	addBox("TowerShaft", mgl32.Vec3{0, 7.5, -18}, 2.2, 5, 2.2, matPlaster)
	addRoof("TowerRoof", mgl32.Vec3{0, 11.2, -18}, 3.2, 2.4)

	clockView := clock.Build(0.9)
	clockView.Root.SetPosition(mgl32.Vec3{0, 8.4, -16.8})
	s.AddNode(clockView.Root)

	renderEngine.SetScene(s)

	// ── Day/night cycle ───────────────────────────────────────────────────────
	clockCfg := daynight.DefaultConfig()
	if cfg, err := daynight.LoadConfig(clockConfigPath); err == nil {
		clockCfg = cfg
		log.Info("clock config loaded", zap.String("path", clockConfigPath))
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warn("clock config unreadable, using defaults", zap.Error(err))
	}

	manager, err := daynight.NewManagerFromConfig(clockCfg)
	if err != nil {
		log.Error("clock config invalid", zap.Error(err))
		return
	}

	visCfg := daynight.DefaultVisualConfig()
	if cfg, err := daynight.LoadVisualConfig(visualConfigPath); err == nil {
		visCfg = cfg
		log.Info("visual config loaded", zap.String("path", visualConfigPath))
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Warn("visual config unreadable, using defaults", zap.Error(err))
	}

	visualizer := daynight.NewVisualizer(visCfg, renderEngine, renderEngine.SkyMaterial())
	defer visualizer.Release()
	manager.SetVisualizer(visualizer)

	unsubHour := manager.OnHourChanged(func(hour int) {
		log.Info("hour changed", zap.Int("hour", hour), zap.String("clock", manager.Clock()))
	})
	defer unsubHour()

	unsubDay := manager.OnDayChanged(func(dayIndex int) {
		log.Info("new day", zap.Int("day", dayIndex))
	})
	defer unsubDay()

	unsubLimit := manager.OnTimeLimitReached(func(limitMinutes float64) {
		log.Info("time limit reached, clock halted",
			zap.String("clock", manager.Clock()),
			zap.Float64("limitMinutes", limitMinutes))
	})
	defer unsubLimit()

	// Push the starting time's lighting before the first frame.
	visualizer.Apply(manager.NormalizedTime())

	window.SetScrollCallback(func(xoff, yoff float64) {
		camera.Zoom(float32(-yoff) * 1.5)
	})

	fmt.Println("===========================================")
	fmt.Println("  DayNight Engine - Town Square")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CAMERA:")
	fmt.Println("  Arrow Keys     - Orbit around the square")
	fmt.Println("  - / = / Scroll - Zoom out / in")
	fmt.Println("")
	fmt.Println("CLOCK:")
	fmt.Println("  N              - Pause / resume the clock")
	fmt.Println("  , / .          - Halve / double the clock speed")
	fmt.Println("  1 / 2 / 3 / 4  - Jump to 06:00 / 12:00 / 18:00 / 00:00")
	fmt.Println("  L              - Arm / clear a halt at 22:00")
	fmt.Println("  R              - Reset clock to its start time")
	fmt.Println("  F5 / F9        - Save / load clock state")
	fmt.Println("")
	fmt.Println("VISUALS:")
	fmt.Println("  C              - Toggle ambient/sun/fog color grading")
	fmt.Println("  D              - Toggle distance fog tracking")
	fmt.Println("  A              - Toggle skybox horizon fog tracking")
	fmt.Println("  S              - Toggle skybox day/night blend tracking")
	fmt.Println("  W              - Toggle wireframe")
	fmt.Println("")
	fmt.Println("EXIT: ESC")
	fmt.Println("===========================================")
	fmt.Println("")

	// Debounce state for toggle keys
	pauseKeyWasDown := false
	slowKeyWasDown := false
	fastKeyWasDown := false
	limitKeyWasDown := false
	resetKeyWasDown := false
	saveKeyWasDown := false
	loadKeyWasDown := false
	colorsKeyWasDown := false
	fogKeyWasDown := false
	skyFogKeyWasDown := false
	skyKeyWasDown := false
	wireKeyWasDown := false

	hourJumps := []struct {
		key  int
		hour int
	}{
		{core.Key1, 6},
		{core.Key2, 12},
		{core.Key3, 18},
		{core.Key4, 0},
	}
	jumpKeyWasDown := make([]bool, len(hourJumps))

	// Speed the clock resumes at after a pause.
	resumeScale := manager.TimeScale()
	if resumeScale == 0 {
		resumeScale = 1
	}

	clampScale := func(v float64) float64 {
		if v < 0.25 {
			return 0.25
		}
		if v > 240 {
			return 240
		}
		return v
	}

	stepScale := func(factor float64) {
		if manager.TimeScale() == 0 {
			resumeScale = clampScale(resumeScale * factor)
			fmt.Printf("[Clock] speed x%g (paused)\n", resumeScale)
			return
		}
		manager.SetTimeScale(clampScale(manager.TimeScale() * factor))
		fmt.Printf("[Clock] speed x%g\n", manager.TimeScale())
	}

	lampsOn := false

	frames := 0
	displayFPS := 0
	lastTitle := time.Now()
	lastStatsLog := time.Now()
	lastFrame := time.Now()
	lastW, lastH := window.GetFramebufferSize()

	for !window.ShouldClose() {
		window.PollEvents()

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}
		fdt := float32(dt)

		// ── Camera ────────────────────────────────────────────────────────────
		if window.IsKeyPressed(core.KeyLeft) {
			camera.Orbit(-1.2*fdt, 0)
		}
		if window.IsKeyPressed(core.KeyRight) {
			camera.Orbit(1.2*fdt, 0)
		}
		if window.IsKeyPressed(core.KeyUp) {
			camera.Orbit(0, 0.8*fdt)
		}
		if window.IsKeyPressed(core.KeyDown) {
			camera.Orbit(0, -0.8*fdt)
		}
		if window.IsKeyPressed(core.KeyMinus) {
			camera.Zoom(14 * fdt)
		}
		if window.IsKeyPressed(core.KeyEqual) {
			camera.Zoom(-14 * fdt)
		}

		// ── Clock controls ────────────────────────────────────────────────────
		nDown := window.IsKeyPressed(core.KeyN)
		if nDown && !pauseKeyWasDown {
			if manager.TimeScale() == 0 {
				manager.SetTimeScale(resumeScale)
				fmt.Println("[Clock] RUNNING")
			} else {
				resumeScale = manager.TimeScale()
				manager.SetTimeScale(0)
				fmt.Println("[Clock] PAUSED")
			}
		}
		pauseKeyWasDown = nDown

		slowDown := window.IsKeyPressed(core.KeyComma)
		if slowDown && !slowKeyWasDown {
			stepScale(0.5)
		}
		slowKeyWasDown = slowDown

		fastDown := window.IsKeyPressed(core.KeyPeriod)
		if fastDown && !fastKeyWasDown {
			stepScale(2)
		}
		fastKeyWasDown = fastDown

		for i, jump := range hourJumps {
			down := window.IsKeyPressed(jump.key)
			if down && !jumpKeyWasDown[i] {
				if err := manager.SetHour(jump.hour); err != nil {
					log.Warn("set hour", zap.Error(err))
				} else {
					fmt.Printf("[Clock] jumped to %s\n", manager.Clock())
				}
			}
			jumpKeyWasDown[i] = down
		}

		lDown := window.IsKeyPressed(core.KeyL)
		if lDown && !limitKeyWasDown {
			if _, armed := manager.TimeLimit(); armed {
				manager.ClearTimeLimit()
				fmt.Println("[Clock] time limit cleared")
			} else {
				manager.SetTimeLimit(22 * 60)
				fmt.Println("[Clock] time limit armed at 22:00")
			}
		}
		limitKeyWasDown = lDown

		rDown := window.IsKeyPressed(core.KeyR)
		if rDown && !resetKeyWasDown {
			manager.Reset()
			fmt.Printf("[Clock] reset to %s, day 0\n", manager.Clock())
		}
		resetKeyWasDown = rDown

		f5Down := window.IsKeyPressed(core.KeyF5)
		if f5Down && !saveKeyWasDown {
			if err := daynight.SaveState(manager, clockStatePath); err != nil {
				log.Error("save clock state", zap.Error(err))
			} else {
				log.Info("clock state saved",
					zap.String("path", clockStatePath),
					zap.Int("day", manager.Day()),
					zap.String("clock", manager.Clock()))
			}
		}
		saveKeyWasDown = f5Down

		f9Down := window.IsKeyPressed(core.KeyF9)
		if f9Down && !loadKeyWasDown {
			if err := daynight.LoadState(manager, clockStatePath); err != nil {
				log.Error("load clock state", zap.Error(err))
			} else {
				log.Info("clock state loaded",
					zap.String("path", clockStatePath),
					zap.Int("day", manager.Day()),
					zap.String("clock", manager.Clock()))
			}
		}
		loadKeyWasDown = f9Down

		// ── Visual toggles ────────────────────────────────────────────────────
		cDown := window.IsKeyPressed(core.KeyC)
		if cDown && !colorsKeyWasDown {
			visCfg.ApplyColors = !visCfg.ApplyColors
			fmt.Printf("[Visuals] colors %s\n", map[bool]string{true: "ON", false: "OFF"}[visCfg.ApplyColors])
		}
		colorsKeyWasDown = cDown

		dDown := window.IsKeyPressed(core.KeyD)
		if dDown && !fogKeyWasDown {
			visCfg.ApplyFog = !visCfg.ApplyFog
			fmt.Printf("[Visuals] distance fog %s\n", map[bool]string{true: "ON", false: "OFF"}[visCfg.ApplyFog])
		}
		fogKeyWasDown = dDown

		aDown := window.IsKeyPressed(core.KeyA)
		if aDown && !skyFogKeyWasDown {
			visCfg.ApplySkyFog = !visCfg.ApplySkyFog
			fmt.Printf("[Visuals] sky fog %s\n", map[bool]string{true: "ON", false: "OFF"}[visCfg.ApplySkyFog])
		}
		skyFogKeyWasDown = aDown

		sDown := window.IsKeyPressed(core.KeyS)
		if sDown && !skyKeyWasDown {
			visCfg.ApplySky = !visCfg.ApplySky
			fmt.Printf("[Visuals] sky blend %s\n", map[bool]string{true: "ON", false: "OFF"}[visCfg.ApplySky])
		}
		skyKeyWasDown = sDown

		wDown := window.IsKeyPressed(core.KeyW)
		if wDown && !wireKeyWasDown {
			renderEngine.SetWireframe(!renderEngine.IsWireframe())
		}
		wireKeyWasDown = wDown

		// ── Advance the cycle ─────────────────────────────────────────────────
		manager.Tick(dt)
		clockView.SetTime(manager.TimeOfDay())

		if on := manager.IsWithinWindow(lampsOnFromHour, lampsOnToHour); on != lampsOn {
			lampsOn = on
			if lampsOn {
				matLampHead.Albedo = core.Color{R: 1.0, G: 0.85, B: 0.45, A: 1}
				matLampHead.Unlit = true
			} else {
				matLampHead.Albedo = core.Color{R: 0.35, G: 0.35, B: 0.38, A: 1}
				matLampHead.Unlit = false
			}
			log.Info("street lamps", zap.Bool("on", lampsOn), zap.String("clock", manager.Clock()))
		}

		// ── Draw ──────────────────────────────────────────────────────────────
		if fbw, fbh := window.GetFramebufferSize(); fbw != lastW || fbh != lastH {
			if fbw > 0 && fbh > 0 {
				renderEngine.Resize(fbw, fbh)
			}
			lastW, lastH = fbw, fbh
		}

		if err := renderEngine.Render(); err != nil {
			log.Error("render", zap.Error(err))
			break
		}
		renderEngine.Present()

		frames++
		if now.Sub(lastTitle) >= time.Second {
			displayFPS = frames
			frames = 0
			lastTitle = now

			title := fmt.Sprintf("DayNight Engine | Day %d  %s  x%g | FPS: %d",
				manager.Day(), manager.Clock(), manager.TimeScale(), displayFPS)
			if manager.LimitReached() {
				title += " [LIMIT]"
			} else if manager.TimeScale() == 0 {
				title += " [PAUSED]"
			}
			window.SetTitle(title)
		}

		if now.Sub(lastStatsLog) >= 10*time.Second {
			objects, verts, tris := renderEngine.DrawStats()
			log.Info("frame stats",
				zap.Int("fps", displayFPS),
				zap.Int("objects", objects),
				zap.Int("vertices", verts),
				zap.Int("triangles", tris),
				zap.Int("day", manager.Day()),
				zap.String("clock", manager.Clock()))
			lastStatsLog = now
		}
	}

	fmt.Println("Exiting...")
}
