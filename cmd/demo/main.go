package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"soft-render/core"
	"soft-render/io"
	"soft-render/math"
	"soft-render/renderer"
	"soft-render/scene"
)

var (
	width     = flag.Int("width", 640, "framebuffer width in pixels")
	height    = flag.Int("height", 480, "framebuffer height in pixels")
	scale     = flag.Int("scale", 2, "window scale factor")
	wireframe = flag.Bool("wireframe", false, "draw triangle edges instead of filling")
	culling   = flag.Bool("culling", false, "enable frustum culling")
	unlit     = flag.Bool("unlit", false, "disable the directional light")
	scenePath = flag.String("scene", "", "JSON scene file to load instead of the built-in demo")
	snapshot  = flag.String("snapshot", "", "write a PNG of the first frame to this path")
)

type game struct {
	engine *renderer.Engine
	cam    *scene.Camera
	sc     *scene.Scene
	cube   *scene.Node

	overlay DebugOverlay
	fbImg   *ebiten.Image
	start   time.Time

	snapshotPath string
	spaceWasDown bool
}

func (g *game) Update() error {
	elapsed := float32(time.Since(g.start).Seconds())

	if g.cube != nil {
		spin := math.QuaternionFromAxisAngle(math.Vec3Up, elapsed*0.8)
		tilt := math.QuaternionFromAxisAngle(math.Vec3Right, 0.45)
		g.cube.Transform.Rotation = spin.Mul(tilt)
	}

	spaceDown := ebiten.IsKeyPressed(ebiten.KeySpace)
	if spaceDown && !g.spaceWasDown {
		g.engine.Wireframe = !g.engine.Wireframe
	}
	g.spaceWasDown = spaceDown

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.engine.RenderFrame(g.cam, g.sc)

	objects, vertices, triangles, culled := g.engine.DrawStats()
	g.overlay.Clear()
	g.overlay.AddLine(fmt.Sprintf("fps %.0f", ebiten.ActualFPS()))
	g.overlay.AddLine(fmt.Sprintf("obj %d  vtx %d  tri %d  culled %d",
		objects, vertices, triangles, culled))
	g.overlay.AddLine("space: toggle wireframe")
	g.overlay.Draw(g.engine.Frame.Image())

	if g.snapshotPath != "" {
		if err := writePNG(g.snapshotPath, g.engine); err != nil {
			log.Printf("snapshot: %v", err)
		}
		g.snapshotPath = ""
	}

	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.engine.Width(), g.engine.Height())
	}
	g.fbImg.WritePixels(g.engine.Frame.Bytes())
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.engine.Width(), g.engine.Height()
}

func writePNG(path string, e *renderer.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, e.Frame.Image())
}

// demoScene builds the default spinning-cube scene: a colored cube above a
// grid floor.
func demoScene(aspect float32) (*scene.Scene, *scene.Camera, *scene.Node) {
	sc := scene.NewScene()
	sc.Background = core.Color{R: 0.07, G: 0.07, B: 0.1, A: 1}

	cube := scene.NewNode("cube", scene.CreateColoredCube(1.5))
	sc.AddNode(cube)

	floor := scene.NewNode("floor", scene.CreateGrid(10, 10, core.Color{R: 0.3, G: 0.3, B: 0.35, A: 1}))
	floor.Transform.Position = math.Vec3{X: 0, Y: -1.5, Z: 0}
	sc.AddNode(floor)

	cam := scene.NewCamera(1.0472, aspect, 0.1, 100.0) // 60 degrees FOV
	cam.SetPosition(math.Vec3{X: 0, Y: 1.5, Z: 4})
	cam.LookAt(math.Vec3Zero)
	return sc, cam, cube
}

func main() {
	flag.Parse()

	engine := renderer.NewEngine()
	if !engine.Init(*width, *height) {
		log.Fatalf("unsupported framebuffer size %dx%d", *width, *height)
	}
	engine.Wireframe = *wireframe
	engine.FrustumCulling = *culling
	if !*unlit {
		light := renderer.DefaultLight()
		engine.Light = &light
	}

	aspect := float32(*width) / float32(*height)

	var (
		sc   *scene.Scene
		cam  *scene.Camera
		cube *scene.Node
	)
	if *scenePath != "" {
		sf, err := io.LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		sc, cam, err = io.BuildScene(sf, aspect)
		if err != nil {
			log.Fatalf("build scene: %v", err)
		}
		cube = sc.FindNode("cube")
	} else {
		sc, cam, cube = demoScene(aspect)
	}

	g := &game{
		engine:       engine,
		cam:          cam,
		sc:           sc,
		cube:         cube,
		start:        time.Now(),
		snapshotPath: *snapshot,
	}

	ebiten.SetWindowTitle("Soft Render")
	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
