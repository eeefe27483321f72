// Command gamepaint generates placeholder game UI assets from the
// command line: a full themed UI kit, or a small demo set exercising
// the drawing primitives.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/pixeldraft/gamepaint"
)

var (
	outDir  = flag.String("out", "output", "output directory")
	kit     = flag.Bool("kit", false, "generate a full UI kit")
	theme   = flag.String("theme", "default", "kit theme: default, rpg, scifi, cartoon, pixel")
	demo    = flag.Bool("demo", false, "generate a demo scene and primitive samples")
	verbose = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gamepaint [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		gamepaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if !*kit && !*demo {
		flag.Usage()
		os.Exit(1)
	}

	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	report := func(format string, args ...any) {
		if pretty {
			fmt.Printf("  ✓ "+format+"\n", args...)
		} else {
			fmt.Printf(format+"\n", args...)
		}
	}

	if *kit {
		dir := filepath.Join(*outDir, "ui_kit")
		files, err := gamepaint.GenerateKit(dir, gamepaint.KitTheme(*theme))
		if err != nil {
			fmt.Fprintf(os.Stderr, "gamepaint: %v\n", err)
			os.Exit(1)
		}
		for _, f := range files {
			report("%s", f)
		}
		fmt.Printf("%d files written to %s\n", len(files), dir)
	}

	if *demo {
		if err := generateDemo(*outDir, report); err != nil {
			fmt.Fprintf(os.Stderr, "gamepaint: %v\n", err)
			os.Exit(1)
		}
	}
}

// generateDemo renders a composed scene plus one sample per drawing
// primitive.
func generateDemo(dir string, report func(string, ...any)) error {
	save := func(c *gamepaint.Canvas, name string) error {
		path, err := gamepaint.OutputPath(name, dir)
		if err != nil {
			return err
		}
		if _, err := c.Save(path); err != nil {
			return err
		}
		report("%s", name)
		return nil
	}

	// Composed scene: sky, ground, sun, clouds, house, trees and a car.
	scene := gamepaint.NewCanvas(400, 200, gamepaint.RGBA(135, 206, 235, 255))
	ground := gamepaint.RGBA(100, 180, 100, 255)
	scene.Rect(0, 160, 400, 40, &ground, nil, 0)
	sun := gamepaint.RGBA(255, 220, 100, 255)
	scene.Ellipse(330, 20, 50, 50, &sun, nil, 0)
	cloud := gamepaint.RGBA(255, 255, 255, 200)
	scene.Ellipse(50, 30, 40, 25, &cloud, nil, 0)
	scene.Ellipse(75, 25, 50, 30, &cloud, nil, 0)
	scene.Ellipse(110, 32, 35, 22, &cloud, nil, 0)
	gamepaint.DrawHouse(scene, 30, 30, 1.0,
		gamepaint.RGBA(255, 230, 180, 255), gamepaint.RGBA(180, 80, 50, 255))
	gamepaint.DrawTree(scene, 170, 30, 1.0,
		gamepaint.RGBA(139, 90, 43, 255), gamepaint.RGBA(50, 180, 50, 255))
	gamepaint.DrawTree(scene, 230, 45, 0.8,
		gamepaint.RGBA(139, 90, 43, 255), gamepaint.RGBA(50, 180, 50, 255))
	gamepaint.DrawCar(scene, 280, 85, 0.9,
		gamepaint.RGBA(50, 100, 200, 255), gamepaint.RGBA(150, 200, 255, 255))
	if err := save(scene, "demo_scene.png"); err != nil {
		return err
	}

	// Bezier samples: a wave and a two-curve heart shape.
	curves := gamepaint.NewCanvas(200, 100, gamepaint.RGBA(240, 240, 240, 255))
	wave := gamepaint.RGBA(100, 50, 200, 255)
	curves.Bezier([]gamepaint.Point{
		gamepaint.Pt(20, 50), gamepaint.Pt(60, 20), gamepaint.Pt(140, 80), gamepaint.Pt(180, 50),
	}, wave, 3, 50)
	lobe := gamepaint.RGBA(255, 100, 100, 255)
	curves.Bezier([]gamepaint.Point{
		gamepaint.Pt(100, 80), gamepaint.Pt(60, 40), gamepaint.Pt(100, 20),
	}, lobe, 2, 50)
	curves.Bezier([]gamepaint.Point{
		gamepaint.Pt(100, 80), gamepaint.Pt(140, 40), gamepaint.Pt(100, 20),
	}, lobe, 2, 50)
	if err := save(curves, "demo_bezier.png"); err != nil {
		return err
	}

	// One button of each style.
	for _, style := range []gamepaint.ButtonStyle{
		gamepaint.ButtonFlat, gamepaint.ButtonGradient, gamepaint.ButtonGlossy,
		gamepaint.ButtonOutline, gamepaint.ButtonPixel,
	} {
		c := gamepaint.NewButton(120, 40, "Start", style, "blue")
		if err := save(c, fmt.Sprintf("demo_button_%s.png", style)); err != nil {
			return err
		}
	}

	// Minimaps and a tooltip.
	for _, shape := range []gamepaint.MinimapShape{gamepaint.MinimapCircle, gamepaint.MinimapSquare} {
		c := gamepaint.NewCanvas(120, 120, gamepaint.Transparent)
		c.MinimapFrame(gamepaint.MinimapFrameOptions{Shape: shape})
		if err := save(c, fmt.Sprintf("demo_minimap_%s.png", shape)); err != nil {
			return err
		}
	}
	tip := gamepaint.NewCanvas(180, 80, gamepaint.Transparent)
	tip.Tooltip(gamepaint.TooltipOptions{Title: "Legendary Sword", Rarity: gamepaint.RarityLegendary})
	return save(tip, "demo_tooltip.png")
}
