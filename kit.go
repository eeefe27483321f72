package gamepaint

import (
	"fmt"
	"os"
	"path/filepath"
)

// KitTheme selects the overall look of a generated UI kit.
type KitTheme string

// Kit themes.
const (
	ThemeDefault KitTheme = "default"
	ThemeRPG     KitTheme = "rpg"
	ThemeScifi   KitTheme = "scifi"
	ThemeCartoon KitTheme = "cartoon"
	ThemePixel   KitTheme = "pixel"
)

// kitDialogStyles maps a kit theme to the dialog style used for its
// dialog asset.
var kitDialogStyles = map[KitTheme]DialogStyle{
	ThemeDefault: DialogModern,
	ThemeRPG:     DialogFantasy,
	ThemeScifi:   DialogScifi,
	ThemeCartoon: DialogModern,
	ThemePixel:   DialogPixel,
}

// GenerateKit renders a full set of placeholder UI assets into dir:
// buttons, control icons, decorative icons, gems, a progress bar,
// health bars at three levels, item slots, a dialog box and the four
// arrows. It returns the generated file names in generation order.
func GenerateKit(dir string, theme KitTheme) ([]string, error) {
	if dir == "" {
		dir = "ui_kit"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var files []string
	save := func(c *Canvas, name string) error {
		if _, err := c.Save(filepath.Join(dir, name)); err != nil {
			return err
		}
		files = append(files, name)
		return nil
	}

	log := Logger()
	log.Debug("generating ui kit", "dir", dir, "theme", theme)

	for _, style := range []ButtonStyle{ButtonFlat, ButtonGradient, ButtonGlossy} {
		c := NewButton(120, 40, "Button", style, "blue")
		if err := save(c, fmt.Sprintf("button_%s.png", style)); err != nil {
			return files, err
		}
	}

	for _, kind := range []ControlKind{ControlClose, ControlSettings, ControlPlay, ControlPause, ControlMenu} {
		c := NewControlIcon(48, kind)
		if err := save(c, fmt.Sprintf("ctrl_%s.png", kind)); err != nil {
			return files, err
		}
	}

	for _, icon := range []string{"star", "coin", "heart"} {
		c := NewCanvas(64, 64, Transparent)
		switch icon {
		case "coin":
			c.Coin(DefaultCoinOptions())
		case "heart":
			c.Heart(DefaultHeartOptions())
		default:
			c.Star(DefaultStarOptions())
		}
		if err := save(c, fmt.Sprintf("icon_%s.png", icon)); err != nil {
			return files, err
		}
	}

	for _, gem := range []GemKind{GemDiamond, GemRuby, GemEmerald} {
		c := NewCanvas(64, 64, Transparent)
		c.Gem(GemOptions{Kind: gem})
		if err := save(c, fmt.Sprintf("gem_%s.png", gem)); err != nil {
			return files, err
		}
	}

	progress := NewCanvas(200, 24, Transparent)
	opts := DefaultProgressBarOptions()
	opts.Progress = 75
	progress.ProgressBar(opts)
	if err := save(progress, "progress_bar.png"); err != nil {
		return files, err
	}

	for _, hp := range []float64{100, 50, 25} {
		c := NewCanvas(150, 16, Transparent)
		hb := DefaultHealthBarOptions()
		hb.Percent = hp
		c.HealthBar(hb)
		if err := save(c, fmt.Sprintf("health_%.0f.png", hp)); err != nil {
			return files, err
		}
	}

	for _, rarity := range []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary} {
		c := NewCanvas(64, 64, Transparent)
		c.ItemSlot(ItemSlotOptions{Rarity: rarity})
		if err := save(c, fmt.Sprintf("slot_%s.png", rarity)); err != nil {
			return files, err
		}
	}

	dialogStyle, ok := kitDialogStyles[theme]
	if !ok {
		dialogStyle = DialogModern
	}
	dialog := NewCanvas(300, 100, Transparent)
	d := DefaultDialogBoxOptions()
	d.Style = dialogStyle
	d.H = 87 // leave room for the speech pointer
	dialog.DialogBox(d)
	if err := save(dialog, "dialog_box.png"); err != nil {
		return files, err
	}

	for _, dir := range []ArrowDirection{ArrowUp, ArrowDown, ArrowLeft, ArrowRight} {
		c := NewCanvas(40, 40, Transparent)
		c.Arrow(ArrowOptions{Direction: dir})
		if err := save(c, fmt.Sprintf("arrow_%s.png", dir)); err != nil {
			return files, err
		}
	}

	log.Debug("ui kit complete", "files", len(files))
	return files, nil
}
