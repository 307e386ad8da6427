package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"

	"github.com/mpihlak/goracer/pkg/game/objects"
)

// keyBindings maps each logical direction to the keys that drive it.
var keyBindings = map[objects.Direction][]ebiten.Key{
	objects.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
	objects.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
	objects.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	objects.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// directionsHeld reports for every direction whether one of its keys passes
// the pressed predicate.
func directionsHeld(pressed func(ebiten.Key) bool) map[objects.Direction]bool {
	held := make(map[objects.Direction]bool, len(keyBindings))
	for d, keys := range keyBindings {
		held[d] = lo.SomeBy(keys, pressed)
	}
	return held
}

// startKey reports whether any of the just pressed keys should start the
// race. Esc never does.
func startKey(justPressed []ebiten.Key) bool {
	return lo.ContainsBy(justPressed, func(k ebiten.Key) bool {
		return k != ebiten.KeyEscape
	})
}

// startRequested checks keyboard, mouse and touch for a start request.
func startRequested() bool {
	return startKey(inpututil.AppendJustPressedKeys(nil)) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
