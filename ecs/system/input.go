package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/carpark/ecs"
	"github.com/milk9111/carpark/ecs/component"
)

// InputSystem folds the mouse and the first active touch into the Pointer
// component. A touch, once started, owns the pointer until it is released.
type InputSystem struct {
	touchID  ebiten.TouchID
	touching bool
	touches  []ebiten.TouchID
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ptrEnt, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Get(w, ptrEnt, component.PointerComponent.Kind())
	if !ok {
		return
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if !i.touching {
		i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
		if len(i.touches) > 0 {
			i.touchID = i.touches[0]
			i.touching = true
			justPressed = true
		}
	}
	if i.touching {
		if inpututil.IsTouchJustReleased(i.touchID) {
			i.touching = false
			pressed = false
			justReleased = true
			// the released touch has no position any more
			x, y = ptr.X, ptr.Y
		} else {
			tx, ty := ebiten.TouchPosition(i.touchID)
			x, y = float64(tx), float64(ty)
			pressed = true
		}
	}

	ApplyPointer(ptr, x, y, pressed, justPressed, justReleased)
}

// ApplyPointer records one frame of pointer state.
func ApplyPointer(ptr *component.Pointer, x, y float64, pressed, justPressed, justReleased bool) {
	ptr.Moved = x != ptr.X || y != ptr.Y
	ptr.X = x
	ptr.Y = y
	ptr.Pressed = pressed
	ptr.JustPressed = justPressed
	ptr.JustReleased = justReleased
}
