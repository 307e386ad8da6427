//go:build !js || !wasm

package game

// IsWASM returns false for native builds, where Esc quits the game
func IsWASM() bool {
	return false
}
