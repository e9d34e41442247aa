// internal/types/position.go
package types

// Position represents a text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based byte column within the line.
type Position struct {
	Line int
	Col  int
}
