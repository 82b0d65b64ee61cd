package output

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/schackmotor-go/internal/chess"
)

// WriteBoard prints the board as a diagram, rank 8 first, with rank
// numbers on the left and file letters from base underneath.
func WriteBoard(w io.Writer, board *chess.Board, base byte) error {
	if base == 0 {
		base = chess.DefaultBaseLetter
	}

	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(board.Get(rank, file).Symbol())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(' ')
		sb.WriteByte(base + byte(file))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Board geometry for SVG rendering.
const (
	squareSize = 45
	margin     = 20
	boardSide  = squareSize * chess.BoardSize
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	labelStyle  = "font-family:sans-serif;font-size:12px;text-anchor:middle"
	pieceStyle  = "font-family:serif;font-size:36px;text-anchor:middle;dominant-baseline:central"
)

// glyphs holds the figurine for each kind, White then Black.
var glyphs = map[chess.Kind][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// Glyph returns the figurine for a piece, or "" for nil.
func Glyph(p *chess.Piece) string {
	if p == nil {
		return ""
	}
	g := glyphs[p.Kind]
	if p.Owner == chess.White {
		return g[0]
	}
	return g[1]
}

// WriteSVG renders the board as an SVG image with White at the bottom.
func WriteSVG(w io.Writer, board *chess.Board, base byte) error {
	if base == 0 {
		base = chess.DefaultBaseLetter
	}

	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(boardSide+2*margin, boardSide+2*margin)
	canvas.Title("board")

	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		y := margin + (chess.LastRank-rank)*squareSize
		canvas.Text(margin/2, y+squareSize/2+4, fmt.Sprint(rank), labelStyle)
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			x := margin + (file-1)*squareSize
			style := darkSquare
			if (rank+file)%2 == 1 {
				style = lightSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)
			if g := Glyph(board.Get(rank, file)); g != "" {
				canvas.Text(x+squareSize/2, y+squareSize/2, g, pieceStyle)
			}
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, margin+boardSide+margin*3/4, string(base+byte(file)), labelStyle)
	}

	canvas.End()
	return cw.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
