package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/testutil"
)

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.NewStandardBoard(), 0))

	want := `8  r n b q k b n r
7  p p p p p p p p
6  . . . . . . . .
5  . . . . . . . .
4  . . . . . . . .
3  . . . . . . . .
2  P P P P P P P P
1  R N B Q K B N R
   a b c d e f g h
`
	testutil.AssertEqual(t, buf.String(), want)
}

func TestWriteBoard_BaseLetter(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.NewBoard(), 'p'))
	testutil.AssertContains(t, buf.String(), "   p q r s t u v w\n")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteSVG(&buf, chess.NewStandardBoard(), 'a'))

	out := buf.String()
	testutil.AssertContains(t, out, "<svg")
	testutil.AssertContains(t, out, "</svg>")
	testutil.AssertEqual(t, strings.Count(out, "<rect"), 64)
	testutil.AssertEqual(t, strings.Count(out, "♙"), 8)
	testutil.AssertEqual(t, strings.Count(out, "♚"), 1)
	testutil.AssertContains(t, out, ">h</text>")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWriteSVG_WriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, chess.NewBoard(), 'a')
	testutil.AssertErrorIs(t, err, bytes.ErrTooLarge)
}

func TestGlyph(t *testing.T) {
	testutil.AssertEqual(t, Glyph(nil), "")
	testutil.AssertEqual(t, Glyph(chess.NewPiece(chess.Queen, chess.White)), "♕")
	testutil.AssertEqual(t, Glyph(chess.NewPiece(chess.Knight, chess.Black)), "♞")
}
