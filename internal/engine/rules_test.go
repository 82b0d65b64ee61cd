package engine

import (
	"testing"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/testutil"
)

// sq converts a square name, failing the test on a bad name.
func sq(t testing.TB, name string) chess.Square {
	t.Helper()
	s, ok := chess.SquareFromName(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return s
}

type ruleCase struct {
	name    string
	from    string
	to      string
	capture bool
	want    Outcome
}

func runRuleCases(t *testing.T, board *chess.Board, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := board.Copy()
			from, to := sq(t, tt.from), sq(t, tt.to)
			got := Evaluate(board, board.At(from), tt.capture, from, to)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertBoardsEqual(t, board, before)
		})
	}
}

func TestEvaluate_Pawn(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		..p.....
		........
		........
		........
		...b.R..
		....P.P.
		....K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"single step", "e2", "e3", false, legal()},
		{"double step marks the pawn", "e2", "e4", false, legalWith(bump(sq(t, "e4"), DoubleStepMark))},
		{"three steps", "e2", "e5", false, illegal()},
		{"backwards", "e2", "e1", false, illegal()},
		{"sideways", "e2", "f2", false, illegal()},
		{"diagonal without capture", "e2", "f3", false, illegal()},
		{"capture enemy diagonally", "e2", "d3", true, legal()},
		{"capture own piece", "e2", "f3", true, illegal()},
		{"capture straight ahead", "e2", "e3", true, illegal()},
		{"capture onto empty square", "g2", "h3", true, illegal()},
		{"double step on the g-file", "g2", "g4", false, legalWith(bump(sq(t, "g4"), DoubleStepMark))},
		{"black single step", "c7", "c6", false, legal()},
		{"black double step", "c7", "c5", false, legalWith(bump(sq(t, "c5"), DoubleStepMark))},
		{"black backwards", "c7", "c8", false, illegal()},
	})
}

func TestEvaluate_PawnDoubleStepBlocked(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		......n.
		....n...
		....P.P.
		....K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"intermediate occupied", "e2", "e4", false, illegal()},
		{"destination occupied", "g2", "g4", false, illegal()},
		{"single step still open", "g2", "g3", false, legal()},
	})
}

func TestEvaluate_PawnMovedCannotDoubleStep(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		........
		....P...
		........
		....K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"moved pawn double step", "e3", "e5", false, illegal()},
		{"moved pawn single step", "e3", "e4", false, legal()},
	})
}

func TestEvaluate_EnPassant(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		...pP.p.
		.pP.....
		........
		........
		....K...
	`)
	board.At(sq(t, "d5")).MoveCount = DoubleStepMark
	board.At(sq(t, "b4")).MoveCount = DoubleStepMark
	board.At(sq(t, "c4")).MoveCount = DoubleStepMark

	runRuleCases(t, board, []ruleCase{
		{"white takes en passant", "e5", "d6", true, legalWith(remove(sq(t, "d5")))},
		{"nothing beside on f5", "e5", "f6", true, illegal()},
		{"straight ahead", "e5", "e6", true, illegal()},
		{"black takes en passant", "b4", "c3", true, legalWith(remove(sq(t, "c4")))},
		{"black pawn not on its fifth rank", "g5", "f4", true, illegal()},
		{"not a capture", "e5", "d6", false, illegal()},
	})
}

func TestEvaluate_EnPassantNeedsMark(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		...pP...
		........
		........
		........
		....K...
	`)
	board.At(sq(t, "d5")).MoveCount = DoubleStepMark + 1

	runRuleCases(t, board, []ruleCase{
		{"stale double step", "e5", "d6", true, illegal()},
	})
}

func TestEvaluate_Rook(t *testing.T) {
	board := testutil.MustBoard(t, `
		r...k...
		........
		........
		........
		R..p..N.
		........
		........
		....K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"up the file", "a4", "a7", false, legal()},
		{"capture up the file", "a4", "a8", true, legal()},
		{"down the file", "a4", "a1", false, legal()},
		{"sideways bumps the rook", "a4", "c4", false, legalWith(bump(sq(t, "c4"), 1))},
		{"sideways capture bumps the rook", "a4", "d4", true, legalWith(bump(sq(t, "d4"), 1))},
		{"blocked sideways", "a4", "e4", false, illegal()},
		{"onto occupied without capture", "a4", "d4", false, illegal()},
		{"capture behind a blocker", "a4", "g4", true, illegal()},
		{"capture empty square", "a4", "a6", true, illegal()},
		{"diagonal", "a4", "c6", false, illegal()},
		{"knight shape", "a4", "b6", false, illegal()},
	})
}

func TestEvaluate_Knight(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		........
		...p....
		........
		.N..K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"to c3", "b1", "c3", false, legal()},
		{"to a3", "b1", "a3", false, legal()},
		{"capture on d2 empty", "b1", "d2", true, legal()},
		{"capture d3 not a knight move", "b1", "d3", true, illegal()},
		{"straight", "b1", "b3", false, illegal()},
		{"diagonal", "b1", "c2", false, illegal()},
		{"to d2", "b1", "d2", false, legal()},
	})

	board.Set(sq(t, "c3"), chess.NewPiece(chess.Pawn, chess.Black))
	runRuleCases(t, board, []ruleCase{
		{"occupied without capture", "b1", "c3", false, illegal()},
		{"occupied with capture", "b1", "c3", true, legal()},
	})
}

func TestEvaluate_Bishop(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		........
		....P...
		........
		..B.K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"diagonal", "c1", "a3", false, legal()},
		{"one step", "c1", "d2", false, legal()},
		{"past own pawn", "c1", "f4", false, illegal()},
		{"capture needs occupant", "c1", "a3", true, illegal()},
		{"occupied needs capture", "c1", "e3", false, illegal()},
		{"straight", "c1", "c4", false, illegal()},
	})
}

func TestEvaluate_BishopCaptureFlag(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		......p.
		........
		........
		........
		..B.K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"capture onto occupied", "c1", "g5", true, legal()},
		{"occupied without capture flag", "c1", "g5", false, illegal()},
		{"empty with capture flag", "c1", "f4", true, illegal()},
		{"empty without capture flag", "c1", "f4", false, legal()},
	})
}

func TestEvaluate_Queen(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		........
		........
		...P....
		...QK..r
	`)

	runRuleCases(t, board, []ruleCase{
		{"diagonal like a bishop", "d1", "a4", false, legal()},
		{"sideways like a rook", "d1", "a1", false, legalWith(bump(sq(t, "a1"), 1))},
		{"blocked file", "d1", "d5", false, illegal()},
		{"blocked rank", "d1", "h1", true, illegal()},
		{"knight shape", "d1", "e3", false, illegal()},
	})
}

func TestEvaluate_King(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		........
		........
		...pP...
		....K...
	`)

	runRuleCases(t, board, []ruleCase{
		{"one step bumps the king", "e1", "f1", false, legalWith(bump(sq(t, "f1"), 1))},
		{"diagonal step", "e1", "f2", false, legalWith(bump(sq(t, "f2"), 1))},
		{"capture", "e1", "d2", true, legalWith(bump(sq(t, "d2"), 1))},
		{"occupied without capture", "e1", "d2", false, illegal()},
		{"two steps", "e1", "g1", false, illegal()},
	})
}

func TestEvaluate_OffBoardPanics(t *testing.T) {
	board := chess.NewStandardBoard()
	defer func() {
		if recover() == nil {
			t.Error("Evaluate with file 0 did not panic")
		}
	}()
	Evaluate(board, board.At(chess.Sq(1, 1)), false, chess.Sq(1, 1), chess.Sq(1, 0))
}

func TestIsPathClear(t *testing.T) {
	board := chess.NewStandardBoard()

	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a2", true},
		{"a1", "a3", false},
		{"a2", "a7", true},
		{"c1", "e3", false},
		{"b2", "g7", true},
		{"d3", "d6", true},
		{"h3", "a3", true},
	}
	for _, tt := range tests {
		if got := isPathClear(board, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
			t.Errorf("isPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAbsSign(t *testing.T) {
	tests := []struct {
		in, abs, sign int
	}{
		{0, 0, 0},
		{5, 5, 1},
		{-3, 3, -1},
	}
	for _, tt := range tests {
		if got := abs(tt.in); got != tt.abs {
			t.Errorf("abs(%d) = %d, want %d", tt.in, got, tt.abs)
		}
		if got := sign(tt.in); got != tt.sign {
			t.Errorf("sign(%d) = %d, want %d", tt.in, got, tt.sign)
		}
	}
}
