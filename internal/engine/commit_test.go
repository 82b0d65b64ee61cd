package engine

import (
	"testing"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/testutil"
)

func TestCommit(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		P.......
		........
		...pP...
		........
		........
		....P...
		R...K...
	`)
	board.At(sq(t, "d5")).MoveCount = DoubleStepMark
	before := board.Copy()

	t.Run("plain move bumps the mover", func(t *testing.T) {
		next := commit(board, sq(t, "a1"), sq(t, "a4"), chess.NoKind, legal())
		testutil.AssertEqual(t, next.At(sq(t, "a4")).MoveCount, 1)
		testutil.AssertTrue(t, next.IsEmpty(sq(t, "a1")))
	})

	t.Run("double step mark replaces the bump", func(t *testing.T) {
		next := commit(board, sq(t, "e2"), sq(t, "e4"), chess.NoKind, legalWith(bump(sq(t, "e4"), DoubleStepMark)))
		testutil.AssertEqual(t, next.At(sq(t, "e4")).MoveCount, DoubleStepMark)
	})

	t.Run("en passant removes the passed pawn", func(t *testing.T) {
		next := commit(board, sq(t, "e5"), sq(t, "d6"), chess.NoKind, legalWith(remove(sq(t, "d5"))))
		testutil.AssertTrue(t, next.IsEmpty(sq(t, "d5")), "d5 cleared")
		testutil.AssertTrue(t, next.At(sq(t, "d6")).Is(chess.Pawn, chess.White), "pawn on d6")
		testutil.AssertEqual(t, next.At(sq(t, "d6")).MoveCount, 2)
	})

	t.Run("promotion substitutes the piece", func(t *testing.T) {
		next := commit(board, sq(t, "a7"), sq(t, "a8"), chess.Knight, legal())
		testutil.AssertEqual(t, *next.At(sq(t, "a8")), chess.Piece{Kind: chess.Knight, Owner: chess.White, MoveCount: 2})
	})

	testutil.AssertBoardsEqual(t, board, before)
}

func TestAgeDoubleStep(t *testing.T) {
	board := testutil.MustBoard(t, `
		....k...
		........
		........
		........
		....P...
		........
		........
		....K...
	`)
	e4 := sq(t, "e4")
	board.At(e4).MoveCount = DoubleStepMark

	ageDoubleStep(board, nil, chess.White)
	testutil.AssertEqual(t, board.At(e4).MoveCount, DoubleStepMark, "nothing pending")

	ageDoubleStep(board, &e4, chess.Black)
	testutil.AssertEqual(t, board.At(e4).MoveCount, DoubleStepMark, "wrong owner")

	ageDoubleStep(board, &e4, chess.White)
	testutil.AssertEqual(t, board.At(e4).MoveCount, DoubleStepMark+1)

	ageDoubleStep(board, &e4, chess.White)
	testutil.AssertEqual(t, board.At(e4).MoveCount, DoubleStepMark+1, "ages once")
}

func TestOutcome(t *testing.T) {
	out := legalWith(remove(sq(t, "d5")), bump(sq(t, "d6"), 1))

	testutil.AssertTrue(t, out.IsLegal())
	testutil.AssertEqual(t, out.Verdict, LegalWithEffects)
	testutil.AssertTrue(t, out.Removes(sq(t, "d5")))
	testutil.AssertFalse(t, out.Removes(sq(t, "d6")))
	testutil.AssertTrue(t, out.adjusts(sq(t, "d6")))
	testutil.AssertEqual(t, legalWith(), legal())
	testutil.AssertFalse(t, illegal().IsLegal())
	testutil.AssertEqual(t, illegal().Verdict.String(), "Illegal")
}
