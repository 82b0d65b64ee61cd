package notation

import (
	"testing"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/errors"
	"github.com/lgbarn/schackmotor-go/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"O-O", Move{Class: KingsideCastle, Piece: chess.King}},
		{"O-O-O", Move{Class: QueensideCastle, Piece: chess.King}},
		{"O-O+", Move{Class: KingsideCastle, Piece: chess.King}},
		{"e4", Move{Class: PlainMove, Piece: chess.Pawn, To: chess.Sq(4, 5)}},
		{"Pe4", Move{Class: PlainMove, Piece: chess.Pawn, To: chess.Sq(4, 5)}},
		{"e2e4", Move{Class: PlainMove, Piece: chess.Pawn, FromRank: 2, FromFile: 5, To: chess.Sq(4, 5)}},
		{"Nf3", Move{Class: PlainMove, Piece: chess.Knight, To: chess.Sq(3, 6)}},
		{"Ngf3", Move{Class: PlainMove, Piece: chess.Knight, FromFile: 7, To: chess.Sq(3, 6)}},
		{"N1f3", Move{Class: PlainMove, Piece: chess.Knight, FromRank: 1, To: chess.Sq(3, 6)}},
		{"Ng1f3", Move{Class: PlainMove, Piece: chess.Knight, FromRank: 1, FromFile: 7, To: chess.Sq(3, 6)}},
		{"Qh5#", Move{Class: PlainMove, Piece: chess.Queen, To: chess.Sq(5, 8)}},
		{"exd5", Move{Class: CaptureMove, Piece: chess.Pawn, FromFile: 5, To: chess.Sq(5, 4)}},
		{"xd5", Move{Class: CaptureMove, Piece: chess.Pawn, To: chess.Sq(5, 4)}},
		{"Bxf7+", Move{Class: CaptureMove, Piece: chess.Bishop, To: chess.Sq(7, 6)}},
		{"R1xa3", Move{Class: CaptureMove, Piece: chess.Rook, FromRank: 1, To: chess.Sq(3, 1)}},
		{"Qh4xe1", Move{Class: CaptureMove, Piece: chess.Queen, FromRank: 4, FromFile: 8, To: chess.Sq(1, 5)}},
		{"dxe8N", Move{Class: CaptureMove, Piece: chess.Pawn, FromFile: 4, To: chess.Sq(8, 5), Promotion: chess.Knight}},
		{"e8Q", Move{Class: PromotionMove, Piece: chess.Pawn, FromFile: 5, To: chess.Sq(8, 5), Promotion: chess.Queen}},
		{"a1R", Move{Class: PromotionMove, Piece: chess.Pawn, FromFile: 1, To: chess.Sq(1, 1), Promotion: chess.Rook}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			testutil.AssertNoError(t, err)
			tt.want.Text = tt.text
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only markers", "+#"},
		{"one character", "e"},
		{"unknown piece", "Xe4"},
		{"lowercase castle", "o-o"},
		{"file out of range", "i4"},
		{"rank out of range", "e9"},
		{"rank zero", "e0"},
		{"too long", "Nb1xd2e4"},
		{"plain too long", "Nb1d2e4"},
		{"promote to pawn", "e8P"},
		{"promote to king", "e8K"},
		{"capture promote to pawn", "dxe8P"},
		{"promotion on a piece capture", "Nxe8Q"},
		{"missing destination", "Nx"},
		{"two files", "Nabc3"},
		{"two ranks", "N12c3"},
		{"bad disambiguator", "N?c3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)

			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error %T is not a *ParseError", tt.text, err)
			}
			testutil.AssertEqual(t, pe.Text, tt.text)
		})
	}
}

func TestParser_BaseLetter(t *testing.T) {
	p := NewParser('b')

	got, err := p.Parse("c1xi8")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.FromFile, 2)
	testutil.AssertEqual(t, got.FromRank, 1)
	testutil.AssertEqual(t, got.To, chess.Sq(8, 8))

	_, err = p.Parse("a4")
	testutil.AssertErrorIs(t, err, errors.ErrParseFailure, "a is left of the base letter")
}

func TestMove_Predicates(t *testing.T) {
	castle, _ := Parse("O-O-O")
	testutil.AssertTrue(t, castle.IsCastle())
	testutil.AssertFalse(t, castle.IsCapture())

	capture, _ := Parse("Nxe5")
	testutil.AssertTrue(t, capture.IsCapture())
	testutil.AssertFalse(t, capture.IsPromotion())

	promo, _ := Parse("b8Q")
	testutil.AssertTrue(t, promo.IsPromotion())
	testutil.AssertFalse(t, promo.IsCastle())

	testutil.AssertEqual(t, PromotionMove.String(), "Promotion")
	testutil.AssertEqual(t, Class(42).String(), "Unknown")
}
