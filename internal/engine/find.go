package engine

import "github.com/lgbarn/schackmotor-go/internal/chess"

// FindPieces searches the board for pieces of the given kind and colour.
// The scope narrows with what is known about the source square: rank and
// file give a single square, a rank alone gives that rank, a file alone
// gives that file, and neither gives the whole board. A kind of
// chess.NoKind matches any identity. Zero means "unknown" for rank and file.
func FindPieces(board *chess.Board, kind chess.Kind, colour chess.Colour, rank, file int) []chess.FoundPiece {
	var matches []chess.FoundPiece

	consider := func(sq chess.Square) {
		p := board.At(sq)
		if p == nil || p.Colour() != colour {
			return
		}
		if kind != chess.NoKind && p.Kind != kind {
			return
		}
		matches = append(matches, chess.FoundPiece{Identity: p.Identity(), Square: sq})
	}

	switch {
	case rank != 0 && file != 0:
		consider(chess.Sq(rank, file))
	case rank != 0:
		for f := chess.FirstFile; f <= chess.LastFile; f++ {
			consider(chess.Sq(rank, f))
		}
	case file != 0:
		for r := chess.FirstRank; r <= chess.LastRank; r++ {
			consider(chess.Sq(r, file))
		}
	default:
		for r := chess.FirstRank; r <= chess.LastRank; r++ {
			for f := chess.FirstFile; f <= chess.LastFile; f++ {
				consider(chess.Sq(r, f))
			}
		}
	}

	return matches
}
