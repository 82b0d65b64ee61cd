package engine

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/config"
	"github.com/lgbarn/schackmotor-go/internal/errors"
	"github.com/lgbarn/schackmotor-go/internal/notation"
)

// GameState owns a board and the side to move, and turns move text into
// committed board transitions. A move is either applied in full or
// rejected with the state left exactly as it was.
type GameState struct {
	board  *chess.Board
	toMove chess.Colour
	parser *notation.Parser
	log    zerolog.Logger

	verifySelfCheck bool

	// pending is the pawn that double stepped on the previous ply.
	pending *chess.Square

	ply       int
	startSide chess.Colour
	startMove int
}

// NewGame creates a game on the standard layout with default settings
// and no logging.
func NewGame() *GameState {
	return newGameState(chess.NewStandardBoard(), chess.White, nil, 1, config.NewConfig(), zerolog.Nop())
}

// NewGameState creates a game from cfg. A FEN in the rules configuration
// takes precedence over the layout text. A nil cfg means defaults.
func NewGameState(cfg *config.Config) (*GameState, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Rules.FEN != "" {
		pos, err := ParseFEN(cfg.Rules.FEN)
		if err != nil {
			return nil, err
		}
		return newGameState(pos.Board, pos.ToMove, pos.Pending, pos.FullMove, cfg, cfg.Logger()), nil
	}

	board := chess.NewBoard()
	if err := board.Populate(cfg.Rules.Layout); err != nil {
		return nil, err
	}
	return newGameState(board, cfg.Rules.StartingSide, nil, 1, cfg, cfg.Logger()), nil
}

// NewGameFromFEN creates a game starting from a FEN position.
func NewGameFromFEN(fen string, cfg *config.Config) (*GameState, error) {
	c := config.NewConfig()
	if cfg != nil {
		*c = *cfg
	}
	c.Rules.FEN = fen
	return NewGameState(c)
}

// NewGameWithBoard creates a game on a copy of board with toMove to play.
func NewGameWithBoard(board *chess.Board, toMove chess.Colour, cfg *config.Config) (*GameState, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGameState(board.Copy(), toMove, nil, 1, cfg, cfg.Logger()), nil
}

func newGameState(board *chess.Board, toMove chess.Colour, pending *chess.Square, fullMove int, cfg *config.Config, log zerolog.Logger) *GameState {
	return &GameState{
		board:           board,
		toMove:          toMove,
		parser:          notation.NewParser(cfg.Rules.BaseLetter),
		log:             log,
		verifySelfCheck: cfg.Rules.VerifySelfCheck,
		pending:         pending,
		startSide:       toMove,
		startMove:       fullMove,
	}
}

// DoMove applies move text and reports whether it was legal. The reason
// for a rejection is available from Apply.
func (g *GameState) DoMove(text string) bool {
	return g.Apply(text) == nil
}

// Apply parses, validates and commits a move for the side to move. On
// failure the state is unchanged and the error is a *errors.MoveError
// wrapping one of ErrParseFailure, ErrMissingSource, ErrAmbiguousSource,
// ErrIllegalMove, ErrSelfCheck or ErrCastlingPrerequisite.
func (g *GameState) Apply(text string) error {
	mv, err := g.parser.Parse(text)
	if err != nil {
		return g.reject(text, err)
	}

	var (
		next     *chess.Board
		from, to chess.Square
		pending  *chess.Square
	)

	if mv.IsCastle() {
		var c Castling
		next, c, err = castle(g.board, g.toMove, mv.Class == notation.KingsideCastle)
		if err != nil {
			return g.reject(text, err)
		}
		from, to = c.KingFrom, c.KingTo
	} else {
		res, err := g.resolve(mv, true)
		if err != nil {
			return g.reject(text, err)
		}
		next, from, to = res.next, res.from, res.to
		pending = doubleStepTarget(res.outcome)
	}

	ageDoubleStep(next, g.pending, g.toMove.Opposite())

	g.board = next
	g.pending = pending
	g.toMove = g.toMove.Opposite()
	g.ply++

	g.log.Debug().
		Str("move", text).
		Int("ply", g.ply).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("move applied")

	return nil
}

// reject logs a refused move and wraps err with the move's context.
func (g *GameState) reject(text string, err error) error {
	g.log.Debug().
		Str("move", text).
		Int("ply", g.ply+1).
		Err(err).
		Msg("move rejected")

	return &errors.MoveError{
		Err:      err,
		Ply:      g.ply + 1,
		MoveText: text,
		Side:     g.toMove.String(),
	}
}

// resolution is a candidate move that passed every check, with the board
// it produces.
type resolution struct {
	from    chess.Square
	to      chess.Square
	outcome Outcome
	next    *chess.Board
}

// resolve finds the single piece of the side to move that can make mv.
// With gated set, moves made in check must answer the check: a non-king
// capture must take the attacker, and every candidate is simulated to
// confirm the king ends up safe. Outside check the simulation only runs
// when self-check verification is enabled.
func (g *GameState) resolve(mv notation.Move, gated bool) (resolution, error) {
	to := mv.To
	lastRank := g.toMove.Opposite().HomeRank()

	if mv.IsPromotion() && to.Rank != lastRank {
		return resolution{}, errors.Wrapf(errors.ErrIllegalMove, "promotion on rank %d", to.Rank)
	}

	fromRank, fromFile := mv.FromRank, mv.FromFile
	if mv.Class == notation.PromotionMove {
		fromRank = to.Rank - g.toMove.Forward()
	}

	candidates := FindPieces(g.board, mv.Piece, g.toMove, fromRank, fromFile)
	if len(candidates) == 0 {
		return resolution{}, errors.Wrapf(errors.ErrMissingSource, "no %v %v for %v", g.toMove, mv.Piece, to)
	}

	if target := g.board.At(to); mv.IsCapture() && target != nil && target.Colour() == g.toMove {
		return resolution{}, errors.Wrapf(errors.ErrIllegalMove, "%v holds a friendly %v", to, target.Kind)
	}

	var threat Threat
	inCheck := false
	if gated {
		threat, inCheck = KingInCheck(g.board, g.toMove)
	}
	simulate := gated && (inCheck || g.verifySelfCheck)

	var (
		found       []resolution
		exposesKing bool
	)
	for _, c := range candidates {
		if c.Square == to {
			continue
		}
		piece := g.board.At(c.Square)
		out := Evaluate(g.board, piece, mv.IsCapture(), c.Square, to)
		if !out.IsLegal() {
			continue
		}

		if inCheck && mv.IsCapture() && piece.Kind != chess.King &&
			to != threat.Attacker && !out.Removes(threat.Attacker) {
			exposesKing = true
			continue
		}

		promotion := chess.NoKind
		if piece.Kind == chess.Pawn && to.Rank == lastRank {
			promotion = mv.Promotion
			if promotion == chess.NoKind {
				promotion = chess.Queen
			}
		}

		next := commit(g.board, c.Square, to, promotion, out)
		if simulate && IsInCheck(next, g.toMove) {
			exposesKing = true
			continue
		}

		found = append(found, resolution{from: c.Square, to: to, outcome: out, next: next})
	}

	switch {
	case len(found) == 1:
		return found[0], nil
	case len(found) > 1:
		return resolution{}, errors.Wrapf(errors.ErrAmbiguousSource, "%d pieces can reach %v", len(found), to)
	case exposesKing:
		return resolution{}, errors.Wrapf(errors.ErrSelfCheck, "every candidate for %v leaves the king attacked", to)
	default:
		return resolution{}, errors.Wrapf(errors.ErrIllegalMove, "no %v can reach %v", mv.Piece, to)
	}
}

// LeavesKingInCheck reports whether the move, if made, would leave the
// mover's king attacked. The move is evaluated on a copy without the
// check answering rules Apply enforces; the game is not changed.
func (g *GameState) LeavesKingInCheck(text string) (bool, error) {
	mv, err := g.parser.Parse(text)
	if err != nil {
		return false, err
	}
	if mv.IsCastle() {
		if _, _, err := castle(g.board, g.toMove, mv.Class == notation.KingsideCastle); err != nil {
			return false, err
		}
		return false, nil
	}
	res, err := g.resolve(mv, false)
	if err != nil {
		return false, err
	}
	return IsInCheck(res.next, g.toMove), nil
}

// PieceAt returns a copy of the occupant of sq.
func (g *GameState) PieceAt(sq chess.Square) (chess.Piece, bool) {
	p := g.board.At(sq)
	if p == nil {
		return chess.Piece{}, false
	}
	return *p, true
}

// FindPiece lists the pieces of the side to move matching kind within the
// scope given by rank and file.
func (g *GameState) FindPiece(kind chess.Kind, rank, file int) []chess.FoundPiece {
	return FindPieces(g.board, kind, g.toMove, rank, file)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// Ply returns the number of moves applied.
func (g *GameState) Ply() int {
	return g.ply
}

// InCheck reports whether the side to move is in check.
func (g *GameState) InCheck() bool {
	return IsInCheck(g.board, g.toMove)
}

// Board returns a copy of the current board.
func (g *GameState) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position as a FEN string.
func (g *GameState) FEN() string {
	offset := 0
	if g.startSide == chess.Black {
		offset = 1
	}
	return formatFEN(g.board, g.toMove, g.pending, g.startMove+(g.ply+offset)/2)
}
