package output

import (
	"github.com/lgbarn/dice-chess-go/internal/chess"
	"github.com/lgbarn/dice-chess-go/internal/engine"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	Label  string       `json:"label,omitempty"`
	Status string       `json:"status"`
	Over   bool         `json:"over"`
	Winner string       `json:"winner,omitempty"`
	Score  engine.Score `json:"score"`
	Pieces []JSONPiece  `json:"pieces"`
	Chains []string     `json:"chains,omitempty"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	ID       int    `json:"id"`
	Colour   string `json:"colour"`
	Kind     string `json:"kind"`
	Square   string `json:"square"`
	Value    int    `json:"value"`
	Counter  int    `json:"counter"`
	Captured bool   `json:"captured,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a snapshot to JSON form.
func PositionToJSON(s Snapshot) *JSONPosition {
	jp := &JSONPosition{
		Label:  s.Label,
		Status: Status(s.Board),
		Over:   s.Board.Over,
		Score:  engine.ScoreBoard(s.Board),
		Pieces: make([]JSONPiece, 0, len(s.Board.Pieces)),
		Chains: append([]string(nil), s.Chains...),
	}
	if s.Board.Over {
		jp.Winner = s.Board.Winner.String()
	}
	for _, p := range s.Board.Pieces {
		jp.Pieces = append(jp.Pieces, pieceToJSON(p))
	}
	return jp
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	jp := JSONPiece{
		ID:       int(p.ID),
		Colour:   p.Colour.String(),
		Kind:     p.Kind.String(),
		Value:    p.Value,
		Counter:  p.Counter,
		Captured: p.Captured,
	}
	if !p.Captured {
		jp.Square = p.Location.String()
	}
	return jp
}
