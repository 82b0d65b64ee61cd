package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/config"
	"github.com/lgbarn/schackmotor-go/internal/testutil"
)

// sampleResult builds a two-move result with one rejection.
func sampleResult() *ScriptResult {
	res := &ScriptResult{
		Name:     "opening.txt",
		Number:   1,
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Board:    chess.NewStandardBoard(),
	}
	res.Add(MoveResult{
		Ply: 1, Side: "White", Move: "e4", Status: StatusOK,
		FEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	})
	res.Add(MoveResult{
		Ply: 2, Side: "Black", Move: "Ke6", Status: StatusIllegal,
		Error: "ply 2, Black, move \"Ke6\": illegal move",
		FEN:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	})
	return res
}

// TestTextWriter_WriteScript verifies text writer outputs one line per move
func TestTextWriter_WriteScript(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteScript(sampleResult()); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}

	out := buf.String()
	testutil.AssertContains(t, out, "== opening.txt #1 ==")
	testutil.AssertContains(t, out, "e4       ok  rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertContains(t, out, "Ke6      illegal: ")
	testutil.AssertContains(t, out, "applied 1, rejected 1")
	testutil.AssertContains(t, out, "8  r n b q k b n r")
}

func TestTextWriter_NoBoard(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Output.ShowBoard = false

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteScript(sampleResult()); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}
	testutil.AssertNotContains(t, buf.String(), "r n b q k b n r")
}

func TestTextWriter_ScriptError(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	err := writer.WriteScript(&ScriptResult{Number: 3, Error: "invalid FEN string"})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, buf.String(), "== script 3 ==\nerror: invalid FEN string\n")
}

// TestJSONWriter_WriteScript verifies JSON writer batches results into an array
func TestJSONWriter_WriteScript(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())

	testutil.AssertNoError(t, writer.WriteScript(sampleResult()))
	testutil.AssertEqual(t, buf.Len(), 0, "nothing written before Flush")
	testutil.AssertNoError(t, writer.Close())

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got.Scripts) != 1 {
		t.Fatalf("got %d scripts, want 1", len(got.Scripts))
	}
	s := got.Scripts[0]
	testutil.AssertEqual(t, s.Applied, 1)
	testutil.AssertEqual(t, s.Rejected, 1)
	testutil.AssertEqual(t, s.Moves[1].Status, StatusIllegal)
	testutil.AssertNotContains(t, buf.String(), `"Board"`)
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())

	testutil.AssertNoError(t, writer.WriteScript(sampleResult()))
	testutil.AssertTrue(t, strings.HasPrefix(buf.String(), "{"), "single mode writes an object")
	testutil.AssertNoError(t, writer.Flush())
}

func TestNewResultWriter(t *testing.T) {
	var buf bytes.Buffer

	if _, ok := NewResultWriter(&buf, config.NewConfig()).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	if _, ok := NewResultWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON config should give a JSONWriter")
	}
}
