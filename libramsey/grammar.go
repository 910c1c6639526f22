package libramsey

import (
	"bufio"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/ramsey-systems/goramsey/goramsey"
)

var sPatternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Kind", Pattern: `[BW]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

type patternExpr struct {
	Kind0 string `parser:"@Kind"`
	Size0 int    `parser:"@Int"`
	Kind1 string `parser:"':' @Kind"`
	Size1 int    `parser:"@Int"`
}

var sParsePatternExpr = participle.MustBuild[patternExpr](
	participle.Lexer(sPatternLexer),
)

// ParsePattern reads a two-color forbidden pattern spec such as "B2:B8" or
// "W5:W7".  Both colors must forbid the same pattern family.  Degenerate
// sizes are rejected: a book needs at least 2 pages and a wheel at least 5
// vertices, below which the patterns collapse into cliques.
func ParsePattern(spec string) (goramsey.PatternSpec, error) {
	var ps goramsey.PatternSpec

	expr, err := sParsePatternExpr.ParseString("", spec)
	if err != nil {
		return ps, errors.Wrapf(goramsey.ErrBadPattern, "%q: %v", spec, err)
	}
	if expr.Kind0 != expr.Kind1 {
		return ps, errors.Wrapf(goramsey.ErrBadPattern, "%q mixes pattern families", spec)
	}

	ps.Size0 = expr.Size0
	ps.Size1 = expr.Size1
	switch expr.Kind0 {
	case "B":
		ps.Kind = goramsey.Books
		if ps.Size0 < 2 || ps.Size1 < 2 {
			return ps, errors.Wrapf(goramsey.ErrBadPattern, "%q: book page count below 2 is a clique", spec)
		}
	case "W":
		ps.Kind = goramsey.Wheels
		if ps.Size0 < 5 || ps.Size1 < 5 {
			return ps, errors.Wrapf(goramsey.ErrBadPattern, "%q: wheel order below 5 is a clique", spec)
		}
	}
	return ps, nil
}

type graphExpr struct {
	Runs []*edgeRun `parser:"(@@ (',' @@)*)?"`
}

type edgeRun struct {
	Start int   `parser:"@Int"`
	Chain []int `parser:"('-' @Int)*"`
}

var sParseGraphExpr = participle.MustBuild[graphExpr]()

// ParseGraphExpr builds a graph from a one-based edge-list expression in the
// style "1-2-3,2-4": each run chains edges between consecutive vertex IDs,
// and a run of a single ID names an isolated vertex.  The graph order is the
// highest vertex ID mentioned.
func ParseGraphExpr(expr string) (*Graph, error) {
	parsed, err := sParseGraphExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "%q: %v", expr, err)
	}

	maxID := 0
	for _, run := range parsed.Runs {
		if run.Start > maxID {
			maxID = run.Start
		}
		for _, id := range run.Chain {
			if id > maxID {
				maxID = id
			}
		}
	}
	if maxID < 1 {
		return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "%q names no vertices", expr)
	}
	if maxID > goramsey.MaxVtx {
		return nil, errors.Wrapf(goramsey.ErrBadVtxID, "vertex %d exceeds max order %d", maxID, goramsey.MaxVtx)
	}

	X := NewGraph(nil)
	for v := 0; v < maxID; v++ {
		X.AddVtx(goramsey.VtxSet{})
	}
	for _, run := range parsed.Runs {
		prev := run.Start
		for _, id := range run.Chain {
			if id < 1 || prev < 1 {
				X.Reclaim()
				return nil, errors.Wrapf(goramsey.ErrBadVtxID, "vertex IDs are one-based in %q", expr)
			}
			if id == prev {
				X.Reclaim()
				return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "self loop at vertex %d", id)
			}
			X.SetEdge(prev-1, id-1)
			prev = id
		}
	}
	return X, nil
}

// ParseMatrix reads an adjacency matrix in the text form the tabu finder
// saves: rows of 0/1 entries, with commas, brackets, and blank lines
// ignored.  Rows after the first blank-separated block are metadata and are
// skipped.
func ParseMatrix(r io.Reader) (*Graph, error) {
	var rows [][]byte

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), " \t[],")
		if line == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		var row []byte
		for _, ch := range line {
			switch ch {
			case '0':
				row = append(row, 0)
			case '1':
				row = append(row, 1)
			case ',', ' ', '\t':
			default:
				return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "unexpected character %q in matrix", ch)
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	n := len(rows)
	if n == 0 {
		return nil, errors.Wrap(goramsey.ErrBadGraphExpr, "empty matrix")
	}
	if n > goramsey.MaxVtx {
		return nil, errors.Wrapf(goramsey.ErrBadOrder, "matrix order %d exceeds max %d", n, goramsey.MaxVtx)
	}

	X := NewGraph(nil)
	for v := 0; v < n; v++ {
		X.AddVtx(goramsey.VtxSet{})
	}
	for u, row := range rows {
		if len(row) != n {
			X.Reclaim()
			return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "matrix row %d has %d entries, want %d", u, len(row), n)
		}
		for v, cell := range row {
			if cell == 0 {
				continue
			}
			if u == v {
				X.Reclaim()
				return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "self loop at vertex %d", u)
			}
			if rows[v][u] != 1 {
				X.Reclaim()
				return nil, errors.Wrapf(goramsey.ErrBadGraphExpr, "asymmetric entry (%d,%d)", u, v)
			}
			if v > u {
				X.SetEdge(u, v)
			}
		}
	}
	return X, nil
}
