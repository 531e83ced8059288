package instance

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// token is one whitespace-separated field read from a non-comment line,
// tagged with its 1-based source line number for diagnostics.
type token struct {
	text string
	line int
}

// tokenizer yields the tokens of a ρMNK file in order, having already
// discarded blank lines and lines beginning with 'c' (spec §6).
type tokenizer struct {
	toks []token
	pos  int
}

// newTokenizer reads all of f's lines, skipping blanks and comment lines,
// and splits the remainder on whitespace.
//
// Complexity: O(file size).
func newTokenizer(f *os.File) (*tokenizer, error) {
	t := &tokenizer{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		for _, field := range strings.Fields(line) {
			t.toks = append(t.toks, token{text: field, line: lineNo})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// lastLine returns the line number to blame when the tokenizer is
// exhausted (EOF reached mid-section).
func (t *tokenizer) lastLine() int {
	if len(t.toks) == 0 {
		return 0
	}
	return t.toks[len(t.toks)-1].line
}

// next returns the next token and advances the cursor, or ok=false if the
// tokenizer is exhausted.
func (t *tokenizer) next() (token, bool) {
	if t.pos >= len(t.toks) {
		return token{}, false
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, true
}

// expectHeader consumes the two tokens of a "p <name>" header. It returns
// ErrMalformedInstance (wrapped) if the header is missing or mismatched.
func (t *tokenizer) expectHeader(name string) error {
	p, ok := t.next()
	if !ok {
		return malformed(t.lastLine(), "expected header %q, got EOF", "p "+name)
	}
	if p.text != "p" {
		return malformed(p.line, "expected header %q, got %q", "p "+name, p.text)
	}
	kw, ok := t.next()
	if !ok {
		return malformed(p.line, "expected header %q, got EOF", "p "+name)
	}
	if kw.text != name {
		return malformed(kw.line, "expected header %q, got \"p %s\"", "p "+name, kw.text)
	}
	return nil
}

// nextFloat consumes and parses the next token as a float64.
func (t *tokenizer) nextFloat(what string) (float64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, malformed(t.lastLine(), "expected %s, got EOF", what)
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, malformed(tok.line, "expected %s, got non-numeric token %q", what, tok.text)
	}
	return v, nil
}

// nextUint consumes and parses the next token as a non-negative int.
func (t *tokenizer) nextUint(what string) (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, malformed(t.lastLine(), "expected %s, got EOF", what)
	}
	v, err := strconv.Atoi(tok.text)
	if err != nil || v < 0 {
		return 0, malformed(tok.line, "expected %s, got %q", what, tok.text)
	}
	return v, nil
}

// Load parses the ρMNK-landscape file at path into an Instance (spec §4.1,
// §6). It fails with ErrMalformedInstance, naming the offending token and
// its line, when any header or token is missing or out of range.
//
// Complexity: O(M·N·2^(K+1)) time and space — dominated by the tables
// section, which is read and stored in full.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newTokenizer(f)
	if err != nil {
		return nil, err
	}

	if err := t.expectHeader("rMNK"); err != nil {
		return nil, err
	}
	rho, err := t.nextFloat("rho")
	if err != nil {
		return nil, err
	}
	m, err := t.nextUint("M")
	if err != nil {
		return nil, err
	}
	n, err := t.nextUint("N")
	if err != nil {
		return nil, err
	}
	k, err := t.nextUint("K")
	if err != nil {
		return nil, err
	}
	if m < 1 {
		return nil, malformed(t.lastLine(), "M must be >= 1, got %d", m)
	}
	if n < 1 {
		return nil, malformed(t.lastLine(), "N must be >= 1, got %d", n)
	}
	if k > n-1 {
		return nil, malformed(t.lastLine(), "K must be in [0,N-1], got %d (N=%d)", k, n)
	}

	links, err := loadLinks(t, m, n, k)
	if err != nil {
		return nil, err
	}
	tables, err := loadTables(t, m, n, k)
	if err != nil {
		return nil, err
	}

	return &Instance{rho: rho, m: m, n: n, k: k, links: links, tables: tables}, nil
}

// loadLinks reads the "p links" section: M·N·(K+1) unsigned ints, in file
// order (i, j, m), into links[m][i][j] (spec §4.1).
func loadLinks(t *tokenizer, m, n, k int) ([][][]int, error) {
	if err := t.expectHeader("links"); err != nil {
		return nil, err
	}
	links := make([][][]int, m)
	for mm := range links {
		links[mm] = make([][]int, n)
		for i := range links[mm] {
			links[mm][i] = make([]int, k+1)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= k; j++ {
			for mm := 0; mm < m; mm++ {
				idx, err := t.nextUint("link bit index")
				if err != nil {
					return nil, err
				}
				if idx >= n {
					return nil, malformed(t.lastLine(), "link bit index %d out of range [0,%d)", idx, n)
				}
				links[mm][i][j] = idx
			}
		}
	}
	return links, nil
}

// loadTables reads the "p tables" section: M·N·2^(K+1) doubles, in file
// order (i, j, m), into tables[m][i][j] (spec §4.1). Values are stored
// exactly as read; no normalization is applied.
func loadTables(t *tokenizer, m, n, k int) ([][][]float64, error) {
	if err := t.expectHeader("tables"); err != nil {
		return nil, err
	}
	width := 1 << uint(k+1)
	tables := make([][][]float64, m)
	for mm := range tables {
		tables[mm] = make([][]float64, n)
		for i := range tables[mm] {
			tables[mm][i] = make([]float64, width)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < width; j++ {
			for mm := 0; mm < m; mm++ {
				v, err := t.nextFloat("table contribution")
				if err != nil {
					return nil, err
				}
				tables[mm][i][j] = v
			}
		}
	}
	return tables, nil
}
