package cipher

const (
	gridSize = 5

	// Filler separates repeated letters and pads an odd trailing letter.
	Filler = 'X'
	// AltFiller replaces Filler when the letter being separated is Filler itself.
	AltFiller = 'Q'
)

type gridPos struct {
	row, col int
}

// PlayfairCipher substitutes digraphs using a 5x5 key grid with J folded into I.
type PlayfairCipher struct {
	grid      [gridSize][gridSize]rune
	positions map[rune]gridPos
}

// NewPlayfair builds the key grid: keyword letters first, then the rest of the alphabet,
// repeats skipped and J written as I.
func NewPlayfair(key string) (*PlayfairCipher, error) {
	letters := keyLetters(key)
	if len(letters) == 0 {
		return nil, &KeyError{Type: Playfair, Key: key, Reason: "no alphabetic characters"}
	}

	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, r)
	}

	for i, r := range letters {
		letters[i] = foldJ(r)
	}

	letters = dedupe(letters)

	p := &PlayfairCipher{positions: make(map[rune]gridPos, gridSize*gridSize)}

	for i, r := range letters {
		pos := gridPos{row: i / gridSize, col: i % gridSize}
		p.grid[pos.row][pos.col] = r
		p.positions[r] = pos
	}

	return p, nil
}

// Grid returns the key grid as five row strings.
func (p *PlayfairCipher) Grid() []string {
	rows := make([]string, gridSize)
	for i, row := range p.grid {
		rows[i] = string(row[:])
	}

	return rows
}

// Transform prepares text into digraphs and substitutes each pair.
// Digits keep their place and do not take part in pairing.
func (p *PlayfairCipher) Transform(text string, mode Mode) string {
	out, slots := digraphs(text)

	step := 1
	if mode == Decrypt {
		step = gridSize - 1
	}

	for i := 0; i+1 < len(slots); i += 2 {
		a, b := slots[i], slots[i+1]
		out[a], out[b] = p.pair(out[a], out[b], step)
	}

	return string(out)
}

// pair substitutes one digraph; step is 1 for encryption and 4 for decryption.
func (p *PlayfairCipher) pair(first, second rune, step int) (rune, rune) {
	a, b := p.positions[first], p.positions[second]

	switch {
	case a.row == b.row:
		return p.grid[a.row][(a.col+step)%gridSize], p.grid[b.row][(b.col+step)%gridSize]
	case a.col == b.col:
		return p.grid[(a.row+step)%gridSize][a.col], p.grid[(b.row+step)%gridSize][b.col]
	default:
		return p.grid[a.row][b.col], p.grid[b.row][a.col]
	}
}

// digraphs returns text with J folded into I and fillers inserted, along with the
// indices of the letters in pairing order. len(slots) is always even.
func digraphs(text string) ([]rune, []int) {
	out := make([]rune, 0, len(text)+len(text)/2+1)
	slots := make([]int, 0, len(text)+1)

	for _, r := range text {
		if !isLetter(r) {
			out = append(out, r)

			continue
		}

		r = foldJ(r)

		if len(slots)%2 == 1 && out[slots[len(slots)-1]] == r {
			slots = append(slots, len(out))
			out = append(out, fillerFor(r))
		}

		slots = append(slots, len(out))
		out = append(out, r)
	}

	if len(slots)%2 == 1 {
		slots = append(slots, len(out))
		out = append(out, fillerFor(out[slots[len(slots)-2]]))
	}

	return out, slots
}

func fillerFor(r rune) rune {
	if r == Filler {
		return AltFiller
	}

	return Filler
}

func foldJ(r rune) rune {
	if r == 'J' {
		return 'I'
	}

	return r
}
