package bouncy

import "github.com/rivo/uniseg"

// generate lays text out as a fresh sequence of records, one per grapheme
// cluster, each placed at the summed advance of the clusters before it.
func (l *Label) generate(text string) []recordID {
	ids := make([]recordID, 0, len(text))
	x := 0.0

	state := -1
	rest := text
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := l.font.Advance(cluster, l.textSizePx)

		id := l.acquireRecord()
		*l.arena.at(id) = glyphRecord{glyph: cluster, x: x, w: w, live: true}
		ids = append(ids, id)
		x += w
	}
	return ids
}
