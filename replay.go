package main

// replayCmd is either a span or a marker that a new sector was picked up.
type replayCmd struct {
	span   span
	marker bool
}

// replayQueue buffers one walk's worth of spans and plays them back a few
// commands per tick, so the order of the portal walk can be watched.
type replayQueue struct {
	cmds []replayCmd
	head int
}

func (q *replayQueue) beginSector(walkItem) {
	q.cmds = append(q.cmds, replayCmd{marker: true})
}

func (q *replayQueue) emit(s span) {
	q.cmds = append(q.cmds, replayCmd{span: s})
}

func (q *replayQueue) empty() bool { return q.head >= len(q.cmds) }

// pending returns the number of commands not yet played.
func (q *replayQueue) pending() int { return len(q.cmds) - q.head }

func (q *replayQueue) reset() {
	q.cmds = q.cmds[:0]
	q.head = 0
}

// drain plays up to n commands onto c. A marker previews the sector that
// follows it by painting all of that sector's spans in the highlight
// shade; the real spans then overwrite the preview as they are played.
func (q *replayQueue) drain(c canvas, n int) int {
	played := 0
	for ; played < n && !q.empty(); played++ {
		cmd := q.cmds[q.head]
		q.head++
		if !cmd.marker {
			c.vline(cmd.span.x, cmd.span.y1, cmd.span.y2, cmd.span.shade)
			continue
		}
		for i := q.head; i < len(q.cmds) && !q.cmds[i].marker; i++ {
			s := q.cmds[i].span
			c.vline(s.x, s.y1, s.y2, shadeHighlight)
		}
	}
	if q.empty() {
		q.reset()
	}
	return played
}
