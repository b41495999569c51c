package diff

import "fmt"

// Line renders the event in the console report shape.
func (e Event) Line() string {
	switch e.Kind {
	case Added:
		return fmt.Sprintf("File added: %s", e.Path)
	case Removed:
		return fmt.Sprintf("File removed: %s", e.Path)
	case Ignored:
		return fmt.Sprintf("File ignored: %s", e.Path)
	case Matches:
		return fmt.Sprintf("File matches: %s", e.Path)
	case Differs:
		return fmt.Sprintf("File differs: %s (%s->%s)", e.Path, e.OldDigest, e.NewDigest)
	default:
		return fmt.Sprintf("File unknown: %s", e.Path)
	}
}

// Report renders one line per event: path events first, then file events.
func (r Result) Report() []string {
	lines := make([]string, 0, len(r.PathEvents)+len(r.FileEvents))
	for _, event := range r.PathEvents {
		lines = append(lines, event.Line())
	}
	for _, event := range r.FileEvents {
		lines = append(lines, event.Line())
	}
	return lines
}
