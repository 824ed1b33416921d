package mapper

import (
	"github.com/nimbus-ide/exthost/src/exthost/internal/protocol"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/sergi/go-diff/diffmatchpatch"
	lsp "go.lsp.dev/protocol"
)

// ContentChanges computes the minimal set of content changes transforming
// oldText into newText, so the shadow model can be kept current without
// re-sending the full document on every keystroke. Each change carries both
// the byte offset span and the equivalent protocol range against oldText.
func ContentChanges(oldText, newText string) []model.ContentChange {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	changes := DiffsToContentChanges(diffs)

	om := &protocol.TextOffsetMapper{Content: []byte(oldText)}
	for i := range changes {
		start, err := om.OffsetPosition(changes[i].RangeOffset)
		if err != nil {
			continue
		}
		end, err := om.OffsetPosition(changes[i].RangeOffset + changes[i].RangeLength)
		if err != nil {
			continue
		}
		changes[i].Range = lsp.Range{Start: start, End: end}
	}
	return changes
}

// DiffsToContentChanges converts a diff sequence into offset-based content
// changes against the original text.
func DiffsToContentChanges(diffs []diffmatchpatch.Diff) []model.ContentChange {
	changes := make([]model.ContentChange, 0)
	offset := 0
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			offset += len(diff.Text)
		case diffmatchpatch.DiffDelete:
			changes = append(changes, model.ContentChange{
				RangeOffset: offset,
				RangeLength: len(diff.Text),
			})
			offset += len(diff.Text)
		case diffmatchpatch.DiffInsert:
			changes = append(changes, model.ContentChange{
				RangeOffset: offset,
				Text:        diff.Text,
			})
		}
	}
	return changes
}

// ApplyContentChanges replays content changes onto text. Changes are
// expressed against the original text, latest first is not required; they
// are applied back-to-front so earlier offsets stay valid.
func ApplyContentChanges(text string, changes []model.ContentChange) string {
	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]
		if c.RangeOffset > len(text) {
			continue
		}
		end := c.RangeOffset + c.RangeLength
		if end > len(text) {
			end = len(text)
		}
		text = text[:c.RangeOffset] + c.Text + text[end:]
	}
	return text
}
