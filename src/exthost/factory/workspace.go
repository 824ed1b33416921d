package factory

import (
	"fmt"
	"math/rand"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// Range returns a random protocol.Range.
func Range() protocol.Range {
	start := protocol.Position{Line: uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}
	end := protocol.Position{Line: start.Line + uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}

	if start.Line == end.Line && start.Character > end.Character {
		end.Character = start.Character + uint32(rand.Intn(100))
	}

	return protocol.Range{
		Start: start,
		End:   end,
	}
}

// DocumentDescriptor returns a sample document with the given index used to distinguish its URI and contents.
func DocumentDescriptor(i int) model.DocumentDescriptor {
	return model.DocumentDescriptor{
		URI:        uri.File(fmt.Sprintf("/workspace/sample-%d.go", i)),
		LanguageID: "go",
		Version:    1,
		Text:       fmt.Sprintf("package sample%d\n", i),
		EOL:        "\n",
	}
}

// EditorDescriptor returns a sample editor showing the document with the given index.
func EditorDescriptor(i int) model.EditorDescriptor {
	return model.EditorDescriptor{
		ID:          fmt.Sprintf("editor-%d", i),
		DocumentURI: uri.File(fmt.Sprintf("/workspace/sample-%d.go", i)),
		Selections:  []protocol.Range{{}},
	}
}
