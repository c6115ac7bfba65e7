package gen

import (
	"errors"
	"fmt"

	"pinout-generator/internal/board"
)

// WriteFiles hands every generated file to its sink writer. Each writer is
// committed only after its content was written in full and is always
// closed, so a failure discards the artifact being written.
func WriteFiles(files []GeneratedFile, sink board.Sink) error {
	for _, file := range files {
		if err := writeFile(file, sink); err != nil {
			return fmt.Errorf("writing %s: %w", file.Kind, err)
		}
	}

	return nil
}

func writeFile(file GeneratedFile, sink board.Sink) (err error) {
	w, err := openWriter(file.Kind, sink)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, w.Close())
	}()

	if _, err := w.Write(file.Content); err != nil {
		return err
	}

	return w.Commit()
}

func openWriter(kind ArtifactKind, sink board.Sink) (board.Artifact, error) {
	switch kind {
	case ArtifactBoardNames:
		return sink.BoardNamesWriter()
	case ArtifactOutputs:
		return sink.OutputsWriter()
	case ArtifactDefinitions:
		return sink.DefinitionsWriter()
	default:
		return nil, fmt.Errorf("no writer for %s", kind)
	}
}
