package scaffold

// File is one generated output file. Path is relative to the project root
// and always uses forward slashes. Files are write-once: produced by a
// generator, consumed by the Assembler, never mutated in between.
type File struct {
	Path    string
	Content string
}
