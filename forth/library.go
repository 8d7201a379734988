package forth

// StandardLibrary returns a fresh copy of the built-in words, in the order
// New registers them. Callers may register a subset, or modified copies,
// through WithoutStandardLibrary and WithWords.
func StandardLibrary() []*Word {
	var words []*Word
	words = append(words, stackWords()...)
	words = append(words, mathWords()...)
	words = append(words, memoryWords()...)
	words = append(words, ioWords()...)
	words = append(words, defineWords()...)
	words = append(words, controlWords()...)
	return words
}
