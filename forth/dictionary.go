package forth

// Behavior is the executable part of a word, run against the context that
// is interpreting it. Behaviors abort evaluation by calling Context.Fail.
type Behavior func(c *Context)

// Word is a dictionary entry. A word with no Name is anonymous and reachable
// only through its execution token.
//
// Interpret runs when the word is executed, or when it is encountered while
// not compiling, or when it is Immediate. Compile, when set, runs instead of
// appending Interpret to the definition under construction.
type Word struct {
	Name      string
	Immediate bool
	Interpret Behavior
	Compile   Behavior

	// Value marks words created by VALUE, the only valid targets of TO.
	Value bool

	// Code retains the compiled body of colon definitions for dumps.
	Code Code

	body    int
	hasBody bool

	prev, next *Word
}

// Body returns the data field address of a word created by CREATE or
// VARIABLE.
func (w *Word) Body() (addr int, ok bool) { return w.body, w.hasBody }

// Prev returns the word defined before this one.
func (w *Word) Prev() *Word { return w.prev }

// Next returns the word defined after this one.
func (w *Word) Next() *Word { return w.next }

func (w *Word) String() string {
	if w.Name == "" {
		return ":NONAME"
	}
	return w.Name
}

// Dictionary indexes words by name, newest first, and chains every word
// ever pushed in definition order so that shadowed words stay reachable.
type Dictionary struct {
	words      map[string]*Word
	head, tail *Word
	size       int
}

// Find returns the newest word with the given name, or nil.
func (dict *Dictionary) Find(name string) *Word {
	return dict.words[name]
}

// FindOrFail returns the newest word with the given name, or an
// UndefinedWordError.
func (dict *Dictionary) FindOrFail(name string) (*Word, error) {
	if w := dict.words[name]; w != nil {
		return w, nil
	}
	return nil, UndefinedWordError(name)
}

// Push appends w to the definition chain, and, if it is named, makes it the
// word found under that name.
func (dict *Dictionary) Push(w *Word) {
	if dict.tail != nil {
		dict.tail.next = w
		w.prev = dict.tail
	} else {
		dict.head = w
	}
	dict.tail = w
	dict.size++
	if w.Name != "" {
		if dict.words == nil {
			dict.words = make(map[string]*Word)
		}
		dict.words[w.Name] = w
	}
}

// Head returns the first word ever defined.
func (dict *Dictionary) Head() *Word { return dict.head }

// Tail returns the most recently defined word, named or not.
func (dict *Dictionary) Tail() *Word { return dict.tail }

// Len returns the number of words in the chain, shadowed ones included.
func (dict *Dictionary) Len() int { return dict.size }

// MarkImmediate makes the most recent definition immediate.
func (dict *Dictionary) MarkImmediate() error {
	if dict.tail == nil || dict.tail.Name == "" {
		return ErrNoNameToMark
	}
	dict.tail.Immediate = true
	return nil
}
