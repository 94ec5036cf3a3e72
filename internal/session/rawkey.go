package session

// KeyKind classifies a raw key event from the terminal.
type KeyKind int

const (
	// KeyIgnored is a key the tutor does not react to while typing.
	KeyIgnored KeyKind = iota
	// KeyPrintable carries a typed character.
	KeyPrintable
	// KeyBackspace removes the last typed character.
	KeyBackspace
	// KeyCancel ends the session.
	KeyCancel
)

// RawKey is one key event delivered by the host loop.
type RawKey struct {
	Kind KeyKind
	Rune rune
}

// Printable returns the event for a typed character.
func Printable(r rune) RawKey {
	return RawKey{Kind: KeyPrintable, Rune: r}
}

// Backspace returns the backspace event.
func Backspace() RawKey {
	return RawKey{Kind: KeyBackspace}
}

// Cancel returns the quit event.
func Cancel() RawKey {
	return RawKey{Kind: KeyCancel}
}

// Ignored returns an event for an unrecognized key.
func Ignored() RawKey {
	return RawKey{Kind: KeyIgnored}
}
