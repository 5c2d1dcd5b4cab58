package core

// KonamiSequence is the classic cheat code, expressed as key names.
var KonamiSequence = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// KonamiDetector watches a stream of key names and reports when the last
// keys pressed spell the Konami code.
type KonamiDetector struct {
	recent []string
}

// Feed records a key and returns true when it completes the sequence.
func (k *KonamiDetector) Feed(key string) bool {
	switch key {
	case "A":
		key = "a"
	case "B":
		key = "b"
	}

	k.recent = append(k.recent, key)
	if len(k.recent) > len(KonamiSequence) {
		k.recent = k.recent[len(k.recent)-len(KonamiSequence):]
	}
	if len(k.recent) < len(KonamiSequence) {
		return false
	}
	for i, want := range KonamiSequence {
		if k.recent[i] != want {
			return false
		}
	}
	k.recent = k.recent[:0]
	return true
}
