package input

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// vocab maps a canonical answer to the words that mean it.
type vocab []struct {
	canonical string
	aliases   []string
}

var continueVocab = vocab{
	{"continue", []string{"continue", "c", "go", "next", "yes", "y", "space"}},
	{"end", []string{"end", "esc", "escape", "quit", "q", "stop", "exit", "no", "n"}},
}

var yesNoVocab = vocab{
	{"yes", []string{"yes", "y", "yeah", "yep", "sure", "ok"}},
	{"no", []string{"no", "n", "nope", "nah"}},
}

// match resolves a typed token against v. Exact aliases win; otherwise
// words of three or more letters may be off by a small edit distance.
func (v vocab) match(in string) (string, bool) {
	in = strings.ToLower(strings.TrimSpace(in))
	if in == "" {
		return "", false
	}
	for _, e := range v {
		for _, a := range e.aliases {
			if in == a {
				return e.canonical, true
			}
		}
	}
	if len(in) < 3 {
		return "", false
	}

	best, bestDist := "", -1
	for _, e := range v {
		for _, a := range e.aliases {
			if len(a) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(in, a)
			if dist > distanceLimit(len(a)) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = e.canonical, dist
			}
		}
	}
	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
