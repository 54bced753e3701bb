package extract

import "strings"

// Transform is a pure string rewrite
type Transform func(string) string

// Chain applies transforms left to right; order matters because later
// rules may rely on earlier ones having run
type Chain []Transform

// Apply runs every transform in order
func (c Chain) Apply(s string) string {
	for _, t := range c {
		s = t(s)
	}
	return s
}

// RemoveAll returns a transform deleting every occurrence of sub
func RemoveAll(sub string) Transform {
	return func(s string) string {
		return strings.ReplaceAll(s, sub, "")
	}
}

// RemovalChain builds a chain that deletes each token in order
func RemovalChain(tokens ...string) Chain {
	chain := make(Chain, 0, len(tokens))
	for _, tok := range tokens {
		chain = append(chain, RemoveAll(tok))
	}
	return chain
}
