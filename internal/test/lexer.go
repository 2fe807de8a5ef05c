package test

import (
	"math/rand"
	"strings"
)

const validTokens = "(;);,;=>;+;-;*;/;x;y;foo;veryLongIdentifierName;añadir;0;1;42;123;98765;\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
