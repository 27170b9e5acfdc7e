package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is a floor modulo: the result always has the sign of m.
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Map[A any, B any](in []A, f func(A) B) []B {
	res := make([]B, 0, len(in))
	for _, v := range in {
		res = append(res, f(v))
	}
	return res
}
