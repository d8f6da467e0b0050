// Package track matches syntax sites against declarative predicate chains.
//
// A tracker subscribes to one syntactic shape (calls, object creations,
// field and variable selectors, index expressions), builds a typed site for
// every node of that shape and reports when the configured chain matches.
// Predicates are pure and fail closed: whenever the information a predicate
// needs is missing it returns false.
package track

import (
	"github.com/golang/glog"
)

// Predicate tests one property of a site.
type Predicate[S any] func(S) bool

// Chain is an ordered conjunction of predicates.
type Chain[S any] []Predicate[S]

// Match evaluates the chain with short-circuit AND. A nil predicate never
// matches. A panicking predicate is logged and counts as no match.
func (ch Chain[S]) Match(s S) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("predicate panic on %T: %v", s, r)
			matched = false
		}
	}()

	for _, p := range ch {
		if p == nil || !p(s) {
			return false
		}
	}
	return true
}

// All matches when every predicate matches.
func All[S any](preds ...Predicate[S]) Predicate[S] {
	return Chain[S](preds).Match
}

// Any matches when at least one predicate matches. It stops at the first
// match.
func Any[S any](preds ...Predicate[S]) Predicate[S] {
	return func(s S) bool {
		for _, p := range preds {
			if p != nil && p(s) {
				return true
			}
		}
		return false
	}
}

// Not inverts p. A nil p yields a predicate that never matches.
func Not[S any](p Predicate[S]) Predicate[S] {
	if p == nil {
		return func(S) bool { return false }
	}
	return func(s S) bool { return !p(s) }
}

// ExceptWhen suppresses an otherwise matching chain when p matches.
func ExceptWhen[S any](p Predicate[S]) Predicate[S] {
	return Not(p)
}

// InTestFile matches sites located in _test.go files.
func InTestFile[S interface{ InTestFile() bool }]() Predicate[S] {
	return func(s S) bool { return s.InTestFile() }
}
