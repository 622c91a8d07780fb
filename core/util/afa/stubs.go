package afa

import "github.com/samo538/mata/core/mataerr"

// These operations are explicitly out of scope for this core. Each is
// kept as a named, callable stub returning mataerr.Unimplemented rather
// than omitted outright, so a caller gets a typed error instead of a
// missing symbol.

// UnionNoRename is unimplemented.
func (a *Afa) UnionNoRename(other *Afa) error {
	return mataerr.Unimplementedf("afa: union_norename is not implemented")
}

// UnionRename is unimplemented.
func (a *Afa) UnionRename(other *Afa) (*Afa, error) {
	return nil, mataerr.Unimplementedf("afa: union_rename is not implemented")
}

// IsLangEmpty is unimplemented (distinct from the antichain emptiness
// engines in emptiness.go, which produce no counterexample path).
func (a *Afa) IsLangEmpty() (bool, error) {
	return false, mataerr.Unimplementedf("afa: is_lang_empty is not implemented")
}

// IsLangEmptyCex is unimplemented.
func (a *Afa) IsLangEmptyCex() (bool, []automatonWord, error) {
	return false, nil, mataerr.Unimplementedf("afa: is_lang_empty_cex is not implemented")
}

// automatonWord stands in for the counterexample word type
// IsLangEmptyCex would produce; never constructed since the operation
// always errors.
type automatonWord = []uint32

// MakeComplete is unimplemented.
func (a *Afa) MakeComplete(sinkState int) error {
	return mataerr.Unimplementedf("afa: make_complete is not implemented")
}

// Revert is unimplemented.
func (a *Afa) Revert() (*Afa, error) {
	return nil, mataerr.Unimplementedf("afa: revert is not implemented")
}

// RemoveEpsilon is unimplemented.
func (a *Afa) RemoveEpsilon() (*Afa, error) {
	return nil, mataerr.Unimplementedf("afa: remove_epsilon is not implemented")
}

// Minimize is unimplemented.
func (a *Afa) Minimize() (*Afa, error) {
	return nil, mataerr.Unimplementedf("afa: minimize is not implemented")
}

// IsInLang is unimplemented.
func (a *Afa) IsInLang(word []uint32) (bool, error) {
	return false, mataerr.Unimplementedf("afa: is_in_lang is not implemented")
}

// IsPrfxInLang is unimplemented.
func (a *Afa) IsPrfxInLang(word []uint32) (bool, error) {
	return false, mataerr.Unimplementedf("afa: is_prfx_in_lang is not implemented")
}

// IsDeterministic is unimplemented.
func (a *Afa) IsDeterministic() (bool, error) {
	return false, mataerr.Unimplementedf("afa: is_deterministic is not implemented")
}

// IsComplete is unimplemented.
func (a *Afa) IsComplete() (bool, error) {
	return false, mataerr.Unimplementedf("afa: is_complete is not implemented")
}
