// Package model defines the canonical in-memory model shared by every
// source adapter, the aligner, the differ and the renderers.
//
// A Model maps entity names to entities; each entity maps attribute names
// to attributes. Descriptive fields are optional pointers so that a value
// that was never supplied can be told apart from one supplied as empty.
// Name ordering is always explicit (Names, AttributeNames sort byte-wise);
// callers never depend on map iteration order.
package model
