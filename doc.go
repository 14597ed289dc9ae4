// Package observable implements named numerical quantities for physics
// analysis and a small arithmetic expression language to compose them.
//
// Plain observables wrap a formula evaluated against shared Parameters,
// per-evaluation Kinematics, and an immutable Options map. Expression
// observables are built from text such as "<<mass::mu>> / <<mass::tau>>",
// where each <<...>> reference names another registered observable or a
// bare parameter. An expression is parsed once when it is registered and
// bound fresh against a live context every time an observable is made
// from it, so many independent instances can be minted from one
// definition.
package observable
