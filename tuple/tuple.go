// Package tuple simplifies packing and unpacking function arguments and
// results into generic tuple types.
package tuple

type T0 struct{}

func ToT0() T0 {
    return T0{}
}

func (t *T0) Unpack() {
}

type T1[A any] struct{
    A A
}

func ToT1[A any](a A) T1[A] {
    return T1[A]{A: a}
}

func (t *T1[A]) Unpack() (A) {
    return t.A
}

type T2[A any, B any] struct{
    A A
    B B
}

func ToT2[A any, B any](a A, b B) T2[A, B] {
    return T2[A, B]{A: a, B: b}
}

func (t *T2[A, B]) Unpack() (A, B)  {
    return t.A, t.B
}

type T3[A any, B any, C any] struct{
    A A
    B B
    C C
}

func ToT3[A any, B any, C any](a A, b B, c C) T3[A, B, C] {
    return T3[A, B, C]{A: a, B: b, C: c}
}

func (t *T3[A, B, C]) Unpack() (A, B, C)  {
    return t.A, t.B, t.C
}

type T4[A any, B any, C any, D any] struct{
    A A
    B B
    C C
    D D
}

func ToT4[A any, B any, C any, D any](a A, b B, c C, d D) T4[A, B, C, D] {
    return T4[A, B, C, D]{A: a, B: b, C: c, D: d}
}

func (t *T4[A, B, C, D]) Unpack() (A, B, C, D)  {
    return t.A, t.B, t.C, t.D
}

type T5[A any, B any, C any, D any, E any] struct{
    A A
    B B
    C C
    D D
    E E
}

func ToT5[A any, B any, C any, D any, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
    return T5[A, B, C, D, E]{A: a, B: b, C: c, D: d, E: e}
}

func (t *T5[A, B, C, D, E]) Unpack() (A, B, C, D, E)  {
    return t.A, t.B, t.C, t.D, t.E
}

type T6[A any, B any, C any, D any, E any, F any] struct{
    A A
    B B
    C C
    D D
    E E
    F F
}

func ToT6[A any, B any, C any, D any, E any, F any](a A, b B, c C, d D, e E, f F) T6[A, B, C, D, E, F] {
    return T6[A, B, C, D, E, F]{A: a, B: b, C: c, D: d, E: e, F: f}
}

func (t *T6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F)  {
    return t.A, t.B, t.C, t.D, t.E, t.F
}

type T7[A any, B any, C any, D any, E any, F any, G any] struct{
    A A
    B B
    C C
    D D
    E E
    F F
    G G
}

func ToT7[A any, B any, C any, D any, E any, F any, G any](a A, b B, c C, d D, e E, f F, g G) T7[A, B, C, D, E, F, G] {
    return T7[A, B, C, D, E, F, G]{A: a, B: b, C: c, D: d, E: e, F: f, G: g}
}

func (t *T7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G)  {
    return t.A, t.B, t.C, t.D, t.E, t.F, t.G
}

type T8[A any, B any, C any, D any, E any, F any, G any, H any] struct{
    A A
    B B
    C C
    D D
    E E
    F F
    G G
    H H
}

func ToT8[A any, B any, C any, D any, E any, F any, G any, H any](a A, b B, c C, d D, e E, f F, g G, h H) T8[A, B, C, D, E, F, G, H] {
    return T8[A, B, C, D, E, F, G, H]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h}
}

func (t *T8[A, B, C, D, E, F, G, H]) Unpack() (A, B, C, D, E, F, G, H)  {
    return t.A, t.B, t.C, t.D, t.E, t.F, t.G, t.H
}
