// tuple.go — structural Trace implementations for fixed-arity tuples.
//
// Tuples give composites a heterogeneous field group without declaring a
// named type for it. Trace reports each component left to right,
// unconditionally; a leaf component simply contributes nothing. Arities 0
// through 16 are declared mechanically below.
package rquickjs

type Tuple0 struct{}

func (Tuple0) Trace(t Tracer) {}

type Tuple1[A Traceable] struct {
	V1 A
}

func (x Tuple1[A]) Trace(t Tracer) {
	x.V1.Trace(t)
}

type Tuple2[A, B Traceable] struct {
	V1 A
	V2 B
}

func (x Tuple2[A, B]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
}

type Tuple3[A, B, C Traceable] struct {
	V1 A
	V2 B
	V3 C
}

func (x Tuple3[A, B, C]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
}

type Tuple4[A, B, C, D Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

func (x Tuple4[A, B, C, D]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
}

type Tuple5[A, B, C, D, E Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

func (x Tuple5[A, B, C, D, E]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
}

type Tuple6[A, B, C, D, E, F Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

func (x Tuple6[A, B, C, D, E, F]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
}

type Tuple7[A, B, C, D, E, F, G Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

func (x Tuple7[A, B, C, D, E, F, G]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
}

type Tuple8[A, B, C, D, E, F, G, H Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

func (x Tuple8[A, B, C, D, E, F, G, H]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
}

type Tuple9[A, B, C, D, E, F, G, H, I Traceable] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

func (x Tuple9[A, B, C, D, E, F, G, H, I]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
}

type Tuple10[A, B, C, D, E, F, G, H, I, J Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
}

func (x Tuple10[A, B, C, D, E, F, G, H, I, J]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
}

type Tuple11[A, B, C, D, E, F, G, H, I, J, K Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
}

func (x Tuple11[A, B, C, D, E, F, G, H, I, J, K]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
}

type Tuple12[A, B, C, D, E, F, G, H, I, J, K, L Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
}

func (x Tuple12[A, B, C, D, E, F, G, H, I, J, K, L]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
	x.V12.Trace(t)
}

type Tuple13[A, B, C, D, E, F, G, H, I, J, K, L, M Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
	V13 M
}

func (x Tuple13[A, B, C, D, E, F, G, H, I, J, K, L, M]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
	x.V12.Trace(t)
	x.V13.Trace(t)
}

type Tuple14[A, B, C, D, E, F, G, H, I, J, K, L, M, N Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
	V13 M
	V14 N
}

func (x Tuple14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
	x.V12.Trace(t)
	x.V13.Trace(t)
	x.V14.Trace(t)
}

type Tuple15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
	V13 M
	V14 N
	V15 O
}

func (x Tuple15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
	x.V12.Trace(t)
	x.V13.Trace(t)
	x.V14.Trace(t)
	x.V15.Trace(t)
}

type Tuple16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P Traceable] struct {
	V1  A
	V2  B
	V3  C
	V4  D
	V5  E
	V6  F
	V7  G
	V8  H
	V9  I
	V10 J
	V11 K
	V12 L
	V13 M
	V14 N
	V15 O
	V16 P
}

func (x Tuple16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) Trace(t Tracer) {
	x.V1.Trace(t)
	x.V2.Trace(t)
	x.V3.Trace(t)
	x.V4.Trace(t)
	x.V5.Trace(t)
	x.V6.Trace(t)
	x.V7.Trace(t)
	x.V8.Trace(t)
	x.V9.Trace(t)
	x.V10.Trace(t)
	x.V11.Trace(t)
	x.V12.Trace(t)
	x.V13.Trace(t)
	x.V14.Trace(t)
	x.V15.Trace(t)
	x.V16.Trace(t)
}
