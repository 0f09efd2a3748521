package lanes

// Vec4 holds four doubles, the contents of one 256-bit register.
type Vec4 [4]float64

func (a Vec4) add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// unpackLo4 interleaves the even elements of each 128-bit half:
// [a0 b0 a2 b2].
func unpackLo4(a, b Vec4) Vec4 { return Vec4{a[0], b[0], a[2], b[2]} }

// unpackHi4 interleaves the odd elements of each 128-bit half:
// [a1 b1 a3 b3].
func unpackHi4(a, b Vec4) Vec4 { return Vec4{a[1], b[1], a[3], b[3]} }

// lowHalves4 joins the low 128-bit halves: [a0 a1 b0 b1].
func lowHalves4(a, b Vec4) Vec4 { return Vec4{a[0], a[1], b[0], b[1]} }

// highHalves4 joins the high 128-bit halves: [a2 a3 b2 b3].
func highHalves4(a, b Vec4) Vec4 { return Vec4{a[2], a[3], b[2], b[3]} }

// Wide4 processes four doubles per lane and fuses the first three stages
// into groups of eight elements, the AVX layout.
type Wide4 struct{}

var _ Ops[Vec4] = Wide4{}

const (
	wide4Log2 = 3
	wide4Base = 1 << wide4Log2
)

func (Wide4) Width() int    { return 4 }
func (Wide4) BaseLog2() int { return wide4Log2 }

func (Wide4) Load(v []float64) Vec4 {
	_ = v[3]

	return Vec4{v[0], v[1], v[2], v[3]}
}

func (Wide4) StoreAdd(dst []float64, a, b Vec4) { store4(dst, a.add(b)) }

func (Wide4) StoreSub(dst []float64, a, b Vec4) { store4(dst, a.sub(b)) }

func store4(dst []float64, x Vec4) {
	_ = dst[3]
	dst[0], dst[1], dst[2], dst[3] = x[0], x[1], x[2], x[3]
}

func (Wide4) ComputeBase(v []float64, n, step int) {
	switch step {
	case 0:
		for i := 0; i+wide4Base <= n; i += wide4Base {
			wide4Base0(v[i : i+wide4Base : i+wide4Base])
		}
	case 1:
		for i := 0; i+wide4Base <= n; i += wide4Base {
			wide4Base1(v[i : i+wide4Base : i+wide4Base])
		}
	case 2:
		for i := 0; i+wide4Base <= n; i += wide4Base {
			wide4Base2(v[i : i+wide4Base : i+wide4Base])
		}
	}
}

// wide4Base0 runs stages 0, 1 and 2 on one group of eight.
// Stage 0 pairs neighbours, so the group is split into even and odd
// elements; the unpacks then line stage 1 partners up in the same lane.
func wide4Base0(g []float64) {
	_ = g[7]

	a := Vec4{g[0], g[2], g[4], g[6]}
	b := Vec4{g[1], g[3], g[5], g[7]}
	c, d := a.add(b), a.sub(b)

	a, b = unpackLo4(c, d), unpackHi4(c, d)
	c, d = a.add(b), a.sub(b)

	wide4Finish(g, c, d)
}

// wide4Base1 runs stages 1 and 2 on one group of eight.
func wide4Base1(g []float64) {
	_ = g[7]

	a := Vec4{g[0], g[1], g[4], g[5]}
	b := Vec4{g[2], g[3], g[6], g[7]}
	c, d := a.add(b), a.sub(b)

	wide4Finish(g, c, d)
}

// wide4Base2 runs stage 2 on one group of eight.
func wide4Base2(g []float64) {
	_ = g[7]

	a := Vec4{g[0], g[1], g[2], g[3]}
	b := Vec4{g[4], g[5], g[6], g[7]}

	store4(g[0:4], a.add(b))
	store4(g[4:8], a.sub(b))
}

// wide4Finish takes stage-1 sums c = [t0 t1 t4 t5] and differences
// d = [t2 t3 t6 t7], restores natural order and applies stage 2.
func wide4Finish(g []float64, c, d Vec4) {
	a, b := lowHalves4(c, d), highHalves4(c, d)

	store4(g[0:4], a.add(b))
	store4(g[4:8], a.sub(b))
}
