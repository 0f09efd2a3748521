package lanes

// Vec8 holds eight doubles, the contents of one 512-bit register.
type Vec8 [8]float64

func (a Vec8) add(b Vec8) Vec8 {
	return Vec8{
		a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3],
		a[4] + b[4], a[5] + b[5], a[6] + b[6], a[7] + b[7],
	}
}

func (a Vec8) sub(b Vec8) Vec8 {
	return Vec8{
		a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3],
		a[4] - b[4], a[5] - b[5], a[6] - b[6], a[7] - b[7],
	}
}

// unpackLo8 interleaves the even element of every 128-bit block.
func unpackLo8(a, b Vec8) Vec8 {
	return Vec8{a[0], b[0], a[2], b[2], a[4], b[4], a[6], b[6]}
}

// unpackHi8 interleaves the odd element of every 128-bit block.
func unpackHi8(a, b Vec8) Vec8 {
	return Vec8{a[1], b[1], a[3], b[3], a[5], b[5], a[7], b[7]}
}

// evenBlocks8 gathers 128-bit blocks 0 and 2 of a and b, alternating.
func evenBlocks8(a, b Vec8) Vec8 {
	return Vec8{a[0], a[1], b[0], b[1], a[4], a[5], b[4], b[5]}
}

// oddBlocks8 gathers 128-bit blocks 1 and 3 of a and b, alternating.
func oddBlocks8(a, b Vec8) Vec8 {
	return Vec8{a[2], a[3], b[2], b[3], a[6], a[7], b[6], b[7]}
}

// lowHalves8 joins the low 256-bit halves of a and b.
func lowHalves8(a, b Vec8) Vec8 {
	return Vec8{a[0], a[1], a[2], a[3], b[0], b[1], b[2], b[3]}
}

// highHalves8 joins the high 256-bit halves of a and b.
func highHalves8(a, b Vec8) Vec8 {
	return Vec8{a[4], a[5], a[6], a[7], b[4], b[5], b[6], b[7]}
}

// Wide8 processes eight doubles per lane and fuses the first four stages
// into groups of sixteen elements, the AVX-512 layout.
type Wide8 struct{}

var _ Ops[Vec8] = Wide8{}

const (
	wide8Log2 = 4
	wide8Base = 1 << wide8Log2
)

func (Wide8) Width() int    { return 8 }
func (Wide8) BaseLog2() int { return wide8Log2 }

func (Wide8) Load(v []float64) Vec8 {
	_ = v[7]

	return Vec8{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]}
}

func (Wide8) StoreAdd(dst []float64, a, b Vec8) { store8(dst, a.add(b)) }

func (Wide8) StoreSub(dst []float64, a, b Vec8) { store8(dst, a.sub(b)) }

func store8(dst []float64, x Vec8) {
	_ = dst[7]
	dst[0], dst[1], dst[2], dst[3] = x[0], x[1], x[2], x[3]
	dst[4], dst[5], dst[6], dst[7] = x[4], x[5], x[6], x[7]
}

func (Wide8) ComputeBase(v []float64, n, step int) {
	switch step {
	case 0:
		for i := 0; i+wide8Base <= n; i += wide8Base {
			wide8Base0(v[i : i+wide8Base : i+wide8Base])
		}
	case 1:
		for i := 0; i+wide8Base <= n; i += wide8Base {
			wide8Base1(v[i : i+wide8Base : i+wide8Base])
		}
	case 2:
		for i := 0; i+wide8Base <= n; i += wide8Base {
			wide8Base2(v[i : i+wide8Base : i+wide8Base])
		}
	case 3:
		for i := 0; i+wide8Base <= n; i += wide8Base {
			wide8Base3(v[i : i+wide8Base : i+wide8Base])
		}
	}
}

func wide8Base0(g []float64) {
	_ = g[15]

	a := Vec8{g[0], g[2], g[4], g[6], g[8], g[10], g[12], g[14]}
	b := Vec8{g[1], g[3], g[5], g[7], g[9], g[11], g[13], g[15]}
	c, d := a.add(b), a.sub(b)

	a, b = unpackLo8(c, d), unpackHi8(c, d)

	wide8Stage1(g, a, b)
}

func wide8Base1(g []float64) {
	_ = g[15]

	a := Vec8{g[0], g[1], g[4], g[5], g[8], g[9], g[12], g[13]}
	b := Vec8{g[2], g[3], g[6], g[7], g[10], g[11], g[14], g[15]}

	wide8Stage1(g, a, b)
}

func wide8Base2(g []float64) {
	_ = g[15]

	a := Vec8{g[0], g[1], g[2], g[3], g[8], g[9], g[10], g[11]}
	b := Vec8{g[4], g[5], g[6], g[7], g[12], g[13], g[14], g[15]}

	wide8Stage2(g, a, b)
}

func wide8Base3(g []float64) {
	_ = g[15]

	a := Vec8{g[0], g[1], g[2], g[3], g[4], g[5], g[6], g[7]}
	b := Vec8{g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15]}

	store8(g[0:8], a.add(b))
	store8(g[8:16], a.sub(b))
}

// wide8Stage1 expects stage 1 partners in matching lanes of a and b and
// runs stages 1 through 3. After stage 1 the sums hold
// [t0 t1 t4 t5 t8 t9 t12 t13] and the differences [t2 t3 t6 t7 ...].
func wide8Stage1(g []float64, a, b Vec8) {
	c, d := a.add(b), a.sub(b)

	wide8Stage2(g, evenBlocks8(c, d), oddBlocks8(c, d))
}

// wide8Stage2 expects a = [t0..t3 t8..t11] and b = [t4..t7 t12..t15] and
// runs stages 2 and 3.
func wide8Stage2(g []float64, a, b Vec8) {
	c, d := a.add(b), a.sub(b)
	a, b = lowHalves8(c, d), highHalves8(c, d)

	store8(g[0:8], a.add(b))
	store8(g[8:16], a.sub(b))
}
