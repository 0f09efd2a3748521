package lanes

// Scalar processes one element per lane and fuses no stages: every stage
// runs through the engine's generic loop.
type Scalar struct{}

var _ Ops[float64] = Scalar{}

func (Scalar) Width() int    { return 1 }
func (Scalar) BaseLog2() int { return 0 }

func (Scalar) Load(v []float64) float64 { return v[0] }

func (Scalar) StoreAdd(dst []float64, a, b float64) { dst[0] = a + b }

func (Scalar) StoreSub(dst []float64, a, b float64) { dst[0] = a - b }

// ComputeBase is a no-op: a base group of one element has no stages.
func (Scalar) ComputeBase(v []float64, n, step int) {}
