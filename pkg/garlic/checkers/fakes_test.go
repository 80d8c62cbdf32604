package checkers

type fakeArray struct {
	data []float64
}

func newFakeArray(values ...float64) fakeArray {
	return fakeArray{data: values}
}

func (a fakeArray) Size() int    { return len(a.data) }
func (a fakeArray) Shape() []int { return []int{len(a.data)} }

type fakeTensor struct {
	elements int
	dims     int
}

func (t *fakeTensor) NumElements() int { return t.elements }
func (t *fakeTensor) Dims() int        { return t.dims }
