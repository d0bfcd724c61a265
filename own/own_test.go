package own

// tracked counts how many times it has been destroyed.
type tracked struct {
	val       int
	destroyed *int
}

func (t *tracked) Destroy() {
	*t.destroyed++
}

func newTracked(val int) (*tracked, *int) {
	n := new(int)
	return &tracked{val: val, destroyed: n}, n
}
