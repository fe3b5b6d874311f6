package curve

// Raw layout: a point is X followed by Y, each in the field's word layout.
// The identity is stored as every word of both coordinates set to all ones.
// Reduced elements are below 2^255, so that pattern never collides with a
// finite point.

const allOnes = ^uint64(0)

// PointWords returns the number of words one point occupies.
func (c *Curve[E]) PointWords() int { return 2 * c.f.Words() }

// PutWords writes p into dst[:PointWords()].
func (c *Curve[E]) PutWords(dst []uint64, p Affine[E]) {
	n := c.f.Words()
	dst = dst[:2*n]
	if p.inf {
		for i := range dst {
			dst[i] = allOnes
		}
		return
	}
	c.f.PutWords(dst[:n], p.X)
	c.f.PutWords(dst[n:], p.Y)
}

// ReadWords decodes one point from src. It does not validate the point.
func (c *Curve[E]) ReadWords(src []uint64) (Affine[E], error) {
	n := c.f.Words()
	if len(src) < 2*n {
		return Affine[E]{}, ErrShortBuffer
	}
	if isAllOnes(src[:2*n]) {
		return c.Infinity(), nil
	}
	return Affine[E]{X: c.f.ReadWords(src[:n]), Y: c.f.ReadWords(src[n : 2*n])}, nil
}

// NormalizeInfinity rewrites the first count points in buf that use the
// (0, 0) convention for the identity into the all-ones form. (0, 0) is not
// on any curve with B != 0, so no finite point is affected.
func (c *Curve[E]) NormalizeInfinity(buf []uint64, count int) error {
	w := c.PointWords()
	if len(buf) < count*w {
		return ErrShortBuffer
	}
	for i := 0; i < count; i++ {
		pt := buf[i*w : (i+1)*w]
		if isZeroWords(pt) {
			for j := range pt {
				pt[j] = allOnes
			}
		}
	}
	return nil
}

func isAllOnes(ws []uint64) bool {
	for _, w := range ws {
		if w != allOnes {
			return false
		}
	}
	return true
}

func isZeroWords(ws []uint64) bool {
	for _, w := range ws {
		if w != 0 {
			return false
		}
	}
	return true
}
