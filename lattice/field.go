package lattice

import "fmt"

// Field is a dense array of one element type per site, with a fixed
// number of elements per site ("site size"): Nd colour matrices per site
// for a link field, Ns spin components per site for a spinor field.
// Copy and move are value semantics; Field never aliases another
// Field's backing storage.
type Field[T any] struct {
	layout   *Layout
	siteSize int
	data     []T
}

// NewField allocates a Field over layout with siteSize elements per site,
// every element initialised to fill.
func NewField[T any](layout *Layout, fill T, siteSize int) (*Field[T], error) {
	if layout == nil {
		return nil, fmt.Errorf("lattice: field requires a non-nil layout")
	}
	if siteSize < 1 {
		return nil, fmt.Errorf("lattice: field site size must be positive, got %d", siteSize)
	}

	data := make([]T, layout.Volume()*siteSize)
	for i := range data {
		data[i] = fill
	}
	return &Field[T]{layout: layout, siteSize: siteSize, data: data}, nil
}

// Layout returns the layout this field is bound to.
func (f *Field[T]) Layout() *Layout { return f.layout }

// SiteSize returns the number of elements stored per site.
func (f *Field[T]) SiteSize() int { return f.siteSize }

// Size returns the total number of elements, volume*siteSize.
func (f *Field[T]) Size() int { return len(f.data) }

// At returns the element at (siteIndex, offset).
func (f *Field[T]) At(siteIndex, offset int) T {
	return f.data[siteIndex*f.siteSize+offset]
}

// Set overwrites the element at (siteIndex, offset).
func (f *Field[T]) Set(siteIndex, offset int, value T) {
	f.data[siteIndex*f.siteSize+offset] = value
}

// Flat returns the element at flat index i = siteIndex*siteSize+offset.
func (f *Field[T]) Flat(i int) T { return f.data[i] }

// SetFlat overwrites the element at flat index i.
func (f *Field[T]) SetFlat(i int, value T) { f.data[i] = value }

// Raw exposes the backing slice directly, for hot loops that want to
// avoid repeated bounds arithmetic. Callers must not resize it.
func (f *Field[T]) Raw() []T { return f.data }

// Clone returns a deep copy with no aliasing of the backing storage.
func (f *Field[T]) Clone() *Field[T] {
	data := make([]T, len(f.data))
	copy(data, f.data)
	return &Field[T]{layout: f.layout, siteSize: f.siteSize, data: data}
}

// CopyFrom overwrites this field's contents with src's. It returns an
// error unless both fields have the same volume and site size.
func (f *Field[T]) CopyFrom(src *Field[T]) error {
	if f.layout.Volume() != src.layout.Volume() || f.siteSize != src.siteSize {
		return fmt.Errorf("lattice: field copy shape mismatch")
	}
	copy(f.data, src.data)
	return nil
}
