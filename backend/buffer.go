package backend

// Buffer is an in-process stand-in for the original tool's device memory
// buffer: a typed slice a kernel-equivalent function reads and writes
// in place. There is no host/device copy to manage since Dispatch runs
// work in the same address space.
type Buffer[T any] struct {
	data []T
}

// NewBuffer allocates a zero-valued Buffer of the given length.
func NewBuffer[T any](size int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, size)}
}

// NewFilledBuffer allocates a Buffer of the given length with every element
// set to fill.
func NewFilledBuffer[T any](size int, fill T) *Buffer[T] {
	b := NewBuffer[T](size)
	for i := range b.data {
		b.data[i] = fill
	}
	return b
}

// Len returns the buffer's element count.
func (b *Buffer[T]) Len() int { return len(b.data) }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Set writes v to index i.
func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Raw exposes the backing slice for bulk access.
func (b *Buffer[T]) Raw() []T { return b.data }
