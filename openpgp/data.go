// This is free and unencumbered software released into the public domain.

package openpgp

// Data is a byte handle with the ownership split described in spec.md's
// design notes: either it is a borrowed View over caller-owned memory
// (the caller promises the bytes outlive the handle), or it Owns a
// buffer the handle itself allocated and controls. This replaces the C
// source's copy-on-write tgpg_data_s with an explicit tagged variant, as
// spec.md §9 "Owned vs borrowed buffers" recommends for a safe-language
// rewrite.
type Data struct {
	view  []byte
	owned []byte
}

// NewData returns an empty, owned Data handle.
func NewData() *Data {
	return &Data{owned: []byte{}}
}

// NewDataFromMem wraps b. If copy is true, b is copied immediately into
// an owned buffer; otherwise the handle borrows b and the caller must
// keep it alive and unmodified for the handle's lifetime.
func NewDataFromMem(b []byte, copy bool) *Data {
	if copy {
		owned := append([]byte(nil), b...)
		return &Data{owned: owned}
	}
	return &Data{view: b}
}

// Bytes returns the handle's current contents.
func (d *Data) Bytes() []byte {
	if d.owned != nil {
		return d.owned
	}
	return d.view
}

// Len returns the length of the handle's current contents.
func (d *Data) Len() int {
	return len(d.Bytes())
}

// makeMutable materializes an owned copy if the handle currently only
// borrows, per spec.md's "Converting a borrowed handle to a mutable one
// copies the bytes once."
func (d *Data) makeMutable() {
	if d.owned == nil {
		d.owned = append([]byte(nil), d.view...)
		d.view = nil
	}
}

// Resize grows or shrinks the handle's owned buffer to n bytes,
// preserving the leading min(n, old len) bytes.
func (d *Data) Resize(n int) {
	d.makeMutable()
	switch {
	case n <= len(d.owned):
		d.owned = d.owned[:n]
	default:
		grown := make([]byte, n)
		copy(grown, d.owned)
		d.owned = grown
	}
}

// SetBytes replaces the handle's contents with an owned copy of b.
func (d *Data) SetBytes(b []byte) {
	d.owned = append([]byte(nil), b...)
	d.view = nil
}

// Release wipes any owned, sensitive contents. Borrowed views are left
// untouched since the handle does not own that memory.
func (d *Data) Release() {
	if d.owned != nil {
		wipe(d.owned)
		d.owned = nil
	}
	d.view = nil
}
